package models

import (
	"encoding/json"
	"fmt"
)

// NotificationStatus is the lifecycle state of a Pulseway notification
type NotificationStatus string

const (
	NotificationStatusActive       NotificationStatus = "active"
	NotificationStatusAcknowledged NotificationStatus = "acknowledged"
	NotificationStatusResolved     NotificationStatus = "resolved"
)

// ParseNotificationStatus converts a caller-supplied string into a
// NotificationStatus, rejecting values outside the closed set.
func ParseNotificationStatus(s string) (NotificationStatus, error) {
	switch NotificationStatus(s) {
	case NotificationStatusActive, NotificationStatusAcknowledged, NotificationStatusResolved:
		return NotificationStatus(s), nil
	}
	return "", fmt.Errorf("invalid notification status %q", s)
}

// UnmarshalJSON rejects values outside the closed set.
func (s *NotificationStatus) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("notification status: %w", err)
	}
	parsed, err := ParseNotificationStatus(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Notification represents an alert raised for a managed system. SystemID is
// stamped by the caller from the request, not read from the payload.
type Notification struct {
	ID             string             `json:"id"`
	SystemID       string             `json:"system_id"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	Severity       string             `json:"severity"`
	Status         NotificationStatus `json:"status"`
	Timestamp      Timestamp          `json:"timestamp"`
	AcknowledgedBy *string            `json:"acknowledged_by,omitempty"`
	AcknowledgedAt Timestamp          `json:"acknowledged_at,omitzero"`
}

// ApplyDefaults fills fields the API is allowed to omit.
func (n *Notification) ApplyDefaults() {
	if n.Severity == "" {
		n.Severity = "info"
	}
	if n.Status == "" {
		n.Status = NotificationStatusActive
	}
}
