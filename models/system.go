package models

import (
	"encoding/json"
	"fmt"
)

// SystemStatus is the agent connectivity state reported by Pulseway
type SystemStatus string

const (
	SystemStatusOnline  SystemStatus = "online"
	SystemStatusOffline SystemStatus = "offline"
	SystemStatusUnknown SystemStatus = "unknown"
)

// UnmarshalJSON rejects values outside the closed set. Tolerant decoding here
// would silently mask server-side schema drift, so unrecognized statuses fail.
func (s *SystemStatus) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("system status: %w", err)
	}
	switch SystemStatus(v) {
	case SystemStatusOnline, SystemStatusOffline, SystemStatusUnknown:
		*s = SystemStatus(v)
		return nil
	}
	return fmt.Errorf("invalid system status %q", v)
}

// SystemInfo represents basic information about a managed system
type SystemInfo struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Status          SystemStatus `json:"status"`
	OrganizationID  string       `json:"organization_id"`
	LastSeen        Timestamp    `json:"last_seen,omitzero"`
	IPAddress       *string      `json:"ip_address,omitempty"`
	OperatingSystem *string      `json:"operating_system,omitempty"`
}

// ApplyDefaults fills fields the API is allowed to omit. Only the name and a
// missing status carry defaults; a present but unrecognized status has
// already failed decoding.
func (s *SystemInfo) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "Unknown"
	}
	if s.Status == "" {
		s.Status = SystemStatusUnknown
	}
}

// SystemDetails extends SystemInfo with resource usage and inventory fields
type SystemDetails struct {
	SystemInfo
	CPUUsage           *float64 `json:"cpu_usage,omitempty"`
	MemoryUsage        *float64 `json:"memory_usage,omitempty"`
	DiskUsage          *float64 `json:"disk_usage,omitempty"`
	Uptime             *int64   `json:"uptime,omitempty"`
	InstalledSoftware  []string `json:"installed_software,omitempty"`
	NotificationsCount int      `json:"notifications_count"`
}

// Validate checks the usage percentages and uptime against their allowed
// ranges. Source payloads are never trusted to have done this.
func (d *SystemDetails) Validate() error {
	percentages := []struct {
		field string
		value *float64
	}{
		{"cpu_usage", d.CPUUsage},
		{"memory_usage", d.MemoryUsage},
		{"disk_usage", d.DiskUsage},
	}
	for _, p := range percentages {
		if p.value == nil {
			continue
		}
		if *p.value < 0 || *p.value > 100 {
			return &ValidationError{
				Field:   p.field,
				Message: fmt.Sprintf("must be between 0 and 100, got %g", *p.value),
			}
		}
	}
	if d.Uptime != nil && *d.Uptime < 0 {
		return &ValidationError{
			Field:   "uptime",
			Message: fmt.Sprintf("must not be negative, got %d", *d.Uptime),
		}
	}
	return nil
}
