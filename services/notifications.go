package services

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/models"
)

type NotificationService struct {
	client ClientInterface
}

func NewNotificationService(client ClientInterface) *NotificationService {
	return &NotificationService{
		client: client,
	}
}

// ListForSystem retrieves notifications for one system, optionally filtered
// by status server-side. Notifications always need a sortable time, so a
// missing or unparsable timestamp is replaced with the current time instead
// of failing; other timestamps stay optional.
func (s *NotificationService) ListForSystem(ctx context.Context, systemID string, status *models.NotificationStatus) ([]models.Notification, error) {
	query := url.Values{}
	if status != nil {
		query.Set("status", string(*status))
	}

	body, err := s.client.Get(ctx, "/systems/"+url.PathEscape(systemID)+"/notifications", query)
	if err != nil {
		return nil, err
	}

	notifications, err := decodeList[models.Notification](body, "notifications")
	if err != nil {
		return nil, err
	}
	now := models.NewTimestamp(time.Now().UTC())
	for i := range notifications {
		notifications[i].SystemID = systemID
		notifications[i].ApplyDefaults()
		if notifications[i].Timestamp.IsZero() {
			slog.Warn("notification missing timestamp, defaulting to now", "notification_id", notifications[i].ID)
			notifications[i].Timestamp = now
		}
	}
	return notifications, nil
}
