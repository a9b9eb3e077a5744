package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/models"
)

type SystemService struct {
	client ClientInterface
}

func NewSystemService(client ClientInterface) *SystemService {
	return &SystemService{
		client: client,
	}
}

// ListSystemsOptions narrows a system listing. Filters combine by AND in the
// query string; the server applies them.
type ListSystemsOptions struct {
	// OrganizationID filters to one organization when non-empty.
	OrganizationID string
	// OnlineOnly restricts the listing to systems reporting status online.
	OnlineOnly bool
}

// List retrieves managed systems, optionally filtered.
func (s *SystemService) List(ctx context.Context, opts ListSystemsOptions) ([]models.SystemInfo, error) {
	query := url.Values{}
	if opts.OrganizationID != "" {
		query.Set("organization_id", opts.OrganizationID)
	}
	if opts.OnlineOnly {
		query.Set("status", string(models.SystemStatusOnline))
	}

	body, err := s.client.Get(ctx, "/systems", query)
	if err != nil {
		return nil, err
	}

	systems, err := decodeList[models.SystemInfo](body, "systems")
	if err != nil {
		return nil, err
	}
	for i := range systems {
		systems[i].ApplyDefaults()
	}
	return systems, nil
}

// GetDetails retrieves detailed information about one system. The payload's
// id falls back to systemID when the server omits it.
func (s *SystemService) GetDetails(ctx context.Context, systemID string) (*models.SystemDetails, error) {
	body, err := s.client.Get(ctx, "/systems/"+url.PathEscape(systemID), nil)
	if err != nil {
		return nil, err
	}

	var details models.SystemDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("decoding system details: %w", err)
	}
	if details.ID == "" {
		details.ID = systemID
	}
	details.ApplyDefaults()
	if err := details.Validate(); err != nil {
		return nil, err
	}
	return &details, nil
}
