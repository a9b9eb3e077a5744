// Package services implements the Pulseway API operations, one service per
// resource area. Services hold a ClientInterface for transport and own the
// payload decoding: envelope normalization, defaults, and validation.
package services

import (
	"context"

	"github.com/ry-ops/pulseway-rmm-a2a-mcp-server/models"
)

type OrganizationService struct {
	client ClientInterface
}

func NewOrganizationService(client ClientInterface) *OrganizationService {
	return &OrganizationService{
		client: client,
	}
}

// List retrieves all organizations in the account.
func (s *OrganizationService) List(ctx context.Context) ([]models.Organization, error) {
	body, err := s.client.Get(ctx, "/organizations", nil)
	if err != nil {
		return nil, err
	}

	orgs, err := decodeList[models.Organization](body, "organizations")
	if err != nil {
		return nil, err
	}
	for i := range orgs {
		orgs[i].ApplyDefaults()
	}
	return orgs, nil
}
