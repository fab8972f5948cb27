package organization

import "context"

// OrganizationRepository reads the single organization record maintained by
// the surrounding portal.
type OrganizationRepository interface {
	Get(ctx context.Context) (Organization, error)
}
