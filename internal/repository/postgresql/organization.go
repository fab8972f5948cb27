package postgresql

import (
	"context"
	"fmt"

	"github.com/ametis-rh/paie-backend-go/internal/domain/organization"
	"github.com/ametis-rh/paie-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type organizationRepository struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepository{db: db}
}

// Get returns the single organization row. The row is seeded by the
// surrounding portal; this service only reads it.
func (r *organizationRepository) Get(ctx context.Context) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, acronym, address, city, logo_url, payslip_title, declaration_title,
			   created_at, updated_at
		FROM organizations
		ORDER BY created_at
		LIMIT 1
	`

	var o organization.Organization
	err := q.QueryRow(ctx, query).Scan(
		&o.ID, &o.Name, &o.Acronym, &o.Address, &o.City, &o.LogoURL,
		&o.PayslipTitle, &o.DeclarationTitle, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return o, nil
}
