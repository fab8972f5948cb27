package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) compensation.CompensationRepository {
	return &compensationRepository{db: db}
}

// ========== BASELINE ==========

func (r *compensationRepository) GetBaseline(ctx context.Context, employeeID string) (compensation.Baseline, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, base_salary, seniority_bonus_override, transport_taxable,
			   subjection, communication, representation, responsibility, housing,
			   transport_non_taxable, cnps_enrolled, created_at, updated_at
		FROM compensation_baselines
		WHERE employee_id = $1
	`

	var b compensation.Baseline
	var override decimal.NullDecimal
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&b.EmployeeID, &b.BaseSalary, &override, &b.TransportTaxable,
		&b.Subjection, &b.Communication, &b.Representation, &b.Responsibility, &b.Housing,
		&b.TransportNonTaxable, &b.CNPSEnrolled, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return compensation.Baseline{}, compensation.ErrBaselineNotFound
		}
		return compensation.Baseline{}, fmt.Errorf("failed to get baseline: %w", err)
	}
	b.SeniorityBonusOverride = fromNullDecimal(override)

	return b, nil
}

func (r *compensationRepository) PutBaseline(ctx context.Context, baseline compensation.Baseline) (compensation.Baseline, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensation_baselines (
			employee_id, base_salary, seniority_bonus_override, transport_taxable,
			subjection, communication, representation, responsibility, housing,
			transport_non_taxable, cnps_enrolled
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			seniority_bonus_override = EXCLUDED.seniority_bonus_override,
			transport_taxable = EXCLUDED.transport_taxable,
			subjection = EXCLUDED.subjection,
			communication = EXCLUDED.communication,
			representation = EXCLUDED.representation,
			responsibility = EXCLUDED.responsibility,
			housing = EXCLUDED.housing,
			transport_non_taxable = EXCLUDED.transport_non_taxable,
			cnps_enrolled = EXCLUDED.cnps_enrolled,
			updated_at = NOW()
		RETURNING employee_id, base_salary, seniority_bonus_override, transport_taxable,
			subjection, communication, representation, responsibility, housing,
			transport_non_taxable, cnps_enrolled, created_at, updated_at
	`

	var b compensation.Baseline
	var override decimal.NullDecimal
	err := q.QueryRow(ctx, query,
		baseline.EmployeeID, baseline.BaseSalary, toNullDecimal(baseline.SeniorityBonusOverride),
		baseline.TransportTaxable, baseline.Subjection, baseline.Communication,
		baseline.Representation, baseline.Responsibility, baseline.Housing,
		baseline.TransportNonTaxable, baseline.CNPSEnrolled,
	).Scan(
		&b.EmployeeID, &b.BaseSalary, &override, &b.TransportTaxable,
		&b.Subjection, &b.Communication, &b.Representation, &b.Responsibility, &b.Housing,
		&b.TransportNonTaxable, &b.CNPSEnrolled, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return compensation.Baseline{}, fmt.Errorf("failed to upsert baseline: %w", err)
	}
	b.SeniorityBonusOverride = fromNullDecimal(override)

	return b, nil
}

// ========== LEDGER ==========

// Events persist both structures in full, new_* and prior_* side by side, so
// a deletion can always restore the pre-event state without replaying the
// ledger.
const eventColumns = `
	id, employee_id, event_type, effective_date,
	new_base_salary, new_seniority_bonus_override, new_transport_taxable,
	new_subjection, new_communication, new_representation, new_responsibility,
	new_housing, new_transport_non_taxable, new_cnps_enrolled,
	prior_base_salary, prior_seniority_bonus_override, prior_transport_taxable,
	prior_subjection, prior_communication, prior_representation, prior_responsibility,
	prior_housing, prior_transport_non_taxable, prior_cnps_enrolled,
	created_at, updated_at`

func (r *compensationRepository) CreateEvent(ctx context.Context, event compensation.Event) (compensation.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensation_events (
			id, employee_id, event_type, effective_date,
			new_base_salary, new_seniority_bonus_override, new_transport_taxable,
			new_subjection, new_communication, new_representation, new_responsibility,
			new_housing, new_transport_non_taxable, new_cnps_enrolled,
			prior_base_salary, prior_seniority_bonus_override, prior_transport_taxable,
			prior_subjection, prior_communication, prior_representation, prior_responsibility,
			prior_housing, prior_transport_non_taxable, prior_cnps_enrolled
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
				  $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING` + eventColumns

	args := []any{uuid.New().String(), event.EmployeeID, string(event.Type), event.EffectiveDate}
	args = append(args, snapshotArgs(event.NewStructure)...)
	args = append(args, snapshotArgs(event.PriorStructure)...)

	created, err := scanEvent(q.QueryRow(ctx, query, args...))
	if err != nil {
		return compensation.Event{}, fmt.Errorf("failed to create compensation event: %w", err)
	}

	return created, nil
}

func (r *compensationRepository) GetEvent(ctx context.Context, eventID string) (compensation.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + eventColumns + `
		FROM compensation_events
		WHERE id = $1
	`

	event, err := scanEvent(q.QueryRow(ctx, query, eventID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return compensation.Event{}, compensation.ErrEventNotFound
		}
		return compensation.Event{}, fmt.Errorf("failed to get compensation event: %w", err)
	}

	return event, nil
}

func (r *compensationRepository) ListEvents(ctx context.Context, employeeID string) ([]compensation.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + eventColumns + `
		FROM compensation_events
		WHERE employee_id = $1
		ORDER BY effective_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation events: %w", err)
	}
	defer rows.Close()

	var events []compensation.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compensation event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate compensation events: %w", err)
	}

	return events, nil
}

func (r *compensationRepository) UpdateEventStructure(ctx context.Context, eventID string, structure compensation.Snapshot) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE compensation_events SET
			new_base_salary = $2,
			new_seniority_bonus_override = $3,
			new_transport_taxable = $4,
			new_subjection = $5,
			new_communication = $6,
			new_representation = $7,
			new_responsibility = $8,
			new_housing = $9,
			new_transport_non_taxable = $10,
			new_cnps_enrolled = $11,
			updated_at = NOW()
		WHERE id = $1
	`

	args := append([]any{eventID}, snapshotArgs(structure)...)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update compensation event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compensation.ErrEventNotFound
	}

	return nil
}

func (r *compensationRepository) DeleteEvent(ctx context.Context, eventID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM compensation_events WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete compensation event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compensation.ErrEventNotFound
	}

	return nil
}

func (r *compensationRepository) HasEventOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM compensation_events WHERE employee_id = $1 AND effective_date = $2)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event date: %w", err)
	}

	return exists, nil
}

// ========== SCAN HELPERS ==========

func snapshotArgs(s compensation.Snapshot) []any {
	return []any{
		s.BaseSalary, toNullDecimal(s.SeniorityBonusOverride), s.TransportTaxable,
		s.Subjection, s.Communication, s.Representation, s.Responsibility,
		s.Housing, s.TransportNonTaxable, s.CNPSEnrolled,
	}
}

func snapshotDests(s *compensation.Snapshot, override *decimal.NullDecimal) []any {
	return []any{
		&s.BaseSalary, override, &s.TransportTaxable,
		&s.Subjection, &s.Communication, &s.Representation, &s.Responsibility,
		&s.Housing, &s.TransportNonTaxable, &s.CNPSEnrolled,
	}
}

func scanEvent(row pgx.Row) (compensation.Event, error) {
	var e compensation.Event
	var newOverride, priorOverride decimal.NullDecimal

	dests := []any{&e.ID, &e.EmployeeID, &e.Type, &e.EffectiveDate}
	dests = append(dests, snapshotDests(&e.NewStructure, &newOverride)...)
	dests = append(dests, snapshotDests(&e.PriorStructure, &priorOverride)...)
	dests = append(dests, &e.CreatedAt, &e.UpdatedAt)

	if err := row.Scan(dests...); err != nil {
		return compensation.Event{}, err
	}
	e.NewStructure.SeniorityBonusOverride = fromNullDecimal(newOverride)
	e.PriorStructure.SeniorityBonusOverride = fromNullDecimal(priorOverride)

	return e, nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(nd decimal.NullDecimal) *decimal.Decimal {
	if !nd.Valid {
		return nil
	}
	d := nd.Decimal
	return &d
}
