package compensation

import (
	"time"

	"github.com/ametis-rh/paie-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SnapshotPatchRequest is the JSON shape of a partial value set. Absent
// fields leave the structure untouched.
type SnapshotPatchRequest struct {
	BaseSalary                  *decimal.Decimal `json:"base_salary,omitempty"`
	SeniorityBonusOverride      *decimal.Decimal `json:"seniority_bonus_override,omitempty"`
	ClearSeniorityBonusOverride bool             `json:"clear_seniority_bonus_override,omitempty"`
	TransportTaxable            *decimal.Decimal `json:"transport_taxable,omitempty"`
	Subjection                  *decimal.Decimal `json:"subjection,omitempty"`
	Communication               *decimal.Decimal `json:"communication,omitempty"`
	Representation              *decimal.Decimal `json:"representation,omitempty"`
	Responsibility              *decimal.Decimal `json:"responsibility,omitempty"`
	Housing                     *decimal.Decimal `json:"housing,omitempty"`
	TransportNonTaxable         *decimal.Decimal `json:"transport_non_taxable,omitempty"`
	CNPSEnrolled                *bool            `json:"cnps_enrolled,omitempty"`
}

func (r SnapshotPatchRequest) ToPatch() SnapshotPatch {
	return SnapshotPatch{
		BaseSalary:                  r.BaseSalary,
		SeniorityBonusOverride:      r.SeniorityBonusOverride,
		ClearSeniorityBonusOverride: r.ClearSeniorityBonusOverride,
		TransportTaxable:            r.TransportTaxable,
		Subjection:                  r.Subjection,
		Communication:               r.Communication,
		Representation:              r.Representation,
		Responsibility:              r.Responsibility,
		Housing:                     r.Housing,
		TransportNonTaxable:         r.TransportNonTaxable,
		CNPSEnrolled:                r.CNPSEnrolled,
	}
}

func (r SnapshotPatchRequest) validate(errs validator.ValidationErrors) validator.ValidationErrors {
	checks := []struct {
		field string
		value *decimal.Decimal
	}{
		{"base_salary", r.BaseSalary},
		{"seniority_bonus_override", r.SeniorityBonusOverride},
		{"transport_taxable", r.TransportTaxable},
		{"subjection", r.Subjection},
		{"communication", r.Communication},
		{"representation", r.Representation},
		{"responsibility", r.Responsibility},
		{"housing", r.Housing},
		{"transport_non_taxable", r.TransportNonTaxable},
	}

	for _, c := range checks {
		if c.value != nil && c.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: c.field, Message: "must be non-negative"})
		}
	}
	return errs
}

type RecordEventRequest struct {
	EmployeeID    string               `json:"-"`
	EventType     string               `json:"event_type"`
	EffectiveDate string               `json:"effective_date"`
	Values        SnapshotPatchRequest `json:"values"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidEventType(EventType(r.EventType)) {
		errs = append(errs, validator.ValidationError{Field: "event_type", Message: "must be one of promotion, merit_increase, market_adjustment, revaluation, other"})
	}
	if validator.IsEmpty(r.EffectiveDate) {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "is required"})
	}
	errs = r.Values.validate(errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEventRequest struct {
	ID     string               `json:"-"`
	Values SnapshotPatchRequest `json:"values"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = r.Values.validate(errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SnapshotResponse struct {
	BaseSalary             decimal.Decimal  `json:"base_salary"`
	SeniorityBonusOverride *decimal.Decimal `json:"seniority_bonus_override,omitempty"`
	TransportTaxable       decimal.Decimal  `json:"transport_taxable"`
	Subjection             decimal.Decimal  `json:"subjection"`
	Communication          decimal.Decimal  `json:"communication"`
	Representation         decimal.Decimal  `json:"representation"`
	Responsibility         decimal.Decimal  `json:"responsibility"`
	Housing                decimal.Decimal  `json:"housing"`
	TransportNonTaxable    decimal.Decimal  `json:"transport_non_taxable"`
	CNPSEnrolled           bool             `json:"cnps_enrolled"`
}

func ToSnapshotResponse(s Snapshot) SnapshotResponse {
	return SnapshotResponse{
		BaseSalary:             s.BaseSalary,
		SeniorityBonusOverride: s.SeniorityBonusOverride,
		TransportTaxable:       s.TransportTaxable,
		Subjection:             s.Subjection,
		Communication:          s.Communication,
		Representation:         s.Representation,
		Responsibility:         s.Responsibility,
		Housing:                s.Housing,
		TransportNonTaxable:    s.TransportNonTaxable,
		CNPSEnrolled:           s.CNPSEnrolled,
	}
}

type EventResponse struct {
	ID             string           `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	EventType      string           `json:"event_type"`
	EffectiveDate  string           `json:"effective_date"`
	NewStructure   SnapshotResponse `json:"new_structure"`
	PriorStructure SnapshotResponse `json:"prior_structure"`
	CreatedAt      string           `json:"created_at"`
}

func ToEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		EventType:      string(e.Type),
		EffectiveDate:  e.EffectiveDate.Format("2006-01-02"),
		NewStructure:   ToSnapshotResponse(e.NewStructure),
		PriorStructure: ToSnapshotResponse(e.PriorStructure),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

type BaselineResponse struct {
	EmployeeID string           `json:"employee_id"`
	Structure  SnapshotResponse `json:"structure"`
	UpdatedAt  string           `json:"updated_at"`
}

func ToBaselineResponse(b Baseline) BaselineResponse {
	return BaselineResponse{
		EmployeeID: b.EmployeeID,
		Structure:  ToSnapshotResponse(b.Snapshot),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}
