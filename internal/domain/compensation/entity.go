package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the full compensation value set in force at a point in time:
// base salary, the optional manual seniority-bonus override, the six taxable
// indemnities, the non-taxable transport allowance and the CNPS enrolment
// flag. Events capture one snapshot before and one after the change; the
// baseline holds the snapshot currently in force.
type Snapshot struct {
	BaseSalary             decimal.Decimal
	SeniorityBonusOverride *decimal.Decimal
	TransportTaxable       decimal.Decimal
	Subjection             decimal.Decimal
	Communication          decimal.Decimal
	Representation         decimal.Decimal
	Responsibility         decimal.Decimal
	Housing                decimal.Decimal
	TransportNonTaxable    decimal.Decimal
	CNPSEnrolled           bool
}

// TaxableIndemnities sums the six taxable indemnities.
func (s Snapshot) TaxableIndemnities() decimal.Decimal {
	return s.TransportTaxable.
		Add(s.Subjection).
		Add(s.Communication).
		Add(s.Representation).
		Add(s.Responsibility).
		Add(s.Housing)
}

// Baseline is the mutable "current" compensation record, one per employee.
// It is a cache of ResolveAt(today) and is rewritten inside the same
// transaction as every ledger mutation.
type Baseline struct {
	EmployeeID string
	Snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventType string

const (
	EventTypePromotion        EventType = "promotion"
	EventTypeMeritIncrease    EventType = "merit_increase"
	EventTypeMarketAdjustment EventType = "market_adjustment"
	EventTypeRevaluation      EventType = "revaluation"
	EventTypeOther            EventType = "other"
)

// ValidEventType reports whether t is one of the known event types.
func ValidEventType(t EventType) bool {
	switch t {
	case EventTypePromotion, EventTypeMeritIncrease, EventTypeMarketAdjustment,
		EventTypeRevaluation, EventTypeOther:
		return true
	}
	return false
}

// Event is one append-only compensation change. PriorStructure is the full
// snapshot in force immediately before EffectiveDate, captured at creation
// time so a deletion can always restore the previous state.
type Event struct {
	ID             string
	EmployeeID     string
	Type           EventType
	EffectiveDate  time.Time
	NewStructure   Snapshot
	PriorStructure Snapshot
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SnapshotPatch is a partial value set. Nil fields are left untouched when
// the patch is applied. ClearSeniorityBonusOverride removes the manual
// override so the bonus is recomputed from years of service.
type SnapshotPatch struct {
	BaseSalary                  *decimal.Decimal
	SeniorityBonusOverride      *decimal.Decimal
	ClearSeniorityBonusOverride bool
	TransportTaxable            *decimal.Decimal
	Subjection                  *decimal.Decimal
	Communication               *decimal.Decimal
	Representation              *decimal.Decimal
	Responsibility              *decimal.Decimal
	Housing                     *decimal.Decimal
	TransportNonTaxable         *decimal.Decimal
	CNPSEnrolled                *bool
}

// IsEmpty reports whether the patch carries no changes at all.
func (p SnapshotPatch) IsEmpty() bool {
	return p.BaseSalary == nil &&
		p.SeniorityBonusOverride == nil &&
		!p.ClearSeniorityBonusOverride &&
		p.TransportTaxable == nil &&
		p.Subjection == nil &&
		p.Communication == nil &&
		p.Representation == nil &&
		p.Responsibility == nil &&
		p.Housing == nil &&
		p.TransportNonTaxable == nil &&
		p.CNPSEnrolled == nil
}

// ApplyTo merges the patch over a snapshot and returns the result.
func (p SnapshotPatch) ApplyTo(s Snapshot) Snapshot {
	if p.BaseSalary != nil {
		s.BaseSalary = *p.BaseSalary
	}
	if p.ClearSeniorityBonusOverride {
		s.SeniorityBonusOverride = nil
	} else if p.SeniorityBonusOverride != nil {
		v := *p.SeniorityBonusOverride
		s.SeniorityBonusOverride = &v
	}
	if p.TransportTaxable != nil {
		s.TransportTaxable = *p.TransportTaxable
	}
	if p.Subjection != nil {
		s.Subjection = *p.Subjection
	}
	if p.Communication != nil {
		s.Communication = *p.Communication
	}
	if p.Representation != nil {
		s.Representation = *p.Representation
	}
	if p.Responsibility != nil {
		s.Responsibility = *p.Responsibility
	}
	if p.Housing != nil {
		s.Housing = *p.Housing
	}
	if p.TransportNonTaxable != nil {
		s.TransportNonTaxable = *p.TransportNonTaxable
	}
	if p.CNPSEnrolled != nil {
		s.CNPSEnrolled = *p.CNPSEnrolled
	}
	return s
}
