package report

import "github.com/shopspring/decimal"

// DeclarationRow is one employee's line of the annual wage declaration
// (DISA): twelve month-end gross figures, the year-end gratification and the
// resulting totals. Rows are transient projections, recomputed per request.
type DeclarationRow struct {
	EmployeeID        string
	Matricule         string
	FullName          string
	CNPSEnrolled      bool
	MonthlyGross      [12]decimal.Decimal
	YearEndBonus      decimal.Decimal
	TotalGross        decimal.Decimal
	TotalContribution decimal.Decimal
}

// DeclarationTotals aggregates all rows of one declaration.
type DeclarationTotals struct {
	MonthlyGross      [12]decimal.Decimal
	YearEndBonus      decimal.Decimal
	TotalGross        decimal.Decimal
	TotalContribution decimal.Decimal
}

// NominativeYear is one year of the per-employee monthly gross matrix.
type NominativeYear struct {
	Year         int
	MonthlyGross [12]decimal.Decimal
	Total        decimal.Decimal
}
