package report

import (
	"github.com/shopspring/decimal"
)

type DeclarationRowResponse struct {
	EmployeeID        string            `json:"employee_id"`
	Matricule         string            `json:"matricule"`
	FullName          string            `json:"full_name"`
	CNPSEnrolled      bool              `json:"cnps_enrolled"`
	MonthlyGross      []decimal.Decimal `json:"monthly_gross"`
	YearEndBonus      decimal.Decimal   `json:"year_end_bonus"`
	TotalGross        decimal.Decimal   `json:"total_gross"`
	TotalContribution decimal.Decimal   `json:"total_contribution"`
}

type DeclarationTotalsResponse struct {
	MonthlyGross      []decimal.Decimal `json:"monthly_gross"`
	YearEndBonus      decimal.Decimal   `json:"year_end_bonus"`
	TotalGross        decimal.Decimal   `json:"total_gross"`
	TotalContribution decimal.Decimal   `json:"total_contribution"`
}

type AnnualDeclarationResponse struct {
	OrganizationName string                    `json:"organization_name"`
	Year             int                       `json:"year"`
	GeneratedAt      string                    `json:"generated_at"`
	Rows             []DeclarationRowResponse  `json:"rows"`
	Totals           DeclarationTotalsResponse `json:"totals"`
}

func ToDeclarationRowResponse(r DeclarationRow) DeclarationRowResponse {
	return DeclarationRowResponse{
		EmployeeID:        r.EmployeeID,
		Matricule:         r.Matricule,
		FullName:          r.FullName,
		CNPSEnrolled:      r.CNPSEnrolled,
		MonthlyGross:      monthsToSlice(r.MonthlyGross),
		YearEndBonus:      r.YearEndBonus,
		TotalGross:        r.TotalGross,
		TotalContribution: r.TotalContribution,
	}
}

func ToDeclarationTotalsResponse(t DeclarationTotals) DeclarationTotalsResponse {
	return DeclarationTotalsResponse{
		MonthlyGross:      monthsToSlice(t.MonthlyGross),
		YearEndBonus:      t.YearEndBonus,
		TotalGross:        t.TotalGross,
		TotalContribution: t.TotalContribution,
	}
}

type NominativeYearResponse struct {
	Year         int               `json:"year"`
	MonthlyGross []decimal.Decimal `json:"monthly_gross"`
	Total        decimal.Decimal   `json:"total"`
}

type NominativeReportResponse struct {
	OrganizationName string                   `json:"organization_name"`
	EmployeeID       string                   `json:"employee_id"`
	Matricule        string                   `json:"matricule"`
	FullName         string                   `json:"full_name"`
	StartYear        int                      `json:"start_year"`
	EndYear          int                      `json:"end_year"`
	GeneratedAt      string                   `json:"generated_at"`
	Years            []NominativeYearResponse `json:"years"`
	GrandTotal       decimal.Decimal          `json:"grand_total"`
}

func ToNominativeYearResponse(y NominativeYear) NominativeYearResponse {
	return NominativeYearResponse{
		Year:         y.Year,
		MonthlyGross: monthsToSlice(y.MonthlyGross),
		Total:        y.Total,
	}
}

func monthsToSlice(months [12]decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, 12)
	for i, m := range months {
		// json renders an uninitialized decimal as "0" already, but keep the
		// zero explicit so every month serializes uniformly.
		if m.IsZero() {
			out[i] = decimal.Zero
			continue
		}
		out[i] = m
	}
	return out
}
