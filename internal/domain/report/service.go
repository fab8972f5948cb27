package report

import "context"

type ReportService interface {
	// GenerateAnnualDeclaration builds one DISA row per qualifying employee
	// for the fiscal year. An empty workforce yields empty rows and zero
	// totals, not an error.
	GenerateAnnualDeclaration(ctx context.Context, year int) (AnnualDeclarationResponse, error)

	// GenerateNominativeReport builds the multi-year monthly gross matrix
	// for one employee.
	GenerateNominativeReport(ctx context.Context, employeeID string, startYear, endYear int) (NominativeReportResponse, error)
}
