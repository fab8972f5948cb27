package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/domain/employee"
	"github.com/ametis-rh/paie-backend-go/internal/domain/organization"
	"github.com/ametis-rh/paie-backend-go/internal/domain/report"
	payslipsvc "github.com/ametis-rh/paie-backend-go/internal/service/payslip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	compensationRepo compensation.CompensationRepository
	organizationRepo organization.OrganizationRepository
	workerLimit      int
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	compensationRepo compensation.CompensationRepository,
	organizationRepo organization.OrganizationRepository,
	workerLimit int,
) report.ReportService {
	if workerLimit < 1 {
		workerLimit = 1
	}
	return &ReportServiceImpl{
		employeeRepo:     employeeRepo,
		compensationRepo: compensationRepo,
		organizationRepo: organizationRepo,
		workerLimit:      workerLimit,
	}
}

// GenerateAnnualDeclaration builds the DISA: one row per employee present at
// any point of the fiscal year, with twelve month-end gross figures, the
// year-end gratification and the CNPS contribution. Rows are computed
// concurrently, one employee per worker.
func (s *ReportServiceImpl) GenerateAnnualDeclaration(ctx context.Context, year int) (report.AnnualDeclarationResponse, error) {
	if year < 1950 || year > 2200 {
		return report.AnnualDeclarationResponse{}, fmt.Errorf("%w: %d", report.ErrInvalidYear, year)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.AnnualDeclarationResponse{}, err
	}

	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var qualifying []employee.Employee
	for _, emp := range employees {
		if emp.HireDate.After(dec31) {
			continue
		}
		if emp.DepartureDate != nil && emp.DepartureDate.Year() < year {
			continue
		}
		qualifying = append(qualifying, emp)
	}

	rows := make([]report.DeclarationRow, len(qualifying))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerLimit)
	for i, emp := range qualifying {
		i, emp := i, emp
		g.Go(func() error {
			row, err := s.declarationRow(gCtx, emp, year)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.AnnualDeclarationResponse{}, err
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FullName != rows[j].FullName {
			return rows[i].FullName < rows[j].FullName
		}
		return rows[i].Matricule < rows[j].Matricule
	})

	var totals report.DeclarationTotals
	rowResponses := make([]report.DeclarationRowResponse, 0, len(rows))
	for _, row := range rows {
		for m := 0; m < 12; m++ {
			totals.MonthlyGross[m] = totals.MonthlyGross[m].Add(row.MonthlyGross[m])
		}
		totals.YearEndBonus = totals.YearEndBonus.Add(row.YearEndBonus)
		totals.TotalGross = totals.TotalGross.Add(row.TotalGross)
		totals.TotalContribution = totals.TotalContribution.Add(row.TotalContribution)
		rowResponses = append(rowResponses, report.ToDeclarationRowResponse(row))
	}

	return report.AnnualDeclarationResponse{
		OrganizationName: s.organizationName(ctx),
		Year:             year,
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
		Rows:             rowResponses,
		Totals:           report.ToDeclarationTotalsResponse(totals),
	}, nil
}

// declarationRow computes one employee's DISA line. Displayed monthly gross
// is rounded to the franc; the contribution accumulates over the unrounded
// amounts and is rounded once at the end.
func (s *ReportServiceImpl) declarationRow(ctx context.Context, emp employee.Employee, year int) (report.DeclarationRow, error) {
	baseline, events, err := s.loadLedger(ctx, emp.ID)
	if err != nil {
		return report.DeclarationRow{}, err
	}

	row := report.DeclarationRow{
		EmployeeID: emp.ID,
		Matricule:  emp.Matricule,
		FullName:   emp.FullName,
	}

	rawTotal := decimal.Zero
	for m := time.January; m <= time.December; m++ {
		// Day 0 of the next month normalizes to this month's last day.
		monthEnd := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC)
		if !emp.EmployedOn(monthEnd) {
			continue
		}
		snap := compensation.ResolveAt(baseline, events, monthEnd)
		years := payslipsvc.SeniorityYears(emp.HireDate, monthEnd)
		gross := payslipsvc.GrossTaxable(snap, years)
		row.MonthlyGross[m-1] = gross.Round(0)
		rawTotal = rawTotal.Add(gross)
	}

	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	yearEndSnap := compensation.ResolveAt(baseline, events, dec31)
	row.CNPSEnrolled = yearEndSnap.CNPSEnrolled

	// The gratification is owed to everyone still employed on December 31.
	if emp.DepartureDate == nil || !emp.DepartureDate.Before(dec31) {
		if emp.EmployedOn(dec31) {
			gratification := payslipsvc.YearEndGratification(yearEndSnap.BaseSalary)
			row.YearEndBonus = gratification.Round(0)
			rawTotal = rawTotal.Add(gratification)
		}
	}

	for _, g := range row.MonthlyGross {
		row.TotalGross = row.TotalGross.Add(g)
	}
	row.TotalGross = row.TotalGross.Add(row.YearEndBonus)

	if row.CNPSEnrolled {
		row.TotalContribution = payslipsvc.EmployeeContribution(rawTotal).Round(0)
	}

	return row, nil
}

// GenerateNominativeReport builds the per-employee monthly gross matrix over
// an inclusive year range. A month counts only when its 15th falls inside
// the employment window.
func (s *ReportServiceImpl) GenerateNominativeReport(ctx context.Context, employeeID string, startYear, endYear int) (report.NominativeReportResponse, error) {
	if startYear < 1950 || endYear > 2200 {
		return report.NominativeReportResponse{}, fmt.Errorf("%w: %d-%d", report.ErrInvalidYear, startYear, endYear)
	}
	if startYear > endYear {
		return report.NominativeReportResponse{}, fmt.Errorf("%w: %d-%d", report.ErrInvalidRange, startYear, endYear)
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.NominativeReportResponse{}, err
	}

	baseline, events, err := s.loadLedger(ctx, emp.ID)
	if err != nil {
		return report.NominativeReportResponse{}, err
	}

	grandTotal := decimal.Zero
	years := make([]report.NominativeYearResponse, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		row := report.NominativeYear{Year: y}
		for m := time.January; m <= time.December; m++ {
			mid := time.Date(y, m, 15, 0, 0, 0, 0, time.UTC)
			if !emp.EmployedOn(mid) {
				continue
			}
			snap := compensation.ResolveAt(baseline, events, mid)
			seniority := payslipsvc.SeniorityYears(emp.HireDate, mid)
			gross := payslipsvc.GrossTaxable(snap, seniority).Round(0)
			row.MonthlyGross[m-1] = gross
			row.Total = row.Total.Add(gross)
		}
		grandTotal = grandTotal.Add(row.Total)
		years = append(years, report.ToNominativeYearResponse(row))
	}

	return report.NominativeReportResponse{
		OrganizationName: s.organizationName(ctx),
		EmployeeID:       emp.ID,
		Matricule:        emp.Matricule,
		FullName:         emp.FullName,
		StartYear:        startYear,
		EndYear:          endYear,
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
		Years:            years,
		GrandTotal:       grandTotal,
	}, nil
}

func (s *ReportServiceImpl) loadLedger(ctx context.Context, employeeID string) (compensation.Baseline, []compensation.Event, error) {
	baseline, err := s.compensationRepo.GetBaseline(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, compensation.ErrBaselineNotFound) {
			return compensation.Baseline{}, nil, err
		}
		baseline = compensation.Baseline{EmployeeID: employeeID}
	}

	events, err := s.compensationRepo.ListEvents(ctx, employeeID)
	if err != nil {
		return compensation.Baseline{}, nil, err
	}
	return baseline, events, nil
}

func (s *ReportServiceImpl) organizationName(ctx context.Context) string {
	org, err := s.organizationRepo.Get(ctx)
	if err != nil {
		return ""
	}
	return org.Name
}
