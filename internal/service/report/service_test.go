package report

import (
	"context"
	"testing"
	"time"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/domain/employee"
	"github.com/ametis-rh/paie-backend-go/internal/domain/organization"
	"github.com/ametis-rh/paie-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== IN-MEMORY FAKES ==========

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return r.employees, nil
}

type fakeCompensationRepo struct {
	baselines map[string]compensation.Baseline
	events    map[string][]compensation.Event
}

func (r *fakeCompensationRepo) GetBaseline(_ context.Context, employeeID string) (compensation.Baseline, error) {
	b, ok := r.baselines[employeeID]
	if !ok {
		return compensation.Baseline{}, compensation.ErrBaselineNotFound
	}
	return b, nil
}

func (r *fakeCompensationRepo) PutBaseline(_ context.Context, baseline compensation.Baseline) (compensation.Baseline, error) {
	r.baselines[baseline.EmployeeID] = baseline
	return baseline, nil
}

func (r *fakeCompensationRepo) CreateEvent(_ context.Context, event compensation.Event) (compensation.Event, error) {
	r.events[event.EmployeeID] = append(r.events[event.EmployeeID], event)
	return event, nil
}

func (r *fakeCompensationRepo) GetEvent(_ context.Context, eventID string) (compensation.Event, error) {
	for _, events := range r.events {
		for _, e := range events {
			if e.ID == eventID {
				return e, nil
			}
		}
	}
	return compensation.Event{}, compensation.ErrEventNotFound
}

func (r *fakeCompensationRepo) ListEvents(_ context.Context, employeeID string) ([]compensation.Event, error) {
	return r.events[employeeID], nil
}

func (r *fakeCompensationRepo) UpdateEventStructure(_ context.Context, _ string, _ compensation.Snapshot) error {
	return nil
}

func (r *fakeCompensationRepo) DeleteEvent(_ context.Context, _ string) error {
	return nil
}

func (r *fakeCompensationRepo) HasEventOnDate(_ context.Context, _ string, _ time.Time) (bool, error) {
	return false, nil
}

type fakeOrganizationRepo struct{}

func (fakeOrganizationRepo) Get(_ context.Context) (organization.Organization, error) {
	return organization.Organization{ID: "org-1", Name: "AMETIS RH"}, nil
}

// ========== SETUP ==========

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Three employees: Aka enrolled and senior, Zadi hired during the report
// year and not enrolled, Yao long gone.
func newTestService(t *testing.T) report.ReportService {
	t.Helper()

	departed := day(2023, time.June, 30)
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-a", Matricule: "M-0001", FullName: "Aka Brou", HireDate: day(2015, time.January, 1)},
		{ID: "emp-z", Matricule: "M-0002", FullName: "Zadi Leon", HireDate: day(2024, time.March, 10)},
		{ID: "emp-y", Matricule: "M-0003", FullName: "Yao Kan", HireDate: day(2010, time.January, 1), DepartureDate: &departed},
	}}

	compensationRepo := &fakeCompensationRepo{
		baselines: map[string]compensation.Baseline{
			"emp-a": {EmployeeID: "emp-a", Snapshot: compensation.Snapshot{BaseSalary: dec(500000), CNPSEnrolled: true}},
			"emp-z": {EmployeeID: "emp-z", Snapshot: compensation.Snapshot{BaseSalary: dec(300000)}},
			"emp-y": {EmployeeID: "emp-y", Snapshot: compensation.Snapshot{BaseSalary: dec(100000), CNPSEnrolled: true}},
		},
		events: map[string][]compensation.Event{},
	}

	return NewReportService(employeeRepo, compensationRepo, fakeOrganizationRepo{}, 4)
}

// ========== TESTS ==========

func TestGenerateAnnualDeclaration(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	result, err := svc.GenerateAnnualDeclaration(ctx, 2024)
	require.NoError(t, err)

	assert.Equal(t, "AMETIS RH", result.OrganizationName)
	assert.Equal(t, 2024, result.Year)
	require.Len(t, result.Rows, 2, "departed employees are excluded")

	// Rows come back sorted by name.
	aka, zadi := result.Rows[0], result.Rows[1]
	assert.Equal(t, "Aka Brou", aka.FullName)
	assert.Equal(t, "Zadi Leon", zadi.FullName)

	t.Run("senior enrolled employee", func(t *testing.T) {
		// 9 years of service all year: gross = 500 000 + 9% = 545 000.
		for m := 0; m < 12; m++ {
			assert.True(t, aka.MonthlyGross[m].Equal(dec(545000)), "month %d = %s", m+1, aka.MonthlyGross[m])
		}
		assert.True(t, aka.YearEndBonus.Equal(dec(375000)))
		assert.True(t, aka.TotalGross.Equal(dec(6915000)))
		// 6.3% over the unrounded total, rounded once.
		assert.True(t, aka.TotalContribution.Equal(dec(435645)), "contribution = %s", aka.TotalContribution)
		assert.True(t, aka.CNPSEnrolled)
	})

	t.Run("employee hired during the year", func(t *testing.T) {
		assert.True(t, zadi.MonthlyGross[0].IsZero(), "January precedes the hire date")
		assert.True(t, zadi.MonthlyGross[1].IsZero())
		for m := 2; m < 12; m++ {
			assert.True(t, zadi.MonthlyGross[m].Equal(dec(300000)), "month %d", m+1)
		}
		assert.True(t, zadi.YearEndBonus.Equal(dec(225000)))
		assert.True(t, zadi.TotalGross.Equal(dec(3225000)))
		assert.True(t, zadi.TotalContribution.IsZero(), "not enrolled")
	})

	t.Run("totals equal the sum of the rows", func(t *testing.T) {
		assert.True(t, result.Totals.TotalGross.Equal(dec(10140000)))
		assert.True(t, result.Totals.YearEndBonus.Equal(dec(600000)))
		assert.True(t, result.Totals.TotalContribution.Equal(dec(435645)))
		for m := 0; m < 12; m++ {
			expected := aka.MonthlyGross[m].Add(zadi.MonthlyGross[m])
			assert.True(t, result.Totals.MonthlyGross[m].Equal(expected), "month %d", m+1)
		}
	})
}

func TestGenerateAnnualDeclarationEmptyWorkforce(t *testing.T) {
	svc := NewReportService(
		&fakeEmployeeRepo{},
		&fakeCompensationRepo{baselines: map[string]compensation.Baseline{}, events: map[string][]compensation.Event{}},
		fakeOrganizationRepo{},
		4,
	)

	result, err := svc.GenerateAnnualDeclaration(context.Background(), 2024)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.True(t, result.Totals.TotalGross.IsZero())
	assert.True(t, result.Totals.TotalContribution.IsZero())
}

func TestGenerateAnnualDeclarationInvalidYear(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GenerateAnnualDeclaration(context.Background(), 0)
	assert.ErrorIs(t, err, report.ErrInvalidYear)
}

func TestGenerateNominativeReport(t *testing.T) {
	ctx := context.Background()

	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-n", Matricule: "M-0100", FullName: "N'Guessan Ama", HireDate: day(2024, time.March, 20)},
	}}
	compensationRepo := &fakeCompensationRepo{
		baselines: map[string]compensation.Baseline{
			"emp-n": {EmployeeID: "emp-n", Snapshot: compensation.Snapshot{BaseSalary: dec(400000)}},
		},
		events: map[string][]compensation.Event{
			"emp-n": {{
				ID:             "event-1",
				EmployeeID:     "emp-n",
				Type:           compensation.EventTypePromotion,
				EffectiveDate:  day(2024, time.July, 1),
				NewStructure:   compensation.Snapshot{BaseSalary: dec(400000)},
				PriorStructure: compensation.Snapshot{BaseSalary: dec(300000)},
			}},
		},
	}
	svc := NewReportService(employeeRepo, compensationRepo, fakeOrganizationRepo{}, 4)

	result, err := svc.GenerateNominativeReport(ctx, "emp-n", 2024, 2025)
	require.NoError(t, err)

	assert.Equal(t, "N'Guessan Ama", result.FullName)
	require.Len(t, result.Years, 2)

	t.Run("hire year counts months from the first 15th after hiring", func(t *testing.T) {
		y := result.Years[0]
		assert.Equal(t, 2024, y.Year)
		assert.True(t, y.MonthlyGross[2].IsZero(), "March 15 precedes the March 20 hire")
		// April through June run on the pre-event structure.
		for m := 3; m < 6; m++ {
			assert.True(t, y.MonthlyGross[m].Equal(dec(300000)), "month %d = %s", m+1, y.MonthlyGross[m])
		}
		for m := 6; m < 12; m++ {
			assert.True(t, y.MonthlyGross[m].Equal(dec(400000)), "month %d = %s", m+1, y.MonthlyGross[m])
		}
		assert.True(t, y.Total.Equal(dec(3300000)), "total = %s", y.Total)
	})

	t.Run("full year on the post-event structure", func(t *testing.T) {
		y := result.Years[1]
		assert.Equal(t, 2025, y.Year)
		assert.True(t, y.Total.Equal(dec(4800000)))
	})

	t.Run("grand total sums the years", func(t *testing.T) {
		assert.True(t, result.GrandTotal.Equal(dec(8100000)))
	})
}

func TestGenerateNominativeReportInvalidRange(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GenerateNominativeReport(context.Background(), "emp-a", 2025, 2024)
	assert.ErrorIs(t, err, report.ErrInvalidRange)
}

func TestGenerateNominativeReportUnknownEmployee(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GenerateNominativeReport(context.Background(), "emp-404", 2024, 2024)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
