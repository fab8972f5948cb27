package payslip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/domain/employee"
	"github.com/ametis-rh/paie-backend-go/internal/domain/organization"
	"github.com/ametis-rh/paie-backend-go/internal/domain/payslip"
	"github.com/ametis-rh/paie-backend-go/internal/pkg/validator"
)

type PayslipServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	compensationRepo compensation.CompensationRepository
	organizationRepo organization.OrganizationRepository
}

func NewPayslipService(
	employeeRepo employee.EmployeeRepository,
	compensationRepo compensation.CompensationRepository,
	organizationRepo organization.OrganizationRepository,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		employeeRepo:     employeeRepo,
		compensationRepo: compensationRepo,
		organizationRepo: organizationRepo,
	}
}

func (s *PayslipServiceImpl) GetPayslip(ctx context.Context, employeeID, date string) (payslip.PayslipResponse, error) {
	targetDate, ok := validator.IsValidDate(date)
	if !ok {
		return payslip.PayslipResponse{}, fmt.Errorf("%w: %q", payslip.ErrInvalidDate, date)
	}

	emp, snap, err := s.resolveStructure(ctx, employeeID, targetDate)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	slip := Compute(emp, snap, targetDate)

	return payslip.ToResponse(slip, s.organizationName(ctx)), nil
}

func (s *PayslipServiceImpl) SimulateBaseSalaryForNet(ctx context.Context, req payslip.SimulateNetRequest) (payslip.SimulationResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.SimulationResponse{}, err
	}

	targetDate, ok := validator.IsValidDate(req.Date)
	if !ok {
		return payslip.SimulationResponse{}, fmt.Errorf("%w: %q", payslip.ErrInvalidDate, req.Date)
	}

	emp, snap, err := s.resolveStructure(ctx, req.EmployeeID, targetDate)
	if err != nil {
		return payslip.SimulationResponse{}, err
	}

	solvedBase, err := SolveBaseForNet(snap, emp.HireDate, targetDate, req.NetTarget)
	if err != nil {
		return payslip.SimulationResponse{}, err
	}

	return payslip.SimulationResponse{
		EmployeeID:    emp.ID,
		Date:          targetDate.Format("2006-01-02"),
		NetTarget:     req.NetTarget,
		SolvedBase:    solvedBase,
		SeniorityRate: SeniorityRate(SeniorityYears(emp.HireDate, targetDate)),
	}, nil
}

// resolveStructure loads the employee, the ledger and the baseline, and
// resolves the structure in force on the target date. An employee without a
// baseline row resolves from a zero structure.
func (s *PayslipServiceImpl) resolveStructure(ctx context.Context, employeeID string, targetDate time.Time) (employee.Employee, compensation.Snapshot, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, compensation.Snapshot{}, err
	}

	baseline, err := s.compensationRepo.GetBaseline(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, compensation.ErrBaselineNotFound) {
			return employee.Employee{}, compensation.Snapshot{}, err
		}
		baseline = compensation.Baseline{EmployeeID: employeeID}
	}

	events, err := s.compensationRepo.ListEvents(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, compensation.Snapshot{}, err
	}

	return emp, compensation.ResolveAt(baseline, events, targetDate), nil
}

func (s *PayslipServiceImpl) organizationName(ctx context.Context) string {
	org, err := s.organizationRepo.Get(ctx)
	if err != nil {
		return ""
	}
	return org.Name
}
