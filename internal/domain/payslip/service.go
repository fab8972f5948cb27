package payslip

import "context"

type PayslipService interface {
	// GetPayslip computes the payslip for an employee on a given date. Dates
	// outside the employment window yield a valid all-zero payslip.
	GetPayslip(ctx context.Context, employeeID, date string) (PayslipResponse, error)

	// SimulateBaseSalaryForNet back-solves the base salary that produces the
	// target net pay, holding every indemnity fixed. The stored structure is
	// never modified.
	SimulateBaseSalaryForNet(ctx context.Context, req SimulateNetRequest) (SimulationResponse, error)
}
