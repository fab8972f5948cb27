package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one labelled earning or deduction on a payslip.
type Line struct {
	Label  string
	Amount decimal.Decimal
}

// ContributionLine is one employer contribution, reported separately and
// never deducted from the employee's net.
type ContributionLine struct {
	Label  string
	Base   decimal.Decimal
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

type Totals struct {
	GrossTaxable        decimal.Decimal
	NonTaxableTransport decimal.Decimal
	NetPay              decimal.Decimal
	NetPayInWords       string
}

// Payslip is a transient projection: recomputed on every request, never
// stored.
type Payslip struct {
	EmployeeID            string
	Matricule             string
	FullName              string
	Date                  time.Time
	Earnings              []Line
	Deductions            []Line
	EmployerContributions []ContributionLine
	Totals                Totals
}
