package payslip

import (
	"github.com/ametis-rh/paie-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LineResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type ContributionLineResponse struct {
	Label  string          `json:"label"`
	Base   decimal.Decimal `json:"base"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

type TotalsResponse struct {
	GrossTaxable        decimal.Decimal `json:"gross_taxable"`
	NonTaxableTransport decimal.Decimal `json:"non_taxable_transport"`
	NetPay              decimal.Decimal `json:"net_pay"`
	NetPayInWords       string          `json:"net_pay_in_words"`
}

type PayslipResponse struct {
	OrganizationName      string                     `json:"organization_name"`
	EmployeeID            string                     `json:"employee_id"`
	Matricule             string                     `json:"matricule"`
	FullName              string                     `json:"full_name"`
	Date                  string                     `json:"date"`
	Earnings              []LineResponse             `json:"earnings"`
	Deductions            []LineResponse             `json:"deductions"`
	EmployerContributions []ContributionLineResponse `json:"employer_contributions"`
	Totals                TotalsResponse             `json:"totals"`
}

func ToResponse(p Payslip, organizationName string) PayslipResponse {
	earnings := make([]LineResponse, 0, len(p.Earnings))
	for _, l := range p.Earnings {
		earnings = append(earnings, LineResponse{Label: l.Label, Amount: l.Amount})
	}
	deductions := make([]LineResponse, 0, len(p.Deductions))
	for _, l := range p.Deductions {
		deductions = append(deductions, LineResponse{Label: l.Label, Amount: l.Amount})
	}
	contributions := make([]ContributionLineResponse, 0, len(p.EmployerContributions))
	for _, l := range p.EmployerContributions {
		contributions = append(contributions, ContributionLineResponse{
			Label:  l.Label,
			Base:   l.Base,
			Rate:   l.Rate,
			Amount: l.Amount,
		})
	}

	return PayslipResponse{
		OrganizationName:      organizationName,
		EmployeeID:            p.EmployeeID,
		Matricule:             p.Matricule,
		FullName:              p.FullName,
		Date:                  p.Date.Format("2006-01-02"),
		Earnings:              earnings,
		Deductions:            deductions,
		EmployerContributions: contributions,
		Totals: TotalsResponse{
			GrossTaxable:        p.Totals.GrossTaxable,
			NonTaxableTransport: p.Totals.NonTaxableTransport,
			NetPay:              p.Totals.NetPay,
			NetPayInWords:       p.Totals.NetPayInWords,
		},
	}
}

type SimulateNetRequest struct {
	EmployeeID string          `json:"-"`
	Date       string          `json:"date"`
	NetTarget  decimal.Decimal `json:"net_target"`
}

func (r *SimulateNetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	}
	if r.NetTarget.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "net_target", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SimulationResponse is a recommendation only; applying it is the caller's
// decision, via a recorded compensation event with the seniority override
// cleared.
type SimulationResponse struct {
	EmployeeID    string          `json:"employee_id"`
	Date          string          `json:"date"`
	NetTarget     decimal.Decimal `json:"net_target"`
	SolvedBase    decimal.Decimal `json:"solved_base"`
	SeniorityRate int64           `json:"seniority_rate_percent"`
}
