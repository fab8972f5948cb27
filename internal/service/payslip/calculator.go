package payslip

import (
	"time"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/domain/employee"
	"github.com/ametis-rh/paie-backend-go/internal/domain/payslip"
	"github.com/ametis-rh/paie-backend-go/internal/pkg/numspell"
	"github.com/shopspring/decimal"
)

// Statutory CNPS rates over gross taxable pay.
var (
	cnpsEmployeeRate = decimal.New(63, -3)  // 6.3%
	cnpsEmployerRate = decimal.New(138, -3) // 13.8%
)

const (
	// The seniority bonus starts after two full years of service and its
	// rate is capped at 25%.
	seniorityThresholdYears = 2
	seniorityRateCap        = 25
)

var hundred = decimal.NewFromInt(100)

// Conventional year-end gratification: 75% of the December base salary.
var gratificationRate = decimal.New(75, -2)

// YearEndGratification computes the unrounded gratification from the base
// salary in force at year end.
func YearEndGratification(base decimal.Decimal) decimal.Decimal {
	return base.Mul(gratificationRate)
}

// SeniorityYears counts whole years of service between hire date and target
// date. Never negative.
func SeniorityYears(hireDate, targetDate time.Time) int {
	years := targetDate.Year() - hireDate.Year()
	if hireDate.AddDate(years, 0, 0).After(targetDate) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// SeniorityRate returns the bonus rate in percent for a given seniority.
func SeniorityRate(years int) int64 {
	if years < seniorityThresholdYears {
		return 0
	}
	if years > seniorityRateCap {
		return seniorityRateCap
	}
	return int64(years)
}

// SeniorityBonus computes the seniority bonus for a structure. A manual
// override always wins, threshold included.
func SeniorityBonus(s compensation.Snapshot, years int) decimal.Decimal {
	if s.SeniorityBonusOverride != nil {
		return *s.SeniorityBonusOverride
	}
	rate := SeniorityRate(years)
	if rate == 0 {
		return decimal.Zero
	}
	return s.BaseSalary.Mul(decimal.NewFromInt(rate)).Div(hundred)
}

// GrossTaxable is the "brut imposable": base salary + seniority bonus + the
// six taxable indemnities.
func GrossTaxable(s compensation.Snapshot, years int) decimal.Decimal {
	return s.BaseSalary.
		Add(SeniorityBonus(s, years)).
		Add(s.TaxableIndemnities())
}

// EmployeeContribution is the CNPS employee share over a gross amount,
// unrounded.
func EmployeeContribution(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(cnpsEmployeeRate)
}

// Compute builds the full payslip for one employee and structure on a target
// date. A date strictly outside the employment window yields a valid,
// all-zero payslip.
func Compute(emp employee.Employee, s compensation.Snapshot, targetDate time.Time) payslip.Payslip {
	if !emp.EmployedOn(targetDate) {
		s = compensation.Snapshot{}
	}

	years := SeniorityYears(emp.HireDate, targetDate)
	bonus := SeniorityBonus(s, years)
	gross := s.BaseSalary.Add(bonus).Add(s.TaxableIndemnities())

	employeeCNPS := decimal.Zero
	employerCNPS := decimal.Zero
	if s.CNPSEnrolled {
		employeeCNPS = gross.Mul(cnpsEmployeeRate)
		employerCNPS = gross.Mul(cnpsEmployerRate)
	}

	net := gross.Sub(employeeCNPS).Add(s.TransportNonTaxable)

	earnings := []payslip.Line{
		{Label: "Salaire de base", Amount: s.BaseSalary},
	}
	optional := []payslip.Line{
		{Label: "Prime d'ancienneté", Amount: bonus},
		{Label: "Indemnité de transport imposable", Amount: s.TransportTaxable},
		{Label: "Prime de sujétion", Amount: s.Subjection},
		{Label: "Indemnité de communication", Amount: s.Communication},
		{Label: "Indemnité de représentation", Amount: s.Representation},
		{Label: "Prime de responsabilité", Amount: s.Responsibility},
		{Label: "Indemnité de logement", Amount: s.Housing},
	}
	for _, l := range optional {
		if !l.Amount.IsZero() {
			earnings = append(earnings, l)
		}
	}

	deductions := []payslip.Line{
		{Label: "CNPS part salariale", Amount: employeeCNPS},
		// Income tax is outside this engine; the line stays at zero.
		{Label: "ITS", Amount: decimal.Zero},
	}

	var contributions []payslip.ContributionLine
	if s.CNPSEnrolled {
		contributions = append(contributions, payslip.ContributionLine{
			Label:  "CNPS part patronale",
			Base:   gross,
			Rate:   cnpsEmployerRate,
			Amount: employerCNPS,
		})
	}

	return payslip.Payslip{
		EmployeeID:            emp.ID,
		Matricule:             emp.Matricule,
		FullName:              emp.FullName,
		Date:                  targetDate,
		Earnings:              earnings,
		Deductions:            deductions,
		EmployerContributions: contributions,
		Totals: payslip.Totals{
			GrossTaxable:        gross,
			NonTaxableTransport: s.TransportNonTaxable,
			NetPay:              net,
			NetPayInWords:       numspell.Francs(net),
		},
	}
}
