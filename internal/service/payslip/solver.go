package payslip

import (
	"time"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// SolveBaseForNet inverts the forward calculation: given a target net pay
// and a structure whose indemnities, non-taxable transport, CNPS flag and
// seniority rate are held fixed, it returns the base salary that produces
// the target.
//
//	tempGross  = (netTarget - transportNonTaxable) / (1 - cnpsRate)
//	solvedBase = (tempGross - otherIndemnities) / (1 + seniorityRate)
//
// The seniority rate comes from years of service, never from a manual
// override: the recommendation is meant to be applied with the override
// cleared so the bonus is recomputed from the new base.
func SolveBaseForNet(s compensation.Snapshot, hireDate, targetDate time.Time, netTarget decimal.Decimal) (decimal.Decimal, error) {
	cnpsRate := decimal.Zero
	if s.CNPSEnrolled {
		cnpsRate = cnpsEmployeeRate
	}

	primeRate := decimal.NewFromInt(SeniorityRate(SeniorityYears(hireDate, targetDate))).Div(hundred)

	tempGross := netTarget.Sub(s.TransportNonTaxable).Div(one.Sub(cnpsRate))
	solvedBase := tempGross.Sub(s.TaxableIndemnities()).Div(one.Add(primeRate))

	if solvedBase.IsNegative() {
		return decimal.Decimal{}, payslip.ErrInfeasibleTarget
	}
	return solvedBase, nil
}
