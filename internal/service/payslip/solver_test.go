package payslip

import (
	"testing"

	"github.com/ametis-rh/paie-backend-go/internal/domain/payslip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveBaseForNet(t *testing.T) {
	emp, snap := testEmployee(t)
	target := date(t, "2024-06-15")

	t.Run("inverts the forward calculation", func(t *testing.T) {
		solved, err := SolveBaseForNet(snap, emp.HireDate, target, dec(639050))
		require.NoError(t, err)
		assert.True(t, solved.Equal(dec(500000)), "solved = %s", solved)
	})

	t.Run("round trip through Compute", func(t *testing.T) {
		netTarget := dec(720000)
		solved, err := SolveBaseForNet(snap, emp.HireDate, target, netTarget)
		require.NoError(t, err)

		snap.BaseSalary = solved
		slip := Compute(emp, snap, target)
		assert.True(t, slip.Totals.NetPay.Round(4).Equal(netTarget), "net = %s", slip.Totals.NetPay)
	})

	t.Run("not enrolled skips the contribution", func(t *testing.T) {
		s := snap
		s.CNPSEnrolled = false
		// net 680 000 = base 500 000 + bonus 50 000 + indemnities 100 000 + transport 30 000
		solved, err := SolveBaseForNet(s, emp.HireDate, target, dec(680000))
		require.NoError(t, err)
		assert.True(t, solved.Equal(dec(500000)), "solved = %s", solved)
	})

	t.Run("target below the fixed components is infeasible", func(t *testing.T) {
		_, err := SolveBaseForNet(snap, emp.HireDate, target, dec(30000))
		assert.ErrorIs(t, err, payslip.ErrInfeasibleTarget)
	})
}
