package payslip

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid payslip date")
	ErrInfeasibleTarget = errors.New("target net pay is too low to cover fixed indemnities")
)
