package response

import (
	"errors"
	"net/http"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/domain/employee"
	"github.com/ametis-rh/paie-backend-go/internal/domain/organization"
	"github.com/ametis-rh/paie-backend-go/internal/domain/payslip"
	"github.com/ametis-rh/paie-backend-go/internal/domain/report"
	"github.com/ametis-rh/paie-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Compensation domain errors
	case errors.Is(err, compensation.ErrEventNotFound):
		NotFound(w, "Compensation event not found")
	case errors.Is(err, compensation.ErrBaselineNotFound):
		NotFound(w, "Compensation baseline not found")
	case errors.Is(err, compensation.ErrDuplicateEffectiveDate):
		Conflict(w, "An event already exists on this effective date")
	case errors.Is(err, compensation.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, compensation.ErrInvalidEventType):
		BadRequest(w, "Invalid event type", nil)

	// Payslip domain errors
	case errors.Is(err, payslip.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, payslip.ErrInfeasibleTarget):
		UnprocessableEntity(w, "INFEASIBLE_TARGET", "No non-negative base salary can reach this net target")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidYear):
		BadRequest(w, "Invalid year", nil)
	case errors.Is(err, report.ErrInvalidRange):
		BadRequest(w, "Start year must not be after end year", nil)

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
