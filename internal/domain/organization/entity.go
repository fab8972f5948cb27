package organization

import "time"

// Organization carries the branding fields the render layer stamps on
// payslips and reports. They pass through this service untouched.
type Organization struct {
	ID               string
	Name             string
	Acronym          *string
	Address          *string
	City             *string
	LogoURL          *string
	PayslipTitle     *string
	DeclarationTitle *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
