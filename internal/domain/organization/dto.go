package organization

type OrganizationResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Acronym          *string `json:"acronym"`
	Address          *string `json:"address"`
	City             *string `json:"city"`
	LogoURL          *string `json:"logo_url"`
	PayslipTitle     *string `json:"payslip_title"`
	DeclarationTitle *string `json:"declaration_title"`
}

func ToResponse(o Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:               o.ID,
		Name:             o.Name,
		Acronym:          o.Acronym,
		Address:          o.Address,
		City:             o.City,
		LogoURL:          o.LogoURL,
		PayslipTitle:     o.PayslipTitle,
		DeclarationTitle: o.DeclarationTitle,
	}
}
