package employee

// EmployeeResponse is the directory view exposed over HTTP.
type EmployeeResponse struct {
	ID            string  `json:"id"`
	Matricule     string  `json:"matricule"`
	FullName      string  `json:"full_name"`
	JobTitle      *string `json:"job_title,omitempty"`
	HireDate      string  `json:"hire_date"`
	DepartureDate *string `json:"departure_date,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	var departure *string
	if e.DepartureDate != nil {
		str := e.DepartureDate.Format("2006-01-02")
		departure = &str
	}

	return EmployeeResponse{
		ID:            e.ID,
		Matricule:     e.Matricule,
		FullName:      e.FullName,
		JobTitle:      e.JobTitle,
		HireDate:      e.HireDate.Format("2006-01-02"),
		DepartureDate: departure,
	}
}
