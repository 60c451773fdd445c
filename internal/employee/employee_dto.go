package employee

// BirthDate travels as a dd-MMM-yyyy string on the wire and is parsed in
// the service layer; the validator checks the format first.

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,min=1,max=10"`
	FullName   string `json:"fullName" validate:"required,min=1,max=50"`
	BirthDate  string `json:"birthDate" validate:"required,dateformat"`
}

// UpdateEmployeeRequest carries no id: the target comes from the path and
// is preserved on update.
type UpdateEmployeeRequest struct {
	FullName  string `json:"fullName" validate:"required,min=1,max=50"`
	BirthDate string `json:"birthDate" validate:"required,dateformat"`
}

type EmployeeResponse struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	BirthDate  string `json:"birthDate"`
}
