package employee

type CreateEmployeeRequest struct {
	Name             string  `json:"name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            string  `json:"phone"`
	Role             string  `json:"role" binding:"required"`
	Department       string  `json:"department" binding:"required"`
	Salary           float64 `json:"salary"`
	JoiningDate      string  `json:"joining_date" binding:"required"`
	Address          string  `json:"address"`
	EmergencyContact string  `json:"emergency_contact"`
	PAN              string  `json:"pan"`
	Aadhar           string  `json:"aadhar"`
	BankName         string  `json:"bank_name"`
	BankAccount      string  `json:"bank_account"`
	BankIFSC         string  `json:"bank_ifsc"`
}

type UpdateEmployeeRequest struct {
	Name             string  `json:"name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            string  `json:"phone"`
	Role             string  `json:"role" binding:"required"`
	Department       string  `json:"department" binding:"required"`
	Salary           float64 `json:"salary"`
	JoiningDate      string  `json:"joining_date" binding:"required"`
	Address          string  `json:"address"`
	EmergencyContact string  `json:"emergency_contact"`
	PAN              string  `json:"pan"`
	Aadhar           string  `json:"aadhar"`
	BankName         string  `json:"bank_name"`
	BankAccount      string  `json:"bank_account"`
	BankIFSC         string  `json:"bank_ifsc"`
}

// ListFilter narrows the directory view; all fields optional.
type ListFilter struct {
	Department string `form:"department"`
	Role       string `form:"role"`
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone,omitempty"`
	Role             string  `json:"role"`
	Department       string  `json:"department"`
	Salary           float64 `json:"salary"`
	JoiningDate      string  `json:"joining_date"`
	Tenure           string  `json:"tenure"`
	Address          string  `json:"address,omitempty"`
	EmergencyContact string  `json:"emergency_contact,omitempty"`
	PAN              string  `json:"pan,omitempty"`
	Aadhar           string  `json:"aadhar,omitempty"`
	BankName         string  `json:"bank_name,omitempty"`
	BankAccount      string  `json:"bank_account,omitempty"`
	BankIFSC         string  `json:"bank_ifsc,omitempty"`
	IsActive         bool    `json:"is_active"`
}

// Option is the lightweight id/name pair used by dropdowns across the portal.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DirectoryFacets are the distinct department/role values for filters.
type DirectoryFacets struct {
	Departments []string `json:"departments"`
	Roles       []string `json:"roles"`
}
