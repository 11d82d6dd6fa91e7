package models

// Employee represents a member of staff assigned to a department
type Employee struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"-"` // bcrypt hash, never serialized
	Role           string `json:"role"`
	Experience     int    `json:"experience"`
	DepartmentID   int64  `json:"department_id"`
	Salary         string `json:"salary"`
	Degree         string `json:"degree"`
	University     string `json:"university"`
	GraduationYear string `json:"graduation_year"`
	Skills         string `json:"skills"`
	Certifications string `json:"certifications"`
	MobileNo       string `json:"mobile_no"`
	Address        string `json:"address"`
	Resume         string `json:"resume,omitempty"`
	ProfileImg     string `json:"profile_img,omitempty"`
}

// EmployeeSummary is the row shape of the employee roster listing
type EmployeeSummary struct {
	EmployeeID int64  `json:"employeeId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}
