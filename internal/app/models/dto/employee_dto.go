package dto

// AddEmployeeRequest is the multipart form for employee creation. Resume and
// profile image files ride alongside under the "resume" and "profile_img"
// field names.
type AddEmployeeRequest struct {
	Name           string `form:"name" binding:"required"`
	Email          string `form:"email" binding:"required"`
	Password       string `form:"password" binding:"required"`
	Role           string `form:"role" binding:"required"`
	Experience     int    `form:"experience"`
	DepartmentID   int64  `form:"department_id" binding:"required"`
	Salary         string `form:"salary" binding:"required"`
	Degree         string `form:"degree" binding:"required"`
	University     string `form:"university" binding:"required"`
	GraduationYear string `form:"graduation_year" binding:"required"`
	Skills         string `form:"skills"`
	Certifications string `form:"certifications"`
	MobileNo       string `form:"mobile_no" binding:"required"`
	Address        string `form:"address" binding:"required"`
}

// EditEmployeeRequest is the full-field employee update. Password is optional:
// when empty the stored hash is kept, otherwise the new value is rehashed.
type EditEmployeeRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password"`
	Role           string `json:"role" binding:"required"`
	Experience     int    `json:"experience"`
	DepartmentID   int64  `json:"department_id" binding:"required"`
	Salary         string `json:"salary" binding:"required"`
	Degree         string `json:"degree"`
	University     string `json:"university"`
	GraduationYear string `json:"graduation_year"`
	Skills         string `json:"skills"`
	Certifications string `json:"certifications"`
	MobileNo       string `json:"mobile_no"`
	Address        string `json:"address"`
}
