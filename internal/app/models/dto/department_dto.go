package dto

// AddDepartmentRequest creates a department with a unique name
type AddDepartmentRequest struct {
	Department string `json:"department" binding:"required"`
}
