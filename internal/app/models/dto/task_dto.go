package dto

// AllocateWorkRequest assigns a task to an employee
type AllocateWorkRequest struct {
	EmployeeID  int64  `json:"employee_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline" binding:"required"`
	Priority    string `json:"priority"`
}

// EditTaskRequest overwrites the four editable task fields; status is
// deliberately absent and untouched by edits
type EditTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Deadline    string `json:"deadline" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
}

// UpdateTaskStatusRequest moves a task through its lifecycle
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
