package models

// TaskStatus enumerates the lifecycle states of a work allocation
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ValidTaskStatus reports whether s is one of the known task states
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is a unit of work allocated to a single employee
type Task struct {
	ID          int64      `json:"id"`
	EmployeeID  int64      `json:"employee_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    string     `json:"deadline"`
	Priority    string     `json:"priority"`
	Status      TaskStatus `json:"status"`
}

// TaskWithEmployee is the row shape of the task board listing
type TaskWithEmployee struct {
	TaskID       int64      `json:"taskId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Deadline     string     `json:"deadline"`
	Priority     string     `json:"priority"`
	Status       TaskStatus `json:"status"`
	EmployeeName string     `json:"employee_name"`
}
