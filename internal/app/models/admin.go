package models

// Admin is a dashboard account
type Admin struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
}

// DashboardMetrics aggregates the counters shown on the admin landing page
type DashboardMetrics struct {
	TotalEmployees       int64 `json:"totalEmployees"`
	PendingLeaveRequests int64 `json:"pendingLeaveRequests"`
	TotalDepartments     int64 `json:"totalDepartments"`
	TotalTasks           int64 `json:"totalTasks"`
}
