package models

// ReviewStatus enumerates the admin review decisions. Rows start as pending
// and can only be moved to approved or rejected.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// ValidReviewDecision reports whether s is an acceptable review update.
// Only the two terminal literals are accepted; pending is the implicit
// initial state and cannot be set.
func ValidReviewDecision(s string) bool {
	return ReviewStatus(s) == ReviewStatusApproved || ReviewStatus(s) == ReviewStatusRejected
}

// LeaveRequest is an employee absence request awaiting admin review
type LeaveRequest struct {
	ID         int64        `json:"id"`
	EmployeeID int64        `json:"employee_id"`
	Status     ReviewStatus `json:"status"`
}

// Feedback is an employee-submitted issue with an optional admin solution
type Feedback struct {
	ID         int64        `json:"id"`
	EmployeeID int64        `json:"employee_id"`
	Status     ReviewStatus `json:"status"`
	Solution   string       `json:"solution"`
}
