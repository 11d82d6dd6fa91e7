package dto

// ReviewDecisionRequest carries the approved/rejected decision for a leave
// request or a feedback entry
type ReviewDecisionRequest struct {
	Status string `json:"status" binding:"required"`
}

// FeedbackSolutionRequest attaches a free-text solution to a feedback entry
type FeedbackSolutionRequest struct {
	Solution string `json:"solution" binding:"required"`
}
