package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/apperrors"
)

// ReviewService handles the admin review queues for leave requests and
// employee feedback. Decisions are restricted to the approved/rejected
// literals; anything else is rejected before touching the database.
type ReviewService interface {
	GetAllLeaveRequests(ctx context.Context) ([]*models.LeaveRequest, error)
	ReviewLeaveRequest(ctx context.Context, id int64, status string) error
	GetAllFeedback(ctx context.Context) ([]*models.Feedback, error)
	ReviewFeedback(ctx context.Context, id int64, status string) error
	ResolveFeedback(ctx context.Context, id int64, solution string) error
}

type leaveRequestStore interface {
	GetAll(ctx context.Context) ([]*models.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReviewStatus) error
}

type feedbackStore interface {
	GetAll(ctx context.Context) ([]*models.Feedback, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReviewStatus) error
	UpdateSolution(ctx context.Context, id int64, solution string) error
}

type reviewService struct {
	leaveRepo    leaveRequestStore
	feedbackRepo feedbackStore
}

// NewReviewService creates a new review service instance
func NewReviewService(leaveRepo leaveRequestStore, feedbackRepo feedbackStore) ReviewService {
	return &reviewService{
		leaveRepo:    leaveRepo,
		feedbackRepo: feedbackRepo,
	}
}

// GetAllLeaveRequests retrieves every leave request regardless of status
func (s *reviewService) GetAllLeaveRequests(ctx context.Context) ([]*models.LeaveRequest, error) {
	requests, err := s.leaveRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving leave requests: %w", err)
	}
	return requests, nil
}

// ReviewLeaveRequest applies an approved/rejected decision to a leave request
func (s *reviewService) ReviewLeaveRequest(ctx context.Context, id int64, status string) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid leave request ID")
	}
	if !models.ValidReviewDecision(status) {
		return apperrors.ErrInvalidReviewStatus
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, models.ReviewStatus(status)); err != nil {
		if errors.Is(err, repositories.ErrLeaveRequestNotFound) {
			return apperrors.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("error updating leave request status: %w", err)
	}

	return nil
}

// GetAllFeedback retrieves every feedback entry regardless of status
func (s *reviewService) GetAllFeedback(ctx context.Context) ([]*models.Feedback, error) {
	feedback, err := s.feedbackRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return feedback, nil
}

// ReviewFeedback applies an approved/rejected decision to a feedback entry
func (s *reviewService) ReviewFeedback(ctx context.Context, id int64, status string) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid feedback ID")
	}
	if !models.ValidReviewDecision(status) {
		return apperrors.ErrInvalidReviewStatus
	}

	if err := s.feedbackRepo.UpdateStatus(ctx, id, models.ReviewStatus(status)); err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return apperrors.ErrFeedbackNotFound
		}
		return fmt.Errorf("error updating feedback status: %w", err)
	}

	return nil
}

// ResolveFeedback records the admin's written solution on a feedback entry
func (s *reviewService) ResolveFeedback(ctx context.Context, id int64, solution string) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid feedback ID")
	}
	if strings.TrimSpace(solution) == "" {
		return apperrors.NewValidationError("solution cannot be empty")
	}

	if err := s.feedbackRepo.UpdateSolution(ctx, id, solution); err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return apperrors.ErrFeedbackNotFound
		}
		return fmt.Errorf("error saving feedback solution: %w", err)
	}

	return nil
}
