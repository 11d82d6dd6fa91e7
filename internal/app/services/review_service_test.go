package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/apperrors"
)

type stubLeaveStore struct {
	all           []*models.LeaveRequest
	updatedStatus models.ReviewStatus
	updateErr     error
	updateCalls   int
}

func (s *stubLeaveStore) GetAll(ctx context.Context) ([]*models.LeaveRequest, error) {
	return s.all, nil
}

func (s *stubLeaveStore) UpdateStatus(ctx context.Context, id int64, status models.ReviewStatus) error {
	s.updateCalls++
	s.updatedStatus = status
	return s.updateErr
}

type stubFeedbackStore struct {
	all           []*models.Feedback
	updatedStatus models.ReviewStatus
	solution      string
	updateErr     error
	solutionErr   error
	updateCalls   int
}

func (s *stubFeedbackStore) GetAll(ctx context.Context) ([]*models.Feedback, error) {
	return s.all, nil
}

func (s *stubFeedbackStore) UpdateStatus(ctx context.Context, id int64, status models.ReviewStatus) error {
	s.updateCalls++
	s.updatedStatus = status
	return s.updateErr
}

func (s *stubFeedbackStore) UpdateSolution(ctx context.Context, id int64, solution string) error {
	s.solution = solution
	return s.solutionErr
}

func TestReviewLeaveRequestApproved(t *testing.T) {
	leaves := &stubLeaveStore{}
	svc := NewReviewService(leaves, &stubFeedbackStore{})

	err := svc.ReviewLeaveRequest(context.Background(), 4, "approved")
	require.NoError(t, err)

	assert.Equal(t, models.ReviewStatusApproved, leaves.updatedStatus)
}

func TestReviewLeaveRequestRejectsOtherLiterals(t *testing.T) {
	leaves := &stubLeaveStore{}
	svc := NewReviewService(leaves, &stubFeedbackStore{})

	for _, status := range []string{"maybe", "pending", "APPROVED", ""} {
		err := svc.ReviewLeaveRequest(context.Background(), 4, status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidReviewStatus, "status %q must be rejected", status)
	}

	assert.Zero(t, leaves.updateCalls, "invalid decisions must never reach the store")
}

func TestReviewLeaveRequestNotFound(t *testing.T) {
	leaves := &stubLeaveStore{updateErr: repositories.ErrLeaveRequestNotFound}
	svc := NewReviewService(leaves, &stubFeedbackStore{})

	err := svc.ReviewLeaveRequest(context.Background(), 999, "rejected")
	assert.ErrorIs(t, err, apperrors.ErrLeaveRequestNotFound)
}

func TestReviewFeedbackRejected(t *testing.T) {
	feedback := &stubFeedbackStore{}
	svc := NewReviewService(&stubLeaveStore{}, feedback)

	err := svc.ReviewFeedback(context.Background(), 2, "rejected")
	require.NoError(t, err)

	assert.Equal(t, models.ReviewStatusRejected, feedback.updatedStatus)
}

func TestReviewFeedbackInvalidStatus(t *testing.T) {
	feedback := &stubFeedbackStore{}
	svc := NewReviewService(&stubLeaveStore{}, feedback)

	err := svc.ReviewFeedback(context.Background(), 2, "resolved")
	assert.ErrorIs(t, err, apperrors.ErrInvalidReviewStatus)
	assert.Zero(t, feedback.updateCalls)
}

func TestResolveFeedback(t *testing.T) {
	feedback := &stubFeedbackStore{}
	svc := NewReviewService(&stubLeaveStore{}, feedback)

	err := svc.ResolveFeedback(context.Background(), 2, "Restarted the build agent")
	require.NoError(t, err)

	assert.Equal(t, "Restarted the build agent", feedback.solution)
}

func TestResolveFeedbackEmptySolution(t *testing.T) {
	feedback := &stubFeedbackStore{}
	svc := NewReviewService(&stubLeaveStore{}, feedback)

	err := svc.ResolveFeedback(context.Background(), 2, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, feedback.solution)
}
