package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/staffhub/internal/app/models"
)

// Feedback error types
var (
	ErrFeedbackNotFound = errors.New("feedback not found")
)

// FeedbackRepository handles database operations for feedback entries
type FeedbackRepository struct {
	db Querier
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db Querier) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// GetAll retrieves all feedback entries
func (r *FeedbackRepository) GetAll(ctx context.Context) ([]*models.Feedback, error) {
	query := `
		SELECT id, employee_id, status, COALESCE(solution, '')
		FROM feedback
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.EmployeeID, &f.Status, &f.Solution); err != nil {
			return nil, err
		}
		entries = append(entries, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// UpdateStatus records the admin decision for a feedback entry
func (r *FeedbackRepository) UpdateStatus(ctx context.Context, id int64, status models.ReviewStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE feedback SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating feedback status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

// UpdateSolution attaches a solution text to a feedback entry
func (r *FeedbackRepository) UpdateSolution(ctx context.Context, id int64, solution string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE feedback SET solution = $1 WHERE id = $2`, solution, id)
	if err != nil {
		return fmt.Errorf("error updating feedback solution: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

// DeleteByEmployeeIDs deletes all feedback of the given employees
func (r *FeedbackRepository) DeleteByEmployeeIDs(ctx context.Context, q Querier, employeeIDs []int64) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	_, err := q.Exec(ctx, `DELETE FROM feedback WHERE employee_id = ANY($1)`, employeeIDs)
	if err != nil {
		return fmt.Errorf("error deleting feedback: %w", err)
	}
	return nil
}
