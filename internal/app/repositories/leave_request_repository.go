package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/staffhub/internal/app/models"
)

// Leave request error types
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
)

// LeaveRequestRepository handles database operations for leave requests
type LeaveRequestRepository struct {
	db Querier
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db Querier) *LeaveRequestRepository {
	return &LeaveRequestRepository{
		db: db,
	}
}

// GetAll retrieves all leave requests
func (r *LeaveRequestRepository) GetAll(ctx context.Context) ([]*models.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, status
		FROM leave_requests
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.LeaveRequest
	for rows.Next() {
		var lr models.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.Status); err != nil {
			return nil, err
		}
		requests = append(requests, &lr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus records the admin decision for a leave request
func (r *LeaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.ReviewStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE leave_requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating leave request status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrLeaveRequestNotFound
	}

	return nil
}

// DeleteByEmployeeIDs deletes all leave requests of the given employees
func (r *LeaveRequestRepository) DeleteByEmployeeIDs(ctx context.Context, q Querier, employeeIDs []int64) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	_, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE employee_id = ANY($1)`, employeeIDs)
	if err != nil {
		return fmt.Errorf("error deleting leave requests: %w", err)
	}
	return nil
}

// CountPending returns the number of leave requests still awaiting review
func (r *LeaveRequestRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`,
		models.ReviewStatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending leave requests: %w", err)
	}
	return count, nil
}
