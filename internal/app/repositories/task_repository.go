package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emre/staffhub/internal/app/models"
)

// Task error types
var (
	ErrTaskNotFound = errors.New("task not found")
)

// TaskRepository handles database operations for work allocations
type TaskRepository struct {
	db Querier
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db Querier) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// Create inserts a new task and fills in the generated id
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO work_allocation (employee_id, title, description, deadline, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		task.EmployeeID,
		task.Title,
		task.Description,
		task.Deadline,
		task.Priority,
		task.Status,
	).Scan(&task.ID)

	if err != nil {
		return fmt.Errorf("error creating task: %w", err)
	}

	return nil
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `
		SELECT id, employee_id, title, description, deadline, priority, status
		FROM work_allocation
		WHERE id = $1
	`

	var task models.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.EmployeeID,
		&task.Title,
		&task.Description,
		&task.Deadline,
		&task.Priority,
		&task.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("error retrieving task: %w", err)
	}

	return &task, nil
}

// GetAllWithEmployee retrieves the task board joined with employee names
func (r *TaskRepository) GetAllWithEmployee(ctx context.Context) ([]*models.TaskWithEmployee, error) {
	query := `
		SELECT work_allocation.id, work_allocation.title, work_allocation.description,
			work_allocation.deadline, work_allocation.priority, work_allocation.status,
			employees.name
		FROM work_allocation
		JOIN employees ON work_allocation.employee_id = employees.id
		ORDER BY work_allocation.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.TaskWithEmployee
	for rows.Next() {
		var t models.TaskWithEmployee
		if err := rows.Scan(
			&t.TaskID,
			&t.Title,
			&t.Description,
			&t.Deadline,
			&t.Priority,
			&t.Status,
			&t.EmployeeName,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateFields overwrites the four editable task fields, leaving status alone
func (r *TaskRepository) UpdateFields(ctx context.Context, id int64, title, description, deadline, priority string) error {
	query := `
		UPDATE work_allocation
		SET title = $1, description = $2, deadline = $3, priority = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, title, description, deadline, priority, id)
	if err != nil {
		return fmt.Errorf("error updating task: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// UpdateStatus moves a task to a new lifecycle state
func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE work_allocation SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating task status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Delete deletes a task by ID
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM work_allocation WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// DeleteByEmployeeIDs deletes all tasks allocated to the given employees
func (r *TaskRepository) DeleteByEmployeeIDs(ctx context.Context, q Querier, employeeIDs []int64) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	_, err := q.Exec(ctx, `DELETE FROM work_allocation WHERE employee_id = ANY($1)`, employeeIDs)
	if err != nil {
		return fmt.Errorf("error deleting work allocation: %w", err)
	}
	return nil
}

// Count returns the number of tasks
func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM work_allocation`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting tasks: %w", err)
	}
	return count, nil
}
