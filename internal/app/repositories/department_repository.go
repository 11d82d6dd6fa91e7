package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emre/staffhub/internal/app/models"
)

// Department error types
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name already exists")
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db Querier
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db Querier) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO department (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, department.Name).Scan(&department.ID)
	if err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name
		FROM department
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name
		FROM department
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// ExistsByName checks if a department with the given name already exists
func (r *DepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM department WHERE name = $1)`,
		name).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}

	return exists, nil
}

// Count returns the number of departments
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM department`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting departments: %w", err)
	}
	return count, nil
}

// Delete deletes a department by ID using the given querier, which may be a
// transaction when called from the cascade coordinator
func (r *DepartmentRepository) Delete(ctx context.Context, q Querier, id int64) error {
	cmdTag, err := q.Exec(ctx, `DELETE FROM department WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}
