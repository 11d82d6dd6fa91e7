package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emre/staffhub/internal/app/models"
)

// Employee error types
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailAlreadyExists = errors.New("employee with this email already exists")
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db Querier
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db Querier) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

const employeeColumns = `id, name, email, password, role, experience, department_id, salary,
	degree, university, graduation_year, skills, certifications, mobile_no, address,
	COALESCE(resume, ''), COALESCE(profile_img, '')`

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var e models.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Password,
		&e.Role,
		&e.Experience,
		&e.DepartmentID,
		&e.Salary,
		&e.Degree,
		&e.University,
		&e.GraduationYear,
		&e.Skills,
		&e.Certifications,
		&e.MobileNo,
		&e.Address,
		&e.Resume,
		&e.ProfileImg,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new employee and fills in the generated id
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (name, email, password, role, experience, department_id, salary,
			degree, university, graduation_year, skills, certifications, mobile_no, address,
			resume, profile_img)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		employee.Name,
		employee.Email,
		employee.Password,
		employee.Role,
		employee.Experience,
		employee.DepartmentID,
		employee.Salary,
		employee.Degree,
		employee.University,
		employee.GraduationYear,
		employee.Skills,
		employee.Certifications,
		employee.MobileNo,
		employee.Address,
		nullable(employee.Resume),
		nullable(employee.ProfileImg),
	).Scan(&employee.ID)

	if err != nil {
		return fmt.Errorf("error creating employee: %w", err)
	}

	return nil
}

// nullable maps an empty string to NULL so absent uploads stay NULL in the table
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	return employee, nil
}

// GetAllSummaries retrieves the employee roster joined with department names
func (r *EmployeeRepository) GetAllSummaries(ctx context.Context) ([]*models.EmployeeSummary, error) {
	query := `
		SELECT employees.id, employees.name, COALESCE(department.name, ''), employees.role
		FROM employees
		LEFT JOIN department ON employees.department_id = department.id
		ORDER BY employees.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.EmployeeSummary
	for rows.Next() {
		var e models.EmployeeSummary
		if err := rows.Scan(&e.EmployeeID, &e.Name, &e.Department, &e.Role); err != nil {
			return nil, err
		}
		employees = append(employees, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByDepartmentID retrieves all employees in a department
func (r *EmployeeRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE department_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// IDsByDepartmentID collects the ids of all employees in a department
func (r *EmployeeRepository) IDsByDepartmentID(ctx context.Context, q Querier, departmentID int64) ([]int64, error) {
	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE department_id = $1`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error finding employees: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// Update overwrites all employee fields
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, email = $2, password = $3, role = $4, experience = $5,
			department_id = $6, salary = $7, degree = $8, university = $9,
			graduation_year = $10, skills = $11, certifications = $12,
			mobile_no = $13, address = $14
		WHERE id = $15
	`

	cmdTag, err := r.db.Exec(ctx, query,
		employee.Name,
		employee.Email,
		employee.Password,
		employee.Role,
		employee.Experience,
		employee.DepartmentID,
		employee.Salary,
		employee.Degree,
		employee.University,
		employee.GraduationYear,
		employee.Skills,
		employee.Certifications,
		employee.MobileNo,
		employee.Address,
		employee.ID,
	)

	if err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// Delete deletes a single employee row
func (r *EmployeeRepository) Delete(ctx context.Context, q Querier, id int64) error {
	cmdTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// DeleteByDepartmentID deletes all employees of a department
func (r *EmployeeRepository) DeleteByDepartmentID(ctx context.Context, q Querier, departmentID int64) error {
	_, err := q.Exec(ctx, `DELETE FROM employees WHERE department_id = $1`, departmentID)
	if err != nil {
		return fmt.Errorf("error deleting employees: %w", err)
	}
	return nil
}

// Count returns the number of employees
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting employees: %w", err)
	}
	return count, nil
}
