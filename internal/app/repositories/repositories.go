package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx executed by the repositories. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so cascade sequences can run the same
// repository methods inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository        *AdminRepository
	DepartmentRepository   *DepartmentRepository
	EmployeeRepository     *EmployeeRepository
	TaskRepository         *TaskRepository
	TeamRepository         *TeamRepository
	LeaveRequestRepository *LeaveRequestRepository
	FeedbackRepository     *FeedbackRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:        NewAdminRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		EmployeeRepository:     NewEmployeeRepository(db),
		TaskRepository:         NewTaskRepository(db),
		TeamRepository:         NewTeamRepository(db),
		LeaveRequestRepository: NewLeaveRequestRepository(db),
		FeedbackRepository:     NewFeedbackRepository(db),
	}
}
