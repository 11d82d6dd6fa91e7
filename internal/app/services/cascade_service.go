package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/db"
	"github.com/emre/staffhub/internal/pkg/apperrors"
	"github.com/emre/staffhub/internal/pkg/logger"
)

// CascadeService removes aggregate roots together with their dependent rows.
// The store has no ON DELETE CASCADE on these tables, so the ordered cleanup
// lives here. The whole sequence runs in one transaction: a failed or
// not-found step rolls everything back, never leaving a partial cascade.
type CascadeService interface {
	DeleteEmployee(ctx context.Context, employeeID int64) error
	DeleteDepartment(ctx context.Context, departmentID int64) error
}

// txRunner runs a function inside a database transaction
type txRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// cascadeEmployeeStore covers employee lookups and deletes within the cascade
type cascadeEmployeeStore interface {
	IDsByDepartmentID(ctx context.Context, q repositories.Querier, departmentID int64) ([]int64, error)
	Delete(ctx context.Context, q repositories.Querier, id int64) error
	DeleteByDepartmentID(ctx context.Context, q repositories.Querier, departmentID int64) error
}

// dependentStore deletes rows keyed by employee ids (feedback, tasks, leaves)
type dependentStore interface {
	DeleteByEmployeeIDs(ctx context.Context, q repositories.Querier, employeeIDs []int64) error
}

// cascadeDepartmentStore deletes the department row itself
type cascadeDepartmentStore interface {
	Delete(ctx context.Context, q repositories.Querier, id int64) error
}

type cascadeService struct {
	db             txRunner
	departmentRepo cascadeDepartmentStore
	employeeRepo   cascadeEmployeeStore
	feedbackRepo   dependentStore
	taskRepo       dependentStore
	leaveRepo      dependentStore
}

// NewCascadeService creates a new cascade-delete coordinator
func NewCascadeService(
	database txRunner,
	departmentRepo cascadeDepartmentStore,
	employeeRepo cascadeEmployeeStore,
	feedbackRepo dependentStore,
	taskRepo dependentStore,
	leaveRepo dependentStore,
) CascadeService {
	return &cascadeService{
		db:             database,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		feedbackRepo:   feedbackRepo,
		taskRepo:       taskRepo,
		leaveRepo:      leaveRepo,
	}
}

// DeleteEmployee removes an employee and every row referencing them:
// feedback first, then work allocations, then leave requests, then the
// employee row itself.
func (s *cascadeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	if employeeID <= 0 {
		return apperrors.NewValidationError("invalid employee ID")
	}

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		ids := []int64{employeeID}

		if err := s.feedbackRepo.DeleteByEmployeeIDs(ctx, tx, ids); err != nil {
			return err
		}
		if err := s.taskRepo.DeleteByEmployeeIDs(ctx, tx, ids); err != nil {
			return err
		}
		if err := s.leaveRepo.DeleteByEmployeeIDs(ctx, tx, ids); err != nil {
			return err
		}
		return s.employeeRepo.Delete(ctx, tx, employeeID)
	})

	if err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("error cascading employee delete: %w", err)
	}

	logger.Info().Int64("employeeId", employeeID).Msg("Employee and dependent rows deleted")
	return nil
}

// DeleteDepartment removes a department together with its employees and all
// rows referencing those employees. A department with no employees is removed
// directly.
func (s *cascadeService) DeleteDepartment(ctx context.Context, departmentID int64) error {
	if departmentID <= 0 {
		return apperrors.NewValidationError("invalid department ID")
	}

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		employeeIDs, err := s.employeeRepo.IDsByDepartmentID(ctx, tx, departmentID)
		if err != nil {
			return err
		}

		if len(employeeIDs) > 0 {
			if err := s.feedbackRepo.DeleteByEmployeeIDs(ctx, tx, employeeIDs); err != nil {
				return err
			}
			if err := s.taskRepo.DeleteByEmployeeIDs(ctx, tx, employeeIDs); err != nil {
				return err
			}
			if err := s.leaveRepo.DeleteByEmployeeIDs(ctx, tx, employeeIDs); err != nil {
				return err
			}
			if err := s.employeeRepo.DeleteByDepartmentID(ctx, tx, departmentID); err != nil {
				return err
			}
		}

		return s.departmentRepo.Delete(ctx, tx, departmentID)
	})

	if err != nil {
		if errors.Is(err, repositories.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error cascading department delete: %w", err)
	}

	logger.Info().Int64("departmentId", departmentID).Msg("Department and dependent rows deleted")
	return nil
}
