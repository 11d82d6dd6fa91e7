package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/db"
	"github.com/emre/staffhub/internal/pkg/apperrors"
)

// stubTxRunner invokes the function directly; the stub stores below ignore
// the transaction handle.
type stubTxRunner struct {
	err error
}

func (r *stubTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if r.err != nil {
		return r.err
	}
	return fn(ctx, nil)
}

type stubDependentStore struct {
	name   string
	calls  *[]string
	err    error
	gotIDs []int64
}

func (s *stubDependentStore) DeleteByEmployeeIDs(ctx context.Context, q repositories.Querier, employeeIDs []int64) error {
	*s.calls = append(*s.calls, s.name)
	s.gotIDs = employeeIDs
	return s.err
}

type stubCascadeEmployeeStore struct {
	calls     *[]string
	ids       []int64
	idsErr    error
	deleteErr error
}

func (s *stubCascadeEmployeeStore) IDsByDepartmentID(ctx context.Context, q repositories.Querier, departmentID int64) ([]int64, error) {
	*s.calls = append(*s.calls, "employee.ids")
	return s.ids, s.idsErr
}

func (s *stubCascadeEmployeeStore) Delete(ctx context.Context, q repositories.Querier, id int64) error {
	*s.calls = append(*s.calls, "employee.delete")
	return s.deleteErr
}

func (s *stubCascadeEmployeeStore) DeleteByDepartmentID(ctx context.Context, q repositories.Querier, departmentID int64) error {
	*s.calls = append(*s.calls, "employee.deleteByDepartment")
	return s.deleteErr
}

type stubCascadeDepartmentStore struct {
	calls *[]string
	err   error
}

func (s *stubCascadeDepartmentStore) Delete(ctx context.Context, q repositories.Querier, id int64) error {
	*s.calls = append(*s.calls, "department.delete")
	return s.err
}

func newCascadeFixture(calls *[]string) (*stubCascadeEmployeeStore, *stubDependentStore, *stubDependentStore, *stubDependentStore, *stubCascadeDepartmentStore) {
	return &stubCascadeEmployeeStore{calls: calls},
		&stubDependentStore{name: "feedback", calls: calls},
		&stubDependentStore{name: "tasks", calls: calls},
		&stubDependentStore{name: "leaves", calls: calls},
		&stubCascadeDepartmentStore{calls: calls}
}

func TestDeleteEmployeeCascadeOrder(t *testing.T) {
	var calls []string
	employees, feedback, tasks, leaves, departments := newCascadeFixture(&calls)
	svc := NewCascadeService(&stubTxRunner{}, departments, employees, feedback, tasks, leaves)

	err := svc.DeleteEmployee(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, []string{"feedback", "tasks", "leaves", "employee.delete"}, calls)
	assert.Equal(t, []int64{42}, feedback.gotIDs)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	var calls []string
	employees, feedback, tasks, leaves, departments := newCascadeFixture(&calls)
	employees.deleteErr = repositories.ErrEmployeeNotFound
	svc := NewCascadeService(&stubTxRunner{}, departments, employees, feedback, tasks, leaves)

	err := svc.DeleteEmployee(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
}

func TestDeleteEmployeeDependentFailureStopsCascade(t *testing.T) {
	var calls []string
	employees, feedback, tasks, leaves, departments := newCascadeFixture(&calls)
	tasks.err = errors.New("boom")
	svc := NewCascadeService(&stubTxRunner{}, departments, employees, feedback, tasks, leaves)

	err := svc.DeleteEmployee(context.Background(), 42)
	require.Error(t, err)

	// the leave requests and the employee row are never touched
	assert.Equal(t, []string{"feedback", "tasks"}, calls)
}

func TestDeleteEmployeeInvalidID(t *testing.T) {
	var calls []string
	employees, feedback, tasks, leaves, departments := newCascadeFixture(&calls)
	svc := NewCascadeService(&stubTxRunner{}, departments, employees, feedback, tasks, leaves)

	err := svc.DeleteEmployee(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, calls)
}

func TestDeleteDepartmentWithEmployees(t *testing.T) {
	var calls []string
	employees, feedback, tasks, leaves, departments := newCascadeFixture(&calls)
	employees.ids = []int64{7, 9}
	svc := NewCascadeService(&stubTxRunner{}, departments, employees, feedback, tasks, leaves)

	err := svc.DeleteDepartment(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"employee.ids",
		"feedback",
		"tasks",
		"leaves",
		"employee.deleteByDepartment",
		"department.delete",
	}, calls)
	assert.Equal(t, []int64{7, 9}, tasks.gotIDs)
}

func TestDeleteDepartmentWithoutEmployees(t *testing.T) {
	var calls []string
	employees, feedback, tasks, leaves, departments := newCascadeFixture(&calls)
	svc := NewCascadeService(&stubTxRunner{}, departments, employees, feedback, tasks, leaves)

	err := svc.DeleteDepartment(context.Background(), 3)
	require.NoError(t, err)

	// no employees means the dependent tables are skipped entirely
	assert.Equal(t, []string{"employee.ids", "department.delete"}, calls)
}

func TestDeleteDepartmentNotFound(t *testing.T) {
	var calls []string
	employees, feedback, tasks, leaves, departments := newCascadeFixture(&calls)
	departments.err = repositories.ErrDepartmentNotFound
	svc := NewCascadeService(&stubTxRunner{}, departments, employees, feedback, tasks, leaves)

	err := svc.DeleteDepartment(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestDeleteDepartmentTransactionFailure(t *testing.T) {
	var calls []string
	employees, feedback, tasks, leaves, departments := newCascadeFixture(&calls)
	runner := &stubTxRunner{err: pgx.ErrTxClosed}
	svc := NewCascadeService(runner, departments, employees, feedback, tasks, leaves)

	err := svc.DeleteDepartment(context.Background(), 3)
	require.Error(t, err)
	assert.Empty(t, calls)
}
