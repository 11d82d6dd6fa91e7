package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/apperrors"
	"github.com/emre/staffhub/internal/pkg/events"
)

type stubTaskStore struct {
	created      *models.Task
	task         *models.Task
	getErr       error
	updateErr    error
	statusErr    error
	deleteErr    error
	updatedField struct {
		title, description, deadline, priority string
	}
	updatedStatus models.TaskStatus
}

func (s *stubTaskStore) Create(ctx context.Context, task *models.Task) error {
	task.ID = 10
	s.created = task
	return nil
}

func (s *stubTaskStore) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.task, s.getErr
}

func (s *stubTaskStore) GetAllWithEmployee(ctx context.Context) ([]*models.TaskWithEmployee, error) {
	return nil, nil
}

func (s *stubTaskStore) UpdateFields(ctx context.Context, id int64, title, description, deadline, priority string) error {
	s.updatedField.title = title
	s.updatedField.description = description
	s.updatedField.deadline = deadline
	s.updatedField.priority = priority
	return s.updateErr
}

func (s *stubTaskStore) UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	s.updatedStatus = status
	return s.statusErr
}

func (s *stubTaskStore) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

type recordingPublisher struct {
	events []*events.Event
}

func (p *recordingPublisher) Publish(event *events.Event) {
	p.events = append(p.events, event)
}

func TestAllocateWork(t *testing.T) {
	store := &stubTaskStore{}
	publisher := &recordingPublisher{}
	svc := NewTaskService(store, publisher)

	task, err := svc.AllocateWork(context.Background(), &dto.AllocateWorkRequest{
		EmployeeID: 5,
		Title:      "Ship the release",
		Deadline:   "2026-09-15",
		Priority:   "high",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), task.ID)
	assert.Equal(t, models.TaskStatusPending, task.Status, "new tasks start pending")

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.ActionCreated, publisher.events[0].Action)
	assert.Equal(t, int64(10), publisher.events[0].TaskID)
}

func TestAllocateWorkMissingEmployee(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewTaskService(&stubTaskStore{}, publisher)

	_, err := svc.AllocateWork(context.Background(), &dto.AllocateWorkRequest{
		Title:    "Ship the release",
		Deadline: "2026-09-15",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, publisher.events)
}

func TestUpdateTaskLeavesStatusAlone(t *testing.T) {
	store := &stubTaskStore{}
	svc := NewTaskService(store, &recordingPublisher{})

	err := svc.UpdateTask(context.Background(), 10, &dto.EditTaskRequest{
		Title:       "New title",
		Description: "New description",
		Deadline:    "2026-10-01",
		Priority:    "low",
	})
	require.NoError(t, err)

	assert.Equal(t, "New title", store.updatedField.title)
	assert.Empty(t, store.updatedStatus, "edit must never write status")
}

func TestUpdateTaskNotFound(t *testing.T) {
	store := &stubTaskStore{updateErr: repositories.ErrTaskNotFound}
	svc := NewTaskService(store, &recordingPublisher{})

	err := svc.UpdateTask(context.Background(), 999, &dto.EditTaskRequest{
		Title: "x", Description: "x", Deadline: "x", Priority: "x",
	})
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestUpdateTaskStatus(t *testing.T) {
	store := &stubTaskStore{}
	publisher := &recordingPublisher{}
	svc := NewTaskService(store, publisher)

	err := svc.UpdateTaskStatus(context.Background(), 10, "in_progress")
	require.NoError(t, err)

	assert.Equal(t, models.TaskStatusInProgress, store.updatedStatus)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.ActionStatusChanged, publisher.events[0].Action)
}

func TestUpdateTaskStatusRejectsUnknown(t *testing.T) {
	store := &stubTaskStore{}
	publisher := &recordingPublisher{}
	svc := NewTaskService(store, publisher)

	err := svc.UpdateTaskStatus(context.Background(), 10, "done")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTaskStatus)
	assert.Empty(t, store.updatedStatus, "stored status must stay unchanged")
	assert.Empty(t, publisher.events)
}

func TestDeleteTaskPublishesEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewTaskService(&stubTaskStore{}, publisher)

	err := svc.DeleteTask(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.ActionDeleted, publisher.events[0].Action)
}

func TestDeleteTaskNotFound(t *testing.T) {
	store := &stubTaskStore{deleteErr: repositories.ErrTaskNotFound}
	publisher := &recordingPublisher{}
	svc := NewTaskService(store, publisher)

	err := svc.DeleteTask(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
	assert.Empty(t, publisher.events)
}
