package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/apperrors"
	"github.com/emre/staffhub/internal/pkg/events"
)

// TaskService handles work allocation operations
type TaskService interface {
	AllocateWork(ctx context.Context, req *dto.AllocateWorkRequest) (*models.Task, error)
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
	GetAllTasks(ctx context.Context) ([]*models.TaskWithEmployee, error)
	UpdateTask(ctx context.Context, id int64, req *dto.EditTaskRequest) error
	UpdateTaskStatus(ctx context.Context, id int64, status string) error
	DeleteTask(ctx context.Context, id int64) error
}

// taskStore is the repository surface the service needs
type taskStore interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAllWithEmployee(ctx context.Context) ([]*models.TaskWithEmployee, error)
	UpdateFields(ctx context.Context, id int64, title, description, deadline, priority string) error
	UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) error
	Delete(ctx context.Context, id int64) error
}

// eventPublisher pushes task board changes to subscribed dashboards
type eventPublisher interface {
	Publish(event *events.Event)
}

type taskService struct {
	taskRepo  taskStore
	publisher eventPublisher
}

// NewTaskService creates a new task service instance
func NewTaskService(taskRepo taskStore, publisher eventPublisher) TaskService {
	return &taskService{
		taskRepo:  taskRepo,
		publisher: publisher,
	}
}

// AllocateWork creates a task for an employee; new tasks start as pending
func (s *taskService) AllocateWork(ctx context.Context, req *dto.AllocateWorkRequest) (*models.Task, error) {
	if req.EmployeeID <= 0 {
		return nil, apperrors.NewValidationError("employee_id is required")
	}

	task := &models.Task{
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		Status:      models.TaskStatusPending,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	s.publisher.Publish(&events.Event{
		Action:     events.ActionCreated,
		TaskID:     task.ID,
		EmployeeID: task.EmployeeID,
		Title:      task.Title,
		Status:     string(task.Status),
	})

	return task, nil
}

// GetTaskByID retrieves a single task
func (s *taskService) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid task ID")
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("error retrieving task: %w", err)
	}

	return task, nil
}

// GetAllTasks retrieves the task board with assigned employee names
func (s *taskService) GetAllTasks(ctx context.Context) ([]*models.TaskWithEmployee, error) {
	tasks, err := s.taskRepo.GetAllWithEmployee(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask overwrites the four editable fields; status is untouched
func (s *taskService) UpdateTask(ctx context.Context, id int64, req *dto.EditTaskRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid task ID")
	}

	err := s.taskRepo.UpdateFields(ctx, id, req.Title, req.Description, req.Deadline, req.Priority)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("error updating task: %w", err)
	}

	s.publisher.Publish(&events.Event{
		Action: events.ActionUpdated,
		TaskID: id,
		Title:  req.Title,
	})

	return nil
}

// UpdateTaskStatus moves a task through its lifecycle states
func (s *taskService) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid task ID")
	}

	if !models.ValidTaskStatus(status) {
		return apperrors.ErrInvalidTaskStatus
	}

	if err := s.taskRepo.UpdateStatus(ctx, id, models.TaskStatus(status)); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("error updating task status: %w", err)
	}

	s.publisher.Publish(&events.Event{
		Action: events.ActionStatusChanged,
		TaskID: id,
		Status: status,
	})

	return nil
}

// DeleteTask removes a task
func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid task ID")
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("error deleting task: %w", err)
	}

	s.publisher.Publish(&events.Event{
		Action: events.ActionDeleted,
		TaskID: id,
	})

	return nil
}
