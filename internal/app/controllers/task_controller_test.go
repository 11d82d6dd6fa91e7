package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/pkg/apperrors"
)

type stubTaskService struct {
	allocateFn     func(ctx context.Context, req *dto.AllocateWorkRequest) (*models.Task, error)
	getByIDFn      func(ctx context.Context, id int64) (*models.Task, error)
	updateStatusFn func(ctx context.Context, id int64, status string) error
}

func (s *stubTaskService) AllocateWork(ctx context.Context, req *dto.AllocateWorkRequest) (*models.Task, error) {
	if s.allocateFn == nil {
		return &models.Task{ID: 10}, nil
	}
	return s.allocateFn(ctx, req)
}

func (s *stubTaskService) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	if s.getByIDFn == nil {
		return &models.Task{ID: id}, nil
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubTaskService) GetAllTasks(ctx context.Context) ([]*models.TaskWithEmployee, error) {
	return nil, nil
}

func (s *stubTaskService) UpdateTask(ctx context.Context, id int64, req *dto.EditTaskRequest) error {
	return nil
}

func (s *stubTaskService) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	if s.updateStatusFn == nil {
		return nil
	}
	return s.updateStatusFn(ctx, id, status)
}

func (s *stubTaskService) DeleteTask(ctx context.Context, id int64) error {
	return nil
}

func taskTestRouter(service *stubTaskService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewTaskController(service)
	router.POST("/allocate_work", controller.AllocateWork)
	router.GET("/get_task/:taskId", controller.GetTask)
	router.PUT("/edit_task/:taskId", controller.EditTask)
	router.PUT("/update_task_status/:taskId", controller.UpdateTaskStatus)
	return router
}

func TestAllocateWorkReturnsInsertID(t *testing.T) {
	router := taskTestRouter(&stubTaskService{})

	body := `{"employee_id":5,"title":"Ship it","deadline":"2026-09-15"}`
	req := httptest.NewRequest(http.MethodPost, "/allocate_work", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["Status"])
	result := payload["Result"].(map[string]interface{})
	assert.EqualValues(t, 10, result["insertId"])
}

func TestAllocateWorkMissingFields(t *testing.T) {
	router := taskTestRouter(&stubTaskService{})

	// deadline missing
	body := `{"employee_id":5,"title":"Ship it"}`
	req := httptest.NewRequest(http.MethodPost, "/allocate_work", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "Missing required fields", payload["Error"])
}

func TestGetTaskNotFound(t *testing.T) {
	router := taskTestRouter(&stubTaskService{
		getByIDFn: func(ctx context.Context, id int64) (*models.Task, error) {
			return nil, apperrors.ErrTaskNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/get_task/999", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestEditTaskRequiresAllFields(t *testing.T) {
	router := taskTestRouter(&stubTaskService{})

	// priority missing
	body := `{"title":"x","description":"y","deadline":"z"}`
	req := httptest.NewRequest(http.MethodPut, "/edit_task/10", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateTaskStatusInvalid(t *testing.T) {
	router := taskTestRouter(&stubTaskService{
		updateStatusFn: func(ctx context.Context, id int64, status string) error {
			return apperrors.ErrInvalidTaskStatus
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/update_task_status/10", strings.NewReader(`{"status":"done"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
