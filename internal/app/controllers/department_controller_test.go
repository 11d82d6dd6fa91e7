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
	"github.com/emre/staffhub/internal/pkg/apperrors"
)

type stubDepartmentService struct {
	createFn func(ctx context.Context, name string) (*models.Department, error)
	getAllFn func(ctx context.Context) ([]*models.Department, error)
}

func (s *stubDepartmentService) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	if s.createFn == nil {
		return &models.Department{ID: 1, Name: name}, nil
	}
	return s.createFn(ctx, name)
}

func (s *stubDepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	if s.getAllFn == nil {
		return nil, nil
	}
	return s.getAllFn(ctx)
}

type stubCascadeService struct {
	deleteEmployeeFn   func(ctx context.Context, employeeID int64) error
	deleteDepartmentFn func(ctx context.Context, departmentID int64) error
}

func (s *stubCascadeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	if s.deleteEmployeeFn == nil {
		return nil
	}
	return s.deleteEmployeeFn(ctx, employeeID)
}

func (s *stubCascadeService) DeleteDepartment(ctx context.Context, departmentID int64) error {
	if s.deleteDepartmentFn == nil {
		return nil
	}
	return s.deleteDepartmentFn(ctx, departmentID)
}

func departmentTestRouter(departments *stubDepartmentService, cascade *stubCascadeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewDepartmentController(departments, cascade)
	router.POST("/add_department", controller.AddDepartment)
	router.GET("/get_departments", controller.GetDepartments)
	router.DELETE("/delete_department/:departmentId", controller.DeleteDepartment)
	return router
}

func TestAddDepartment(t *testing.T) {
	router := departmentTestRouter(&stubDepartmentService{}, &stubCascadeService{})

	req := httptest.NewRequest(http.MethodPost, "/add_department", strings.NewReader(`{"department":"Engineering"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["Status"])
	result := payload["Result"].(map[string]interface{})
	assert.EqualValues(t, 1, result["insertId"])
}

func TestAddDepartmentDuplicate(t *testing.T) {
	router := departmentTestRouter(&stubDepartmentService{
		createFn: func(ctx context.Context, name string) (*models.Department, error) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		},
	}, &stubCascadeService{})

	req := httptest.NewRequest(http.MethodPost, "/add_department", strings.NewReader(`{"department":"Engineering"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	// the legacy client treats a duplicate as a 200 with Status false
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, false, payload["Status"])
	assert.Equal(t, "Department already exists", payload["Error"])
}

func TestAddDepartmentMissingBody(t *testing.T) {
	router := departmentTestRouter(&stubDepartmentService{}, &stubCascadeService{})

	req := httptest.NewRequest(http.MethodPost, "/add_department", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "Missing required fields", payload["Error"])
}

func TestGetDepartments(t *testing.T) {
	router := departmentTestRouter(&stubDepartmentService{
		getAllFn: func(ctx context.Context) ([]*models.Department, error) {
			return []*models.Department{{ID: 1, Name: "Engineering"}}, nil
		},
	}, &stubCascadeService{})

	req := httptest.NewRequest(http.MethodGet, "/get_departments", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["Status"])
	assert.Len(t, payload["Result"], 1)
}

func TestDeleteDepartmentNotFound(t *testing.T) {
	router := departmentTestRouter(&stubDepartmentService{}, &stubCascadeService{
		deleteDepartmentFn: func(ctx context.Context, departmentID int64) error {
			return apperrors.ErrDepartmentNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/delete_department/99", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteDepartmentInvalidID(t *testing.T) {
	router := departmentTestRouter(&stubDepartmentService{}, &stubCascadeService{})

	req := httptest.NewRequest(http.MethodDelete, "/delete_department/abc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
