package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, name string) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
}

// departmentStore is the repository surface the service needs
type departmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetAll(ctx context.Context) ([]*models.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type departmentService struct {
	departmentRepo departmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo departmentStore) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
	}
}

// CreateDepartment creates a new department, rejecting duplicate names
func (s *departmentService) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("department name cannot be empty")
	}

	exists, err := s.departmentRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error checking department existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{Name: name}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	return department, nil
}

// GetAllDepartments retrieves all departments
func (s *departmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}
