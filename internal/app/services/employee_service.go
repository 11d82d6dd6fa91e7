package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/apperrors"
	"github.com/emre/staffhub/internal/pkg/auth"
	"github.com/emre/staffhub/internal/pkg/filestorage"
	"github.com/emre/staffhub/internal/pkg/validation"
)

// EmployeeService handles employee-related operations
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *dto.AddEmployeeRequest, resume, profileImg *multipart.FileHeader) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, req *dto.EditEmployeeRequest) error
	GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error)
	GetEmployeeDetails(ctx context.Context, id int64) (*models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]*models.EmployeeSummary, error)
	GetEmployeesByDepartment(ctx context.Context, departmentID int64) ([]*models.Employee, error)
}

// employeeStore is the repository surface the service needs
type employeeStore interface {
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetAllSummaries(ctx context.Context) ([]*models.EmployeeSummary, error)
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Employee, error)
}

type employeeService struct {
	employeeRepo employeeStore
	storage      filestorage.FileStorage
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo employeeStore, storage filestorage.FileStorage) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		storage:      storage,
	}
}

// CreateEmployee hashes the password, stores any uploaded files and inserts
// the employee row
func (s *employeeService) CreateEmployee(ctx context.Context, req *dto.AddEmployeeRequest, resume, profileImg *multipart.FileHeader) (*models.Employee, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("invalid email address")
	}
	if !validation.IsValidMobile(req.MobileNo) {
		return nil, apperrors.NewValidationError("invalid mobile number")
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.NewValidationError("password is too short")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	resumePath, err := s.storage.SaveFile(resume, filestorage.ResumeDir)
	if err != nil {
		return nil, fmt.Errorf("error storing resume: %w", err)
	}

	profileImgPath, err := s.storage.SaveFile(profileImg, filestorage.ProfileImageDir)
	if err != nil {
		return nil, fmt.Errorf("error storing profile image: %w", err)
	}

	employee := &models.Employee{
		Name:           req.Name,
		Email:          req.Email,
		Password:       hash,
		Role:           req.Role,
		Experience:     req.Experience,
		DepartmentID:   req.DepartmentID,
		Salary:         req.Salary,
		Degree:         req.Degree,
		University:     req.University,
		GraduationYear: req.GraduationYear,
		Skills:         req.Skills,
		Certifications: req.Certifications,
		MobileNo:       req.MobileNo,
		Address:        req.Address,
		Resume:         resumePath,
		ProfileImg:     profileImgPath,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	return employee, nil
}

// UpdateEmployee overwrites all employee fields. The password is rehashed
// only when a new value was supplied; otherwise the stored hash survives.
func (s *employeeService) UpdateEmployee(ctx context.Context, id int64, req *dto.EditEmployeeRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid employee ID")
	}

	if !validation.IsValidEmail(req.Email) {
		return apperrors.NewValidationError("invalid email address")
	}
	if req.MobileNo != "" && !validation.IsValidMobile(req.MobileNo) {
		return apperrors.NewValidationError("invalid mobile number")
	}
	if req.Password != "" && !validation.IsValidPassword(req.Password) {
		return apperrors.NewValidationError("password is too short")
	}

	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("error retrieving employee: %w", err)
	}

	password := existing.Password
	if req.Password != "" {
		password, err = auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
	}

	employee := &models.Employee{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Password:       password,
		Role:           req.Role,
		Experience:     req.Experience,
		DepartmentID:   req.DepartmentID,
		Salary:         req.Salary,
		Degree:         req.Degree,
		University:     req.University,
		GraduationYear: req.GraduationYear,
		Skills:         req.Skills,
		Certifications: req.Certifications,
		MobileNo:       req.MobileNo,
		Address:        req.Address,
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("error updating employee: %w", err)
	}

	return nil
}

// GetEmployeeByID retrieves an employee by ID
func (s *employeeService) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid employee ID")
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	return employee, nil
}

// GetEmployeeDetails retrieves an employee with stored file paths rewritten
// to servable URLs
func (s *employeeService) GetEmployeeDetails(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.GetEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.Resume = s.storage.FileURL(employee.Resume)
	employee.ProfileImg = s.storage.FileURL(employee.ProfileImg)

	return employee, nil
}

// GetAllEmployees retrieves the employee roster
func (s *employeeService) GetAllEmployees(ctx context.Context) ([]*models.EmployeeSummary, error) {
	employees, err := s.employeeRepo.GetAllSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}
	return employees, nil
}

// GetEmployeesByDepartment retrieves all employees of one department
func (s *employeeService) GetEmployeesByDepartment(ctx context.Context, departmentID int64) ([]*models.Employee, error) {
	if departmentID <= 0 {
		return nil, apperrors.NewValidationError("invalid department ID")
	}

	employees, err := s.employeeRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees by department: %w", err)
	}
	return employees, nil
}
