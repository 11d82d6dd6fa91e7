package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/apperrors"
	"github.com/emre/staffhub/internal/pkg/auth"
	"github.com/emre/staffhub/internal/pkg/dberrors"
	"github.com/emre/staffhub/internal/pkg/validation"
)

// AuthService handles admin authentication and account management
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	GetAllAdmins(ctx context.Context) ([]*models.Admin, error)
	CreateAdmin(ctx context.Context, email, password string) error
}

type adminStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetAll(ctx context.Context) ([]*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

type authService struct {
	adminRepo  adminStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminRepo adminStore, jwtService *auth.JWTService) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and returns a signed session token.
// Unknown email and wrong password collapse into the same error so the
// response does not leak which one failed.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error looking up admin: %w", err)
	}

	if !auth.CheckPassword(admin.Password, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.Email, "admin")
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// GetAllAdmins lists the dashboard accounts
func (s *authService) GetAllAdmins(ctx context.Context) ([]*models.Admin, error) {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving admins: %w", err)
	}
	return admins, nil
}

// CreateAdmin registers a new dashboard account with a hashed password
func (s *authService) CreateAdmin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validation.IsValidEmail(email) {
		return apperrors.NewValidationError("invalid email address")
	}
	if !validation.IsValidPassword(password) {
		return apperrors.NewValidationError("password is too short")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.Admin{
		Email:    email,
		Password: hashed,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewValidationError("admin with this email already exists")
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}
