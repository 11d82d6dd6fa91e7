package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/apperrors"
	"github.com/emre/staffhub/internal/pkg/auth"
)

type stubAdminStore struct {
	admin     *models.Admin
	getErr    error
	created   *models.Admin
	createErr error
}

func (s *stubAdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return s.admin, s.getErr
}

func (s *stubAdminStore) GetAll(ctx context.Context) ([]*models.Admin, error) {
	if s.admin == nil {
		return nil, nil
	}
	return []*models.Admin{s.admin}, nil
}

func (s *stubAdminStore) Create(ctx context.Context, admin *models.Admin) error {
	s.created = admin
	return s.createErr
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "staffhub-test",
	})
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	store := &stubAdminStore{admin: &models.Admin{ID: 1, Email: "boss@corp.test", Password: hash}}
	svc := NewAuthService(store, testJWTService())

	token, err := svc.Login(context.Background(), "Boss@Corp.Test", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := testJWTService().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "boss@corp.test", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	store := &stubAdminStore{admin: &models.Admin{ID: 1, Email: "boss@corp.test", Password: hash}}
	svc := NewAuthService(store, testJWTService())

	_, err = svc.Login(context.Background(), "boss@corp.test", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	store := &stubAdminStore{getErr: repositories.ErrAdminNotFound}
	svc := NewAuthService(store, testJWTService())

	_, err := svc.Login(context.Background(), "nobody@corp.test", "hunter22")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "unknown email must look like a wrong password")
}

func TestCreateAdminHashesPassword(t *testing.T) {
	store := &stubAdminStore{}
	svc := NewAuthService(store, testJWTService())

	err := svc.CreateAdmin(context.Background(), "New@Corp.Test", "hunter22")
	require.NoError(t, err)

	require.NotNil(t, store.created)
	assert.Equal(t, "new@corp.test", store.created.Email)
	assert.NotEqual(t, "hunter22", store.created.Password)
	assert.True(t, auth.CheckPassword(store.created.Password, "hunter22"))
}

func TestCreateAdminRejectsShortPassword(t *testing.T) {
	store := &stubAdminStore{}
	svc := NewAuthService(store, testJWTService())

	err := svc.CreateAdmin(context.Background(), "new@corp.test", "abc")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Nil(t, store.created)
}
