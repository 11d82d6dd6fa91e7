package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/apperrors"
)

type stubEmployeeStore struct {
	created   *models.Employee
	updated   *models.Employee
	existing  *models.Employee
	getErr    error
	updateErr error
}

func (s *stubEmployeeStore) Create(ctx context.Context, employee *models.Employee) error {
	employee.ID = 21
	s.created = employee
	return nil
}

func (s *stubEmployeeStore) Update(ctx context.Context, employee *models.Employee) error {
	s.updated = employee
	return s.updateErr
}

func (s *stubEmployeeStore) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	return s.existing, s.getErr
}

func (s *stubEmployeeStore) GetAllSummaries(ctx context.Context) ([]*models.EmployeeSummary, error) {
	return nil, nil
}

func (s *stubEmployeeStore) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Employee, error) {
	return nil, nil
}

type stubFileStorage struct {
	saved []string
}

func (s *stubFileStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	path := subDir + "/" + fileHeader.Filename
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *stubFileStorage) FileURL(storedPath string) string {
	if storedPath == "" {
		return ""
	}
	return "/uploads/" + storedPath
}

func (s *stubFileStorage) DeleteFile(storedPath string) error { return nil }

func validAddEmployeeRequest() *dto.AddEmployeeRequest {
	return &dto.AddEmployeeRequest{
		Name:           "Ayşe Kaya",
		Email:          "ayse@corp.test",
		Password:       "hunter22",
		Role:           "developer",
		DepartmentID:   1,
		Salary:         "90000",
		Degree:         "BSc",
		University:     "ITU",
		GraduationYear: "2019",
		MobileNo:       "+905551112233",
		Address:        "Istanbul",
	}
}

func TestCreateEmployeeHashesPasswordAndStoresFiles(t *testing.T) {
	store := &stubEmployeeStore{}
	storage := &stubFileStorage{}
	svc := NewEmployeeService(store, storage)

	resume := &multipart.FileHeader{Filename: "cv.pdf"}
	employee, err := svc.CreateEmployee(context.Background(), validAddEmployeeRequest(), resume, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(21), employee.ID)
	assert.NotEqual(t, "hunter22", employee.Password, "password must be stored hashed")
	assert.Equal(t, "resumes/cv.pdf", employee.Resume)
	assert.Empty(t, employee.ProfileImg, "missing upload stays empty")
}

func TestCreateEmployeeRejectsBadEmail(t *testing.T) {
	store := &stubEmployeeStore{}
	svc := NewEmployeeService(store, &stubFileStorage{})

	req := validAddEmployeeRequest()
	req.Email = "not-an-email"

	_, err := svc.CreateEmployee(context.Background(), req, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Nil(t, store.created)
}

func TestUpdateEmployeeKeepsStoredHashWhenPasswordEmpty(t *testing.T) {
	store := &stubEmployeeStore{existing: &models.Employee{ID: 21, Password: "$2a$10$storedhash"}}
	svc := NewEmployeeService(store, &stubFileStorage{})

	req := &dto.EditEmployeeRequest{
		Name:         "Ayşe Kaya",
		Email:        "ayse@corp.test",
		Role:         "lead",
		DepartmentID: 1,
		Salary:       "95000",
	}
	err := svc.UpdateEmployee(context.Background(), 21, req)
	require.NoError(t, err)

	assert.Equal(t, "$2a$10$storedhash", store.updated.Password)
}

func TestUpdateEmployeeRehashesNewPassword(t *testing.T) {
	store := &stubEmployeeStore{existing: &models.Employee{ID: 21, Password: "$2a$10$storedhash"}}
	svc := NewEmployeeService(store, &stubFileStorage{})

	req := &dto.EditEmployeeRequest{
		Name:         "Ayşe Kaya",
		Email:        "ayse@corp.test",
		Password:     "newsecret",
		Role:         "lead",
		DepartmentID: 1,
		Salary:       "95000",
	}
	err := svc.UpdateEmployee(context.Background(), 21, req)
	require.NoError(t, err)

	assert.NotEqual(t, "$2a$10$storedhash", store.updated.Password)
	assert.NotEqual(t, "newsecret", store.updated.Password)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	store := &stubEmployeeStore{getErr: repositories.ErrEmployeeNotFound}
	svc := NewEmployeeService(store, &stubFileStorage{})

	req := &dto.EditEmployeeRequest{
		Name:         "Ghost",
		Email:        "ghost@corp.test",
		Role:         "none",
		DepartmentID: 1,
		Salary:       "0",
	}
	err := svc.UpdateEmployee(context.Background(), 999, req)
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
}

func TestGetEmployeeDetailsRewritesFileURLs(t *testing.T) {
	store := &stubEmployeeStore{existing: &models.Employee{
		ID:     21,
		Resume: "resumes/1693000000000-cv.pdf",
	}}
	svc := NewEmployeeService(store, &stubFileStorage{})

	employee, err := svc.GetEmployeeDetails(context.Background(), 21)
	require.NoError(t, err)

	assert.Equal(t, "/uploads/resumes/1693000000000-cv.pdf", employee.Resume)
	assert.Empty(t, employee.ProfileImg)
}
