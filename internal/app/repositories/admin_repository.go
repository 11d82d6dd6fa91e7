package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emre/staffhub/internal/app/models"
)

// Admin error types
var (
	ErrAdminNotFound = errors.New("admin not found")
)

// AdminRepository handles database operations for dashboard accounts
type AdminRepository struct {
	db Querier
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db Querier) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT id, email, password FROM admin WHERE email = $1`

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(&admin.ID, &admin.Email, &admin.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

// GetAll retrieves all admins
func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	rows, err := r.db.Query(ctx, `SELECT id, email, password FROM admin ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		var admin models.Admin
		if err := rows.Scan(&admin.ID, &admin.Email, &admin.Password); err != nil {
			return nil, err
		}
		admins = append(admins, &admin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

// Create inserts a new admin account with an already-hashed password
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admin (email, password)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, admin.Email, admin.Password).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}
