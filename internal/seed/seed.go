package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/auth"
	"github.com/emre/staffhub/internal/pkg/logger"
)

const defaultAdminEmail = "admin@staffhub.local"

// CreateDefaultAdmin makes sure at least one dashboard account exists so a
// fresh deployment can be logged into. The password comes from
// DEFAULT_ADMIN_PASSWORD; when unset, nothing is created.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool) error {
	adminRepo := repositories.NewAdminRepository(dbPool)

	_, err := adminRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrAdminNotFound) {
		return err
	}

	password := os.Getenv("DEFAULT_ADMIN_PASSWORD")
	if password == "" {
		logger.Warn().Msg("No admin accounts found and DEFAULT_ADMIN_PASSWORD unset, skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if err := adminRepo.Create(ctx, &models.Admin{
		Email:    defaultAdminEmail,
		Password: hashed,
	}); err != nil {
		return err
	}

	logger.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
