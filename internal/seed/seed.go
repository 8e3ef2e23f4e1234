package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/asadk/maktab/internal/app/models"
	appRepos "github.com/asadk/maktab/internal/app/repositories"
	"github.com/asadk/maktab/internal/config"
	"github.com/asadk/maktab/internal/pkg/apperrors"
	"github.com/asadk/maktab/internal/pkg/auth"
)

// CreateDefaultAdmin ensures an admin account exists so a fresh install can
// be logged into. The password comes from config; when unset, seeding is
// skipped rather than shipping a well-known default.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminPassword == "" {
		lgr.Info().Msg("No seed admin password configured, skipping admin seeding")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	_, err := userRepo.GetByUsername(ctx, cfg.Seed.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	lgr.Info().Str("username", cfg.Seed.AdminUsername).Msg("Creating default admin user...")

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Username: cfg.Seed.AdminUsername,
		Password: hashed,
		Email:    cfg.Seed.AdminUsername + "@maktab.local",
		FullName: "System Administrator",
		Role:     appModels.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Int64("id", admin.ID).Msg("Default admin user created")
	return nil
}
