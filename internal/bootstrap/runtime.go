// Package bootstrap wires up runtime dependencies shared by the server and
// auxiliary commands.
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"linkhive/internal/cache"
	"linkhive/internal/config"
	"linkhive/internal/database"
	"linkhive/internal/models"
	"linkhive/internal/repository"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	EnsureAdmin bool
}

// InitRuntime connects to DB and Redis and optionally ensures the admin
// account exists.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.EnsureAdmin || cfg.AdminBootstrap {
		if err := EnsureAdminAccount(context.Background(), cfg, db); err != nil {
			return nil, nil, fmt.Errorf("failed to bootstrap admin account: %w", err)
		}
	}

	return db, r, nil
}

// EnsureAdminAccount creates the operational admin account if no account
// with the admin role exists yet. Admin accounts never appear in discovery
// and their invitations are suppressed.
func EnsureAdminAccount(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set to bootstrap the admin account")
	}

	users := repository.NewUserRepository(db)

	existing, err := users.GetByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("admin account already present (%s)", existing.Email)
		return nil
	}

	email := strings.TrimSpace(strings.ToLower(cfg.AdminEmail))
	if email == "" {
		email = "admin@linkhive.local"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		FirstName: "Site",
		LastName:  "Admin",
		Email:     email,
		Password:  string(hashed),
		Headline:  "Platform administration",
		Role:      models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("admin account bootstrapped (%s)", email)
	return nil
}
