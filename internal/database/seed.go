package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin provisions the configured admin account if it does not exist
// yet. A deployment without ADMIN_EMAIL/ADMIN_PASSWORD skips seeding.
func SeedAdmin(cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := DB.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("admin seed lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		ID:       uuid.New(),
		Email:    cfg.AdminEmail,
		Username: cfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
		Name:     "Admin",
		Surname:  "User",
	}
	if err := DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	slog.Info("admin account seeded", "email", cfg.AdminEmail)
	return nil
}
