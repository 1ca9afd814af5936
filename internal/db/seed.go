package db

import (
	"fmt"

	"hackathon-portal/internal/logger"
	"hackathon-portal/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed bootstraps an admin and a judge account for local bring-up. It is a
// no-op when any profile already exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Profile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count profiles: %w", err)
	}
	if count > 0 {
		return nil
	}

	accounts := []struct {
		email, password, name string
		role                  model.Role
	}{
		{"admin@portal.local", "admin-dev-pass", "Portal Admin", model.RoleAdmin},
		{"judge@portal.local", "judge-dev-pass", "Sample Judge", model.RoleJudge},
	}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		p := model.Profile{Email: a.email, Password: string(hash), Name: a.name}
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("seed profile %s: %w", a.email, err)
		}
		if err := db.Create(&model.RoleAssignment{ProfileID: p.ID, Role: a.role}).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", a.email, err)
		}
		logger.Info("seed.account", "email", a.email, "role", a.role)
	}
	return nil
}
