package db

import (
	"fmt"

	"hackathon-portal/internal/model"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Profile{},
		&model.RoleAssignment{},
		&model.Team{},
		&model.TeamMember{},
		&model.Project{},
		&model.Like{},
		&model.View{},
		&model.JudgeFeedback{},
		&model.Discussion{},
		&model.Reply{},
		&model.Update{},
		&model.Registration{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
