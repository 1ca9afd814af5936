// Package testutil provides shared fixtures for service and handler tests.
// Tests run against an in-memory sqlite database with the production schema
// auto-migrated, so they exercise real SQL without a server dependency.
package testutil

import (
	"testing"
	"time"

	"hackathon-portal/internal/db"
	"hackathon-portal/internal/middleware"
	"hackathon-portal/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return gdb
}

func CreateProfile(t *testing.T, gdb *gorm.DB, email, name string) *model.Profile {
	t.Helper()
	p := model.Profile{Email: email, Name: name, Password: "x"}
	if err := gdb.Create(&p).Error; err != nil {
		t.Fatalf("create profile %s: %v", email, err)
	}
	return &p
}

func AssignRole(t *testing.T, gdb *gorm.DB, profileID uuid.UUID, role model.Role) {
	t.Helper()
	if err := gdb.Create(&model.RoleAssignment{ProfileID: profileID, Role: role}).Error; err != nil {
		t.Fatalf("assign role %s: %v", role, err)
	}
}

func CreateProject(t *testing.T, gdb *gorm.DB, ownerID uuid.UUID, title string) *model.Project {
	t.Helper()
	p := model.Project{Title: title, OwnerID: ownerID, Status: model.ProjectSubmitted, TeamName: title + " team"}
	if err := gdb.Create(&p).Error; err != nil {
		t.Fatalf("create project %s: %v", title, err)
	}
	return &p
}

// Token issues a short-lived JWT for handler tests.
func Token(t *testing.T, profileID uuid.UUID, name string) string {
	t.Helper()
	token, err := middleware.IssueToken(profileID, name, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}
