package service

import (
	"context"
	"errors"
	"fmt"

	"hackathon-portal/internal/logger"
	"hackathon-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleService resolves an identity to exactly one portal role.
//
// Resolution is fail-open: a missing assignment, an invalid stored value, or a
// lookup error all resolve to RoleUser. Callers therefore degrade to
// unprivileged access instead of blocking. This mirrors the behavior the rest
// of the system was built against; see DESIGN.md before tightening it.
type RoleService struct{ db *gorm.DB }

func NewRoleService(db *gorm.DB) *RoleService { return &RoleService{db: db} }

func (s *RoleService) RoleFor(ctx context.Context, profileID uuid.UUID) model.Role {
	if profileID == uuid.Nil {
		return model.RoleUser
	}
	var ra model.RoleAssignment
	err := s.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&ra).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("role.lookup_failed", "profile_id", profileID, "err", err)
		}
		return model.RoleUser
	}
	if !ra.Role.Valid() {
		logger.Warn("role.invalid_assignment", "profile_id", profileID, "role", ra.Role)
		return model.RoleUser
	}
	return ra.Role
}

func (s *RoleService) HasRole(ctx context.Context, profileID uuid.UUID, role model.Role) bool {
	return s.RoleFor(ctx, profileID) == role
}

// Assign sets or replaces a profile's role. Admin only.
func (s *RoleService) Assign(ctx context.Context, actorID, profileID uuid.UUID, role model.Role) error {
	if !s.HasRole(ctx, actorID, model.RoleAdmin) {
		return ErrNotPermitted
	}
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	var existing model.RoleAssignment
	err := s.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.WithContext(ctx).Create(&model.RoleAssignment{ProfileID: profileID, Role: role}).Error
	}
	if err != nil {
		return fmt.Errorf("query assignment: %w", err)
	}
	return s.db.WithContext(ctx).Model(&existing).Update("role", role).Error
}
