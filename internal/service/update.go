package service

import (
	"context"
	"fmt"

	"hackathon-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateService manages admin announcements.
type UpdateService struct {
	db    *gorm.DB
	roles *RoleService
}

func NewUpdateService(db *gorm.DB, roles *RoleService) *UpdateService {
	return &UpdateService{db: db, roles: roles}
}

func (s *UpdateService) List(ctx context.Context) ([]model.Update, error) {
	var updates []model.Update
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("query updates: %w", err)
	}
	return updates, nil
}

func (s *UpdateService) Create(ctx context.Context, actorID uuid.UUID, title, body string) (*model.Update, error) {
	if !s.roles.HasRole(ctx, actorID, model.RoleAdmin) {
		return nil, ErrNotPermitted
	}
	u := model.Update{Title: title, Body: body, AuthorID: actorID}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, fmt.Errorf("create update: %w", err)
	}
	return &u, nil
}

func (s *UpdateService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if !s.roles.HasRole(ctx, actorID, model.RoleAdmin) {
		return ErrNotPermitted
	}
	res := s.db.WithContext(ctx).Delete(&model.Update{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
