package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hackathon-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &p, nil
}

// Update lets an identity change its own display name and links. Profiles are
// never deleted.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, req model.ProfileUpdateRequest) (*model.Profile, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{"name": req.Name}
	if req.Links != nil {
		raw, err := json.Marshal(req.Links)
		if err != nil {
			return nil, fmt.Errorf("encode links: %w", err)
		}
		updates["links"] = datatypes.JSON(raw)
	}
	if err := s.db.WithContext(ctx).Model(p).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.Get(ctx, id)
}
