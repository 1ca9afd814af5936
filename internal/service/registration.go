package service

import (
	"context"
	"encoding/json"
	"fmt"

	"hackathon-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const MaxRegistrationMembers = 4

// RegistrationService records team intent captured before accounts are linked.
type RegistrationService struct {
	db    *gorm.DB
	roles *RoleService
}

func NewRegistrationService(db *gorm.DB, roles *RoleService) *RegistrationService {
	return &RegistrationService{db: db, roles: roles}
}

func (s *RegistrationService) Create(ctx context.Context, profileID uuid.UUID, req model.RegistrationRequest) (*model.Registration, error) {
	if len(req.Members) > MaxRegistrationMembers {
		return nil, fmt.Errorf("%w: at most %d members", ErrValidation, MaxRegistrationMembers)
	}
	r := model.Registration{ProfileID: profileID, TeamName: req.TeamName}
	if len(req.Members) > 0 {
		raw, err := json.Marshal(req.Members)
		if err != nil {
			return nil, fmt.Errorf("encode members: %w", err)
		}
		r.Members = datatypes.JSON(raw)
	}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return &r, nil
}

// List returns the actor's own registrations; admins see all of them.
func (s *RegistrationService) List(ctx context.Context, actorID uuid.UUID) ([]model.Registration, error) {
	q := s.db.WithContext(ctx).Order("created_at desc")
	if !s.roles.HasRole(ctx, actorID, model.RoleAdmin) {
		q = q.Where("profile_id = ?", actorID)
	}
	var regs []model.Registration
	if err := q.Find(&regs).Error; err != nil {
		return nil, fmt.Errorf("query registrations: %w", err)
	}
	return regs, nil
}
