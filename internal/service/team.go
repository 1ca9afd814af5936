package service

import (
	"context"
	"errors"
	"fmt"

	"hackathon-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultMaxMembers = 5

type TeamService struct {
	db    *gorm.DB
	roles *RoleService
}

func NewTeamService(db *gorm.DB, roles *RoleService) *TeamService {
	return &TeamService{db: db, roles: roles}
}

// Create makes the team and its owner membership in one transaction. The
// owner membership is immutable and unique per team.
func (s *TeamService) Create(ctx context.Context, ownerID uuid.UUID, req model.TeamRequest) (*model.Team, error) {
	maxMembers := req.MaxMembers
	if maxMembers <= 0 {
		maxMembers = DefaultMaxMembers
	}
	team := model.Team{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
		MaxMembers:  maxMembers,
		Active:      true,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return fmt.Errorf("create team: %w", err)
		}
		return tx.Create(&model.TeamMember{
			TeamID:    team.ID,
			ProfileID: ownerID,
			Role:      model.TeamRoleOwner,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := s.db.WithContext(ctx).Where("active = ?", true).Order("created_at").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, id uuid.UUID) (*model.Team, []model.TeamMember, error) {
	var team model.Team
	if err := s.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("query team: %w", err)
	}
	var members []model.TeamMember
	if err := s.db.WithContext(ctx).Where("team_id = ?", id).Order("created_at").Find(&members).Error; err != nil {
		return nil, nil, fmt.Errorf("query members: %w", err)
	}
	return &team, members, nil
}

// AddMember requires the actor to be the team owner or a team admin, and
// enforces the member cap inside the transaction.
func (s *TeamService) AddMember(ctx context.Context, actorID, teamID uuid.UUID, req model.AddMemberRequest) (*model.TeamMember, error) {
	role := req.Role
	if role == "" {
		role = model.TeamRoleMember
	}
	if role == model.TeamRoleOwner {
		return nil, fmt.Errorf("%w: owner role is assigned at team creation", ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown team role %q", ErrValidation, role)
	}

	var member model.TeamMember
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team model.Team
		if err := tx.First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("query team: %w", err)
		}
		if !s.canManage(tx, actorID, &team) {
			return ErrNotPermitted
		}

		var count int64
		if err := tx.Model(&model.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
			return fmt.Errorf("count members: %w", err)
		}
		if int(count) >= team.MaxMembers {
			return fmt.Errorf("%w: team is full (%d members max)", ErrValidation, team.MaxMembers)
		}

		member = model.TeamMember{TeamID: teamID, ProfileID: req.ProfileID, Role: role}
		if err := tx.Create(&member).Error; err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveMember is allowed for the team owner, a team admin, or the member
// removing themselves. The owner can never be removed.
func (s *TeamService) RemoveMember(ctx context.Context, actorID, teamID, profileID uuid.UUID) error {
	var team model.Team
	if err := s.db.WithContext(ctx).First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("query team: %w", err)
	}
	if profileID == team.OwnerID {
		return fmt.Errorf("%w: cannot remove the team owner", ErrValidation)
	}
	if actorID != profileID && !s.canManage(s.db.WithContext(ctx), actorID, &team) {
		return ErrNotPermitted
	}
	res := s.db.WithContext(ctx).
		Where("team_id = ? AND profile_id = ?", teamID, profileID).
		Delete(&model.TeamMember{})
	if res.Error != nil {
		return fmt.Errorf("remove member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TeamService) canManage(tx *gorm.DB, actorID uuid.UUID, team *model.Team) bool {
	if actorID == team.OwnerID {
		return true
	}
	var m model.TeamMember
	err := tx.Where("team_id = ? AND profile_id = ?", team.ID, actorID).First(&m).Error
	return err == nil && (m.Role == model.TeamRoleOwner || m.Role == model.TeamRoleAdmin)
}
