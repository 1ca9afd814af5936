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

type ProjectService struct {
	db    *gorm.DB
	roles *RoleService
}

func NewProjectService(db *gorm.DB, roles *RoleService) *ProjectService {
	return &ProjectService{db: db, roles: roles}
}

func (s *ProjectService) Create(ctx context.Context, ownerID uuid.UUID, req model.ProjectRequest) (*model.Project, error) {
	status := req.Status
	if status == "" {
		status = model.ProjectDraft
	}
	if status != model.ProjectDraft && status != model.ProjectSubmitted {
		return nil, fmt.Errorf("%w: bad status %q", ErrValidation, status)
	}

	// one submission per team, checked at submission time
	if req.TeamID != nil {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Project{}).
			Where("team_id = ?", *req.TeamID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("count team projects: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: team already has a project", ErrValidation)
		}
	}

	p := model.Project{
		Title:       req.Title,
		TeamName:    req.TeamName,
		TeamID:      req.TeamID,
		OwnerID:     ownerID,
		Description: req.Description,
		Problem:     req.Problem,
		Solution:    req.Solution,
		Learnings:   req.Learnings,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
		DeckURL:     req.DeckURL,
		Status:      status,
	}
	if len(req.TechStack) > 0 {
		raw, err := json.Marshal(req.TechStack)
		if err != nil {
			return nil, fmt.Errorf("encode tech stack: %w", err)
		}
		p.TechStack = datatypes.JSON(raw)
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &p, nil
}

// List returns submitted projects for everyone, plus the viewer's own drafts.
// Admins see everything.
func (s *ProjectService) List(ctx context.Context, viewerID uuid.UUID) ([]model.Project, error) {
	q := s.db.WithContext(ctx).Order("created_at desc")
	if !s.roles.HasRole(ctx, viewerID, model.RoleAdmin) {
		q = q.Where("status = ? OR owner_id = ?", model.ProjectSubmitted, viewerID)
	}
	var projects []model.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query project: %w", err)
	}
	return &p, nil
}

// Update is allowed for the owner, a member of the owning team, or an admin.
func (s *ProjectService) Update(ctx context.Context, actorID, id uuid.UUID, req model.ProjectRequest) (*model.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canEdit(ctx, actorID, p) {
		return nil, ErrNotPermitted
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"team_name":   req.TeamName,
		"description": req.Description,
		"problem":     req.Problem,
		"solution":    req.Solution,
		"learnings":   req.Learnings,
		"repo_url":    req.RepoURL,
		"demo_url":    req.DemoURL,
		"deck_url":    req.DeckURL,
	}
	if req.Status != "" {
		if req.Status != model.ProjectDraft && req.Status != model.ProjectSubmitted {
			return nil, fmt.Errorf("%w: bad status %q", ErrValidation, req.Status)
		}
		updates["status"] = req.Status
	}
	if req.TechStack != nil {
		raw, err := json.Marshal(req.TechStack)
		if err != nil {
			return nil, fmt.Errorf("encode tech stack: %w", err)
		}
		updates["tech_stack"] = datatypes.JSON(raw)
	}
	if err := s.db.WithContext(ctx).Model(p).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if !s.roles.HasRole(ctx, actorID, model.RoleAdmin) {
		return ErrNotPermitted
	}
	res := s.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProjectService) canEdit(ctx context.Context, actorID uuid.UUID, p *model.Project) bool {
	if actorID == p.OwnerID || s.roles.HasRole(ctx, actorID, model.RoleAdmin) {
		return true
	}
	if p.TeamID == nil {
		return false
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&model.TeamMember{}).
		Where("team_id = ? AND profile_id = ?", *p.TeamID, actorID).
		Count(&count).Error
	return err == nil && count > 0
}
