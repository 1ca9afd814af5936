package service

import (
	"context"
	"errors"
	"fmt"

	"hackathon-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Input-layer caps on thread content. These guard the API surface; the
// storage layer does not re-enforce them.
const (
	MaxTitleLen = 200
	MaxBodyLen  = 2000
)

type DiscussionService struct {
	db    *gorm.DB
	roles *RoleService
}

func NewDiscussionService(db *gorm.DB, roles *RoleService) *DiscussionService {
	return &DiscussionService{db: db, roles: roles}
}

func (s *DiscussionService) CreateThread(ctx context.Context, authorID uuid.UUID, title, body string) (*model.Discussion, error) {
	if title == "" || len(title) > MaxTitleLen {
		return nil, fmt.Errorf("%w: title must be 1-%d characters", ErrValidation, MaxTitleLen)
	}
	if len(body) > MaxBodyLen {
		return nil, fmt.Errorf("%w: body must be at most %d characters", ErrValidation, MaxBodyLen)
	}
	d := model.Discussion{Title: title, Body: body, AuthorID: authorID}
	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, fmt.Errorf("create discussion: %w", err)
	}
	return &d, nil
}

func (s *DiscussionService) ListThreads(ctx context.Context) ([]model.Discussion, error) {
	var threads []model.Discussion
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&threads).Error; err != nil {
		return nil, fmt.Errorf("query discussions: %w", err)
	}
	return threads, nil
}

func (s *DiscussionService) GetThread(ctx context.Context, id uuid.UUID) (*model.Discussion, []model.Reply, error) {
	var d model.Discussion
	if err := s.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("query discussion: %w", err)
	}
	var replies []model.Reply
	if err := s.db.WithContext(ctx).
		Where("discussion_id = ?", id).Order("created_at").Find(&replies).Error; err != nil {
		return nil, nil, fmt.Errorf("query replies: %w", err)
	}
	return &d, replies, nil
}

// DeleteThread removes a thread if the actor authored it or is an admin.
// Replies go with it via the storage-level cascade.
func (s *DiscussionService) DeleteThread(ctx context.Context, actorID, id uuid.UUID) error {
	var d model.Discussion
	if err := s.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("query discussion: %w", err)
	}
	if actorID != d.AuthorID && !s.roles.HasRole(ctx, actorID, model.RoleAdmin) {
		return ErrNotPermitted
	}
	if err := s.db.WithContext(ctx).Delete(&d).Error; err != nil {
		return fmt.Errorf("delete discussion: %w", err)
	}
	return nil
}

func (s *DiscussionService) CreateReply(ctx context.Context, authorID, discussionID uuid.UUID, body string) (*model.Reply, error) {
	if body == "" || len(body) > MaxBodyLen {
		return nil, fmt.Errorf("%w: body must be 1-%d characters", ErrValidation, MaxBodyLen)
	}

	var reply model.Reply
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d model.Discussion
		if err := tx.First(&d, "id = ?", discussionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("query discussion: %w", err)
		}
		reply = model.Reply{DiscussionID: discussionID, Body: body, AuthorID: authorID}
		if err := tx.Create(&reply).Error; err != nil {
			return fmt.Errorf("create reply: %w", err)
		}
		return tx.Model(&model.Discussion{}).Where("id = ?", discussionID).
			UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (s *DiscussionService) DeleteReply(ctx context.Context, actorID, id uuid.UUID) error {
	var r model.Reply
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("query reply: %w", err)
	}
	if actorID != r.AuthorID && !s.roles.HasRole(ctx, actorID, model.RoleAdmin) {
		return ErrNotPermitted
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&r).Error; err != nil {
			return fmt.Errorf("delete reply: %w", err)
		}
		return tx.Model(&model.Discussion{}).Where("id = ?", r.DiscussionID).
			UpdateColumn("reply_count", gorm.Expr("reply_count - ?", 1)).Error
	})
}
