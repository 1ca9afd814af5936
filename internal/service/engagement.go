package service

import (
	"context"
	"errors"
	"fmt"

	"hackathon-portal/internal/logger"
	"hackathon-portal/internal/metrics"
	"hackathon-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EngagementService struct{ db *gorm.DB }

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// ToggleLike flips the (project, profile) like and adjusts the counter in the
// same transaction, so concurrent toggles from the same identity cannot drift
// the count. The unique index on (project_id, profile_id) rejects the losing
// insert of a race; the delete side only decrements when it actually removed
// a row, since under READ COMMITTED a raced unlike can complete a 0-row
// delete without error.
func (s *EngagementService) ToggleLike(ctx context.Context, projectID, profileID uuid.UUID) (*model.LikeResponse, error) {
	var resp model.LikeResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project model.Project
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("query project: %w", err)
		}

		var like model.Like
		err := tx.Where("project_id = ? AND profile_id = ?", projectID, profileID).First(&like).Error

		switch {
		case err == nil:
			res := tx.Where("project_id = ? AND profile_id = ?", projectID, profileID).
				Delete(&model.Like{})
			if res.Error != nil {
				return fmt.Errorf("delete like: %w", res.Error)
			}
			if res.RowsAffected == 1 {
				if err := tx.Model(&model.Project{}).Where("id = ?", projectID).
					UpdateColumn("likes", gorm.Expr("likes - ?", 1)).Error; err != nil {
					return fmt.Errorf("decrement likes: %w", err)
				}
			}
			resp.Liked = false

		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.Like{ProjectID: projectID, ProfileID: profileID}).Error; err != nil {
				return fmt.Errorf("insert like: %w", err)
			}
			if err := tx.Model(&model.Project{}).Where("id = ?", projectID).
				UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error; err != nil {
				return fmt.Errorf("increment likes: %w", err)
			}
			resp.Liked = true

		default:
			return fmt.Errorf("query like: %w", err)
		}

		// report the counter as written, not the snapshot from transaction start
		var fresh model.Project
		if err := tx.Select("likes").First(&fresh, "id = ?", projectID).Error; err != nil {
			return fmt.Errorf("reread likes: %w", err)
		}
		resp.TotalLikes = fresh.Likes
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.LikesToggled.Inc()
	return &resp, nil
}

// RecordView appends a view row and bumps the counter. Views are best-effort:
// repeated views from one identity all count, and failures are logged rather
// than surfaced (callers treat views as non-critical).
func (s *EngagementService) RecordView(ctx context.Context, projectID uuid.UUID, profileID *uuid.UUID, origin string) (int, error) {
	var total int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project model.Project
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("query project: %w", err)
		}
		view := model.View{ProjectID: projectID, ProfileID: profileID, Origin: origin}
		if err := tx.Create(&view).Error; err != nil {
			return fmt.Errorf("insert view: %w", err)
		}
		if err := tx.Model(&model.Project{}).Where("id = ?", projectID).
			UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
			return fmt.Errorf("increment views: %w", err)
		}
		total = project.Views + 1
		return nil
	})
	if err != nil {
		metrics.ViewsDropped.Inc()
		logger.Warn("view.record_failed", "project_id", projectID, "err", err)
		return 0, err
	}
	metrics.ViewsRecorded.Inc()
	return total, nil
}
