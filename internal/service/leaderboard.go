package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"hackathon-portal/internal/metrics"
	"hackathon-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaderboardService struct {
	db    *gorm.DB
	roles *RoleService
}

func NewLeaderboardService(db *gorm.DB, roles *RoleService) *LeaderboardService {
	return &LeaderboardService{db: db, roles: roles}
}

// Rank orders every project with at least one feedback row by its overall
// average, descending. Projects nobody has scored are excluded. Ties break on
// project id ascending so the order is stable across storage backends.
func (s *LeaderboardService) Rank(ctx context.Context, actorID uuid.UUID) ([]model.LeaderboardEntry, error) {
	if !s.roles.HasRole(ctx, actorID, model.RoleAdmin) {
		return nil, ErrNotPermitted
	}
	return s.rank(ctx, false)
}

// PublicRank is the non-admin variant: same ranking, restricted to submitted
// projects. Any authenticated identity may read it.
func (s *LeaderboardService) PublicRank(ctx context.Context) ([]model.LeaderboardEntry, error) {
	return s.rank(ctx, true)
}

func (s *LeaderboardService) rank(ctx context.Context, submittedOnly bool) ([]model.LeaderboardEntry, error) {
	var rows []model.JudgeFeedback
	if err := s.db.WithContext(ctx).Select("project_id", "average").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}

	type agg struct {
		sum float64
		n   int
	}
	byProject := map[uuid.UUID]*agg{}
	for _, r := range rows {
		a := byProject[r.ProjectID]
		if a == nil {
			a = &agg{}
			byProject[r.ProjectID] = a
		}
		a.sum += r.Average
		a.n++
	}
	if len(byProject) == 0 {
		return []model.LeaderboardEntry{}, nil
	}

	ids := make([]uuid.UUID, 0, len(byProject))
	for id := range byProject {
		ids = append(ids, id)
	}
	q := s.db.WithContext(ctx).Where("id IN ?", ids)
	if submittedOnly {
		q = q.Where("status = ?", model.ProjectSubmitted)
	}
	var projects []model.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(projects))
	for _, p := range projects {
		a := byProject[p.ID]
		entries = append(entries, model.LeaderboardEntry{
			ProjectID:   p.ID,
			ProjectName: p.Title,
			TeamName:    p.TeamName,
			ProjectAvg:  round2(a.sum / float64(a.n)),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ProjectAvg != entries[j].ProjectAvg {
			return entries[i].ProjectAvg > entries[j].ProjectAvg
		}
		return bytes.Compare(entries[i].ProjectID[:], entries[j].ProjectID[:]) < 0
	})

	metrics.LeaderboardQueries.Inc()
	return entries, nil
}
