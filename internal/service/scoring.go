package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"hackathon-portal/internal/metrics"
	"hackathon-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// The six judging criteria and their weights. Weights sum to 1.0, so a judge
// who scores everything at 10 averages exactly 10.00.
const (
	CriterionInnovation   = "innovation"
	CriterionRelevance    = "relevance"
	CriterionFeasibility  = "feasibility"
	CriterionImpact       = "impact"
	CriterionPresentation = "presentation"
	CriterionDiversity    = "diversity"
)

var CriterionWeights = map[string]float64{
	CriterionInnovation:   0.25,
	CriterionRelevance:    0.20,
	CriterionFeasibility:  0.20,
	CriterionImpact:       0.15,
	CriterionPresentation: 0.15,
	CriterionDiversity:    0.05,
}

const (
	ScoreMin = 0
	ScoreMax = 10
)

// ErrIncompleteScores is returned when a save is attempted without all six
// criteria scored in range.
var ErrIncompleteScores = fmt.Errorf("%w: Please score all criteria (0-10)", ErrValidation)

type ScoringService struct {
	db    *gorm.DB
	roles *RoleService
}

func NewScoringService(db *gorm.DB, roles *RoleService) *ScoringService {
	return &ScoringService{db: db, roles: roles}
}

// JudgeAverage computes one judge's weighted average over the criteria
// actually present, dividing by the sum of present weights so a partial
// submission is not dragged down by missing entries. Unknown criterion names
// are ignored. The save path requires all six criteria, so the partial
// branch is only reachable for rows written before that rule existed.
func JudgeAverage(scores map[string]int) (float64, bool) {
	var sum, weight float64
	for name, score := range scores {
		w, ok := CriterionWeights[name]
		if !ok {
			continue
		}
		sum += float64(score) * w
		weight += w
	}
	if weight == 0 {
		return 0, false
	}
	return round2(sum / weight), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func validateScores(scores map[string]int) error {
	for name := range CriterionWeights {
		score, ok := scores[name]
		if !ok || score < ScoreMin || score > ScoreMax {
			return ErrIncompleteScores
		}
	}
	return nil
}

// SaveFeedback upserts one judge's scores for one project. Only judges and
// admins may write; a second save for the same (project, judge) pair replaces
// the first row.
func (s *ScoringService) SaveFeedback(ctx context.Context, projectID, judgeID uuid.UUID, req model.FeedbackRequest) (*model.JudgeFeedback, error) {
	switch s.roles.RoleFor(ctx, judgeID) {
	case model.RoleJudge, model.RoleAdmin:
	default:
		return nil, ErrNotPermitted
	}
	if err := validateScores(req.Scores); err != nil {
		return nil, err
	}

	var project model.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query project: %w", err)
	}

	avg, _ := JudgeAverage(req.Scores)
	raw, err := json.Marshal(req.Scores)
	if err != nil {
		return nil, fmt.Errorf("encode scores: %w", err)
	}

	var fb model.JudgeFeedback
	err = s.db.WithContext(ctx).
		Where("project_id = ? AND judge_id = ?", projectID, judgeID).
		First(&fb).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		fb = model.JudgeFeedback{
			ProjectID:     projectID,
			JudgeID:       judgeID,
			Scores:        datatypes.JSON(raw),
			PublicComment: req.PublicComment,
			PrivateNote:   req.PrivateNote,
			Average:       avg,
		}
		if err := s.db.WithContext(ctx).Create(&fb).Error; err != nil {
			return nil, fmt.Errorf("insert feedback: %w", err)
		}
		metrics.FeedbackSaved.Inc()
		return &fb, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}

	updates := map[string]interface{}{
		"scores":         datatypes.JSON(raw),
		"public_comment": req.PublicComment,
		"private_note":   req.PrivateNote,
		"average":        avg,
	}
	if err := s.db.WithContext(ctx).Model(&fb).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	metrics.FeedbackSaved.Inc()
	return &fb, nil
}

// PublicFeed returns every judge's comment paired with their average, with
// judge identity and private notes stripped.
func (s *ScoringService) PublicFeed(ctx context.Context, projectID uuid.UUID) ([]model.PublicFeedback, error) {
	var rows []model.JudgeFeedback
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}

	feed := make([]model.PublicFeedback, 0, len(rows))
	for _, r := range rows {
		feed = append(feed, model.PublicFeedback{
			PublicComment: r.PublicComment,
			Average:       r.Average,
		})
	}
	return feed, nil
}

// FullFeed returns the complete feedback rows, judge identity and private
// notes included. Judges and admins only; everyone else gets ErrNotPermitted
// regardless of how they reached the query.
func (s *ScoringService) FullFeed(ctx context.Context, actorID, projectID uuid.UUID) ([]model.FullFeedback, error) {
	switch s.roles.RoleFor(ctx, actorID) {
	case model.RoleJudge, model.RoleAdmin:
	default:
		return nil, ErrNotPermitted
	}

	var rows []model.JudgeFeedback
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}

	feed := make([]model.FullFeedback, 0, len(rows))
	for _, r := range rows {
		var judge model.Profile
		_ = s.db.WithContext(ctx).Select("id", "name").First(&judge, "id = ?", r.JudgeID).Error

		var scores map[string]int
		if len(r.Scores) > 0 {
			if err := json.Unmarshal(r.Scores, &scores); err != nil {
				return nil, fmt.Errorf("decode scores: %w", err)
			}
		}
		feed = append(feed, model.FullFeedback{
			JudgeID:       r.JudgeID,
			JudgeName:     judge.Name,
			Scores:        scores,
			Average:       r.Average,
			PublicComment: r.PublicComment,
			PrivateNote:   r.PrivateNote,
		})
	}
	return feed, nil
}

// OverallAverage is the unweighted mean of all judge averages for a project.
// Every judge counts equally. Returns ok=false when no judge has scored it.
func (s *ScoringService) OverallAverage(ctx context.Context, projectID uuid.UUID) (float64, bool, error) {
	var rows []model.JudgeFeedback
	err := s.db.WithContext(ctx).
		Select("average").
		Where("project_id = ?", projectID).
		Find(&rows).Error
	if err != nil {
		return 0, false, fmt.Errorf("query feedback: %w", err)
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	var sum float64
	for _, r := range rows {
		sum += r.Average
	}
	return round2(sum / float64(len(rows))), true, nil
}
