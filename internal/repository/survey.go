// internal/repository/survey.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/traininghub/internal/domain"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyCounts holds the per-survey relation counts shown in survey listings.
type SurveyCounts struct {
	Responses int64 `json:"responses"`
	Questions int64 `json:"questions"`
}

type SurveyRepositoryIface interface {
	Create(ctx context.Context, survey *model.Survey) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Survey, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*model.Survey, error)
	Counts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]SurveyCounts, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.SurveyStatus) error
}

type SurveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// Create inserts the survey together with its questions.
func (r *SurveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	result := r.db.WithContext(ctx).Omit("CreatedBy").Create(survey)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return fmt.Errorf("%w: unknown creator", domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create survey: %w", result.Error)
	}
	return nil
}

// FindByID loads a survey with its questions in display order and the creator's name.
func (r *SurveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Survey, error) {
	var survey model.Survey
	result := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("CreatedBy", displayNameColumns).
		First(&survey, "id = ?", id)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to find survey: %w", result.Error)
	}
	return &survey, nil
}

func (r *SurveyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Survey{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check survey: %w", err)
	}
	return count > 0, nil
}

// List returns every survey, newest first, with the creator's name.
func (r *SurveyRepository) List(ctx context.Context) ([]*model.Survey, error) {
	var surveys []*model.Survey
	result := r.db.WithContext(ctx).
		Preload("CreatedBy", displayNameColumns).
		Order("created_at DESC").
		Find(&surveys)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", result.Error)
	}
	return surveys, nil
}

type surveyCountRow struct {
	SurveyID uuid.UUID
	Count    int64
}

// Counts returns response and question totals keyed by survey. Surveys without rows are absent.
func (r *SurveyRepository) Counts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]SurveyCounts, error) {
	counts := make(map[uuid.UUID]SurveyCounts, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var responses []surveyCountRow
	if err := r.db.WithContext(ctx).Model(&model.SurveyResponse{}).
		Select("survey_id, COUNT(*) AS count").
		Where("survey_id IN ?", ids).
		Group("survey_id").
		Scan(&responses).Error; err != nil {
		return nil, fmt.Errorf("failed to count survey responses: %w", err)
	}

	var questions []surveyCountRow
	if err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("survey_id, COUNT(*) AS count").
		Where("survey_id IN ?", ids).
		Group("survey_id").
		Scan(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to count survey questions: %w", err)
	}

	for _, row := range responses {
		c := counts[row.SurveyID]
		c.Responses = row.Count
		counts[row.SurveyID] = c
	}
	for _, row := range questions {
		c := counts[row.SurveyID]
		c.Questions = row.Count
		counts[row.SurveyID] = c
	}
	return counts, nil
}

func (r *SurveyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.SurveyStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Survey{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update survey status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSurveyNotFound
	}
	return nil
}
