// internal/repository/survey_response.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/traininghub/internal/domain"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SurveyResponseRepositoryIface interface {
	Create(ctx context.Context, response *model.SurveyResponse) error
	FindBySurveyAndUser(ctx context.Context, surveyID, userID uuid.UUID) (*model.SurveyResponse, error)
	ListBySurvey(ctx context.Context, surveyID uuid.UUID) ([]*model.SurveyResponse, error)
}

type SurveyResponseRepository struct {
	db *gorm.DB
}

func NewSurveyResponseRepository(db *gorm.DB) *SurveyResponseRepository {
	return &SurveyResponseRepository{db: db}
}

// Create inserts the response and its answers in one transaction. A second response for the
// same (survey, user) pair fails on the unique index and is reported as domain.ErrDuplicateKey.
func (r *SurveyResponseRepository) Create(ctx context.Context, response *model.SurveyResponse) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(response).Error; err != nil {
			return err
		}

		if len(response.Answers) == 0 {
			return nil
		}
		for i := range response.Answers {
			response.Answers[i].ResponseID = response.ID
		}
		return tx.Omit(clause.Associations).Create(&response.Answers).Error
	})
	if err != nil {
		switch {
		case isDuplicateKey(err):
			return domain.ErrDuplicateKey
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: unknown survey, user or question", domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create survey response: %w", err)
	}
	return nil
}

func (r *SurveyResponseRepository) FindBySurveyAndUser(ctx context.Context, surveyID, userID uuid.UUID) (*model.SurveyResponse, error) {
	var response model.SurveyResponse
	result := r.db.WithContext(ctx).
		Where("survey_id = ? AND user_id = ?", surveyID, userID).
		First(&response)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find survey response: %w", result.Error)
	}
	return &response, nil
}

// ListBySurvey returns the responses to one survey with respondents and answered questions.
func (r *SurveyResponseRepository) ListBySurvey(ctx context.Context, surveyID uuid.UUID) ([]*model.SurveyResponse, error) {
	var responses []*model.SurveyResponse
	result := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "last_name", "department", "position")
		}).
		Preload("Answers").
		Preload("Answers.Question").
		Where("survey_id = ?", surveyID).
		Order("created_at ASC").
		Find(&responses)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list survey responses: %w", result.Error)
	}
	return responses, nil
}
