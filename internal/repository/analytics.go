// internal/repository/analytics.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type SurveyResponseCount struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Responses int64     `json:"responses"`
}

// AnalyticsRepositoryIface exposes the independent read queries behind the dashboard.
type AnalyticsRepositoryIface interface {
	CountUsers(ctx context.Context) (int64, error)
	CountSurveys(ctx context.Context, status model.SurveyStatus) (int64, error)
	CountResponses(ctx context.Context) (int64, error)
	UsersByDepartment(ctx context.Context) ([]DepartmentCount, error)
	TopActiveSurveys(ctx context.Context, limit int) ([]SurveyResponseCount, error)
	RecentResponses(ctx context.Context, limit int) ([]*model.SurveyResponse, error)
}

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountSurveys counts surveys in status, or all surveys when status is empty.
func (r *AnalyticsRepository) CountSurveys(ctx context.Context, status model.SurveyStatus) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Survey{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count surveys: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepository) CountResponses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.SurveyResponse{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count survey responses: %w", err)
	}
	return count, nil
}

// UsersByDepartment groups users with a department set; users without one are not counted.
func (r *AnalyticsRepository) UsersByDepartment(ctx context.Context) ([]DepartmentCount, error) {
	var rows []DepartmentCount
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("department, COUNT(*) AS count").
		Where("department IS NOT NULL").
		Group("department").
		Order("department").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group users by department: %w", err)
	}
	return rows, nil
}

func (r *AnalyticsRepository) TopActiveSurveys(ctx context.Context, limit int) ([]SurveyResponseCount, error) {
	var rows []SurveyResponseCount
	if err := r.db.WithContext(ctx).Model(&model.Survey{}).
		Select("surveys.id, surveys.title, COUNT(survey_responses.id) AS responses").
		Joins("LEFT JOIN survey_responses ON survey_responses.survey_id = surveys.id").
		Where("surveys.status = ?", model.SurveyActive).
		Group("surveys.id, surveys.title").
		Order("responses DESC, surveys.title ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to rank active surveys: %w", err)
	}
	return rows, nil
}

// RecentResponses returns the latest responses with respondent names and survey titles.
func (r *AnalyticsRepository) RecentResponses(ctx context.Context, limit int) ([]*model.SurveyResponse, error) {
	var responses []*model.SurveyResponse
	result := r.db.WithContext(ctx).
		Preload("User", displayNameColumns).
		Preload("Survey", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title")
		}).
		Order("created_at DESC").
		Limit(limit).
		Find(&responses)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent survey responses: %w", result.Error)
	}
	return responses, nil
}
