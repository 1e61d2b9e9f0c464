// internal/repository/training_application.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/traininghub/internal/domain"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationFilter narrows a listing. Zero values do not filter.
type ApplicationFilter struct {
	UserID   *uuid.UUID
	Status   model.ApplicationStatus
	Type     model.ApplicationType
	Priority model.Priority
}

type ApplicationTypeCount struct {
	ApplicationType model.ApplicationType `json:"applicationType"`
	Count           int64                 `json:"count"`
}

type ApplicationPriorityCount struct {
	Priority model.Priority `json:"priority"`
	Count    int64          `json:"count"`
}

type TrainingApplicationRepositoryIface interface {
	Create(ctx context.Context, application *model.TrainingApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TrainingApplication, error)
	List(ctx context.Context, filter ApplicationFilter) ([]*model.TrainingApplication, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, status model.ApplicationStatus) (int64, error)
	CountByType(ctx context.Context) ([]ApplicationTypeCount, error)
	CountByPriority(ctx context.Context) ([]ApplicationPriorityCount, error)
	Recent(ctx context.Context, limit int) ([]*model.TrainingApplication, error)
}

type TrainingApplicationRepository struct {
	db *gorm.DB
}

func NewTrainingApplicationRepository(db *gorm.DB) *TrainingApplicationRepository {
	return &TrainingApplicationRepository{db: db}
}

func (r *TrainingApplicationRepository) Create(ctx context.Context, application *model.TrainingApplication) error {
	result := r.db.WithContext(ctx).Omit("User").Create(application)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return fmt.Errorf("%w: unknown applicant", domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create training application: %w", result.Error)
	}
	return nil
}

// FindByID loads one application with the applicant's display fields.
func (r *TrainingApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TrainingApplication, error) {
	var application model.TrainingApplication
	result := r.db.WithContext(ctx).
		Preload("User", applicantColumns).
		First(&application, "id = ?", id)
	if result.Error != nil {
		if isNotFound(result.Error) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find training application: %w", result.Error)
	}
	return &application, nil
}

// List returns matching applications, most recently submitted first.
func (r *TrainingApplicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]*model.TrainingApplication, error) {
	query := r.db.WithContext(ctx).Model(&model.TrainingApplication{})

	// Apply filters
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("application_type = ?", filter.Type)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var applications []*model.TrainingApplication
	result := query.
		Preload("User", applicantColumns).
		Order("submitted_at DESC").
		Find(&applications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list training applications: %w", result.Error)
	}
	return applications, nil
}

// UpdateFields writes the given columns in a single UPDATE.
func (r *TrainingApplicationRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.TrainingApplication{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update training application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *TrainingApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TrainingApplication{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete training application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// Count counts applications in the given status, or all of them when status is empty.
func (r *TrainingApplicationRepository) Count(ctx context.Context, status model.ApplicationStatus) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.TrainingApplication{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count training applications: %w", err)
	}
	return count, nil
}

func (r *TrainingApplicationRepository) CountByType(ctx context.Context) ([]ApplicationTypeCount, error) {
	var rows []ApplicationTypeCount
	if err := r.db.WithContext(ctx).Model(&model.TrainingApplication{}).
		Select("application_type, COUNT(*) AS count").
		Group("application_type").
		Order("application_type").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group training applications by type: %w", err)
	}
	return rows, nil
}

func (r *TrainingApplicationRepository) CountByPriority(ctx context.Context) ([]ApplicationPriorityCount, error) {
	var rows []ApplicationPriorityCount
	if err := r.db.WithContext(ctx).Model(&model.TrainingApplication{}).
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Order("priority").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group training applications by priority: %w", err)
	}
	return rows, nil
}

// Recent returns the latest submissions with applicant names and departments.
func (r *TrainingApplicationRepository) Recent(ctx context.Context, limit int) ([]*model.TrainingApplication, error) {
	var applications []*model.TrainingApplication
	result := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "last_name", "department")
		}).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&applications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent training applications: %w", result.Error)
	}
	return applications, nil
}
