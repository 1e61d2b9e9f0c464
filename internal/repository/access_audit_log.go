// internal/repository/access_audit_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/traininghub/internal/model"
	"gorm.io/gorm"
)

// AccessAuditLogRepository handles database operations for access audit logs
type AccessAuditLogRepository struct {
	db *gorm.DB
}

func NewAccessAuditLogRepository(db *gorm.DB) *AccessAuditLogRepository {
	return &AccessAuditLogRepository{db: db}
}

// Create inserts a new audit log entry
func (r *AccessAuditLogRepository) Create(ctx context.Context, log *model.AccessAuditLog) error {
	result := r.db.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create access audit log: %w", result.Error)
	}
	return nil
}

// MaxAuditLogLimit is the default and largest page size of Query.
const MaxAuditLogLimit = 100

// QueryParams holds parameters for querying audit logs
type QueryParams struct {
	Action    string
	Resource  string
	SubjectID string
	Result    *bool
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}

// Query retrieves audit logs based on the provided query parameters
func (r *AccessAuditLogRepository) Query(ctx context.Context, params QueryParams) ([]model.AccessAuditLog, int64, error) {
	var logs []model.AccessAuditLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.AccessAuditLog{})

	// Apply filters
	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.Resource != "" {
		query = query.Where("resource = ?", params.Resource)
	}
	if params.SubjectID != "" {
		query = query.Where("subject_id = ?", params.SubjectID)
	}
	if params.Result != nil {
		query = query.Where("result = ?", *params.Result)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	// Get total count for pagination
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count access audit logs: %w", err)
	}

	limit := params.Limit
	if limit <= 0 || limit > MaxAuditLogLimit {
		limit = MaxAuditLogLimit
	}
	query = query.Limit(limit)
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("timestamp DESC").Find(&logs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query access audit logs: %w", result.Error)
	}

	return logs, count, nil
}
