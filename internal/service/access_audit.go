package service

import (
	"context"
	"time"

	"github.com/dangerclosesec/traininghub/internal/audit"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/repository"
)

// Ensure AccessAuditService implements the audit.Logger interface
var _ audit.Logger = (*AccessAuditService)(nil)

// AccessAuditStore is the persistence used by AccessAuditService.
type AccessAuditStore interface {
	Create(ctx context.Context, log *model.AccessAuditLog) error
	Query(ctx context.Context, params repository.QueryParams) ([]model.AccessAuditLog, int64, error)
}

// AccessAuditService records access decisions and serves the audit trail
type AccessAuditService struct {
	repo AccessAuditStore
}

func NewAccessAuditService(repo AccessAuditStore) *AccessAuditService {
	return &AccessAuditService{repo: repo}
}

// LogRoleCheck logs a role gate decision
func (s *AccessAuditService) LogRoleCheck(
	ctx context.Context,
	subject model.Subject,
	required model.Role,
	resource string,
	result bool,
) error {
	log := &model.AccessAuditLog{
		Action:       model.ActionRoleCheck,
		Result:       &result,
		SubjectID:    subject.ID,
		SubjectRole:  string(subject.Role),
		Resource:     resource,
		RequiredRole: string(required),
		Timestamp:    time.Now().UTC(),
	}
	withRequest(ctx, log)

	return s.repo.Create(ctx, log)
}

// LogOwnershipCheck logs a record ownership decision
func (s *AccessAuditService) LogOwnershipCheck(
	ctx context.Context,
	subject model.Subject,
	resource model.Resource,
	result bool,
) error {
	log := &model.AccessAuditLog{
		Action:      model.ActionOwnershipCheck,
		Result:      &result,
		SubjectID:   subject.ID,
		SubjectRole: string(subject.Role),
		Resource:    resource.Type,
		ResourceID:  resource.ID,
		Timestamp:   time.Now().UTC(),
	}
	withRequest(ctx, log)

	return s.repo.Create(ctx, log)
}

// Query returns audit entries matching params, newest first, and the total match count.
func (s *AccessAuditService) Query(ctx context.Context, params repository.QueryParams) ([]model.AccessAuditLog, int64, error) {
	return s.repo.Query(ctx, params)
}

func withRequest(ctx context.Context, log *model.AccessAuditLog) {
	if info, ok := audit.RequestFrom(ctx); ok {
		log.RequestID = info.RequestID
		log.ClientIP = info.ClientIP
		log.UserAgent = info.UserAgent
	}
}
