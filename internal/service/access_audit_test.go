package service_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/dangerclosesec/traininghub/internal/audit"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/dangerclosesec/traininghub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryAuditStore struct {
	logs []*model.AccessAuditLog
}

func (m *memoryAuditStore) Create(ctx context.Context, log *model.AccessAuditLog) error {
	m.logs = append(m.logs, log)
	return nil
}

func (m *memoryAuditStore) Query(ctx context.Context, params repository.QueryParams) ([]model.AccessAuditLog, int64, error) {
	out := make([]model.AccessAuditLog, 0, len(m.logs))
	for _, l := range m.logs {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func TestAccessAuditService(t *testing.T) {
	store := &memoryAuditStore{}
	svc := service.NewAccessAuditService(store)

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("User-Agent", "audit-test")
	ctx := audit.WithRequest(context.Background(), req)

	subject := model.Subject{ID: "u-1", Role: model.RoleEmployee}
	require.NoError(t, svc.LogRoleCheck(ctx, subject, model.RoleAdmin, "GET /api/users", false))
	require.NoError(t, svc.LogOwnershipCheck(ctx, subject, model.Resource{Type: "training_application", ID: "a-1"}, false))

	logs, total, err := svc.Query(ctx, repository.QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	role := logs[0]
	assert.Equal(t, model.ActionRoleCheck, role.Action)
	assert.Equal(t, "ADMIN", role.RequiredRole)
	assert.Equal(t, "EMPLOYEE", role.SubjectRole)
	require.NotNil(t, role.Result)
	assert.False(t, *role.Result)
	assert.Equal(t, "audit-test", role.UserAgent)
	assert.False(t, role.Timestamp.IsZero())

	ownership := logs[1]
	assert.Equal(t, model.ActionOwnershipCheck, ownership.Action)
	assert.Equal(t, "training_application", ownership.Resource)
	assert.Equal(t, "a-1", ownership.ResourceID)
}
