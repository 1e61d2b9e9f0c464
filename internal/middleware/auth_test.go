package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleCheck struct {
	subject  model.Subject
	required model.Role
	resource string
	result   bool
}

type recordingAuditor struct {
	roleChecks []roleCheck
}

func (a *recordingAuditor) LogRoleCheck(ctx context.Context, subject model.Subject, required model.Role, resource string, result bool) error {
	a.roleChecks = append(a.roleChecks, roleCheck{subject, required, resource, result})
	return nil
}

func (a *recordingAuditor) LogOwnershipCheck(ctx context.Context, subject model.Subject, resource model.Resource, result bool) error {
	return nil
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("middleware-secret", time.Hour)
	userID := uuid.New()
	valid, err := tm.Generate(userID, model.RoleEmployee)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: `{"error":"No token provided"}`},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Invalid authorization header"}`},
		{name: "no token after scheme", header: "Bearer", wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Invalid authorization header"}`},
		{name: "bad token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Invalid token"}`},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var got auth.Principal
			h := AuthMiddleware(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, _ = auth.PrincipalFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/surveys", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				assert.False(t, called, "handler must not run")
				return
			}
			assert.True(t, called)
			assert.Equal(t, userID, got.UserID)
			assert.Equal(t, model.RoleEmployee, got.Role)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       model.Role
		min        model.Role
		wantStatus int
		wantBody   string
	}{
		{name: "employee on manager route", role: model.RoleEmployee, min: model.RoleManager, wantStatus: http.StatusForbidden, wantBody: `{"error":"Manager access required"}`},
		{name: "manager on admin route", role: model.RoleManager, min: model.RoleAdmin, wantStatus: http.StatusForbidden, wantBody: `{"error":"Admin access required"}`},
		{name: "manager on manager route", role: model.RoleManager, min: model.RoleManager, wantStatus: http.StatusOK},
		{name: "admin on manager route", role: model.RoleAdmin, min: model.RoleManager, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditor := &recordingAuditor{}
			var called bool
			h := RequireRole(tt.min, auditor)(okHandler(&called))

			subject := uuid.New()
			req := httptest.NewRequest(http.MethodPut, "/api/training/x/status", nil)
			req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{UserID: subject, Role: tt.role}))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, called)
				assert.Empty(t, auditor.roleChecks)
				return
			}

			assert.False(t, called)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			require.Len(t, auditor.roleChecks, 1)
			assert.Equal(t, roleCheck{
				subject:  model.Subject{ID: subject.String(), Role: tt.role},
				required: tt.min,
				resource: "PUT /api/training/x/status",
				result:   false,
			}, auditor.roleChecks[0])
		})
	}
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	var called bool
	h := RequireRole(model.RoleEmployee, nil)(okHandler(&called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"path":"/health"`)
}
