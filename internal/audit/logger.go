package audit

import (
	"context"
	"net/http"

	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/go-chi/chi/v5/middleware"
)

// Logger defines the interface for auditing access decisions
type Logger interface {
	// LogRoleCheck logs the outcome of a route-level role gate
	LogRoleCheck(
		ctx context.Context,
		subject model.Subject,
		required model.Role,
		resource string,
		result bool,
	) error

	// LogOwnershipCheck logs the outcome of a per-record ownership check
	LogOwnershipCheck(
		ctx context.Context,
		subject model.Subject,
		resource model.Resource,
		result bool,
	) error
}

// RequestInfo is the part of an HTTP request kept on audit records.
type RequestInfo struct {
	RequestID string
	ClientIP  string
	UserAgent string
}

type requestInfoKey struct{}

// WithRequest stores the request metadata of r in ctx.
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, RequestInfo{
		RequestID: middleware.GetReqID(ctx),
		ClientIP:  r.RemoteAddr,
		UserAgent: r.UserAgent(),
	})
}

func RequestFrom(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogRoleCheck implements Logger.LogRoleCheck
func (l *NoOpLogger) LogRoleCheck(
	ctx context.Context,
	subject model.Subject,
	required model.Role,
	resource string,
	result bool,
) error {
	return nil
}

// LogOwnershipCheck implements Logger.LogOwnershipCheck
func (l *NoOpLogger) LogOwnershipCheck(
	ctx context.Context,
	subject model.Subject,
	resource model.Resource,
	result bool,
) error {
	return nil
}
