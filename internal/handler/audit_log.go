package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/dangerclosesec/traininghub/internal/service"
)

// AuditLogHandler serves the access audit trail
type AuditLogHandler struct {
	auditService *service.AccessAuditService
}

func NewAuditLogHandler(auditService *service.AccessAuditService) *AuditLogHandler {
	return &AuditLogHandler{auditService: auditService}
}

type AuditLogsResponse struct {
	Logs  []model.AccessAuditLog `json:"logs"`
	Total int64                  `json:"total"`
}

// GetAuditLogs handles requests to retrieve audit logs with filtering.
// Unparseable filter values are ignored.
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := repository.QueryParams{
		Action:    query.Get("action"),
		Resource:  query.Get("resource"),
		SubjectID: query.Get("subject_id"),
	}

	if resultStr := query.Get("result"); resultStr != "" {
		if result, err := strconv.ParseBool(resultStr); err == nil {
			params.Result = &result
		}
	}

	if startTimeStr := query.Get("start_time"); startTimeStr != "" {
		if startTime, err := time.Parse(time.RFC3339, startTimeStr); err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := query.Get("end_time"); endTimeStr != "" {
		if endTime, err := time.Parse(time.RFC3339, endTimeStr); err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			params.Limit = min(limit, repository.MaxAuditLogLimit)
		}
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	logs, total, err := h.auditService.Query(r.Context(), params)
	if err != nil {
		handleError(w, r, err, "Failed to retrieve audit logs")
		return
	}
	if logs == nil {
		logs = []model.AccessAuditLog{}
	}

	respondWithJSON(w, http.StatusOK, AuditLogsResponse{Logs: logs, Total: total})
}
