package handler

import (
	"net/http"

	"github.com/dangerclosesec/traininghub/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.analyticsService.Dashboard(r.Context())
	if err != nil {
		handleError(w, r, err, "Failed to fetch analytics")
		return
	}
	respondWithJSON(w, http.StatusOK, dashboard)
}

func (h *AnalyticsHandler) TrainingNeeds(w http.ResponseWriter, r *http.Request) {
	needs, err := h.analyticsService.TrainingNeeds(r.Context())
	if err != nil {
		handleError(w, r, err, "Failed to analyze training needs")
		return
	}
	respondWithJSON(w, http.StatusOK, needs)
}
