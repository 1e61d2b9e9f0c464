package handler

import (
	"net/http"

	"github.com/dangerclosesec/traininghub/internal/service"
)

type TrainingHandler struct {
	trainingService *service.TrainingService
}

func NewTrainingHandler(trainingService *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// ListApplications accepts optional status, type and priority query filters
func (h *TrainingHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		handleError(w, r, err, "Failed to fetch applications")
		return
	}

	query := r.URL.Query()
	filter := service.ApplicationFilterInput{
		Status:   query.Get("status"),
		Type:     query.Get("type"),
		Priority: query.Get("priority"),
	}

	apps, err := h.trainingService.List(r.Context(), p, filter)
	if err != nil {
		handleError(w, r, err, "Failed to fetch applications")
		return
	}
	respondWithJSON(w, http.StatusOK, apps)
}

func (h *TrainingHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		handleError(w, r, err, "Failed to create application")
		return
	}

	var input service.CreateApplicationInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err, "Failed to create application")
		return
	}

	app, err := h.trainingService.Create(r.Context(), p, input)
	if err != nil {
		handleError(w, r, err, "Failed to create application")
		return
	}
	respondWithJSON(w, http.StatusCreated, app)
}

func (h *TrainingHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		handleError(w, r, err, "Failed to fetch application")
		return
	}

	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err, "Failed to fetch application")
		return
	}

	app, err := h.trainingService.Get(r.Context(), p, id)
	if err != nil {
		handleError(w, r, err, "Failed to fetch application")
		return
	}
	respondWithJSON(w, http.StatusOK, app)
}

func (h *TrainingHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err, "Failed to update application status")
		return
	}

	var input service.UpdateApplicationStatusInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err, "Failed to update application status")
		return
	}

	app, err := h.trainingService.UpdateStatus(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err, "Failed to update application status")
		return
	}
	respondWithJSON(w, http.StatusOK, app)
}

func (h *TrainingHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		handleError(w, r, err, "Failed to delete application")
		return
	}

	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err, "Failed to delete application")
		return
	}

	if err := h.trainingService.Delete(r.Context(), p, id); err != nil {
		handleError(w, r, err, "Failed to delete application")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Application deleted successfully"})
}

func (h *TrainingHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.trainingService.Statistics(r.Context())
	if err != nil {
		handleError(w, r, err, "Failed to fetch training statistics")
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
