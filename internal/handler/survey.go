package handler

import (
	"net/http"

	"github.com/dangerclosesec/traininghub/internal/service"
)

type SurveyHandler struct {
	surveyService *service.SurveyService
}

func NewSurveyHandler(surveyService *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveyService.List(r.Context())
	if err != nil {
		handleError(w, r, err, "Failed to fetch surveys")
		return
	}
	respondWithJSON(w, http.StatusOK, surveys)
}

func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		handleError(w, r, err, "Failed to create survey")
		return
	}

	var input service.CreateSurveyInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err, "Failed to create survey")
		return
	}

	survey, err := h.surveyService.Create(r.Context(), p, input)
	if err != nil {
		handleError(w, r, err, "Failed to create survey")
		return
	}
	respondWithJSON(w, http.StatusCreated, survey)
}

func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err, "Failed to fetch survey")
		return
	}

	survey, err := h.surveyService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err, "Failed to fetch survey")
		return
	}
	respondWithJSON(w, http.StatusOK, survey)
}

func (h *SurveyHandler) UpdateSurveyStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err, "Failed to update survey status")
		return
	}

	var input service.UpdateSurveyStatusInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err, "Failed to update survey status")
		return
	}

	survey, err := h.surveyService.UpdateStatus(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err, "Failed to update survey status")
		return
	}
	respondWithJSON(w, http.StatusOK, survey)
}

func (h *SurveyHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		handleError(w, r, err, "Failed to submit response")
		return
	}

	surveyID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err, "Failed to submit response")
		return
	}

	var input service.SubmitResponseInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err, "Failed to submit response")
		return
	}

	response, err := h.surveyService.SubmitResponse(r.Context(), p, surveyID, input)
	if err != nil {
		handleError(w, r, err, "Failed to submit response")
		return
	}
	respondWithJSON(w, http.StatusCreated, response)
}

func (h *SurveyHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	surveyID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err, "Failed to fetch responses")
		return
	}

	responses, err := h.surveyService.ListResponses(r.Context(), surveyID)
	if err != nil {
		handleError(w, r, err, "Failed to fetch responses")
		return
	}
	respondWithJSON(w, http.StatusOK, responses)
}
