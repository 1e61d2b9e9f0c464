// internal/service/survey.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/domain"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SurveyService struct {
	surveys   repository.SurveyRepositoryIface
	responses repository.SurveyResponseRepositoryIface
	validate  *validator.Validate
}

func NewSurveyService(
	surveys repository.SurveyRepositoryIface,
	responses repository.SurveyResponseRepositoryIface,
) *SurveyService {
	return &SurveyService{
		surveys:   surveys,
		responses: responses,
		validate:  newValidator(),
	}
}

type QuestionInput struct {
	Title    string             `json:"title" validate:"required,max=500"`
	Type     model.QuestionType `json:"type" validate:"required,oneof=TEXT TEXTAREA SINGLE_CHOICE MULTIPLE_CHOICE RATING DATE"`
	Options  []string           `json:"options" validate:"omitempty,dive,required"`
	Required bool               `json:"required"`
}

type CreateSurveyInput struct {
	Title       string             `json:"title" validate:"required,max=200"`
	Description *string            `json:"description"`
	Status      model.SurveyStatus `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE COMPLETED ARCHIVED"`
	Questions   []QuestionInput    `json:"questions" validate:"dive"`
}

type UpdateSurveyStatusInput struct {
	Status model.SurveyStatus `json:"status" validate:"required,oneof=DRAFT ACTIVE COMPLETED ARCHIVED"`
}

type AnswerInput struct {
	QuestionID uuid.UUID `json:"questionId" validate:"required"`
	Answer     string    `json:"answer"`
}

type SubmitResponseInput struct {
	Answers []AnswerInput `json:"answers" validate:"required,dive"`
}

// SurveyDetail is a survey with its creator's name.
type SurveyDetail struct {
	*model.Survey
	CreatedBy *model.UserSummary `json:"createdBy"`
}

// SurveyListItem adds relation counts to a listed survey.
type SurveyListItem struct {
	*model.Survey
	CreatedBy *model.UserSummary      `json:"createdBy"`
	Count     repository.SurveyCounts `json:"_count"`
}

// ResponseDetail is a submitted response with the respondent's display fields.
type ResponseDetail struct {
	*model.SurveyResponse
	User *model.UserSummary `json:"user"`
}

func (s *SurveyService) List(ctx context.Context) ([]*SurveyListItem, error) {
	surveys, err := s.surveys.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(surveys))
	for _, survey := range surveys {
		ids = append(ids, survey.ID)
	}

	counts, err := s.surveys.Counts(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*SurveyListItem, 0, len(surveys))
	for _, survey := range surveys {
		items = append(items, &SurveyListItem{
			Survey:    survey,
			CreatedBy: survey.CreatedBy.Summary(),
			Count:     counts[survey.ID],
		})
	}
	return items, nil
}

// Create stores a survey owned by the caller. Questions keep their input order.
func (s *SurveyService) Create(ctx context.Context, principal auth.Principal, input CreateSurveyInput) (*SurveyDetail, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	survey := &model.Survey{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		CreatedByID: principal.UserID,
		Questions:   make([]model.Question, 0, len(input.Questions)),
	}

	for i, q := range input.Questions {
		question := model.Question{
			Title:    q.Title,
			Type:     q.Type,
			Required: q.Required,
			Order:    i,
		}
		if q.Type.IsChoice() {
			if len(q.Options) == 0 {
				return nil, fmt.Errorf("%w: questions[%d].options is required for %s questions", domain.ErrInvalidInput, i, q.Type)
			}
			question.Options = model.StringList(q.Options)
		}
		survey.Questions = append(survey.Questions, question)
	}

	if err := s.surveys.Create(ctx, survey); err != nil {
		return nil, err
	}

	return &SurveyDetail{Survey: survey}, nil
}

func (s *SurveyService) Get(ctx context.Context, id uuid.UUID) (*SurveyDetail, error) {
	survey, err := s.surveys.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SurveyDetail{
		Survey:    survey,
		CreatedBy: survey.CreatedBy.Summary(),
	}, nil
}

func (s *SurveyService) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateSurveyStatusInput) (*SurveyDetail, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	if err := s.surveys.UpdateStatus(ctx, id, input.Status); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// SubmitResponse records the caller's completed response. Each user answers a survey once;
// the store's unique index decides when two submissions race.
func (s *SurveyService) SubmitResponse(ctx context.Context, principal auth.Principal, surveyID uuid.UUID, input SubmitResponseInput) (*model.SurveyResponse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	exists, err := s.surveys.Exists(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSurveyNotFound
	}

	existing, err := s.responses.FindBySurveyAndUser(ctx, surveyID, principal.UserID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrResponseAlreadySubmitted
	}

	response := &model.SurveyResponse{
		SurveyID: surveyID,
		UserID:   principal.UserID,
		Status:   model.ResponseCompleted,
		Answers:  make([]model.Answer, 0, len(input.Answers)),
	}
	for _, a := range input.Answers {
		response.Answers = append(response.Answers, model.Answer{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
		})
	}

	if err := s.responses.Create(ctx, response); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrResponseAlreadySubmitted
		}
		return nil, err
	}

	return response, nil
}

// ListResponses returns every response to a survey with answers joined to their questions.
func (s *SurveyService) ListResponses(ctx context.Context, surveyID uuid.UUID) ([]*ResponseDetail, error) {
	responses, err := s.responses.ListBySurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	details := make([]*ResponseDetail, 0, len(responses))
	for _, r := range responses {
		details = append(details, &ResponseDetail{
			SurveyResponse: r,
			User:           r.User.Summary(),
		})
	}
	return details, nil
}
