// internal/service/training.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/traininghub/internal/audit"
	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/domain"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	resourceTrainingApplication = "training_application"
	recentApplicationsLimit     = 10
)

// ApplicationNotifier tells an applicant about a reviewed application.
type ApplicationNotifier interface {
	NotifyStatusChange(ctx context.Context, application *model.TrainingApplication, applicant *model.User) error
}

type TrainingService struct {
	repo     repository.TrainingApplicationRepositoryIface
	notifier ApplicationNotifier
	auditor  audit.Logger
	validate *validator.Validate
}

func NewTrainingService(
	repo repository.TrainingApplicationRepositoryIface,
	notifier ApplicationNotifier,
	auditor audit.Logger,
) *TrainingService {
	if auditor == nil {
		auditor = &audit.NoOpLogger{}
	}
	return &TrainingService{
		repo:     repo,
		notifier: notifier,
		auditor:  auditor,
		validate: newValidator(),
	}
}

// ApplicationFilterInput holds the optional listing filters as received.
type ApplicationFilterInput struct {
	Status   string `json:"status" validate:"omitempty,oneof=PENDING UNDER_REVIEW APPROVED REJECTED COMPLETED"`
	Type     string `json:"type" validate:"omitempty,oneof=TRAINING_REQUEST WORKSHOP_PROPOSAL"`
	Priority string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

type CreateApplicationInput struct {
	ApplicationType model.ApplicationType `json:"applicationType" validate:"required,oneof=TRAINING_REQUEST WORKSHOP_PROPOSAL"`
	Title           string                `json:"title" validate:"required,max=200"`
	Description     string                `json:"description" validate:"required"`
	Category        *string               `json:"category"`
	Priority        model.Priority        `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Justification   string                `json:"justification" validate:"required"`
	ExpectedOutcome *string               `json:"expectedOutcome"`
	PreferredDates  model.DateList        `json:"preferredDates"`
	Duration        *string               `json:"duration"`
	Budget          *float64              `json:"budget" validate:"omitempty,gte=0"`
	Participants    *int                  `json:"participants" validate:"omitempty,gte=1"`
	Location        *string               `json:"location"`
	Provider        *string               `json:"provider"`
}

// UpdateApplicationStatusInput carries the reviewer fields. Each present field is written as given.
type UpdateApplicationStatusInput struct {
	Status          *model.ApplicationStatus `json:"status" validate:"omitempty,oneof=PENDING UNDER_REVIEW APPROVED REJECTED COMPLETED"`
	ManagerApproval *bool                    `json:"managerApproval"`
	HRApproval      *bool                    `json:"hrApproval"`
	AdminComments   *string                  `json:"adminComments"`
}

// ApplicationDetail is an application with the applicant's display fields.
type ApplicationDetail struct {
	*model.TrainingApplication
	User *model.UserSummary `json:"user"`
}

func newApplicationDetail(a *model.TrainingApplication) *ApplicationDetail {
	return &ApplicationDetail{
		TrainingApplication: a,
		User:                a.User.Summary(),
	}
}

func newApplicationDetails(apps []*model.TrainingApplication) []*ApplicationDetail {
	details := make([]*ApplicationDetail, 0, len(apps))
	for _, a := range apps {
		details = append(details, newApplicationDetail(a))
	}
	return details
}

// List returns applications visible to the caller. Employees only ever see their own.
func (s *TrainingService) List(ctx context.Context, principal auth.Principal, input ApplicationFilterInput) ([]*ApplicationDetail, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	filter := repository.ApplicationFilter{
		Status:   model.ApplicationStatus(input.Status),
		Type:     model.ApplicationType(input.Type),
		Priority: model.Priority(input.Priority),
	}
	if !principal.Role.HasAtLeast(model.RoleManager) {
		userID := principal.UserID
		filter.UserID = &userID
	}

	apps, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return newApplicationDetails(apps), nil
}

func (s *TrainingService) Create(ctx context.Context, principal auth.Principal, input CreateApplicationInput) (*ApplicationDetail, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	app := &model.TrainingApplication{
		UserID:          principal.UserID,
		ApplicationType: input.ApplicationType,
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		Priority:        input.Priority,
		Justification:   input.Justification,
		ExpectedOutcome: input.ExpectedOutcome,
		PreferredDates:  input.PreferredDates,
		Duration:        input.Duration,
		Budget:          input.Budget,
		Participants:    input.Participants,
		Location:        input.Location,
		Provider:        input.Provider,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	return s.Get(ctx, principal, app.ID)
}

// Get returns one application. Employees may only read their own.
func (s *TrainingService) Get(ctx context.Context, principal auth.Principal, id uuid.UUID) (*ApplicationDetail, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(ctx, principal, app); err != nil {
		return nil, err
	}
	return newApplicationDetail(app), nil
}

// UpdateStatus writes the provided reviewer fields in one update. No transition order is enforced.
func (s *TrainingService) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateApplicationStatusInput) (*ApplicationDetail, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	fields := make(map[string]interface{})
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.ManagerApproval != nil {
		fields["manager_approval"] = *input.ManagerApproval
	}
	if input.HRApproval != nil {
		fields["hr_approval"] = *input.HRApproval
	}
	if input.AdminComments != nil {
		fields["admin_comments"] = *input.AdminComments
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		s.notify(ctx, app)
	}
	return newApplicationDetail(app), nil
}

// Delete removes a pending application. Employees may only delete their own.
func (s *TrainingService) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkAccess(ctx, principal, app); err != nil {
		return err
	}

	if app.Status != model.ApplicationPending {
		return domain.ErrApplicationNotPending
	}

	return s.repo.Delete(ctx, id)
}

type ApplicationStats struct {
	TotalApplications    int64 `json:"totalApplications"`
	PendingApplications  int64 `json:"pendingApplications"`
	ApprovedApplications int64 `json:"approvedApplications"`
	RejectedApplications int64 `json:"rejectedApplications"`
}

type TrainingStatistics struct {
	Stats                  ApplicationStats                      `json:"stats"`
	ApplicationsByType     []repository.ApplicationTypeCount     `json:"applicationsByType"`
	ApplicationsByPriority []repository.ApplicationPriorityCount `json:"applicationsByPriority"`
	RecentApplications     []*ApplicationDetail                  `json:"recentApplications"`
}

// Statistics runs the independent counts concurrently and assembles them.
func (s *TrainingService) Statistics(ctx context.Context) (*TrainingStatistics, error) {
	var (
		out    TrainingStatistics
		recent []*model.TrainingApplication
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Stats.TotalApplications, err = s.repo.Count(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		out.Stats.PendingApplications, err = s.repo.Count(gctx, model.ApplicationPending)
		return err
	})
	g.Go(func() (err error) {
		out.Stats.ApprovedApplications, err = s.repo.Count(gctx, model.ApplicationApproved)
		return err
	})
	g.Go(func() (err error) {
		out.Stats.RejectedApplications, err = s.repo.Count(gctx, model.ApplicationRejected)
		return err
	})
	g.Go(func() (err error) {
		out.ApplicationsByType, err = s.repo.CountByType(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.ApplicationsByPriority, err = s.repo.CountByPriority(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.repo.Recent(gctx, recentApplicationsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collecting training statistics: %w", err)
	}

	if out.ApplicationsByType == nil {
		out.ApplicationsByType = []repository.ApplicationTypeCount{}
	}
	if out.ApplicationsByPriority == nil {
		out.ApplicationsByPriority = []repository.ApplicationPriorityCount{}
	}
	out.RecentApplications = newApplicationDetails(recent)

	return &out, nil
}

// checkAccess lets managers and admins through and otherwise requires ownership.
func (s *TrainingService) checkAccess(ctx context.Context, principal auth.Principal, app *model.TrainingApplication) error {
	if principal.Role.HasAtLeast(model.RoleManager) || principal.Owns(app.UserID) {
		return nil
	}

	subject := model.Subject{ID: principal.UserID.String(), Role: principal.Role}
	resource := model.Resource{Type: resourceTrainingApplication, ID: app.ID.String()}
	if err := s.auditor.LogOwnershipCheck(ctx, subject, resource, false); err != nil {
		slog.ErrorContext(ctx, "failed to record ownership denial", "error", err, "applicationID", app.ID)
	}
	return domain.ErrForbidden
}

func (s *TrainingService) notify(ctx context.Context, app *model.TrainingApplication) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyStatusChange(ctx, app, app.User); err != nil {
		slog.WarnContext(ctx, "failed to notify applicant",
			"error", err,
			"applicationID", app.ID,
			"status", app.Status,
		)
	}
}
