// internal/service/analytics.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	topActiveSurveysLimit = 5
	recentActivityLimit   = 10
)

type AnalyticsService struct {
	repo repository.AnalyticsRepositoryIface
}

func NewAnalyticsService(repo repository.AnalyticsRepositoryIface) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

type DashboardStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalSurveys   int64 `json:"totalSurveys"`
	ActiveSurveys  int64 `json:"activeSurveys"`
	TotalResponses int64 `json:"totalResponses"`
}

type ResponseCount struct {
	Responses int64 `json:"responses"`
}

type SurveyCompletion struct {
	ID    uuid.UUID     `json:"id"`
	Title string        `json:"title"`
	Count ResponseCount `json:"_count"`
}

type SurveyTitle struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type RecentActivity struct {
	ID        uuid.UUID            `json:"id"`
	SurveyID  uuid.UUID            `json:"surveyId"`
	UserID    uuid.UUID            `json:"userId"`
	Status    model.ResponseStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	User      *model.UserSummary   `json:"user"`
	Survey    *SurveyTitle         `json:"survey"`
}

type Dashboard struct {
	Stats                 DashboardStats               `json:"stats"`
	UsersByDepartment     []repository.DepartmentCount `json:"usersByDepartment"`
	SurveyCompletionRates []SurveyCompletion           `json:"surveyCompletionRates"`
	RecentActivity        []RecentActivity             `json:"recentActivity"`
}

// Dashboard issues the dashboard queries in parallel. They share no transaction, so
// sub-results may disagree by whatever landed between them.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		out       Dashboard
		topActive []repository.SurveyResponseCount
		recent    []*model.SurveyResponse
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Stats.TotalUsers, err = s.repo.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Stats.TotalSurveys, err = s.repo.CountSurveys(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		out.Stats.ActiveSurveys, err = s.repo.CountSurveys(gctx, model.SurveyActive)
		return err
	})
	g.Go(func() (err error) {
		out.Stats.TotalResponses, err = s.repo.CountResponses(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.UsersByDepartment, err = s.repo.UsersByDepartment(gctx)
		return err
	})
	g.Go(func() (err error) {
		topActive, err = s.repo.TopActiveSurveys(gctx, topActiveSurveysLimit)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.repo.RecentResponses(gctx, recentActivityLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collecting dashboard analytics: %w", err)
	}

	if out.UsersByDepartment == nil {
		out.UsersByDepartment = []repository.DepartmentCount{}
	}

	out.SurveyCompletionRates = make([]SurveyCompletion, 0, len(topActive))
	for _, row := range topActive {
		out.SurveyCompletionRates = append(out.SurveyCompletionRates, SurveyCompletion{
			ID:    row.ID,
			Title: row.Title,
			Count: ResponseCount{Responses: row.Responses},
		})
	}

	out.RecentActivity = make([]RecentActivity, 0, len(recent))
	for _, r := range recent {
		activity := RecentActivity{
			ID:        r.ID,
			SurveyID:  r.SurveyID,
			UserID:    r.UserID,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
			User:      r.User.Summary(),
		}
		if r.Survey != nil {
			activity.Survey = &SurveyTitle{ID: r.Survey.ID, Title: r.Survey.Title}
		}
		out.RecentActivity = append(out.RecentActivity, activity)
	}

	return &out, nil
}

type PriorityBreakdown struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

type TrainingNeeds struct {
	ByDepartment map[string]int64  `json:"byDepartment"`
	BySkill      map[string]int64  `json:"bySkill"`
	Priority     PriorityBreakdown `json:"priority"`
}

// TrainingNeeds returns the empty needs breakdown the dashboard renders.
// TODO: derive byDepartment and bySkill from survey answers once questions carry a skill tag.
func (s *AnalyticsService) TrainingNeeds(ctx context.Context) (*TrainingNeeds, error) {
	return &TrainingNeeds{
		ByDepartment: map[string]int64{},
		BySkill:      map[string]int64{},
	}, nil
}
