package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/traininghub/internal/mocks"
	"github.com/dangerclosesec/traininghub/internal/model"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/dangerclosesec/traininghub/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepositoryIface(ctrl)
	svc := service.NewAnalyticsService(repo)

	surveyID := uuid.New()
	responseID := uuid.New()
	now := time.Now().UTC()

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(3), nil)
	repo.EXPECT().CountSurveys(gomock.Any(), model.SurveyStatus("")).Return(int64(2), nil)
	repo.EXPECT().CountSurveys(gomock.Any(), model.SurveyActive).Return(int64(1), nil)
	repo.EXPECT().CountResponses(gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().UsersByDepartment(gomock.Any()).Return([]repository.DepartmentCount{
		{Department: "Engineering", Count: 2},
		{Department: "Human Resources", Count: 1},
	}, nil)
	repo.EXPECT().TopActiveSurveys(gomock.Any(), 5).Return([]repository.SurveyResponseCount{
		{ID: surveyID, Title: "Skills", Responses: 1},
	}, nil)
	repo.EXPECT().RecentResponses(gomock.Any(), 10).Return([]*model.SurveyResponse{
		{
			ID:        responseID,
			SurveyID:  surveyID,
			Status:    model.ResponseCompleted,
			CreatedAt: now,
			User:      &model.User{FirstName: "Eli", LastName: "Employee"},
			Survey:    &model.Survey{ID: surveyID, Title: "Skills"},
		},
	}, nil)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, service.DashboardStats{TotalUsers: 3, TotalSurveys: 2, ActiveSurveys: 1, TotalResponses: 1}, dash.Stats)

	var sum int64
	for _, d := range dash.UsersByDepartment {
		sum += d.Count
	}
	assert.Equal(t, dash.Stats.TotalUsers, sum)

	require.Len(t, dash.SurveyCompletionRates, 1)
	assert.Equal(t, int64(1), dash.SurveyCompletionRates[0].Count.Responses)

	require.Len(t, dash.RecentActivity, 1)
	assert.Equal(t, "Eli", dash.RecentActivity[0].User.FirstName)
	assert.Equal(t, &service.SurveyTitle{ID: surveyID, Title: "Skills"}, dash.RecentActivity[0].Survey)
}

func TestAnalyticsService_DashboardEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepositoryIface(ctrl)
	svc := service.NewAnalyticsService(repo)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().CountSurveys(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(2)
	repo.EXPECT().CountResponses(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().UsersByDepartment(gomock.Any()).Return(nil, nil)
	repo.EXPECT().TopActiveSurveys(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().RecentResponses(gomock.Any(), gomock.Any()).Return(nil, nil)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, dash.UsersByDepartment)
	assert.NotNil(t, dash.SurveyCompletionRates)
	assert.NotNil(t, dash.RecentActivity)
}

func TestAnalyticsService_DashboardError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepositoryIface(ctrl)
	svc := service.NewAnalyticsService(repo)

	boom := errors.New("connection reset")
	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), boom).AnyTimes()
	repo.EXPECT().CountSurveys(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	repo.EXPECT().CountResponses(gomock.Any()).Return(int64(0), nil).AnyTimes()
	repo.EXPECT().UsersByDepartment(gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().TopActiveSurveys(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().RecentResponses(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAnalyticsService_TrainingNeeds(t *testing.T) {
	svc := service.NewAnalyticsService(nil)

	needs, err := svc.TrainingNeeds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, needs.ByDepartment)
	assert.NotNil(t, needs.BySkill)
	assert.Equal(t, service.PriorityBreakdown{}, needs.Priority)
}
