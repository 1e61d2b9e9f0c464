package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/dangerclosesec/traininghub/internal/router"
	"github.com/dangerclosesec/traininghub/internal/seed"
	"github.com/dangerclosesec/traininghub/internal/service"
	"github.com/dangerclosesec/traininghub/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t       *testing.T
	handler http.Handler
	repos   *repository.Repositories
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewDB(t)
	repos := repository.New(db)

	hasher := auth.NewPasswordHasherWithConfig(auth.PasswordConfig{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32})
	tokenManager := auth.NewTokenManager("router-test-secret", time.Hour)

	_, err := seed.Users(context.Background(), repos.Users, hasher, seed.DefaultAccounts)
	require.NoError(t, err)

	auditService := service.NewAccessAuditService(repos.AuditLogs)
	h := router.New(router.Deps{
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		CORSOrigins:      []string{"http://localhost:3000"},
		TokenManager:     tokenManager,
		UserService:      service.NewUserService(repos.Users, hasher, tokenManager),
		SurveyService:    service.NewSurveyService(repos.Surveys, repos.Responses),
		TrainingService:  service.NewTrainingService(repos.Applications, nil, auditService),
		AnalyticsService: service.NewAnalyticsService(repos.Analytics),
		AuditService:     auditService,
	})

	return &testServer{t: t, handler: h, repos: repos}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) doRaw(method, path, token, contentType, body string) *httptest.ResponseRecorder {
	s.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(s.t, out.Token)
	return out.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "admin@traininghub.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())

	rec = srv.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "nobody@traininghub.com", "password": "admin123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())

	token := srv.login("admin@traininghub.com", "admin123")
	rec = srv.do(http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile map[string]interface{}
	decode(t, rec, &profile)
	assert.Equal(t, "ADMIN", profile["role"])
	assert.NotContains(t, profile, "passwordHash")
}

func TestSurveyLifecycle(t *testing.T) {
	srv := newTestServer(t)
	managerToken := srv.login("manager@traininghub.com", "manager123")
	employeeToken := srv.login("employee@traininghub.com", "employee123")

	rec := srv.do(http.MethodPost, "/api/surveys", managerToken, map[string]interface{}{
		"title": "Learning interests",
		"questions": []map[string]interface{}{
			{"title": "What would you like to learn?", "type": "TEXT", "required": true},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var survey struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		Questions []struct {
			ID    string `json:"id"`
			Order int    `json:"order"`
		} `json:"questions"`
	}
	decode(t, rec, &survey)
	require.Len(t, survey.Questions, 1)
	assert.Equal(t, "DRAFT", survey.Status)

	answers := map[string]interface{}{
		"answers": []map[string]string{{"questionId": survey.Questions[0].ID, "answer": "Distributed systems"}},
	}

	rec = srv.do(http.MethodPost, "/api/surveys/"+survey.ID+"/responses", employeeToken, answers)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	t.Run("second submission rejected", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/surveys/"+survey.ID+"/responses", employeeToken, answers)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Response already submitted"}`, rec.Body.String())
	})

	t.Run("responses listed with answers and questions", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/surveys/"+survey.ID+"/responses", managerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var responses []struct {
			User struct {
				FirstName  string `json:"firstName"`
				Department string `json:"department"`
			} `json:"user"`
			Answers []struct {
				Answer   string `json:"answer"`
				Question struct {
					ID string `json:"id"`
				} `json:"question"`
			} `json:"answers"`
		}
		decode(t, rec, &responses)
		require.Len(t, responses, 1)
		assert.Equal(t, "Engineering", responses[0].User.Department)
		require.Len(t, responses[0].Answers, 1)
		assert.Equal(t, survey.Questions[0].ID, responses[0].Answers[0].Question.ID)
		assert.Equal(t, "Distributed systems", responses[0].Answers[0].Answer)
	})

	t.Run("employee cannot list responses", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/surveys/"+survey.ID+"/responses", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("employee cannot change status", func(t *testing.T) {
		rec := srv.do(http.MethodPut, "/api/surveys/"+survey.ID+"/status", employeeToken, map[string]string{"status": "ACTIVE"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Manager access required"}`, rec.Body.String())

		rec = srv.do(http.MethodGet, "/api/surveys/"+survey.ID, employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Status string `json:"status"`
		}
		decode(t, rec, &got)
		assert.Equal(t, "DRAFT", got.Status)
	})

	t.Run("manager activates survey", func(t *testing.T) {
		rec := srv.do(http.MethodPut, "/api/surveys/"+survey.ID+"/status", managerToken, map[string]string{"status": "ACTIVE"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got struct {
			Status    string `json:"status"`
			CreatedBy struct {
				FirstName string `json:"firstName"`
			} `json:"createdBy"`
		}
		decode(t, rec, &got)
		assert.Equal(t, "ACTIVE", got.Status)
		assert.Equal(t, "Manager", got.CreatedBy.FirstName)
	})

	t.Run("listing carries counts", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/surveys", employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list []struct {
			ID    string `json:"id"`
			Count struct {
				Responses int `json:"responses"`
				Questions int `json:"questions"`
			} `json:"_count"`
		}
		decode(t, rec, &list)
		require.Len(t, list, 1)
		assert.Equal(t, 1, list[0].Count.Responses)
		assert.Equal(t, 1, list[0].Count.Questions)
	})

	t.Run("dashboard", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/analytics/dashboard", employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var dash struct {
			Stats struct {
				TotalUsers     int `json:"totalUsers"`
				TotalSurveys   int `json:"totalSurveys"`
				ActiveSurveys  int `json:"activeSurveys"`
				TotalResponses int `json:"totalResponses"`
			} `json:"stats"`
			UsersByDepartment []struct {
				Count int `json:"count"`
			} `json:"usersByDepartment"`
			SurveyCompletionRates []struct {
				Count struct {
					Responses int `json:"responses"`
				} `json:"_count"`
			} `json:"surveyCompletionRates"`
			RecentActivity []interface{} `json:"recentActivity"`
		}
		decode(t, rec, &dash)
		assert.Equal(t, 3, dash.Stats.TotalUsers)
		assert.Equal(t, 1, dash.Stats.TotalSurveys)
		assert.Equal(t, 1, dash.Stats.ActiveSurveys)
		assert.Equal(t, 1, dash.Stats.TotalResponses)

		sum := 0
		for _, d := range dash.UsersByDepartment {
			sum += d.Count
		}
		assert.Equal(t, dash.Stats.TotalUsers, sum)

		require.Len(t, dash.SurveyCompletionRates, 1)
		assert.Equal(t, 1, dash.SurveyCompletionRates[0].Count.Responses)
		assert.Len(t, dash.RecentActivity, 1)
	})

	t.Run("unknown survey", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/surveys/1b4e28ba-2fa1-11d2-883f-0016d3cca427/responses", employeeToken, answers)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = srv.do(http.MethodGet, "/api/surveys/not-a-uuid", employeeToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUnauthenticatedRequestsDoNotMutate(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/surveys", "", map[string]interface{}{"title": "Sneaky"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"No token provided"}`, rec.Body.String())

	rec = srv.do(http.MethodPost, "/api/training/applications", "not-a-token", map[string]interface{}{"title": "Sneaky"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())

	surveys, err := srv.repos.Surveys.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, surveys)

	count, err := srv.repos.Applications.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGatesAnswerBeforeContentType(t *testing.T) {
	srv := newTestServer(t)

	for _, ct := range []string{"", "text/plain"} {
		rec := srv.doRaw(http.MethodPost, "/api/training/applications", "", ct, "title=Sneaky")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "content type %q", ct)
		assert.JSONEq(t, `{"error":"No token provided"}`, rec.Body.String())
	}

	employeeToken := srv.login("employee@traininghub.com", "employee123")
	path := "/api/training/applications/" + uuid.NewString() + "/status"
	rec := srv.doRaw(http.MethodPut, path, employeeToken, "text/plain", "approved")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Manager access required"}`, rec.Body.String())

	rec = srv.doRaw(http.MethodPost, "/api/training/applications", employeeToken, "text/plain", "title=Plain")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.JSONEq(t, `{"error":"Content-Type must be application/json"}`, rec.Body.String())

	rec = srv.doRaw(http.MethodPost, "/api/training/applications", employeeToken, "application/json",
		`{"applicationType":"TRAINING_REQUEST","title":"Go","description":"d","justification":"j","budget":"1500"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed request body")

	count, err := srv.repos.Applications.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTrainingApplicationLifecycle(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.login("admin@traininghub.com", "admin123")
	managerToken := srv.login("manager@traininghub.com", "manager123")
	employeeToken := srv.login("employee@traininghub.com", "employee123")

	create := func(token, title string) string {
		t.Helper()
		rec := srv.do(http.MethodPost, "/api/training/applications", token, map[string]interface{}{
			"applicationType": "TRAINING_REQUEST",
			"title":           title,
			"description":     "Five day course",
			"justification":   "Team needs it",
			"priority":        "HIGH",
			"preferredDates":  []string{"2025-09-01", "2025-09-15"},
			"budget":          1200.5,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var app struct {
			ID             string   `json:"id"`
			Status         string   `json:"status"`
			PreferredDates []string `json:"preferredDates"`
			User           struct {
				Email string `json:"email"`
			} `json:"user"`
		}
		decode(t, rec, &app)
		assert.Equal(t, "PENDING", app.Status)
		assert.Equal(t, []string{"2025-09-01", "2025-09-15"}, app.PreferredDates)
		return app.ID
	}

	employeeApp := create(employeeToken, "Kubernetes")
	managerApp := create(managerToken, "Leadership")

	t.Run("employee sees only own applications", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/training/applications", employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var apps []struct {
			ID string `json:"id"`
		}
		decode(t, rec, &apps)
		require.Len(t, apps, 1)
		assert.Equal(t, employeeApp, apps[0].ID)

		rec = srv.do(http.MethodGet, "/api/training/applications/"+managerApp, employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager sees all and filters", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/training/applications?priority=HIGH", managerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var apps []interface{}
		decode(t, rec, &apps)
		assert.Len(t, apps, 2)

		rec = srv.do(http.MethodGet, "/api/training/applications?status=BOGUS", managerToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("employee cannot review", func(t *testing.T) {
		rec := srv.do(http.MethodPut, "/api/training/applications/"+employeeApp+"/status", employeeToken, map[string]interface{}{"status": "APPROVED"})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = srv.do(http.MethodGet, "/api/training/statistics", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager review writes fields", func(t *testing.T) {
		rec := srv.do(http.MethodPut, "/api/training/applications/"+employeeApp+"/status", managerToken, map[string]interface{}{
			"status":          "APPROVED",
			"managerApproval": true,
			"adminComments":   "Go for it",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var app struct {
			Status          string `json:"status"`
			ManagerApproval bool   `json:"managerApproval"`
			HRApproval      bool   `json:"hrApproval"`
			AdminComments   string `json:"adminComments"`
		}
		decode(t, rec, &app)
		assert.Equal(t, "APPROVED", app.Status)
		assert.True(t, app.ManagerApproval)
		assert.False(t, app.HRApproval)
		assert.Equal(t, "Go for it", app.AdminComments)
	})

	t.Run("approved application cannot be deleted", func(t *testing.T) {
		rec := srv.do(http.MethodDelete, "/api/training/applications/"+employeeApp, employeeToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Cannot delete application that is not pending"}`, rec.Body.String())
	})

	t.Run("employee cannot delete another user's application", func(t *testing.T) {
		rec := srv.do(http.MethodDelete, "/api/training/applications/"+managerApp, employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("statistics", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/training/statistics", managerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var stats struct {
			Stats struct {
				Total    int `json:"totalApplications"`
				Pending  int `json:"pendingApplications"`
				Approved int `json:"approvedApplications"`
				Rejected int `json:"rejectedApplications"`
			} `json:"stats"`
			ByType []struct {
				Type  string `json:"applicationType"`
				Count int    `json:"count"`
			} `json:"applicationsByType"`
			Recent []interface{} `json:"recentApplications"`
		}
		decode(t, rec, &stats)
		assert.Equal(t, 2, stats.Stats.Total)
		assert.Equal(t, 1, stats.Stats.Pending)
		assert.Equal(t, 1, stats.Stats.Approved)
		assert.Equal(t, 0, stats.Stats.Rejected)
		require.Len(t, stats.ByType, 1)
		assert.Equal(t, 2, stats.ByType[0].Count)
		assert.Len(t, stats.Recent, 2)
	})

	t.Run("owner deletes pending application", func(t *testing.T) {
		rec := srv.do(http.MethodDelete, "/api/training/applications/"+managerApp, managerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Application deleted successfully"}`, rec.Body.String())

		rec = srv.do(http.MethodGet, "/api/training/applications/"+managerApp, managerToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("denials are audited", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/audit-logs?action=ownership_check&result=false", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var out struct {
			Logs []struct {
				Action string `json:"action"`
			} `json:"logs"`
			Total int `json:"total"`
		}
		decode(t, rec, &out)
		assert.Equal(t, 2, out.Total)
		for _, l := range out.Logs {
			assert.Equal(t, "ownership_check", l.Action)
		}

		rec = srv.do(http.MethodGet, "/api/audit-logs", managerToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Admin access required"}`, rec.Body.String())
	})
}
