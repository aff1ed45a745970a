package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mbc-dev/ai-analytics/internal/model"
	"github.com/mbc-dev/ai-analytics/internal/repository"
	"github.com/mbc-dev/ai-analytics/internal/service"
	"github.com/mbc-dev/ai-analytics/internal/usecase"
	"github.com/mbc-dev/ai-analytics/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	marks    []model.Mark
	students []model.Student
	err      error
	calls    int
}

func (s *stubBackend) FetchStudentMarks(ctx context.Context, studentID, authToken string) ([]model.Mark, error) {
	s.calls++
	return s.marks, s.err
}

func (s *stubBackend) FetchStudents(ctx context.Context, authToken string) ([]model.Student, error) {
	s.calls++
	return s.students, s.err
}

type memoryFeedbackRepo struct {
	records []model.FeedbackSentiment
}

func (r *memoryFeedbackRepo) Create(record *model.FeedbackSentiment) error {
	r.records = append(r.records, *record)
	return nil
}

func (r *memoryFeedbackRepo) Find(filter repository.FeedbackFilter) ([]model.FeedbackSentiment, error) {
	var out []model.FeedbackSentiment
	for _, rec := range r.records {
		if filter.Category != "" && rec.Category != filter.Category {
			continue
		}
		if filter.StartDate != nil && rec.CreatedAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && rec.CreatedAt.After(*filter.EndDate) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func newTestApp(backend *stubBackend) (*fiber.App, *memoryFeedbackRepo) {
	repo := &memoryFeedbackRepo{}
	h := NewAnalyticsHandler(
		usecase.NewAnalyticsUsecase(backend),
		usecase.NewPredictionUsecase(backend),
		usecase.NewSentimentUsecase(repo, service.NewSentimentService()),
	)
	app := fiber.New(fiber.Config{ErrorHandler: util.FiberErrorHandler})
	h.RegisterRoutes(app)
	return app, repo
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body []byte, headers map[string]string) (*http.Response, map[string]any) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

var authHeader = map[string]string{"Authorization": "Bearer test-token"}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(&stubBackend{})

	resp, body := doRequest(t, app, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["version"])
}

func TestAuthRequired_NoBackendCall(t *testing.T) {
	backend := &stubBackend{marks: []model.Mark{{Score: 80}}}
	app, _ := newTestApp(backend)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/analytics/performance?studentId=s1"},
		{http.MethodGet, "/api/v1/analytics/department"},
		{http.MethodPost, "/api/v1/prediction/performance"},
	} {
		resp, body := doRequest(t, app, target.method, target.path, []byte(`{"studentId":"s1"}`), nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, target.path)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Authorization required", body["message"])
	}
	assert.Zero(t, backend.calls, "no backend call may happen before auth passes")
}

func TestStudentPerformance(t *testing.T) {
	backend := &stubBackend{marks: []model.Mark{{Score: 60}, {Score: 70}, {Score: 80}}}
	app, _ := newTestApp(backend)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/analytics/performance?studentId=s1", nil, authHeader)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(3), data["total_subjects"])
	assert.Equal(t, 70.0, data["average_score"])
	assert.Equal(t, "improving", data["trend"])
}

func TestStudentPerformance_NoMarks(t *testing.T) {
	app, _ := newTestApp(&stubBackend{})

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/analytics/performance?studentId=s1", nil, authHeader)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "No marks data available for analysis", data["message"])
}

func TestStudentPerformance_MissingStudentID(t *testing.T) {
	app, _ := newTestApp(&stubBackend{})

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/analytics/performance", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestStudentPerformance_UpstreamFailure(t *testing.T) {
	backend := &stubBackend{err: &service.UpstreamError{StatusCode: http.StatusForbidden}}
	app, _ := newTestApp(backend)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/analytics/performance?studentId=s1", nil, authHeader)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to fetch student data", body["message"])
}

func TestDepartmentAnalytics(t *testing.T) {
	gpa := 8.5
	backend := &stubBackend{students: []model.Student{{StudentID: "s1", GPA: &gpa}}}
	app, _ := newTestApp(backend)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/analytics/department", nil, authHeader)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total_students"])
	assert.Equal(t, float64(1), data["active_students"])
}

func TestPredictPerformance_InsufficientMarks(t *testing.T) {
	backend := &stubBackend{marks: []model.Mark{{Score: 60}, {Score: 70}}}
	app, _ := newTestApp(backend)

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/prediction/performance",
		[]byte(`{"studentId": "s1"}`), authHeader)

	assert.Equal(t, http.StatusOK, resp.StatusCode, "insufficient data is not an HTTP error")
	assert.Equal(t, false, body["success"])
	data := body["data"].(map[string]any)
	assert.Contains(t, data["error"], "Insufficient data")
}

func TestPredictPerformance_LinearRegression(t *testing.T) {
	backend := &stubBackend{marks: []model.Mark{{Score: 60}, {Score: 70}, {Score: 80}}}
	app, _ := newTestApp(backend)

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/prediction/performance",
		[]byte(`{"studentId": "s1"}`), authHeader)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "linear_regression", data["method"])
	assert.Equal(t, 90.0, data["predicted_next_score"])
	assert.Equal(t, 10.0, data["slope"])
}

func TestSentimentFeedback_RoundTripToReport(t *testing.T) {
	app, repo := newTestApp(&stubBackend{})

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/sentiment/feedback",
		[]byte(`{"text": "The workshops were excellent and very helpful", "source": "survey", "category": "events"}`), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	sentiment := data["sentiment"].(map[string]any)
	combined := sentiment["combined"].(map[string]any)
	assert.Equal(t, "positive", combined["classification"])
	require.Len(t, repo.records, 1)

	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/sentiment/report?category=events", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := body["data"].(map[string]any)
	distribution := report["sentiment_distribution"].(map[string]any)
	assert.Equal(t, float64(1), distribution["positive"])
}

func TestSentimentFeedback_MissingText(t *testing.T) {
	app, _ := newTestApp(&stubBackend{})

	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/sentiment/feedback", []byte(`{}`), nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestSentimentReport_InvalidDate(t *testing.T) {
	app, _ := newTestApp(&stubBackend{})

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/sentiment/report?start_date=garbage", nil, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestSentimentReport_NoData(t *testing.T) {
	app, _ := newTestApp(&stubBackend{})

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/sentiment/report", nil, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "No sentiment data available for the specified period", data["message"])
}
