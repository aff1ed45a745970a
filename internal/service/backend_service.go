package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/mbc-dev/ai-analytics/internal/model"
	"github.com/tidwall/gjson"
)

// UpstreamError carries a non-200 status from the main backend so the
// handler can answer with the same code.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

type BackendServiceInterface interface {
	FetchStudentMarks(ctx context.Context, studentID, authToken string) ([]model.Mark, error)
	FetchStudents(ctx context.Context, authToken string) ([]model.Student, error)
}

// BackendService fetches student and marks data from the main backend,
// forwarding the caller's Authorization header unchanged.
type BackendService struct {
	client *resty.Client
}

func NewBackendService(baseURL string) *BackendService {
	return &BackendService{
		client: resty.New().SetBaseURL(baseURL),
	}
}

func (s *BackendService) FetchStudentMarks(ctx context.Context, studentID, authToken string) ([]model.Mark, error) {
	body, err := s.get(ctx, fmt.Sprintf("/api/v1/students/%s/marks", studentID), authToken)
	if err != nil {
		return nil, err
	}

	var marks []model.Mark
	if err := unmarshalData(body, &marks); err != nil {
		return nil, fmt.Errorf("parse marks response: %w", err)
	}
	return marks, nil
}

func (s *BackendService) FetchStudents(ctx context.Context, authToken string) ([]model.Student, error) {
	body, err := s.get(ctx, "/api/v1/students", authToken)
	if err != nil {
		return nil, err
	}

	var students []model.Student
	if err := unmarshalData(body, &students); err != nil {
		return nil, fmt.Errorf("parse students response: %w", err)
	}
	return students, nil
}

func (s *BackendService) get(ctx context.Context, path, authToken string) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", authToken).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode()}
	}
	return resp.Body(), nil
}

// unmarshalData decodes the `data` field of a backend response envelope.
// An absent field decodes to an empty slice.
func unmarshalData(body []byte, out any) error {
	data := gjson.GetBytes(body, "data")
	if !data.Exists() {
		return nil
	}
	return json.Unmarshal([]byte(data.Raw), out)
}
