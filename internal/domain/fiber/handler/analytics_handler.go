package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mbc-dev/ai-analytics/internal/config"
	"github.com/mbc-dev/ai-analytics/internal/dto"
	"github.com/mbc-dev/ai-analytics/internal/middleware"
	"github.com/mbc-dev/ai-analytics/internal/repository"
	"github.com/mbc-dev/ai-analytics/internal/service"
	"github.com/mbc-dev/ai-analytics/internal/usecase"
	"github.com/mbc-dev/ai-analytics/internal/util"
)

type AnalyticsHandler struct {
	analyticsUC  *usecase.AnalyticsUsecase
	predictionUC *usecase.PredictionUsecase
	sentimentUC  *usecase.SentimentUsecase
}

func NewAnalyticsHandler(analyticsUC *usecase.AnalyticsUsecase, predictionUC *usecase.PredictionUsecase, sentimentUC *usecase.SentimentUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC:  analyticsUC,
		predictionUC: predictionUC,
		sentimentUC:  sentimentUC,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.Health)

	v1 := app.Group("/api/v1")
	v1.Get("/analytics/performance", middleware.RequireAuth(), h.StudentPerformance)
	v1.Get("/analytics/department", middleware.RequireAuth(), h.DepartmentAnalytics)
	v1.Post("/prediction/performance", middleware.RequireAuth(), h.PredictPerformance)
	v1.Post("/sentiment/feedback", h.AnalyzeFeedback)
	v1.Get("/sentiment/report", h.SentimentReport)
}

func (h *AnalyticsHandler) Health(c *fiber.Ctx) error {
	appConfig := config.LoadAppConfig()
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   appConfig.Name,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   appConfig.Version,
	})
}

func (h *AnalyticsHandler) StudentPerformance(c *fiber.Ctx) error {
	studentID := c.Query("studentId")
	if studentID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "studentId query parameter is required",
		})
	}

	analytics, err := h.analyticsUC.StudentPerformance(c.Context(), studentID, middleware.AuthToken(c))
	if err != nil {
		return h.fetchError(c, err, "Failed to fetch student data", "Failed to calculate performance analytics")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: analytics})
}

func (h *AnalyticsHandler) DepartmentAnalytics(c *fiber.Ctx) error {
	analytics, err := h.analyticsUC.DepartmentAnalytics(c.Context(), middleware.AuthToken(c))
	if err != nil {
		return h.fetchError(c, err, "Failed to fetch department data", "Failed to calculate department analytics")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: analytics})
}

func (h *AnalyticsHandler) PredictPerformance(c *fiber.Ctx) error {
	var req dto.PredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.StudentID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "studentId is required",
		})
	}

	prediction, ok, err := h.predictionUC.PredictPerformance(c.Context(), req, middleware.AuthToken(c))
	if err != nil {
		return h.fetchError(c, err, "Failed to fetch student data", "Failed to generate prediction")
	}
	if !ok {
		return util.FailureResponse(c, prediction)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: prediction})
}

func (h *AnalyticsHandler) AnalyzeFeedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.Text == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "text is required",
		})
	}

	result, err := h.sentimentUC.AnalyzeFeedback(req)
	if err != nil {
		log.Printf("Error analyzing feedback sentiment: %v", err)
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to analyze feedback sentiment",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: result})
}

func (h *AnalyticsHandler) SentimentReport(c *fiber.Ctx) error {
	filter, err := buildReportFilter(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	report, err := h.sentimentUC.Report(filter)
	if err != nil {
		log.Printf("Error generating sentiment report: %v", err)
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to generate sentiment report",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: report})
}

func buildReportFilter(c *fiber.Ctx) (repository.FeedbackFilter, error) {
	filter := repository.FeedbackFilter{Category: c.Query("category")}

	if raw := c.Query("start_date"); raw != "" {
		start, err := parseDate(raw, false)
		if err != nil {
			return filter, fmt.Errorf("invalid start_date: %s", raw)
		}
		filter.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := parseDate(raw, true)
		if err != nil {
			return filter, fmt.Errorf("invalid end_date: %s", raw)
		}
		filter.EndDate = &end
	}
	return filter, nil
}

// parseDate accepts RFC3339 or a bare date. A bare end date is inclusive
// through the end of that day.
func parseDate(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// fetchError maps upstream failures to the upstream's own status with a
// generic detail; everything else is a logged 500.
func (h *AnalyticsHandler) fetchError(c *fiber.Ctx, err error, upstreamMessage, internalMessage string) error {
	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    upstream.StatusCode,
			Message: upstreamMessage,
		}, err)
	}
	log.Printf("%s: %v", internalMessage, err)
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: internalMessage,
	}, err)
}
