package usecase

import (
	"context"
	"math"

	"github.com/mbc-dev/ai-analytics/internal/dto"
	"github.com/mbc-dev/ai-analytics/internal/model"
	"github.com/mbc-dev/ai-analytics/internal/service"
	"github.com/mbc-dev/ai-analytics/internal/util"
	"gonum.org/v1/gonum/stat"
)

type PredictionType string

const (
	PredictionLinearRegression PredictionType = "linear_regression"
	PredictionGrade            PredictionType = "grade_prediction"
)

// ParsePredictionType defaults any unrecognized value to linear
// regression.
func ParsePredictionType(s string) PredictionType {
	if s == string(PredictionGrade) {
		return PredictionGrade
	}
	return PredictionLinearRegression
}

type predictionStrategy interface {
	Predict(marks []model.Mark) any
}

type PredictionUsecase struct {
	backend service.BackendServiceInterface
}

func NewPredictionUsecase(backend service.BackendServiceInterface) *PredictionUsecase {
	return &PredictionUsecase{backend: backend}
}

// PredictPerformance fetches the student's marks and runs the requested
// strategy. ok=false signals the insufficient-data business outcome,
// which callers surface as success=false with HTTP 200.
func (uc *PredictionUsecase) PredictPerformance(ctx context.Context, req dto.PredictionRequest, authToken string) (data any, ok bool, err error) {
	marks, err := uc.backend.FetchStudentMarks(ctx, req.StudentID, authToken)
	if err != nil {
		return nil, false, err
	}
	if len(marks) < 3 {
		return dto.PredictionErrorDTO{
			Error: "Insufficient data for prediction. Need at least 3 marks.",
		}, false, nil
	}

	strategy := strategyFor(ParsePredictionType(req.PredictionType), req.SubjectID)
	return strategy.Predict(marks), true, nil
}

func strategyFor(t PredictionType, subjectID *string) predictionStrategy {
	switch t {
	case PredictionGrade:
		return gradePredictionStrategy{}
	default:
		return linearRegressionStrategy{subjectID: subjectID}
	}
}

// linearRegressionStrategy fits an OLS line over the score sequence and
// extrapolates one step ahead.
type linearRegressionStrategy struct {
	subjectID *string
}

func (s linearRegressionStrategy) Predict(marks []model.Mark) any {
	if s.subjectID != nil {
		filtered := marks[:0:0]
		for _, m := range marks {
			if m.SubjectID != nil && *m.SubjectID == *s.subjectID {
				filtered = append(filtered, m)
			}
		}
		marks = filtered
	}
	if len(marks) < 3 {
		return dto.PredictionErrorDTO{Error: "Insufficient data for linear regression"}
	}

	n := len(marks)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, m := range marks {
		xs[i] = float64(i)
		ys[i] = m.Score
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	rSquared := stat.RSquared(xs, ys, nil, intercept, slope)
	if math.IsNaN(rSquared) {
		rSquared = 0
	}

	predicted := intercept + slope*float64(n)

	residuals := make([]float64, n)
	for i := range xs {
		residuals[i] = ys[i] - (intercept + slope*xs[i])
	}
	interval := 1.96 * stat.PopStdDev(residuals, nil)

	return dto.LinearRegressionPredictionDTO{
		Method:             string(PredictionLinearRegression),
		CurrentAverage:     util.RoundTo(stat.Mean(ys, nil), 2),
		PredictedNextScore: util.RoundTo(util.Clamp(predicted, 0, 100), 2),
		ConfidenceInterval: dto.ConfidenceIntervalDTO{
			Lower: util.RoundTo(util.Clamp(predicted-interval, 0, 100), 2),
			Upper: util.RoundTo(util.Clamp(predicted+interval, 0, 100), 2),
		},
		Slope:     util.RoundTo(slope, 4),
		Intercept: util.RoundTo(intercept, 4),
		RSquared:  util.RoundTo(rSquared, 4),
		Trend:     trendLabel(slope, 0),
	}
}

// gradePredictionStrategy bands the mean score into a letter grade.
type gradePredictionStrategy struct{}

func (gradePredictionStrategy) Predict(marks []model.Mark) any {
	scores := make([]float64, len(marks))
	for i, m := range marks {
		scores[i] = m.Score
	}
	average := stat.Mean(scores, nil)

	confidence := "low"
	switch {
	case len(scores) >= 5:
		confidence = "high"
	case len(scores) >= 3:
		confidence = "medium"
	}

	return dto.GradePredictionDTO{
		Method:         string(PredictionGrade),
		CurrentAverage: util.RoundTo(average, 2),
		PredictedGrade: GradeFor(average),
		GradeBreakdown: map[string]bool{
			"A": average >= 90,
			"B": average >= 80 && average < 90,
			"C": average >= 70 && average < 80,
			"D": average >= 60 && average < 70,
			"F": average < 60,
		},
		Confidence: confidence,
	}
}
