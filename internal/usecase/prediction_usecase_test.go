package usecase

import (
	"context"
	"testing"

	"github.com/mbc-dev/ai-analytics/internal/dto"
	"github.com/mbc-dev/ai-analytics/internal/model"
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

func TestParsePredictionType(t *testing.T) {
	assert.Equal(t, PredictionGrade, ParsePredictionType("grade_prediction"))
	assert.Equal(t, PredictionLinearRegression, ParsePredictionType("linear_regression"))
	assert.Equal(t, PredictionLinearRegression, ParsePredictionType(""))
	assert.Equal(t, PredictionLinearRegression, ParsePredictionType("bogus"))
}

func TestPredictPerformance_LinearRegression(t *testing.T) {
	backend := &stubBackend{marks: marksWithScores(60, 70, 80)}
	uc := NewPredictionUsecase(backend)

	data, ok, err := uc.PredictPerformance(context.Background(), dto.PredictionRequest{StudentID: "s1"}, "token")
	require.NoError(t, err)
	require.True(t, ok)

	prediction, isLR := data.(dto.LinearRegressionPredictionDTO)
	require.True(t, isLR)
	assert.Equal(t, "linear_regression", prediction.Method)
	assert.Equal(t, 70.0, prediction.CurrentAverage)
	assert.Equal(t, 90.0, prediction.PredictedNextScore)
	assert.Equal(t, 10.0, prediction.Slope)
	assert.Equal(t, 60.0, prediction.Intercept)
	assert.Equal(t, 1.0, prediction.RSquared)
	assert.Equal(t, "improving", prediction.Trend)
	assert.Equal(t, 90.0, prediction.ConfidenceInterval.Lower)
	assert.Equal(t, 90.0, prediction.ConfidenceInterval.Upper)
}

func TestPredictPerformance_ClampsToHundred(t *testing.T) {
	backend := &stubBackend{marks: marksWithScores(80, 90, 100)}
	uc := NewPredictionUsecase(backend)

	data, ok, err := uc.PredictPerformance(context.Background(), dto.PredictionRequest{StudentID: "s1"}, "token")
	require.NoError(t, err)
	require.True(t, ok)

	prediction := data.(dto.LinearRegressionPredictionDTO)
	assert.Equal(t, 100.0, prediction.PredictedNextScore)
	assert.LessOrEqual(t, prediction.ConfidenceInterval.Upper, 100.0)
}

func TestPredictPerformance_InsufficientMarks(t *testing.T) {
	backend := &stubBackend{marks: marksWithScores(60, 70)}
	uc := NewPredictionUsecase(backend)

	data, ok, err := uc.PredictPerformance(context.Background(), dto.PredictionRequest{StudentID: "s1"}, "token")
	require.NoError(t, err)
	assert.False(t, ok, "fewer than 3 marks is a business failure, not an error")

	failure, isErr := data.(dto.PredictionErrorDTO)
	require.True(t, isErr)
	assert.Contains(t, failure.Error, "Insufficient data")
}

func TestPredictPerformance_SubjectFilterBelowThreshold(t *testing.T) {
	backend := &stubBackend{marks: []model.Mark{
		{SubjectID: strPtr("m1"), Score: 60},
		{SubjectID: strPtr("m1"), Score: 70},
		{SubjectID: strPtr("m2"), Score: 80},
	}}
	uc := NewPredictionUsecase(backend)

	data, ok, err := uc.PredictPerformance(context.Background(), dto.PredictionRequest{
		StudentID: "s1",
		SubjectID: strPtr("m1"),
	}, "token")
	require.NoError(t, err)
	assert.True(t, ok, "the filtered shortfall stays inside a success envelope")

	failure, isErr := data.(dto.PredictionErrorDTO)
	require.True(t, isErr)
	assert.Equal(t, "Insufficient data for linear regression", failure.Error)
}

func TestPredictPerformance_GradePrediction(t *testing.T) {
	backend := &stubBackend{marks: marksWithScores(88, 92, 90)}
	uc := NewPredictionUsecase(backend)

	data, ok, err := uc.PredictPerformance(context.Background(), dto.PredictionRequest{
		StudentID:      "s1",
		PredictionType: "grade_prediction",
	}, "token")
	require.NoError(t, err)
	require.True(t, ok)

	prediction, isGrade := data.(dto.GradePredictionDTO)
	require.True(t, isGrade)
	assert.Equal(t, "grade_prediction", prediction.Method)
	assert.Equal(t, 90.0, prediction.CurrentAverage)
	assert.Equal(t, "A", prediction.PredictedGrade)
	assert.True(t, prediction.GradeBreakdown["A"])
	assert.False(t, prediction.GradeBreakdown["B"])
	assert.Equal(t, "medium", prediction.Confidence)
}

func TestGradePredictionStrategy_Confidence(t *testing.T) {
	high := gradePredictionStrategy{}.Predict(marksWithScores(70, 70, 70, 70, 70)).(dto.GradePredictionDTO)
	assert.Equal(t, "high", high.Confidence)

	medium := gradePredictionStrategy{}.Predict(marksWithScores(70, 70, 70)).(dto.GradePredictionDTO)
	assert.Equal(t, "medium", medium.Confidence)

	low := gradePredictionStrategy{}.Predict(marksWithScores(70, 70)).(dto.GradePredictionDTO)
	assert.Equal(t, "low", low.Confidence)
}

func TestLinearRegressionStrategy_DecliningTrend(t *testing.T) {
	result := linearRegressionStrategy{}.Predict(marksWithScores(90, 80, 70)).(dto.LinearRegressionPredictionDTO)
	assert.Equal(t, "declining", result.Trend)
	assert.Equal(t, 60.0, result.PredictedNextScore)

	flat := linearRegressionStrategy{}.Predict(marksWithScores(75, 75, 75)).(dto.LinearRegressionPredictionDTO)
	assert.Equal(t, "stable", flat.Trend)
}
