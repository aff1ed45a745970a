package dto

type PredictionRequest struct {
	StudentID      string  `json:"studentId"`
	SubjectID      *string `json:"subjectId,omitempty"`
	PredictionType string  `json:"predictionType,omitempty"`
}

// PredictionErrorDTO is a business-logic failure carried inside a
// success envelope, not an HTTP error.
type PredictionErrorDTO struct {
	Error string `json:"error"`
}

type ConfidenceIntervalDTO struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type LinearRegressionPredictionDTO struct {
	Method             string                `json:"method"`
	CurrentAverage     float64               `json:"current_average"`
	PredictedNextScore float64               `json:"predicted_next_score"`
	ConfidenceInterval ConfidenceIntervalDTO `json:"confidence_interval"`
	Slope              float64               `json:"slope"`
	Intercept          float64               `json:"intercept"`
	RSquared           float64               `json:"r_squared"`
	Trend              string                `json:"trend"`
}

type GradePredictionDTO struct {
	Method         string          `json:"method"`
	CurrentAverage float64         `json:"current_average"`
	PredictedGrade string          `json:"predicted_grade"`
	GradeBreakdown map[string]bool `json:"grade_breakdown"`
	Confidence     string          `json:"confidence"`
}
