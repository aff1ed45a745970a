package model

// Mark is a read-only view of one subject-score observation fetched
// from the main backend. Only score is guaranteed to be present.
type Mark struct {
	SubjectID *string `json:"subjectId,omitempty"`
	Subject   *string `json:"subject,omitempty"`
	Score     float64 `json:"score"`
	Date      *string `json:"date,omitempty"`
}
