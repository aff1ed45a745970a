package dto

// NoDataDTO is the alternate shape returned when there is nothing to
// aggregate.
type NoDataDTO struct {
	Message string `json:"message"`
}

type SubjectStatsDTO struct {
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
	Std   float64 `json:"std"`
}

type PerformanceAnalyticsDTO struct {
	TotalSubjects     int                        `json:"total_subjects"`
	AverageScore      float64                    `json:"average_score"`
	HighestScore      float64                    `json:"highest_score"`
	LowestScore       float64                    `json:"lowest_score"`
	ScoreRange        float64                    `json:"score_range"`
	StandardDeviation float64                    `json:"standard_deviation"`
	SubjectWise       map[string]SubjectStatsDTO `json:"subject_wise,omitempty"`
	GradeDistribution map[string]int             `json:"grade_distribution"`
	Trend             string                     `json:"trend,omitempty"`
}

type BranchStatsDTO struct {
	Mean  *float64 `json:"mean,omitempty"`
	Count int      `json:"count"`
	Std   *float64 `json:"std,omitempty"`
}

type GPAStatsDTO struct {
	AverageGPA      float64        `json:"average_gpa"`
	HighestGPA      float64        `json:"highest_gpa"`
	LowestGPA       float64        `json:"lowest_gpa"`
	GPADistribution map[string]int `json:"gpa_distribution"`
}

type DepartmentAnalyticsDTO struct {
	TotalStudents  int                       `json:"total_students"`
	ActiveStudents int                       `json:"active_students"`
	BranchWise     map[string]BranchStatsDTO `json:"branch_wise,omitempty"`
	GPAStats       *GPAStatsDTO              `json:"gpa_stats,omitempty"`
}
