package usecase

import (
	"context"
	"sort"

	"github.com/mbc-dev/ai-analytics/internal/dto"
	"github.com/mbc-dev/ai-analytics/internal/model"
	"github.com/mbc-dev/ai-analytics/internal/service"
	"github.com/mbc-dev/ai-analytics/internal/util"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type AnalyticsUsecase struct {
	backend service.BackendServiceInterface
}

func NewAnalyticsUsecase(backend service.BackendServiceInterface) *AnalyticsUsecase {
	return &AnalyticsUsecase{backend: backend}
}

func (uc *AnalyticsUsecase) StudentPerformance(ctx context.Context, studentID, authToken string) (any, error) {
	marks, err := uc.backend.FetchStudentMarks(ctx, studentID, authToken)
	if err != nil {
		return nil, err
	}
	if len(marks) == 0 {
		return dto.NoDataDTO{Message: "No marks data available for analysis"}, nil
	}
	return uc.CalculatePerformance(marks), nil
}

func (uc *AnalyticsUsecase) DepartmentAnalytics(ctx context.Context, authToken string) (any, error) {
	students, err := uc.backend.FetchStudents(ctx, authToken)
	if err != nil {
		return nil, err
	}
	return uc.CalculateDepartment(students), nil
}

// CalculatePerformance computes descriptive statistics over a student's
// marks. Sections depending on optional fields (subject, date) appear
// only when at least one record carries the field.
func (uc *AnalyticsUsecase) CalculatePerformance(marks []model.Mark) any {
	if len(marks) == 0 {
		return dto.NoDataDTO{Message: "No marks data available"}
	}

	scores := make([]float64, len(marks))
	for i, m := range marks {
		scores[i] = m.Score
	}

	highest := floats.Max(scores)
	lowest := floats.Min(scores)

	analytics := dto.PerformanceAnalyticsDTO{
		TotalSubjects:     len(marks),
		AverageScore:      util.RoundTo(stat.Mean(scores, nil), 2),
		HighestScore:      highest,
		LowestScore:       lowest,
		ScoreRange:        highest - lowest,
		StandardDeviation: util.RoundTo(sampleStd(scores), 2),
		GradeDistribution: gradeDistribution(scores),
	}

	if subjectWise := subjectWiseStats(marks); len(subjectWise) > 0 {
		analytics.SubjectWise = subjectWise
	}

	if len(marks) > 1 {
		ordered := sortByDate(marks)
		first := ordered[0].Score
		last := ordered[len(ordered)-1].Score
		analytics.Trend = trendLabel(last, first)
	}

	return analytics
}

// CalculateDepartment computes roster-wide aggregates. The isActive rule
// is set-level: if the field occurs anywhere in the roster, only records
// with an explicit true count as active; otherwise every student does.
func (uc *AnalyticsUsecase) CalculateDepartment(students []model.Student) any {
	if len(students) == 0 {
		return dto.NoDataDTO{Message: "No student data available"}
	}

	analytics := dto.DepartmentAnalyticsDTO{
		TotalStudents:  len(students),
		ActiveStudents: countActive(students),
	}

	if branchWise := branchWiseStats(students); len(branchWise) > 0 {
		analytics.BranchWise = branchWise
	}

	analytics.GPAStats = gpaStats(students)

	return analytics
}

// GradeFor maps a score to its letter grade. Boundaries are inclusive on
// the lower edge; ties go to the higher band.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func gradeDistribution(scores []float64) map[string]int {
	dist := make(map[string]int)
	for _, s := range scores {
		dist[GradeFor(s)]++
	}
	return dist
}

func subjectWiseStats(marks []model.Mark) map[string]dto.SubjectStatsDTO {
	grouped := make(map[string][]float64)
	for _, m := range marks {
		if m.Subject == nil {
			continue
		}
		grouped[*m.Subject] = append(grouped[*m.Subject], m.Score)
	}
	if len(grouped) == 0 {
		return nil
	}

	out := make(map[string]dto.SubjectStatsDTO, len(grouped))
	for subject, scores := range grouped {
		out[subject] = dto.SubjectStatsDTO{
			Mean:  util.RoundTo(stat.Mean(scores, nil), 2),
			Count: len(scores),
			Std:   util.RoundTo(sampleStd(scores), 2),
		}
	}
	return out
}

// sortByDate orders marks by their date field when any record has one,
// keeping undated records after dated ones; otherwise input order stands.
func sortByDate(marks []model.Mark) []model.Mark {
	anyDated := false
	for _, m := range marks {
		if m.Date != nil {
			anyDated = true
			break
		}
	}
	if !anyDated {
		return marks
	}

	ordered := make([]model.Mark, len(marks))
	copy(ordered, marks)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := ordered[i].Date, ordered[j].Date
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
	return ordered
}

func countActive(students []model.Student) int {
	fieldPresent := false
	for _, s := range students {
		if s.IsActive != nil {
			fieldPresent = true
			break
		}
	}
	if !fieldPresent {
		return len(students)
	}

	active := 0
	for _, s := range students {
		if s.IsActive != nil && *s.IsActive {
			active++
		}
	}
	return active
}

func branchWiseStats(students []model.Student) map[string]dto.BranchStatsDTO {
	gpaPresent := false
	for _, s := range students {
		if s.GPA != nil {
			gpaPresent = true
			break
		}
	}

	members := make(map[string]int)
	gpas := make(map[string][]float64)
	for _, s := range students {
		if s.Branch == nil {
			continue
		}
		members[*s.Branch]++
		if s.GPA != nil {
			gpas[*s.Branch] = append(gpas[*s.Branch], *s.GPA)
		}
	}
	if len(members) == 0 {
		return nil
	}

	out := make(map[string]dto.BranchStatsDTO, len(members))
	for branch, count := range members {
		stats := dto.BranchStatsDTO{Count: count}
		if gpaPresent {
			branchGPAs := gpas[branch]
			stats.Count = len(branchGPAs)
			if len(branchGPAs) > 0 {
				mean := util.RoundTo(stat.Mean(branchGPAs, nil), 2)
				std := util.RoundTo(sampleStd(branchGPAs), 2)
				stats.Mean = &mean
				stats.Std = &std
			}
		}
		out[branch] = stats
	}
	return out
}

func gpaStats(students []model.Student) *dto.GPAStatsDTO {
	var gpas []float64
	for _, s := range students {
		if s.GPA != nil {
			gpas = append(gpas, *s.GPA)
		}
	}
	if len(gpas) == 0 {
		return nil
	}

	return &dto.GPAStatsDTO{
		AverageGPA:      util.RoundTo(stat.Mean(gpas, nil), 2),
		HighestGPA:      util.RoundTo(floats.Max(gpas), 2),
		LowestGPA:       util.RoundTo(floats.Min(gpas), 2),
		GPADistribution: gpaDistribution(gpas),
	}
}

// gpaDistribution buckets values over [0,6), [6,7), [7,8), [8,9), [9,10].
// Values outside [0,10] are dropped.
func gpaDistribution(gpas []float64) map[string]int {
	dist := make(map[string]int)
	for _, g := range gpas {
		switch {
		case g < 0 || g > 10:
			continue
		case g < 6:
			dist["<6"]++
		case g < 7:
			dist["6-7"]++
		case g < 8:
			dist["7-8"]++
		case g < 9:
			dist["8-9"]++
		default:
			dist["9-10"]++
		}
	}
	return dist
}

// trendLabel is the three-way first-vs-last comparison used by trend
// reporting throughout the service.
func trendLabel(last, first float64) string {
	switch {
	case last > first:
		return "improving"
	case last < first:
		return "declining"
	default:
		return "stable"
	}
}

// sampleStd is the n-1 standard deviation, reported as 0 for fewer than
// two observations so responses stay JSON-serializable.
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
