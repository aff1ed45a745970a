package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mbc-dev/ai-analytics/internal/dto"
	"github.com/mbc-dev/ai-analytics/internal/model"
	"github.com/mbc-dev/ai-analytics/internal/repository"
	"github.com/mbc-dev/ai-analytics/internal/service"
	"github.com/mbc-dev/ai-analytics/internal/util"
	"gonum.org/v1/gonum/stat"
)

type FeedbackRepositoryInterface interface {
	Create(record *model.FeedbackSentiment) error
	Find(filter repository.FeedbackFilter) ([]model.FeedbackSentiment, error)
}

type SentimentUsecase struct {
	repo     FeedbackRepositoryInterface
	analyzer service.SentimentServiceInterface
}

func NewSentimentUsecase(repo FeedbackRepositoryInterface, analyzer service.SentimentServiceInterface) *SentimentUsecase {
	return &SentimentUsecase{repo: repo, analyzer: analyzer}
}

// AnalyzeFeedback scores the text and persists the result before
// returning it. Records are immutable once created.
func (uc *SentimentUsecase) AnalyzeFeedback(req dto.FeedbackRequest) (dto.FeedbackSentimentDTO, error) {
	source := req.Source
	if source == "" {
		source = "unknown"
	}
	category := req.Category
	if category == "" {
		category = "general"
	}

	analysis := uc.analyzer.Analyze(req.Text)

	record := model.FeedbackSentiment{
		ID:             uuid.New(),
		Text:           req.Text,
		Source:         source,
		Category:       category,
		Compound:       analysis.Vader.Compound,
		VaderPositive:  analysis.Vader.Positive,
		VaderNegative:  analysis.Vader.Negative,
		VaderNeutral:   analysis.Vader.Neutral,
		Polarity:       analysis.TextBlob.Polarity,
		Subjectivity:   analysis.TextBlob.Subjectivity,
		CombinedScore:  analysis.Combined.Score,
		Classification: analysis.Combined.Classification,
		Confidence:     analysis.Combined.Confidence,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.repo.Create(&record); err != nil {
		return dto.FeedbackSentimentDTO{}, err
	}

	return dto.FeedbackSentimentDTO{
		ID:        record.ID,
		Text:      record.Text,
		Source:    record.Source,
		Category:  record.Category,
		Sentiment: analysis,
		Timestamp: record.CreatedAt,
	}, nil
}

func (uc *SentimentUsecase) Report(filter repository.FeedbackFilter) (any, error) {
	records, err := uc.repo.Find(filter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return dto.NoDataDTO{Message: "No sentiment data available for the specified period"}, nil
	}
	return uc.BuildReport(records), nil
}

// BuildReport aggregates stored sentiment records into distribution,
// averages, and a per-day trend. Subset averages are 0 when the subset
// is empty.
func (uc *SentimentUsecase) BuildReport(records []model.FeedbackSentiment) dto.SentimentReportDTO {
	distribution := make(map[string]int)
	scores := make([]float64, len(records))
	var positives, negatives []float64

	earliest := records[0].CreatedAt
	latest := records[0].CreatedAt
	for i, r := range records {
		distribution[r.Classification]++
		scores[i] = r.CombinedScore
		if r.CombinedScore > 0.1 {
			positives = append(positives, r.CombinedScore)
		}
		if r.CombinedScore < -0.1 {
			negatives = append(negatives, r.CombinedScore)
		}
		if r.CreatedAt.Before(earliest) {
			earliest = r.CreatedAt
		}
		if r.CreatedAt.After(latest) {
			latest = r.CreatedAt
		}
	}

	return dto.SentimentReportDTO{
		Summary: dto.ReportSummaryDTO{
			TotalFeedbacks: len(records),
			DateRange: dto.DateRangeDTO{
				Start: earliest.Format(time.RFC3339),
				End:   latest.Format(time.RFC3339),
			},
		},
		SentimentDistribution: distribution,
		AverageScores: dto.AverageScoresDTO{
			Overall:  util.RoundTo(stat.Mean(scores, nil), 3),
			Positive: subsetMean(positives),
			Negative: subsetMean(negatives),
		},
		Trends: dailyTrends(records),
	}
}

func subsetMean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return util.RoundTo(stat.Mean(xs, nil), 3)
}

// dailyTrends groups combined scores by UTC calendar day and compares
// the first and last day's mean.
func dailyTrends(records []model.FeedbackSentiment) dto.ReportTrendsDTO {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		day := r.CreatedAt.UTC().Format("2006-01-02")
		sums[day] += r.CombinedScore
		counts[day]++
	}

	days := make([]string, 0, len(sums))
	daily := make(map[string]float64, len(sums))
	for day := range sums {
		days = append(days, day)
		daily[day] = util.RoundTo(sums[day]/float64(counts[day]), 3)
	}
	sort.Strings(days)

	return dto.ReportTrendsDTO{
		DailyAverage: daily,
		OverallTrend: trendLabel(daily[days[len(days)-1]], daily[days[0]]),
	}
}
