package dto

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackRequest struct {
	Text     string `json:"text"`
	Source   string `json:"source,omitempty"`
	Category string `json:"category,omitempty"`
}

type VaderScoreDTO struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

type TextBlobScoreDTO struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type CombinedScoreDTO struct {
	Score          float64 `json:"score"`
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
}

type SentimentAnalysisDTO struct {
	Vader    VaderScoreDTO    `json:"vader"`
	TextBlob TextBlobScoreDTO `json:"textblob"`
	Combined CombinedScoreDTO `json:"combined"`
}

type FeedbackSentimentDTO struct {
	ID        uuid.UUID            `json:"id"`
	Text      string               `json:"text"`
	Source    string               `json:"source"`
	Category  string               `json:"category"`
	Sentiment SentimentAnalysisDTO `json:"sentiment"`
	Timestamp time.Time            `json:"timestamp"`
}

type DateRangeDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ReportSummaryDTO struct {
	TotalFeedbacks int          `json:"total_feedbacks"`
	DateRange      DateRangeDTO `json:"date_range"`
}

type AverageScoresDTO struct {
	Overall  float64 `json:"overall"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
}

type ReportTrendsDTO struct {
	DailyAverage map[string]float64 `json:"daily_average"`
	OverallTrend string             `json:"overall_trend"`
}

type SentimentReportDTO struct {
	Summary               ReportSummaryDTO `json:"summary"`
	SentimentDistribution map[string]int   `json:"sentiment_distribution"`
	AverageScores         AverageScoresDTO `json:"average_scores"`
	Trends                ReportTrendsDTO  `json:"trends"`
}
