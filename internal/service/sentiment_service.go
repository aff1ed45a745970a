package service

import (
	"math"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
	"github.com/mbc-dev/ai-analytics/internal/dto"
	"github.com/mbc-dev/ai-analytics/internal/polarity"
	"github.com/mbc-dev/ai-analytics/internal/util"
)

type SentimentServiceInterface interface {
	Analyze(text string) dto.SentimentAnalysisDTO
}

// SentimentService scores text with two independent analyzers: VADER and
// a pattern-lexicon polarity/subjectivity scorer. The combined score is
// the mean of VADER's compound and the lexicon polarity.
type SentimentService struct{}

func NewSentimentService() *SentimentService {
	return &SentimentService{}
}

func (s *SentimentService) Analyze(text string) dto.SentimentAnalysisDTO {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	vader := sentitext.PolarityScore(parsed)

	pol, subjectivity := polarity.Score(text)

	combined := (vader.Compound + pol) / 2
	classification := Classify(combined)
	confidence := math.Min(math.Abs(combined)*2, 1.0)

	return dto.SentimentAnalysisDTO{
		Vader: dto.VaderScoreDTO{
			Compound: util.RoundTo(vader.Compound, 3),
			Positive: util.RoundTo(vader.Positive, 3),
			Negative: util.RoundTo(vader.Negative, 3),
			Neutral:  util.RoundTo(vader.Neutral, 3),
		},
		TextBlob: dto.TextBlobScoreDTO{
			Polarity:     util.RoundTo(pol, 3),
			Subjectivity: util.RoundTo(subjectivity, 3),
		},
		Combined: dto.CombinedScoreDTO{
			Score:          util.RoundTo(combined, 3),
			Classification: classification,
			Confidence:     util.RoundTo(confidence, 3),
		},
	}
}

// Classify maps a combined score to its label. Scores within ±0.1 are
// neutral.
func Classify(score float64) string {
	switch {
	case score > 0.1:
		return "positive"
	case score < -0.1:
		return "negative"
	default:
		return "neutral"
	}
}
