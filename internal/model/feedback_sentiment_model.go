package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackSentiment is the persisted result of one feedback analysis.
// Rows are append-only: created on submission, never updated.
type FeedbackSentiment struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Text           string    `gorm:"type:text" json:"text"`
	Source         string    `gorm:"type:varchar(100)" json:"source"`
	Category       string    `gorm:"type:varchar(100)" json:"category"`
	Compound       float64   `gorm:"type:float" json:"compound"`
	VaderPositive  float64   `gorm:"type:float" json:"vader_positive"`
	VaderNegative  float64   `gorm:"type:float" json:"vader_negative"`
	VaderNeutral   float64   `gorm:"type:float" json:"vader_neutral"`
	Polarity       float64   `gorm:"type:float" json:"polarity"`
	Subjectivity   float64   `gorm:"type:float" json:"subjectivity"`
	CombinedScore  float64   `gorm:"type:float" json:"combined_score"`
	Classification string    `gorm:"type:varchar(20)" json:"classification"`
	Confidence     float64   `gorm:"type:float" json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
}

func (f *FeedbackSentiment) TableName() string {
	return "feedback_sentiments"
}
