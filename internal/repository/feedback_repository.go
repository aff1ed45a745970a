package repository

import (
	"time"

	"github.com/mbc-dev/ai-analytics/internal/model"
	"gorm.io/gorm"
)

// FeedbackFilter narrows report queries. Timestamp bounds are inclusive.
type FeedbackFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db}
}

func (r *FeedbackRepository) Create(record *model.FeedbackSentiment) error {
	return r.db.Create(record).Error
}

func (r *FeedbackRepository) Find(filter FeedbackFilter) ([]model.FeedbackSentiment, error) {
	query := r.db.Order("created_at ASC")
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var records []model.FeedbackSentiment
	err := query.Find(&records).Error
	return records, err
}
