package metrics

import (
	"time"

	"gorm.io/gorm"

	"macrofit-backend/internal/shared"
)

// StageMetric records metadata for a single workflow stage execution.
type StageMetric struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Stage            string `gorm:"not null;index"`
	Model            string
	PromptTokens     int
	CompletionTokens int
	LatencyMS        int64
	Timestamp        time.Time `gorm:"index"`
}

func (StageMetric) TableName() string { return "stage_metrics" }

// Store persists stage execution metrics.
type Store struct {
	db *gorm.DB
}

// NewStore initializes the Store on an existing database connection.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&StageMetric{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Record saves a metric to the database.
func (s *Store) Record(m StageMetric) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	return s.db.Create(&m).Error
}

// RecordMeta records a metric directly from a stage's execution metadata.
// Stages that produced no tokens (failed calls) are skipped.
func (s *Store) RecordMeta(meta shared.StageMeta) error {
	if meta.Usage.PromptTokens == 0 && meta.Usage.CompletionTokens == 0 {
		return nil
	}
	return s.Record(StageMetric{
		Stage:            meta.Stage,
		Model:            meta.Usage.Model,
		PromptTokens:     meta.Usage.PromptTokens,
		CompletionTokens: meta.Usage.CompletionTokens,
		LatencyMS:        meta.Latency.Milliseconds(),
	})
}

// DailyUsage represents token totals for a single day.
type DailyUsage struct {
	Date            string
	TotalPrompt     int
	TotalCompletion int
	TotalExecutions int
}

// GetDailyUsage retrieves usage aggregated per day for the last N days.
func (s *Store) GetDailyUsage(days int) ([]DailyUsage, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)

	var rows []struct {
		Day             string
		PromptTotal     int
		CompletionTotal int
		Executions      int
	}
	err := s.db.Model(&StageMetric{}).
		Select("date(timestamp) AS day, sum(prompt_tokens) AS prompt_total, sum(completion_tokens) AS completion_total, count(*) AS executions").
		Where("timestamp >= ?", since).
		Group("date(timestamp)").
		Order("day DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]DailyUsage, 0, len(rows))
	for _, r := range rows {
		results = append(results, DailyUsage{
			Date:            r.Day,
			TotalPrompt:     r.PromptTotal,
			TotalCompletion: r.CompletionTotal,
			TotalExecutions: r.Executions,
		})
	}
	return results, nil
}

// Cleanup removes records older than N days and reports how many were deleted.
func (s *Store) Cleanup(days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	res := s.db.Where("timestamp < ?", cutoff).Delete(&StageMetric{})
	return res.RowsAffected, res.Error
}
