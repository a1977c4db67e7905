package repo

import (
	"time"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// InMemoryScanLogRepository is an in-memory implementation of ScanLogRepository.
type InMemoryScanLogRepository struct {
	logs   []models.ScanLog
	nextID int
}

func NewInMemoryScanLogRepository() *InMemoryScanLogRepository {
	return &InMemoryScanLogRepository{nextID: 1}
}

func (r *InMemoryScanLogRepository) Add(l models.ScanLog) (models.ScanLog, error) {
	l.ID = r.nextID
	r.nextID++
	r.logs = append(r.logs, l)
	return l, nil
}

func (r *InMemoryScanLogRepository) CountSince(since time.Time) (int, error) {
	count := 0
	for _, l := range r.logs {
		if !l.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryScanLogRepository) Clear() {
	r.logs = nil
}
