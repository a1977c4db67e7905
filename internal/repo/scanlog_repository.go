package repo

import (
	"time"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// ScanLogRepository defines the interface for image-scan event records.
type ScanLogRepository interface {
	Add(log models.ScanLog) (models.ScanLog, error)

	// CountSince returns the number of scans recorded at or after the
	// given instant. The dashboard passes the start of the current day.
	CountSince(since time.Time) (int, error)
}
