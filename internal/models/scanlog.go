package models

import "time"

// ScanLog records one successful image-scan event. The dashboard counts
// rows per day.
type ScanLog struct {
	ID             int       `json:"id"`
	IdentifiedName string    `json:"identified_name"`
	CreatedAt      time.Time `json:"created_at"`
}
