package model

import "time"

// ExportTask represents a single offline-bundle export run
type ExportTask struct {
	ID         string
	OutputPath string // path to the produced zip archive
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}
