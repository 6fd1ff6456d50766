package types

import "time"

// DefaultTopN controls how many processes the report keeps after ranking.
const DefaultTopN = 10

// ProcessSample holds the metrics observed for one process at snapshot time.
// The collector constructs samples fully; nothing mutates them afterwards.
type ProcessSample struct {
	Name        string
	PID         int32
	CPUSeconds  float64
	CPUPercent  float64
	MemoryMB    float64
	PageFileMB  float64
	ThreadCount int32
}

// RankedProcess is a ProcessSample placed into a report, carrying its
// composite score, 1-based rank, and the shared capture time of the snapshot.
type RankedProcess struct {
	ProcessSample
	CompositeScore float64
	Rank           int
	Timestamp      time.Time
}
