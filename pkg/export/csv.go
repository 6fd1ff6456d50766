package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/srodi/sysreport/pkg/types"
)

// Column order is part of the report contract; downstream tooling parses it.
var header = []string{
	"Timestamp", "Rank", "Name", "Id",
	"CPU_Percent", "CPU_Seconds", "Memory_MB", "PageFile_MB",
	"ThreadCount", "CompositeScore",
}

const (
	fileTimeLayout = "2006-01-02_15-04-05"
	cellTimeLayout = "2006-01-02 15:04:05"
)

// FileName returns the report file name for a capture time, e.g.
// systemresources_2026-08-24_10-30-00.csv.
func FileName(capturedAt time.Time) string {
	return fmt.Sprintf("systemresources_%s.csv", capturedAt.Format(fileTimeLayout))
}

// WriteCSV writes one report file under dir, creating the directory if
// needed, and returns the full path written. Nothing is left behind on a
// failed write apart from the directory itself.
func WriteCSV(dir string, rows []types.RankedProcess, capturedAt time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(capturedAt))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(header)
	for _, row := range rows {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(record(row))
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing report file %s: %w", path, writeErr)
	}
	return path, nil
}

func record(row types.RankedProcess) []string {
	return []string{
		row.Timestamp.Format(cellTimeLayout),
		strconv.Itoa(row.Rank),
		row.Name,
		strconv.FormatInt(int64(row.PID), 10),
		formatFloat(row.CPUPercent),
		formatFloat(row.CPUSeconds),
		formatFloat(row.MemoryMB),
		formatFloat(row.PageFileMB),
		strconv.FormatInt(int64(row.ThreadCount), 10),
		formatFloat(row.CompositeScore),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
