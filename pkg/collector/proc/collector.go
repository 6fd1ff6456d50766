package proc

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/srodi/sysreport/pkg/types"
)

// Test seams for the OS queries that back a snapshot.
var (
	listProcesses = process.Processes
	systemUptime  = host.Uptime
	logicalCores  = func() (int, error) { return cpu.Counts(true) }
)

// Collector samples per-process metrics from the running system.
type Collector struct{}

// NewCollector returns a collector backed by the local process table.
func NewCollector() *Collector {
	return &Collector{}
}

// Snapshot enumerates running processes once and materializes a ProcessSample
// per process, along with the shared capture time. Processes that exit or
// deny access mid-scan are skipped; failing to enumerate at all is an error.
func (c *Collector) Snapshot() ([]types.ProcessSample, time.Time, error) {
	capturedAt := time.Now()

	procs, err := listProcesses()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("enumerating processes: %w", err)
	}
	uptime, err := systemUptime()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("reading system uptime: %w", err)
	}
	cores, err := logicalCores()
	if err != nil || cores <= 0 {
		cores = 1
	}

	samples := make([]types.ProcessSample, 0, len(procs))
	for _, p := range procs {
		sample, ok := sampleProcess(p, uptime, cores)
		if !ok {
			continue
		}
		samples = append(samples, sample)
	}
	return samples, capturedAt, nil
}
