package proc

import (
	"github.com/shirou/gopsutil/v3/process"

	"github.com/srodi/sysreport/pkg/types"
)

// sampleProcess converts one live process into a sample. It reports false for
// processes that vanished before their name could be read; metric reads that
// fail individually leave the field at zero rather than dropping the row.
func sampleProcess(p *process.Process, uptimeSeconds uint64, cores int) (types.ProcessSample, bool) {
	name, err := p.Name()
	if err != nil || name == "" {
		return types.ProcessSample{}, false
	}

	var cpuSeconds float64
	if t, err := p.Times(); err == nil && t != nil {
		cpuSeconds = t.User + t.System
	}

	var memoryMB, pageFileMB float64
	if mi, err := p.MemoryInfo(); err == nil && mi != nil {
		memoryMB = bytesToMB(mi.RSS)
		pageFileMB = bytesToMB(mi.VMS)
	}

	var threads int32
	if n, err := p.NumThreads(); err == nil {
		threads = n
	}

	return types.ProcessSample{
		Name:        name,
		PID:         p.Pid,
		CPUSeconds:  cpuSeconds,
		CPUPercent:  lifetimeCPUPercent(cpuSeconds, uptimeSeconds, cores),
		MemoryMB:    memoryMB,
		PageFileMB:  pageFileMB,
		ThreadCount: threads,
	}, true
}

// lifetimeCPUPercent normalizes cumulative CPU seconds by elapsed system
// uptime and logical core count. Values can exceed 100 under clock skew.
func lifetimeCPUPercent(cpuSeconds float64, uptimeSeconds uint64, cores int) float64 {
	if uptimeSeconds == 0 || cores <= 0 {
		return 0
	}
	return 100 * cpuSeconds / (float64(uptimeSeconds) * float64(cores))
}

func bytesToMB(v uint64) float64 {
	return float64(v) / (1024 * 1024)
}
