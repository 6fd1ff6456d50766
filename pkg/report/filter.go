package report

import (
	"strings"

	"github.com/srodi/sysreport/pkg/types"
)

// FilterConfig controls which samples survive before ranking.
type FilterConfig struct {
	ExcludeSystem bool
	ExcludeNames  []string
}

// systemProcessNames is the fixed built-in list behind the exclude-system
// flag: OS infrastructure that is rarely actionable in a consumer report.
var systemProcessNames = map[string]struct{}{
	"system":              {},
	"system idle process": {},
	"idle":                {},
	"registry":            {},
	"smss.exe":            {},
	"csrss.exe":           {},
	"wininit.exe":         {},
	"services.exe":        {},
	"lsass.exe":           {},
	"svchost.exe":         {},
	"init":                {},
	"systemd":             {},
	"kthreadd":            {},
}

// Kernel worker threads show up with per-instance suffixes, so they are
// matched by prefix instead of exact name.
var systemProcessPrefixes = []string{
	"kworker", "ksoftirqd", "migration", "watchdog", "rcu", "irq/",
}

// FilterSamples applies the system and name exclusions before ranking.
// Name matching is case-insensitive; excluded samples never reach the ranker.
func FilterSamples(samples []types.ProcessSample, cfg FilterConfig) []types.ProcessSample {
	excluded := make(map[string]struct{}, len(cfg.ExcludeNames))
	for _, name := range cfg.ExcludeNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			excluded[name] = struct{}{}
		}
	}

	filtered := make([]types.ProcessSample, 0, len(samples))
	for _, s := range samples {
		name := strings.ToLower(s.Name)
		if _, ok := excluded[name]; ok {
			continue
		}
		if cfg.ExcludeSystem && isSystemProcess(name) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

func isSystemProcess(lowerName string) bool {
	if _, ok := systemProcessNames[lowerName]; ok {
		return true
	}
	for _, prefix := range systemProcessPrefixes {
		if strings.HasPrefix(lowerName, prefix) {
			return true
		}
	}
	return false
}
