package proc

import (
	"math"
	"testing"
)

func TestLifetimeCPUPercent(t *testing.T) {
	cases := []struct {
		name       string
		cpuSeconds float64
		uptime     uint64
		cores      int
		expected   float64
	}{
		{"halfOfOneCore", 50, 100, 1, 50},
		{"normalizedByCores", 50, 100, 4, 12.5},
		{"zeroUptime", 50, 0, 4, 0},
		{"zeroCores", 50, 100, 0, 0},
		{"skewAbove100", 250, 100, 2, 125},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := lifetimeCPUPercent(tc.cpuSeconds, tc.uptime, tc.cores)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Fatalf("expected %.4f, got %.4f", tc.expected, got)
			}
		})
	}
}

func TestBytesToMB(t *testing.T) {
	if got := bytesToMB(512 << 20); got != 512 {
		t.Fatalf("expected 512 MB, got %.3f", got)
	}
	if got := bytesToMB(0); got != 0 {
		t.Fatalf("expected 0 MB, got %.3f", got)
	}
}
