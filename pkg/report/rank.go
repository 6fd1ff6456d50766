package report

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/srodi/sysreport/pkg/types"
)

// Normalization divisors bring MB and percent onto comparable scales before
// weighting; memory dominates the composite at 60/40.
const (
	memoryDivisor = 100.0
	cpuDivisor    = 10.0
	memoryWeight  = 0.60
	cpuWeight     = 0.40
)

// ErrInvalidTopN flags a non-positive top-N request.
var ErrInvalidTopN = errors.New("top-n must be a positive integer")

// CompositeScore computes the weighted normalized score for one sample,
// rounded half away from zero to two decimal places. Rounding happens before
// sorting, so scores that round equal tie and keep input order.
func CompositeScore(s types.ProcessSample) float64 {
	memScore := s.MemoryMB / memoryDivisor
	cpuScore := s.CPUPercent / cpuDivisor
	return round2(memScore*memoryWeight + cpuScore*cpuWeight)
}

// Rank scores every sample, sorts descending by composite score, and returns
// the first topN entries with ranks 1..k and the shared capture time attached.
// The sort is stable: equal scores keep their input order. Empty input yields
// an empty result; topN <= 0 is an error.
func Rank(samples []types.ProcessSample, topN int, capturedAt time.Time) ([]types.RankedProcess, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTopN, topN)
	}

	ranked := make([]types.RankedProcess, 0, len(samples))
	for _, s := range samples {
		ranked = append(ranked, types.RankedProcess{
			ProcessSample:  s,
			CompositeScore: CompositeScore(s),
			Timestamp:      capturedAt,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompositeScore > ranked[j].CompositeScore
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
