package pipeline

import (
	"sort"
	"sync"
	"time"
)

// StatsSnapshot is a point-in-time aggregate of ingest durations.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
}

// IngestStats keeps the end-to-end durations of recent ingests.
// Samples older than the window fall off on the next Record or
// Snapshot call.
type IngestStats struct {
	mu     sync.Mutex
	window time.Duration
	at     []time.Time
	ms     []int64
}

func NewIngestStats(window time.Duration) *IngestStats {
	if window <= 0 {
		window = time.Hour
	}
	return &IngestStats{window: window}
}

func (s *IngestStats) Record(durationMs int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expire(time.Now())
	s.at = append(s.at, time.Now())
	s.ms = append(s.ms, max(durationMs, 0))
}

func (s *IngestStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expire(time.Now())
	if len(s.ms) == 0 {
		return StatsSnapshot{}
	}

	sorted := make([]int64, len(s.ms))
	copy(sorted, s.ms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total int64
	for _, v := range sorted {
		total += v
	}
	return StatsSnapshot{
		Count: len(sorted),
		MinMs: sorted[0],
		MaxMs: sorted[len(sorted)-1],
		AvgMs: float64(total) / float64(len(sorted)),
		P50Ms: percentile(sorted, 50),
		P95Ms: percentile(sorted, 95),
	}
}

// expire drops samples that fell out of the window. Both slices stay
// in arrival order, so the survivors are one contiguous tail.
func (s *IngestStats) expire(now time.Time) {
	cutoff := now.Add(-s.window)
	keep := 0
	for keep < len(s.at) && s.at[keep].Before(cutoff) {
		keep++
	}
	if keep > 0 {
		s.at = append(s.at[:0], s.at[keep:]...)
		s.ms = append(s.ms[:0], s.ms[keep:]...)
	}
}

// percentile reads pct from an ascending slice, interpolating between
// the two nearest ranks.
func percentile(sorted []int64, pct float64) float64 {
	switch {
	case len(sorted) == 0:
		return 0
	case pct <= 0:
		return float64(sorted[0])
	case pct >= 100:
		return float64(sorted[len(sorted)-1])
	}
	rank := pct / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo+1 >= len(sorted) {
		return float64(sorted[lo])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo])*(1-frac) + float64(sorted[lo+1])*frac
}
