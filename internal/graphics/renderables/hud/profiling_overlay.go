package hud

import (
	"fmt"
	"strings"
	"time"

	"terrain-viewer/internal/profiling"
)

const frameHistory = 60

// FrameStats keeps a rolling window of render durations
type FrameStats struct {
	history []time.Duration
	last    time.Duration
	min     time.Duration
	max     time.Duration
	avg     time.Duration

	// measured by the app loop for the previous frame
	lastTotal    time.Duration
	lastGenerate time.Duration
}

// Add records one render duration and recomputes min/max/avg
func (s *FrameStats) Add(d time.Duration) {
	s.last = d
	if len(s.history) >= frameHistory {
		s.history = s.history[1:]
	}
	s.history = append(s.history, d)

	var total time.Duration
	s.min, s.max = d, d
	for _, v := range s.history {
		total += v
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.avg = total / time.Duration(len(s.history))
}

// Avg returns the mean render duration over the window
func (s *FrameStats) Avg() time.Duration {
	return s.avg
}

// Bounds returns the fastest and slowest render in the window
func (s *FrameStats) Bounds() (time.Duration, time.Duration) {
	return s.min, s.max
}

// ProfilingSetRenderDuration stores the render() call duration for this frame
func (h *HUD) ProfilingSetRenderDuration(d time.Duration) {
	h.stats.Add(d)
}

// ProfilingSetLastTotalFrameDuration stores the previous frame's wall time
func (h *HUD) ProfilingSetLastTotalFrameDuration(d time.Duration) {
	h.stats.lastTotal = d
}

// ProfilingSetGenerateDuration stores how long the last regeneration took
func (h *HUD) ProfilingSetGenerateDuration(d time.Duration) {
	h.stats.lastGenerate = d
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

// profilingLines formats frame timing and the slowest tracked buckets
func profilingLines(s *FrameStats, top string) []string {
	lines := make([]string, 0, 16)

	lo, hi := s.Bounds()
	lines = append(lines, fmt.Sprintf("Frame(render): %.2fms (%.2fms avg, %.2f-%.2fms)", ms(s.last), ms(s.avg), ms(lo), ms(hi)))

	if s.lastTotal > 0 {
		overhead := s.lastTotal - s.last
		if overhead < 0 {
			overhead = 0
		}
		lines = append(lines, fmt.Sprintf("Frame(total): %.2fms | Overhead(non-render): %.2fms", ms(s.lastTotal), ms(overhead)))
	}
	if s.lastGenerate > 0 {
		lines = append(lines, fmt.Sprintf("Last generate: %.2fms", ms(s.lastGenerate)))
	}

	// Top N tracked lines
	if top != "" {
		for line := range strings.SplitSeq(top, ", ") {
			if line != "" && !strings.HasSuffix(line, ":0.0ms") {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

func (h *HUD) renderProfilingInfo(startY float32) {
	defer profiling.Track("renderer.hud.profiling")()
	lines := profilingLines(&h.stats, profiling.TopN(6))
	h.fontRenderer.RenderLines(lines, 10, startY, lineStep, 0.75, profilingColor)
}

// ToggleProfiling toggles profiling HUD visibility
func (h *HUD) ToggleProfiling() {
	h.showProfiling = !h.showProfiling
}

// ShowProfiling returns whether profiling is enabled
func (h *HUD) ShowProfiling() bool {
	return h.showProfiling
}
