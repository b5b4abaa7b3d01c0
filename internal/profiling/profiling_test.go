package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAndSum(t *testing.T) {
	ResetFrame()
	stop := Track("heightmap.Generate")
	time.Sleep(2 * time.Millisecond)
	stop()
	Track("renderer.terrain")()

	if d := SumWithPrefix("heightmap."); d < 2*time.Millisecond {
		t.Errorf("heightmap bucket = %v, want >= 2ms", d)
	}
	if len(Snapshot()) != 2 {
		t.Errorf("expected 2 buckets, got %d", len(Snapshot()))
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("ResetFrame did not clear buckets")
	}
}

func TestTopNOrdering(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["a"] = 1 * time.Millisecond
	frameTotals["b"] = 3 * time.Millisecond
	frameTotals["c"] = 2 * time.Millisecond
	mu.Unlock()

	got := TopN(2)
	if got != "b:3.0ms, c:2.0ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if parts := strings.Split(TopN(10), ", "); len(parts) != 3 {
		t.Errorf("TopN(10) returned %d entries, want 3", len(parts))
	}
	ResetFrame()
}
