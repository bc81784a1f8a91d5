package metrics

import (
	"strings"
	"testing"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected 3 observations, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected per-bucket counts: %v", snap.counts)
	}
}

func TestRenderIncludesCounters(t *testing.T) {
	IncGenerationStarted()
	IncCompletionFailed()
	ObserveCompletionMs(1500)

	out := Render()
	for _, want := range []string{
		"# TYPE generation_started_total counter",
		"completion_failed_total ",
		"completion_duration_ms_bucket{le=\"2000\"}",
		"completion_duration_ms_bucket{le=\"+Inf\"}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render output missing %q:\n%s", want, out)
		}
	}
}
