package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	generationStartedTotal   atomic.Uint64
	generationCompletedTotal atomic.Uint64
	extractionFailedTotal    atomic.Uint64
	completionFailedTotal    atomic.Uint64

	extractionDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000})
	completionDuration = newHistogram([]float64{500, 1000, 2000, 5000, 10000, 20000, 30000, 60000, 120000})
)

// IncGenerationStarted counts a request entering the pipeline.
func IncGenerationStarted() { generationStartedTotal.Add(1) }

// IncGenerationCompleted counts a request that produced a cover letter.
func IncGenerationCompleted() { generationCompletedTotal.Add(1) }

// IncExtractionFailed counts a request that failed while reading the resume.
func IncExtractionFailed() { extractionFailedTotal.Add(1) }

// IncCompletionFailed counts a request that failed in the completion service.
func IncCompletionFailed() { completionFailedTotal.Add(1) }

// ObserveExtractionMs records text extraction latency.
func ObserveExtractionMs(value float64) {
	extractionDuration.Observe(clamp(value))
}

// ObserveCompletionMs records completion service latency.
func ObserveCompletionMs(value float64) {
	completionDuration.Observe(clamp(value))
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "generation_started_total", "Total cover letter generations started", generationStartedTotal.Load())
	writeCounter(&buf, "generation_completed_total", "Total cover letter generations completed", generationCompletedTotal.Load())
	writeCounter(&buf, "extraction_failed_total", "Total resume extractions failed", extractionFailedTotal.Load())
	writeCounter(&buf, "completion_failed_total", "Total completion calls failed", completionFailedTotal.Load())
	writeHistogram(&buf, "extraction_duration_ms", "Resume text extraction duration in milliseconds", extractionDuration.Snapshot())
	writeHistogram(&buf, "completion_duration_ms", "Completion service duration in milliseconds", completionDuration.Snapshot())
	return buf.String()
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe puts value in the first bucket whose bound covers it.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
