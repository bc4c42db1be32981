package metrics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	var buf bytes.Buffer
	writeHistogram(&buf, "x", "help", h.Snapshot())

	out := buf.String()
	assert.Contains(t, out, `x_bucket{le="10"} 1`)
	assert.Contains(t, out, `x_bucket{le="100"} 2`)
	assert.Contains(t, out, `x_bucket{le="+Inf"} 3`)
	assert.Contains(t, out, "x_sum 555")
	assert.Contains(t, out, "x_count 3")
}

func TestRenderIncludesCounters(t *testing.T) {
	IncAnalysisStarted()
	IncMatchComputed()
	IncExtractionFailure()

	out := Render()
	for _, name := range []string{
		"analysis_started_total",
		"analysis_completed_total",
		"analysis_empty_total",
		"analysis_failed_total",
		"match_computed_total",
		"extraction_failures_total",
		"analysis_duration_ms_count",
	} {
		assert.Contains(t, out, name)
	}
}

func TestCompletedByPreset(t *testing.T) {
	IncAnalysisCompleted("strict")
	IncAnalysisCompleted("strict")
	IncAnalysisCompleted("default")

	snap := completedByPreset.Snapshot()
	assert.GreaterOrEqual(t, snap["strict"], uint64(2))

	out := Render()
	assert.Contains(t, out, "# TYPE analysis_completed_by_preset_total counter")
	assert.Contains(t, out, `analysis_completed_by_preset_total{preset="default"}`)
	assert.Contains(t, out, `analysis_completed_by_preset_total{preset="strict"}`)
}
