// Package stats summarizes repeated generation runs: running mean and
// variance, latency quantiles and a text histogram.
package stats

import (
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean/variance (Welford).
type Statistic struct {
	n    int
	mean float64
	m2   float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the standard error of the mean.
func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Iterations() int {
	return s.n
}

// RunSummary collects the outcome of repeated generation runs. Latencies
// are kept in milliseconds for successful runs only.
type RunSummary struct {
	latency   Statistic
	samples   []float64
	successes int
	failures  map[string]int
}

func NewRunSummary() *RunSummary {
	return &RunSummary{failures: map[string]int{}}
}

// Success records a run that produced a grid.
func (r *RunSummary) Success(elapsed time.Duration) {
	ms := float64(elapsed) / float64(time.Millisecond)
	r.latency.Push(ms)
	r.samples = append(r.samples, ms)
	r.successes++
}

// Failure records a run that ended in an error of the given kind.
func (r *RunSummary) Failure(kind string) {
	r.failures[kind]++
}

func (r *RunSummary) Runs() int {
	n := r.successes
	for _, c := range r.failures {
		n += c
	}
	return n
}

func (r *RunSummary) Failures() map[string]int {
	return r.failures
}

// SuccessRatio is the fraction of runs that produced a grid.
func (r *RunSummary) SuccessRatio() float64 {
	if r.Runs() == 0 {
		return 0
	}
	return float64(r.successes) / float64(r.Runs())
}

func (r *RunSummary) Latency() *Statistic {
	return &r.latency
}

// Quantile returns the p-quantile of successful latencies, in ms.
func (r *RunSummary) Quantile(p float64) float64 {
	if len(r.samples) == 0 {
		return 0
	}
	sorted := slices.Clone(r.samples)
	slices.Sort(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// WriteHistogram draws the latency distribution as text.
func (r *RunSummary) WriteHistogram(w io.Writer, bins, width int) error {
	if len(r.samples) == 0 {
		_, err := fmt.Fprintln(w, "no successful runs")
		return err
	}
	h := histogram.Hist(bins, r.samples)
	return histogram.Fprint(w, h, histogram.Linear(width))
}

// Report writes a summary table of the runs.
func (r *RunSummary) Report(w io.Writer, confidence float64) {
	lo, hi := ConfidenceInterval(&r.latency, confidence)
	fmt.Fprintf(w, "runs:        %d\n", r.Runs())
	fmt.Fprintf(w, "success:     %.2f%%\n", 100*r.SuccessRatio())
	for kind, c := range r.failures {
		fmt.Fprintf(w, "  %-10s %d\n", kind+":", c)
	}
	fmt.Fprintf(w, "mean (ms):   %.3f ± %.3f (%.0f%% CI %.3f-%.3f)\n",
		r.latency.Mean(), r.latency.Stdev(), confidence, lo, hi)
	fmt.Fprintf(w, "p50 (ms):    %.3f\n", r.Quantile(0.5))
	fmt.Fprintf(w, "p95 (ms):    %.3f\n", r.Quantile(0.95))
	fmt.Fprintf(w, "p99 (ms):    %.3f\n", r.Quantile(0.99))
}
