package signal

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Case names one synthetic patient scenario.
type Case string

const (
	// Match is a healthy control: same pace, light noise.
	Match Case = "match"
	// Slow is a slow walker: more samples per stride, weaker amplitude.
	Slow Case = "slow"
	// Severe is a strongly distorted gait: shifted phase, faster cadence, heavy noise.
	Severe Case = "severe"
	// Tremor is a normal pace with a fast superimposed oscillation.
	Tremor Case = "tremor"
)

// strides is the time span of every trace: two full gait cycles.
const strides = 4 * math.Pi

// Cases returns every known case in presentation order.
func Cases() []Case {
	return []Case{Match, Slow, Severe, Tremor}
}

// ParseCase resolves a case label, ignoring case and surrounding spaces.
func ParseCase(s string) (Case, error) {
	c := Case(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Cases() {
		if c == known {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCase, s)
}

// Options configures Generate.
//
//   - Seed             — seeds the noise source; equal seeds give equal traces.
//   - ReferenceSamples — samples in the healthy trace (and in match/tremor).
//   - SlowSamples      — samples in the slow/severe traces.
type Options struct {
	Seed             uint64
	ReferenceSamples int
	SlowSamples      int
}

// DefaultOptions returns the stock configuration: 100 reference samples,
// 140 for stretched cases, seed 42.
func DefaultOptions() Options {
	return Options{Seed: 42, ReferenceSamples: 100, SlowSamples: 140}
}

// Pair is one generated scenario: the healthy reference and the patient trace.
type Pair struct {
	Case      Case
	Reference []float64
	Patient   []float64
}

// Generate builds the reference/patient pair for c.
//
// Errors:
//   - ErrUnknownCase if c is not one of Cases().
//   - ErrBadOptions if a sample count is below 2.
func Generate(c Case, opts Options) (Pair, error) {
	if opts.ReferenceSamples < 2 || opts.SlowSamples < 2 {
		return Pair{}, fmt.Errorf("%w: sample counts %d/%d, need at least 2",
			ErrBadOptions, opts.ReferenceSamples, opts.SlowSamples)
	}

	ref := timeline(opts.ReferenceSamples)
	healthy := mapped(ref, math.Sin)

	var t, patient []float64
	var sigma float64
	switch c {
	case Match:
		t, sigma = ref, 0.05
		patient = mapped(t, math.Sin)
	case Slow:
		t, sigma = timeline(opts.SlowSamples), 0.1
		patient = mapped(t, math.Sin)
		floats.Scale(0.8, patient)
	case Severe:
		t, sigma = timeline(opts.SlowSamples), 0.2
		patient = mapped(t, func(x float64) float64 { return math.Sin(1.5*x + 1) })
	case Tremor:
		t, sigma = ref, 0.05
		patient = mapped(t, math.Sin)
		floats.AddScaled(patient, 0.15, mapped(t, func(x float64) float64 { return math.Sin(10 * x) }))
	default:
		return Pair{}, fmt.Errorf("%w: %q", ErrUnknownCase, string(c))
	}

	floats.AddScaled(patient, sigma, gaussian(len(patient), opts.Seed, c))

	return Pair{Case: c, Reference: healthy, Patient: patient}, nil
}

// Random returns n samples drawn uniformly from [0, 1), the input of the
// stress scenario. stream separates independent sequences under one seed.
// A non-positive n yields nil.
func Random(n int, seed, stream uint64) []float64 {
	if n < 1 {
		return nil
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewPCG(seed, stream)}
	out := make([]float64, n)
	for i := range out {
		out[i] = u.Rand()
	}

	return out
}

// timeline returns n evenly spaced instants over two strides.
func timeline(n int) []float64 {
	return floats.Span(make([]float64, n), 0, strides)
}

// mapped applies fn to every element of t into a new slice.
func mapped(t []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(t))
	for i, x := range t {
		out[i] = fn(x)
	}

	return out
}

// gaussian draws n standard normal samples. Each case gets its own stream so
// cases stay independent under one seed.
func gaussian(n int, seed uint64, c Case) []float64 {
	var stream uint64
	for _, r := range c {
		stream = stream*31 + uint64(r)
	}
	nd := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, stream)}
	out := make([]float64, n)
	for i := range out {
		out[i] = nd.Rand()
	}

	return out
}
