// Package simulate generates synthetic regression datasets that stand in
// for digital-twin observations of a physical process. Each dataset pairs a
// single uniformly drawn feature with a linear (or linear-plus-quadratic)
// target under configurable Gaussian measurement noise.
//
// Generation is reproducible: every call seeds a fresh random source with a
// fixed seed, so identical parameters always produce identical data
// regardless of call order or concurrency.
package simulate

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidInput indicates a generation parameter outside its valid range.
var ErrInvalidInput = errors.New("simulate: invalid input")

// randSeed is the fixed seed used for every generation call. Keeping it
// constant makes condition comparisons attributable to noise and complexity
// settings rather than sampling variance.
const randSeed = 42

const (
	featureMin = 0.0
	featureMax = 10.0

	baseSlope     = 2.0
	baseIntercept = 5.0
	quadraticCoef = 0.3
)

// NoiseLevels are the noise standard deviations cycled by
// GenerateExperiment: low vs. high sensor noise.
var NoiseLevels = []float64{0.5, 1.0}

// ComplexityTiers are the complexity settings cycled by GenerateExperiment:
// tier 1 is strictly linear, tier 2 adds a quadratic term.
var ComplexityTiers = []int{1, 2}

// Dataset holds one condition's worth of paired observations. X is a
// single-column feature matrix of shape (n, 1) and Y the matching target
// vector of length n.
type Dataset struct {
	X *mat.Dense
	Y []float64
}

// Samples returns the number of observations in the dataset.
func (d Dataset) Samples() int {
	if d.X == nil {
		return 0
	}
	r, _ := d.X.Dims()
	return r
}

// GenerateDataset produces sampleCount observations of a single feature
// drawn uniformly from [0, 10), with target y = 2x + 5, plus 0.3x² when
// complexityTier is greater than 1, plus zero-mean Gaussian noise with
// standard deviation noiseLevel.
//
// Features are drawn first, then noise, from the same fixed-seed stream, so
// two calls with identical parameters return bit-identical datasets.
func GenerateDataset(sampleCount int, noiseLevel float64, complexityTier int) (Dataset, error) {
	if sampleCount < 1 {
		return Dataset{}, fmt.Errorf("%w: sample count must be at least 1, got %d", ErrInvalidInput, sampleCount)
	}
	if noiseLevel < 0 {
		return Dataset{}, fmt.Errorf("%w: noise level must be non-negative, got %g", ErrInvalidInput, noiseLevel)
	}
	if complexityTier < 1 {
		return Dataset{}, fmt.Errorf("%w: complexity tier must be at least 1, got %d", ErrInvalidInput, complexityTier)
	}

	// Fresh source per call keeps reproducibility independent of call order.
	src := rand.NewSource(randSeed)
	feature := distuv.Uniform{Min: featureMin, Max: featureMax, Src: src}

	x := mat.NewDense(sampleCount, 1, nil)
	y := make([]float64, sampleCount)
	for i := 0; i < sampleCount; i++ {
		v := feature.Rand()
		x.Set(i, 0, v)
		y[i] = baseSlope*v + baseIntercept
		if complexityTier > 1 {
			y[i] += quadraticCoef * v * v
		}
	}

	// Noise draws continue the same stream, after all feature draws.
	noise := distuv.Normal{Mu: 0, Sigma: noiseLevel, Src: src}
	for i := range y {
		y[i] += noise.Rand()
	}

	return Dataset{X: x, Y: y}, nil
}

// ConditionFor returns the (noise level, complexity tier) pair assigned to
// condition index i by the experiment cycling rule: noise alternates every
// condition, complexity every len(NoiseLevels) conditions.
func ConditionFor(i int) (noise float64, tier int) {
	noise = NoiseLevels[i%len(NoiseLevels)]
	tier = ComplexityTiers[(i/len(NoiseLevels))%len(ComplexityTiers)]
	return noise, tier
}

// GenerateExperiment produces conditionCount datasets keyed by condition
// index, cycling the fixed noise levels and complexity tiers. A condition
// count of zero yields an empty map.
func GenerateExperiment(conditionCount, sampleCount int) (map[int]Dataset, error) {
	if conditionCount < 0 {
		return nil, fmt.Errorf("%w: condition count must be non-negative, got %d", ErrInvalidInput, conditionCount)
	}
	if sampleCount < 1 {
		return nil, fmt.Errorf("%w: sample count must be at least 1, got %d", ErrInvalidInput, sampleCount)
	}

	datasets := make(map[int]Dataset, conditionCount)
	for i := 0; i < conditionCount; i++ {
		noise, tier := ConditionFor(i)
		ds, err := GenerateDataset(sampleCount, noise, tier)
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
		datasets[i] = ds
	}
	return datasets, nil
}
