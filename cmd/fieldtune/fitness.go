package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/field"
)

// Viewport is one screen size a candidate is scored on.
type Viewport struct {
	Name          string
	Width, Height float64
}

// DefaultViewports covers phone, laptop and desktop hero sizes.
var DefaultViewports = []Viewport{
	{"phone", 390, 844},
	{"laptop", 1280, 800},
	{"desktop", 1920, 1080},
}

// Targets are the look the search aims for.
type Targets struct {
	LinksPerParticle float64 // Mean links per particle
	MeanSpeed        float64 // Mean particle speed, px per reference frame
	MinParticles     int     // Fewer particles than this on any viewport is penalised
}

// DefaultTargets matches the hand-tuned landing field.
func DefaultTargets() Targets {
	return Targets{
		LinksPerParticle: 0.9,
		MeanSpeed:        0.08,
		MinParticles:     12,
	}
}

// Sample is the measurement of one simulated run.
type Sample struct {
	Particles        int
	LinksPerParticle float64
	MeanSpeed        float64
}

// FitnessEvaluator runs headless field simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	seconds    float64
	seeds      []int64
	viewports  []Viewport
	targets    Targets
	baseConfig *config.Config

	mu          sync.Mutex
	bestFitness float64
	lastSamples []Sample
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, seconds float64, seeds []int64, baseCfg *config.Config, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		seconds:     seconds,
		seeds:       seeds,
		viewports:   DefaultViewports,
		targets:     targets,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// LastSamples returns the per-run samples of the most recent evaluation.
func (fe *FitnessEvaluator) LastSamples() []Sample {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSamples
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	p := field.ParamsFromConfig(cfg.Field)

	// One run per seed and viewport, in parallel
	samples := make([]Sample, len(fe.seeds)*len(fe.viewports))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		for j, vp := range fe.viewports {
			wg.Add(1)
			go func(idx int, s int64, vp Viewport) {
				defer wg.Done()
				samples[idx] = simulate(p, s, vp, fe.seconds)
			}(i*len(fe.viewports)+j, seed, vp)
		}
	}
	wg.Wait()

	fitness := Score(samples, fe.targets)

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
	}
	fe.lastSamples = samples
	fe.mu.Unlock()

	return fitness
}

// simulate runs a field for the given time with the pointer sweeping
// horizontally across the middle of the viewport, then measures it.
func simulate(p field.Params, seed int64, vp Viewport, seconds float64) Sample {
	f := field.New(p, seed, nil)
	defer f.Teardown()
	f.OnResize(vp.Width, vp.Height, 1)

	dt := 1 / p.ReferenceFPS
	frames := int(seconds * p.ReferenceFPS)
	for i := 0; i < frames; i++ {
		phase := float64(i) / float64(max(frames, 1))
		f.OnPointerMove(phase*vp.Width, vp.Height/2)
		f.Step(dt)
	}
	f.OnPointerLeave()

	particles := f.Particles()
	if len(particles) == 0 {
		return Sample{}
	}
	speeds := make([]float64, len(particles))
	for i, pt := range particles {
		speeds[i] = r2.Norm(pt.Vel)
	}
	return Sample{
		Particles:        len(particles),
		LinksPerParticle: float64(f.Links()) / float64(len(particles)),
		MeanSpeed:        stat.Mean(speeds, nil),
	}
}

// Score turns samples into a scalar fitness: squared log-ratio error against
// the targets plus spread across runs. Empty samples score +Inf.
func Score(samples []Sample, t Targets) float64 {
	if len(samples) == 0 {
		return math.Inf(1)
	}

	links := make([]float64, 0, len(samples))
	speeds := make([]float64, 0, len(samples))
	penalty := 0.0
	for _, s := range samples {
		if s.Particles == 0 {
			return math.Inf(1)
		}
		if s.Particles < t.MinParticles {
			d := float64(t.MinParticles-s.Particles) / float64(t.MinParticles)
			penalty += d * d
		}
		links = append(links, s.LinksPerParticle)
		speeds = append(speeds, s.MeanSpeed)
	}

	linkErr := logErr(stat.Mean(links, nil), t.LinksPerParticle)
	speedErr := logErr(stat.Mean(speeds, nil), t.MeanSpeed)

	// Viewports should look alike, so penalise spread in link density
	spread := cv(links)

	return linkErr*linkErr + speedErr*speedErr + 0.5*spread*spread + penalty
}

// logErr is log(got/want), with a large error when got is zero.
func logErr(got, want float64) float64 {
	if want <= 0 {
		return 0
	}
	if got <= 0 {
		return 10
	}
	return math.Log(got / want)
}

// cv computes the coefficient of variation (std/mean).
func cv(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean, std := stat.MeanStdDev(values, nil)
	if mean == 0 {
		return 0
	}
	return std / mean
}

// copyConfig creates a copy of the base config the evaluator may modify.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
