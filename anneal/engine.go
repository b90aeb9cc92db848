// Package anneal - the single-trial pSA engine.
//
// Engine captures the immutable per-run state (bias vector, crossbar
// operator, reference read, field scale) once, then runs independent
// trials against it. A trial owns all of its mutable state (spins,
// noise, field buffers), so any number of trials may run concurrently
// against one Engine.
//
// Update rule, per inner iteration:
//
//	v      = (s+1)/2                          spin → unipolar voltage
//	D      = h + scale·(ref − 2·G·v)          signed local field
//	s_i    ← +1 if tanh(clamp(I0·D_i)) + noise_i > 0, else −1
//
// with fresh uniform noise in [−1,1]^N each iteration. Spins update
// serially in a fresh random order, each seeing the flips made before
// it within the iteration; the running read is maintained through
// single-column accumulation, so one full array read per iteration
// suffices. Serial order matters: updating all spins against the same
// stale field admits a period-2 orbit through the two uniform states
// on dense instances, which absorbs trials once tanh saturates, while
// the serial dynamics settle into a local optimum of the cut instead.
package anneal

import (
	"context"
	"math"
	"math/rand"

	"github.com/annealix/crosscut/ising"
	"github.com/annealix/crosscut/xbar"
)

// EngineOption mutates engine construction parameters.
type EngineOption func(*engineOptions)

type engineOptions struct {
	scale    float64 // voltage→field calibration constant; 0 ⇒ derive default
	scaleSet bool
	clamp    float64 // |I0·D| bound before tanh
}

// WithFieldScale overrides the voltage→field calibration constant.
// The documented default is FieldScaleFor(maxG, max|J|); physical
// resistance tables (maxG far from 1) should set this explicitly.
// Panics on NaN, ±Inf or non-positive values (programmer error).
func WithFieldScale(s float64) EngineOption {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		panic("anneal: WithFieldScale: scale must be finite, positive")
	}

	return func(o *engineOptions) { o.scale = s; o.scaleSet = true }
}

// WithTanhClamp overrides the saturation bound on the tanh argument.
// Panics on non-positive or non-finite values.
func WithTanhClamp(c float64) EngineOption {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic("anneal: WithTanhClamp: clamp must be finite, positive")
	}

	return func(o *engineOptions) { o.clamp = c }
}

// FieldScaleFor returns the documented calibration constant that rescales
// the simulated crossbar current back into field units:
// maximum device conductance × maximum |J|. This is a heuristic, not a
// physical unit conversion; see the package documentation.
//
// Complexity: O(1).
func FieldScaleFor(maxConductance, maxAbsCoupling float64) float64 {
	return maxConductance * maxAbsCoupling
}

// Engine holds the immutable shared state of one annealing run.
type Engine struct {
	n     int
	h     []float64 // bias vector (all zero for Max-Cut)
	mvm   *xbar.MVM
	ref   []float64 // all-ones reference read: G·1
	scale float64
	clamp float64
}

// NewEngine builds the shared trial state from an Ising model and a
// crossbar operator.
//
// Contracts:
//   - m and mvm are non-nil; m.N() == mvm.N(); len(m.H) == m.N().
//
// The all-ones reference read is taken here, once per run. When no
// field scale is configured, FieldScaleFor(mvm.MaxConductance(),
// MaxAbsCoupling(m)) is used; an all-zero instance degenerates to
// scale 1 so the noise-driven dynamics stay well defined.
//
// Errors: ErrNilModel, ErrNilMVM, ErrDimensionMismatch.
//
// Complexity: O(N²) (one crossbar read).
func NewEngine(m *ising.Model, mvm *xbar.MVM, opts ...EngineOption) (*Engine, error) {
	// Stage 1: validation and options.
	if m == nil || m.J == nil {
		return nil, ErrNilModel
	}
	if mvm == nil {
		return nil, ErrNilMVM
	}
	var n = m.N()
	if n == 0 || mvm.N() != n || len(m.H) != n {
		return nil, ErrDimensionMismatch
	}

	var o = engineOptions{clamp: DefaultTanhClamp}
	var apply EngineOption
	for _, apply = range opts {
		apply(&o)
	}
	if !o.scaleSet {
		o.scale = FieldScaleFor(mvm.MaxConductance(), ising.MaxAbsCoupling(m))
		if o.scale <= 0 || math.IsNaN(o.scale) || math.IsInf(o.scale, 0) {
			o.scale = 1
		}
	}

	// Stage 2: reference read G·1 for signed-field reconstruction.
	var (
		ones = make([]float64, n)
		ref  = make([]float64, n)
		i    int
	)
	for i = 0; i < n; i++ {
		ones[i] = 1
	}
	if err := mvm.Apply(ref, ones); err != nil {
		return nil, err
	}

	var h = make([]float64, n)
	copy(h, m.H)

	return &Engine{
		n:     n,
		h:     h,
		mvm:   mvm,
		ref:   ref,
		scale: o.scale,
		clamp: o.clamp,
	}, nil
}

// N returns the spin-vector length.
func (e *Engine) N() int { return e.n }

// FieldScale returns the effective voltage→field calibration constant.
func (e *Engine) FieldScale() float64 { return e.scale }

// Trial runs one full pSA trial under sched using rng and returns the
// final ±1 spin vector.
//
// Contracts:
//   - sched must pass Validate.
//   - rng==nil falls back to the deterministic default stream (seed 0
//     policy); for concurrent trials pass per-trial streams from
//     NewTrialRNG.
//
// Randomness draw order is fixed (initial spins, then per inner
// iteration one noise vector followed by one update-order
// permutation), so identical (seed, stream) pairs reproduce the exact
// spin trajectory.
//
// The gain sweep runs while I0 ≤ I0Max and is additionally capped at
// Cycles+1 levels; combined with Validate this guards against
// non-terminating schedules. ctx is checked once per gain level.
//
// Errors: ErrNonFiniteField, Validate's sentinels, ctx.Err().
//
// Complexity: O(cycles·tau·T·Rt·Ct) time, O(N) memory.
func (e *Engine) Trial(ctx context.Context, sched Schedule, rng *rand.Rand) ([]float64, error) {
	// Stage 1: validation and trial-owned state.
	if err := sched.Validate(); err != nil {
		return nil, err
	}
	var r = rng
	if r == nil {
		r = NewRNG(0)
	}

	var (
		spins = make([]float64, e.n)
		volt  = make([]float64, e.n)
		cur   = make([]float64, e.n) // raw crossbar read G·v
		noise = make([]float64, e.n)
		i     int
	)
	for i = 0; i < e.n; i++ {
		if r.Float64() < 0.5 {
			spins[i] = -1
		} else {
			spins[i] = 1
		}
	}

	// Stage 2: gain sweep.
	var (
		i0        = sched.I0Min
		level     = 0
		maxLevels = sched.Cycles + 1 // runaway cap on top of Validate
		t         int
		d, x      float64
		err       error
	)
	for i0 <= sched.I0Max && level < maxLevels {
		if ctx != nil {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
		}

		for t = 0; t < sched.Tau; t++ {
			// Fresh uniform noise in [−1,1]^N, then the update order.
			for i = 0; i < e.n; i++ {
				noise[i] = 2*r.Float64() - 1
			}
			var order = r.Perm(e.n)

			// One full crossbar read of the unipolar voltage image;
			// kept current through column reads as spins flip below.
			for i = 0; i < e.n; i++ {
				volt[i] = (spins[i] + 1) / 2
			}
			if err = e.mvm.Apply(cur, volt); err != nil {
				return nil, err
			}

			// Serial sweep: each spin sees the flips made before it.
			var prev float64
			for _, i = range order {
				d = e.h[i] + e.scale*(e.ref[i]-2*cur[i])
				if math.IsNaN(d) {
					return nil, ErrNonFiniteField
				}
				x = i0 * d
				if x > e.clamp {
					x = e.clamp
				} else if x < -e.clamp {
					x = -e.clamp
				}
				prev = spins[i]
				if math.Tanh(x)+noise[i] > 0 {
					spins[i] = 1
				} else {
					spins[i] = -1
				}
				if spins[i] != prev {
					// Input line i moved by ±1 in voltage units.
					if err = e.mvm.AccumulateColumn(cur, i, (spins[i]-prev)/2); err != nil {
						return nil, err
					}
				}
			}
		}

		i0 /= sched.Beta
		level++
	}

	return spins, nil
}
