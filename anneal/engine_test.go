// Package anneal_test validates the single-trial engine: determinism
// under per-trial streams, spin-domain invariants, and the non-finite
// field guard.
package anneal_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/annealix/crosscut/anneal"
	"github.com/annealix/crosscut/ising"
	"github.com/annealix/crosscut/xbar"
)

// triangleEngine assembles the full pipeline for a unit triangle:
// quantize → partition → operator → model → engine. The triangle is
// frustrated, so both noise and field matter in every trial.
func triangleEngine(t *testing.T) (*anneal.Engine, anneal.Schedule) {
	t.Helper()

	var (
		w = mat.NewDense(3, 3, []float64{
			0, 1, 1,
			1, 0, 1,
			1, 1, 0,
		})
		cfg = xbar.DeviceConfig{
			TileRows:   2,
			TileCols:   2,
			Levels:     2,
			Resistance: []float64{0, 1}, // open / unit conductance
		}
	)

	rq, err := xbar.Quantize(w, cfg)
	require.NoError(t, err)
	tiles, err := xbar.Partition(rq, cfg)
	require.NoError(t, err)
	mvm, err := xbar.NewMVM(tiles, 3)
	require.NoError(t, err)
	model, err := ising.FromWeights(w)
	require.NoError(t, err)

	engine, err := anneal.NewEngine(model, mvm)
	require.NoError(t, err)
	sched, err := anneal.Calibrate(model.J, 1, 50, 2)
	require.NoError(t, err)

	return engine, sched
}

// TestEngine_TrialDeterminism verifies that the same (seed, stream)
// pair reproduces the exact final spin vector.
func TestEngine_TrialDeterminism(t *testing.T) {
	var engine, sched = triangleEngine(t)

	first, err := engine.Trial(context.Background(), sched, anneal.NewTrialRNG(7, 0))
	require.NoError(t, err)
	second, err := engine.Trial(context.Background(), sched, anneal.NewTrialRNG(7, 0))
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical streams must replay the trajectory")
}

// TestEngine_SpinDomain verifies every final spin is exactly ±1.
func TestEngine_SpinDomain(t *testing.T) {
	var engine, sched = triangleEngine(t)

	spins, err := engine.Trial(context.Background(), sched, anneal.NewTrialRNG(3, 1))
	require.NoError(t, err)
	require.Len(t, spins, 3)
	for i, s := range spins {
		assert.True(t, s == 1 || s == -1, "spin %d out of domain: %v", i, s)
	}
}

// TestEngine_NoUniformCollapse verifies trials on a dense frustrated
// instance never settle on an all-equal assignment. Under a stale-field
// (fully parallel) update the two uniform states form an absorbing
// period-2 orbit once tanh saturates; the serial sweep must leave them
// unstable, so every stream has to end on a proper bipartition.
func TestEngine_NoUniformCollapse(t *testing.T) {
	var engine, sched = triangleEngine(t)

	for stream := uint64(0); stream < 10; stream++ {
		spins, err := engine.Trial(context.Background(), sched, anneal.NewTrialRNG(7, stream))
		require.NoError(t, err)

		var sum float64
		for _, s := range spins {
			sum += s
		}
		assert.NotEqual(t, 3.0, math.Abs(sum), "stream %d ended uniform: %v", stream, spins)
	}
}

// TestEngine_FieldScaleDefault pins the documented calibration constant
// maxG·max|J| (here 1·1) and its option override.
func TestEngine_FieldScaleDefault(t *testing.T) {
	var engine, _ = triangleEngine(t)
	assert.Equal(t, 1.0, engine.FieldScale(), "default scale is maxG·max|J|")
}

// TestEngine_NonFiniteField verifies the trial abandons with the
// dedicated sentinel when the bias poisons the local field.
func TestEngine_NonFiniteField(t *testing.T) {
	var cfg = xbar.DeviceConfig{
		TileRows: 2, TileCols: 2,
		Levels: 2, Resistance: []float64{0, 1},
	}
	tiles, err := xbar.Partition(mat.NewDense(2, 2, []float64{0, 1, 1, 0}), cfg)
	require.NoError(t, err)
	mvm, err := xbar.NewMVM(tiles, 2)
	require.NoError(t, err)

	var model = &ising.Model{
		J: mat.NewDense(2, 2, nil),
		H: []float64{math.NaN(), 0},
	}
	engine, err := anneal.NewEngine(model, mvm)
	require.NoError(t, err)

	var sched = anneal.Schedule{I0Min: 0.1, I0Max: 10, Beta: 0.5, Tau: 1, Cycles: 5}
	_, err = engine.Trial(context.Background(), sched, anneal.NewTrialRNG(1, 0))
	assert.ErrorIs(t, err, anneal.ErrNonFiniteField)
}

// TestEngine_ContextCancellation verifies the per-level cancellation
// check.
func TestEngine_ContextCancellation(t *testing.T) {
	var engine, sched = triangleEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Trial(ctx, sched, anneal.NewTrialRNG(1, 0))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestEngine_InvalidSchedule verifies trials refuse schedules that
// would not terminate.
func TestEngine_InvalidSchedule(t *testing.T) {
	var engine, sched = triangleEngine(t)

	sched.Beta = 1.5
	_, err := engine.Trial(context.Background(), sched, nil)
	assert.ErrorIs(t, err, anneal.ErrRunawaySchedule)
}

// TestNewEngine_Errors walks the construction sentinels.
func TestNewEngine_Errors(t *testing.T) {
	var cfg = xbar.DeviceConfig{
		TileRows: 2, TileCols: 2,
		Levels: 2, Resistance: []float64{0, 1},
	}
	tiles, err := xbar.Partition(mat.NewDense(2, 2, []float64{0, 1, 1, 0}), cfg)
	require.NoError(t, err)
	mvm, err := xbar.NewMVM(tiles, 2)
	require.NoError(t, err)

	_, err = anneal.NewEngine(nil, mvm)
	assert.ErrorIs(t, err, anneal.ErrNilModel)

	model, err := ising.FromWeights(mat.NewDense(2, 2, []float64{0, 1, 1, 0}))
	require.NoError(t, err)
	_, err = anneal.NewEngine(model, nil)
	assert.ErrorIs(t, err, anneal.ErrNilMVM)

	big, err := ising.FromWeights(mat.NewDense(3, 3, nil))
	require.NoError(t, err)
	_, err = anneal.NewEngine(big, mvm)
	assert.ErrorIs(t, err, anneal.ErrDimensionMismatch, "model order vs operator order")
}
