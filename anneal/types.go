package anneal

import (
	"errors"
	"math"
)

// Sentinel errors returned by calibration and the trial engine.
var (
	// ErrNilModel indicates that a nil Ising model (or nil J) was supplied.
	ErrNilModel = errors.New("anneal: model is nil")

	// ErrNilMVM indicates that a nil crossbar operator was supplied.
	ErrNilMVM = errors.New("anneal: crossbar operator is nil")

	// ErrBadSchedule indicates non-positive tau or cycles, or a non-finite
	// gain bound.
	ErrBadSchedule = errors.New("anneal: invalid schedule parameters")

	// ErrBadParamMode indicates a parameterization mode outside {1, 2}.
	ErrBadParamMode = errors.New("anneal: parameterization mode must be 1 or 2")

	// ErrRunawaySchedule indicates a schedule that would sweep forever:
	// Beta ≥ 1 (gain never grows) or I0Max < I0Min (empty gain range).
	ErrRunawaySchedule = errors.New("anneal: schedule would not terminate")

	// ErrNonFiniteField indicates that a trial observed NaN in its local
	// field; the trial is abandoned and may be retried by the caller.
	ErrNonFiniteField = errors.New("anneal: non-finite local field")

	// ErrDimensionMismatch indicates incompatible operand sizes
	// (model order vs crossbar order vs bias length).
	ErrDimensionMismatch = errors.New("anneal: dimension mismatch")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultParamMode selects the sigma-based calibration (mode 2).
	DefaultParamMode = 2

	// DefaultTanhClamp bounds |I0·D| before tanh. tanh is already
	// saturated far below this; the clamp exists so overflow in the
	// product can never poison the update rule.
	DefaultTanhClamp = 40.0

	// Degenerate-calibration fallbacks used when sigma ≤ 0
	// (e.g. an all-zero coupling matrix).
	FallbackI0Min = 0.1
	FallbackI0Max = 10.0

	// degenerateBeta is the per-cycle decay used when cycles == 1,
	// where the geometric formula is undefined.
	degenerateBeta = 0.5
)

// Schedule is a calibrated pSA gain schedule, constant across all
// trials of a run.
type Schedule struct {
	// I0Min, I0Max bound the gain sweep.
	I0Min float64
	I0Max float64

	// Beta is the per-cycle geometric decay; the gain grows via
	// I0 ← I0/Beta, so termination requires Beta < 1.
	Beta float64

	// Tau is the number of inner spin updates per gain level.
	Tau int

	// Cycles is the nominal number of gain levels; the engine caps its
	// sweep at Cycles+1 levels as a runaway guard.
	Cycles int
}

// Validate checks that the schedule terminates and is numerically sane.
//
// Errors: ErrBadSchedule, ErrRunawaySchedule.
//
// Complexity: O(1).
func (s Schedule) Validate() error {
	if s.Tau < 1 || s.Cycles < 1 {
		return ErrBadSchedule
	}
	if math.IsNaN(s.I0Min) || math.IsNaN(s.I0Max) || math.IsNaN(s.Beta) {
		return ErrBadSchedule
	}
	if math.IsInf(s.I0Min, 0) || math.IsInf(s.I0Max, 0) || s.I0Min <= 0 {
		return ErrBadSchedule
	}
	if s.Beta >= 1 || s.Beta <= 0 {
		return ErrRunawaySchedule
	}
	if s.I0Max < s.I0Min {
		return ErrRunawaySchedule
	}

	return nil
}
