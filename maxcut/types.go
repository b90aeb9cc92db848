package maxcut

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the solver surface.
var (
	// ErrNilProblem indicates a nil problem or nil weight matrix.
	ErrNilProblem = errors.New("maxcut: problem is nil")

	// ErrNonSquare indicates that the weight matrix is not square.
	ErrNonSquare = errors.New("maxcut: weight matrix is not square")

	// ErrAsymmetry indicates that the weight matrix violates symmetry
	// beyond the structural tolerance.
	ErrAsymmetry = errors.New("maxcut: weight matrix is not symmetric")

	// ErrNonZeroDiagonal indicates a self-loop weight on the diagonal.
	ErrNonZeroDiagonal = errors.New("maxcut: weight matrix diagonal must be zero")

	// ErrNaNInf indicates a non-finite weight entry.
	ErrNaNInf = errors.New("maxcut: NaN or Inf weight encountered")

	// ErrEmptyProblem indicates a zero-order weight matrix.
	ErrEmptyProblem = errors.New("maxcut: problem has no nodes")

	// ErrBadTrialCount indicates a non-positive trial count.
	ErrBadTrialCount = errors.New("maxcut: trial count must be >= 1")

	// ErrBadCycleCount indicates a non-positive annealing cycle count.
	ErrBadCycleCount = errors.New("maxcut: cycle count must be >= 1")

	// ErrBadTau indicates a non-positive inner iteration count.
	ErrBadTau = errors.New("maxcut: tau must be >= 1")

	// ErrBadParamMode indicates a calibration mode outside {1, 2}.
	ErrBadParamMode = errors.New("maxcut: parameterization mode must be 1 or 2")

	// ErrBadWorkerCount indicates a negative worker bound.
	ErrBadWorkerCount = errors.New("maxcut: worker count must be >= 0")

	// ErrBadTimeLimit indicates a negative wall-clock budget.
	ErrBadTimeLimit = errors.New("maxcut: time limit must be >= 0")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("maxcut: unsupported algorithm")

	// ErrNoSuccessfulTrial indicates that every trial of a run failed.
	ErrNoSuccessfulTrial = errors.New("maxcut: no trial completed successfully")

	// ErrDimensionMismatch indicates incompatible operand sizes.
	ErrDimensionMismatch = errors.New("maxcut: dimension mismatch")
)

// symTol is the structural tolerance for symmetry/diagonal checks.
// It is independent from the crossbar ε (which governs conductance).
const symTol = 1e-12

// Algo selects the solving algorithm.
type Algo int

const (
	// AlgoPSA runs parameterized simulated-annealing trials (default).
	AlgoPSA Algo = iota

	// AlgoRandomRounding drives random projection vectors through the
	// crossbar and thresholds the read-out at its median.
	AlgoRandomRounding
)

// DEFAULTS - single source of truth for zero-value behavior. These
// mirror the historical driver defaults (trials 50, cycles 200, tau 1,
// parameterization mode 2).
const (
	DefaultTrials    = 50
	DefaultCycles    = 200
	DefaultTau       = 1
	DefaultParamMode = 2
)

// Options configures one solver run. Fields are exported so callers can
// assemble them directly; DefaultOptions supplies the documented defaults.
type Options struct {
	// Algo selects the algorithm; AlgoPSA by default.
	Algo Algo

	// Trials is the number of independent trials (or rounding iterations).
	Trials int

	// Cycles, Tau and ParamMode parameterize the annealing schedule
	// (gain level count, inner iterations per level, calibration mode).
	Cycles    int
	Tau       int
	ParamMode int

	// Seed feeds the deterministic per-trial RNG streams; 0 selects the
	// fixed default seed (reproducible by construction).
	Seed int64

	// Workers bounds trial concurrency; 0 ⇒ GOMAXPROCS.
	Workers int

	// TimeLimit caps the whole run's wall-clock time; 0 ⇒ unlimited.
	TimeLimit time.Duration

	// OnTrial, when non-nil, receives every finished trial (including
	// failed ones). Invocations are serialized; the callback must not
	// retain the Spins slice.
	OnTrial func(TrialResult)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Algo:      AlgoPSA,
		Trials:    DefaultTrials,
		Cycles:    DefaultCycles,
		Tau:       DefaultTau,
		ParamMode: DefaultParamMode,
	}
}

// Problem is a validated Max-Cut instance.
type Problem struct {
	// W is the symmetric, zero-diagonal weight matrix. Read-only after
	// construction; trials share it without copying.
	W *mat.Dense
}

// NewProblem validates w and wraps it as a Problem.
//
// Contracts: w non-nil, square of order ≥ 1, finite, symmetric within
// tolerance, zero diagonal within tolerance.
//
// Errors: ErrNilProblem, ErrEmptyProblem, ErrNonSquare, ErrNaNInf,
// ErrNonZeroDiagonal, ErrAsymmetry.
//
// Complexity: O(N²).
func NewProblem(w *mat.Dense) (*Problem, error) {
	if err := validateWeights(w); err != nil {
		return nil, err
	}

	return &Problem{W: w}, nil
}

// N returns the node count.
func (p *Problem) N() int {
	if p == nil || p.W == nil {
		return 0
	}
	var r, _ = p.W.Dims()

	return r
}

// TrialResult is the outcome of one trial (or rounding iteration).
type TrialResult struct {
	// Trial is the zero-based trial index.
	Trial int

	// Cut is the achieved cut value against the original weights.
	Cut float64

	// Spins is the final ±1 assignment; nil for failed trials.
	Spins []float64

	// Elapsed is the trial's wall-clock duration.
	Elapsed time.Duration

	// Retried marks a trial that succeeded only after its one retry.
	Retried bool

	// Failed marks a trial excluded from statistics (both attempts
	// produced non-finite fields).
	Failed bool
}

// AggregateResult summarizes a whole run.
type AggregateResult struct {
	// BestPartition is the 0/1 side assignment of the best trial.
	BestPartition []int

	// BestCut is the best cut value across successful trials.
	BestCut float64

	// CutMean, CutMin, CutMax, CutStd summarize successful trials'
	// cut values (population standard deviation).
	CutMean float64
	CutMin  float64
	CutMax  float64
	CutStd  float64

	// MeanElapsed is the mean trial duration over successful trials.
	MeanElapsed time.Duration

	// Trials and Failed count attempted and excluded trials.
	Trials int
	Failed int
}
