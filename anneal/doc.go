// Package anneal implements parameterized simulated annealing (pSA) for
// Ising-mapped Max-Cut instances on a simulated crossbar.
//
// What:
//
//   - Calibrate derives the gain schedule {I0Min, I0Max, Beta} from the
//     statistics of the coupling matrix J (two parameterization modes).
//   - Engine runs one trial: random ±1 spin init, then a geometric gain
//     sweep; at each gain level τ serial spin sweeps in fresh random
//     order, s_i ← sign(tanh(I0·D_i) + noise_i) with fresh uniform
//     noise in [−1,1] and a local field D read through the tiled
//     crossbar MVM (full read per sweep, column reads per flip).
//   - NewTrialRNG derives independent deterministic random streams so
//     concurrent trials never share generator state.
//
// Why:
//
//	Unlike classical annealing with a shrinking temperature, pSA grows a
//	gain parameter I0 geometrically (I0 ← I0/Beta, Beta < 1): small gain
//	keeps updates noise-dominated (exploration), large gain saturates
//	tanh and freezes the assignment (exploitation).
//
// Local field:
//
//	Spins are driven through the crossbar as unipolar voltages
//	v = (s+1)/2 ∈ {0,1}. A single all-ones reference read taken at
//	engine construction restores the signed field from the unipolar
//	current: D = h + scale·(ref − 2·G·v), using the identity
//	G·s = 2·G·v − G·1. The scale defaults to the calibration constant
//	FieldScaleFor(maxG, max|J|) = maxG·max|J| and is configurable; it is
//	a heuristic rescaling, not a derived physical unit conversion.
//
// Errors:
//
//   - ErrRunawaySchedule: Beta ≥ 1 or I0Max < I0Min would never terminate.
//   - ErrBadParamMode / ErrBadSchedule: invalid calibration inputs.
//   - ErrNonFiniteField: a trial observed NaN in its local field.
//
// Determinism: identical seed and stream ⇒ identical spin trajectories
// and final assignment; no global random state anywhere.
package anneal
