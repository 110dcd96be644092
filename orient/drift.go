// =======================
// orient/drift.go
// =======================

package orient

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// MaxDriftTicks bounds a single drift run.
const MaxDriftTicks = 10_000_000

// DriftSample is the numerical health of both representations after one tick.
type DriftSample struct {
	Tick           int     `json:"tick"`
	QuatNormError  float64 `json:"quat_norm_error"`
	MatrixError    float64 `json:"matrix_ortho_error"`
	MaxMatrixError float64 `json:"max_matrix_ortho_error"`
	Divergence     float64 `json:"divergence"`
}

// DriftReport summarizes a side-by-side run of the two accumulators.
type DriftReport struct {
	Speeds       AxisSpeeds    `json:"speeds"`
	Ticks        int           `json:"ticks"`
	ReorthEvery  int           `json:"reorth_every"`
	Samples      []DriftSample `json:"samples"`
	MaxQuatError float64       `json:"max_quat_norm_error"`
	MaxDiverge   float64       `json:"max_divergence"`
}

// driftPoint is rotated by both orientations to compare them.
var driftPoint = Point3D{X: 1, Y: 2, Z: 3}

// MeasureDrift advances an Euler and a quaternion accumulator in lockstep
// for ticks ticks. MaxMatrixError is the running maximum of the matrix
// orthonormality error and never decreases.
func MeasureDrift(speeds AxisSpeeds, ticks, reorthEvery int) (*DriftReport, error) {
	if ticks <= 0 || ticks > MaxDriftTicks {
		return nil, fmt.Errorf("drift ticks out of range: %d", ticks)
	}

	euler, err := NewEulerAccumulator(speeds, reorthEvery)
	if err != nil {
		return nil, fmt.Errorf("euler accumulator: %w", err)
	}
	q, err := NewQuaternionAccumulator(speeds)
	if err != nil {
		return nil, fmt.Errorf("quaternion accumulator: %w", err)
	}

	report := &DriftReport{
		Speeds:      speeds,
		Ticks:       ticks,
		ReorthEvery: reorthEvery,
		Samples:     make([]DriftSample, 0, ticks),
	}

	maxMatrix := 0.0
	for i := 0; i < ticks; i++ {
		m := euler.advance()
		qq := q.advance()

		me := m.OrthonormalityError()
		maxMatrix = math.Max(maxMatrix, me)
		s := DriftSample{
			Tick:           i + 1,
			QuatNormError:  qq.NormError(),
			MatrixError:    me,
			MaxMatrixError: maxMatrix,
			Divergence:     m.Apply(driftPoint).Dist(qq.Apply(driftPoint)),
		}
		report.MaxQuatError = math.Max(report.MaxQuatError, s.QuatNormError)
		report.MaxDiverge = math.Max(report.MaxDiverge, s.Divergence)
		report.Samples = append(report.Samples, s)
	}

	return report, nil
}

// MaxMatrixError is the worst matrix orthonormality error of the run.
func (r *DriftReport) MaxMatrixError() float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	return r.Samples[len(r.Samples)-1].MaxMatrixError
}

// PrintDriftReport writes about rows evenly spaced samples and a summary.
func PrintDriftReport(w io.Writer, r *DriftReport, rows int) {
	fmt.Fprintln(w, "Orientation Drift Report")
	fmt.Fprintln(w, "========================")
	fmt.Fprintf(w, "speeds: (%.4g, %.4g, %.4g) rad/tick | ticks: %d | reorth every: %d\n",
		r.Speeds.X, r.Speeds.Y, r.Speeds.Z, r.Ticks, r.ReorthEvery)
	fmt.Fprintf(w, "%-10s | %-14s | %-14s | %-14s | %-14s\n",
		"Tick", "|q|-1", "Ortho err", "Max ortho err", "Divergence")
	fmt.Fprintln(w, "-----------|----------------|----------------|----------------|---------------")

	if rows < 1 {
		rows = 1
	}
	step := len(r.Samples) / rows
	if step < 1 {
		step = 1
	}
	for i := step - 1; i < len(r.Samples); i += step {
		s := r.Samples[i]
		fmt.Fprintf(w, "%-10d | %-14.3e | %-14.3e | %-14.3e | %-14.3e\n",
			s.Tick, s.QuatNormError, s.MatrixError, s.MaxMatrixError, s.Divergence)
	}

	fmt.Fprintf(w, "max |q|-1: %.3e | max ortho err: %.3e | max divergence: %.3e\n",
		r.MaxQuatError, r.MaxMatrixError(), r.MaxDiverge)
}

// WriteDriftJSON writes the full report, every sample included, as indented JSON.
func WriteDriftJSON(w io.Writer, r *DriftReport) error {
	j, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", j); err != nil {
		return fmt.Errorf("writing drift report: %w", err)
	}
	return nil
}
