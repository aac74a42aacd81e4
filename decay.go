package flan

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DecayGuess seeds the exponential decay solver. Tau must be positive.
type DecayGuess struct {
	R0   float64 // anisotropy at t = 0
	RInf float64 // plateau anisotropy
	Tau  float64 // decay time constant (s)
}

// DecayResult holds the solved parameters of
// r(t) = RInf + (R0 - RInf) exp(-t/Tau) and the curve evaluated at the
// observed times.
type DecayResult struct {
	R0     float64
	RInf   float64
	Tau    float64
	Fitted []float64
}

// DecayFit fits a single-exponential decay to an anisotropy timecourse by
// Levenberg-Marquardt with a numeric Jacobian.
func DecayFit(t, r []float64, guess DecayGuess) (DecayResult, error) {
	if len(t) != len(r) {
		return DecayResult{}, fmt.Errorf("decay fit: len(t) = %d, len(r) = %d", len(t), len(r))
	}
	if len(t) < 3 {
		return DecayResult{}, fmt.Errorf("decay fit: %d points cannot determine 3 parameters", len(t))
	}
	if guess.Tau <= 0 {
		return DecayResult{}, fmt.Errorf("decay fit: guess tau %v must be positive", guess.Tau)
	}

	f := func(dst, params []float64) {
		r0, rInf, tau := params[0], params[1], params[2]

		for i := range t {
			dst[i] = rInf + (r0-rInf)*math.Exp(-t[i]/tau) - r[i]
		}
	}

	jacobian := lm.NumJac{Func: f}

	toBeSolved := lm.LMProblem{
		Dim:        3,
		Size:       len(t),
		Func:       f,
		Jac:        jacobian.Jac,
		InitParams: []float64{guess.R0, guess.RInf, guess.Tau},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(toBeSolved, &lm.Settings{Iterations: 100, ObjectiveTol: 1e-16})
	if err != nil {
		return DecayResult{}, fmt.Errorf("decay fit: %w", err)
	}

	res := DecayResult{
		R0:   results.X[0],
		RInf: results.X[1],
		Tau:  math.Abs(results.X[2]),
	}

	res.Fitted = make([]float64, len(t))
	for i := range t {
		res.Fitted[i] = res.RInf + (res.R0-res.RInf)*math.Exp(-t[i]/res.Tau)
	}

	return res, nil
}

// TimecourseDecayPlot renders an anisotropy timecourse with a
// single-exponential decay overlay solved from guess.
func TimecourseDecayPlot(path, species string, temp int, guess DecayGuess) (*plot.Plot, DecayResult, error) {
	time, anisotropy, err := loadXY(path)
	if err != nil {
		return nil, DecayResult{}, err
	}

	res, err := DecayFit(time, anisotropy, guess)
	if err != nil {
		return nil, DecayResult{}, err
	}

	zap.S().Infow("decay fit parameters",
		"species", species,
		"temp", temp,
		"r0", res.R0,
		"rInf", res.RInf,
		"tau", res.Tau,
	)

	p := prepPlot(
		fmt.Sprintf("%s Anisotropy Decay (%d C)", species, temp),
		"Time (s)", "Anisotropy",
	)

	pts, err := plotter.NewScatter(buildXYs(time, anisotropy))
	if err != nil {
		return nil, DecayResult{}, fmt.Errorf("decay plot: %w", err)
	}
	pts.GlyphStyle.Color = Palette(0)
	pts.GlyphStyle.Radius = vg.Points(3)
	pts.Shape = draw.CircleGlyph{}

	fitLine, err := plotter.NewLine(buildXYs(time, res.Fitted))
	if err != nil {
		return nil, DecayResult{}, fmt.Errorf("decay plot: %w", err)
	}
	fitLine.LineStyle.Color = Palette(6)
	fitLine.LineStyle.Width = vg.Points(2)

	p.Add(pts, fitLine)

	return p, res, nil
}
