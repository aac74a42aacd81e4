package flan

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// TimecoursePlot renders anisotropy vs. time for a single species at a fixed
// temperature (degrees C). With fit set, a degree-1 least-squares line is
// overlaid on the observed time range and its coefficients are returned
// highest degree first ([slope, intercept]); without it the coefficient
// slice is nil.
func TimecoursePlot(path, species string, temp int, fit bool) (*plot.Plot, []float64, error) {
	time, anisotropy, err := loadXY(path)
	if err != nil {
		return nil, nil, err
	}

	p := prepPlot(
		fmt.Sprintf("%s Anisotropy vs. time (%d C)", species, temp),
		"Time (s)", "Anisotropy",
	)

	pts, err := plotter.NewScatter(buildXYs(time, anisotropy))
	if err != nil {
		return nil, nil, fmt.Errorf("timecourse plot: %w", err)
	}
	pts.GlyphStyle.Color = Palette(0)
	pts.GlyphStyle.Radius = vg.Points(3)
	pts.Shape = draw.CircleGlyph{}

	p.Add(pts)

	if !fit {
		return p, nil, nil
	}

	coeffs, err := PolyFit(time, anisotropy, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("timecourse fit: %w", err)
	}

	fitted := make([]float64, len(time))
	for i, t := range time {
		fitted[i] = polyval(coeffs, t)
	}

	fitLine, err := plotter.NewLine(buildXYs(time, fitted))
	if err != nil {
		return nil, nil, fmt.Errorf("timecourse fit: %w", err)
	}
	fitLine.LineStyle.Color = Palette(6)
	fitLine.LineStyle.Width = vg.Points(2)

	p.Add(fitLine)

	zap.S().Infow("linear fit parameters",
		"species", species,
		"temp", temp,
		"slope", coeffs[0],
		"intercept", coeffs[1],
	)

	return p, coeffs, nil
}
