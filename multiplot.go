package flan

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MultiPlot overlays anisotropy timecourses from several files on the shared
// time axis of the first file. Every file after the first contributes its
// second column and must have the same row count as the first. Each series
// is drawn in its own palette color with its own linear fit and a
// matching-color annotation of the fit coefficients, offset per series so
// the annotations stack instead of overlapping.
func MultiPlot(files, labels []string) (*plot.Plot, error) {
	if len(files) != len(labels) {
		return nil, fmt.Errorf("multiplot: %d files but %d labels", len(files), len(labels))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("multiplot: no files")
	}

	x, y0, err := loadXY(files[0])
	if err != nil {
		return nil, err
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("multiplot: %s has no data rows", files[0])
	}

	series := [][]float64{y0}
	for _, file := range files[1:] {
		_, y, err := loadXY(file)
		if err != nil {
			return nil, err
		}
		if len(y) != len(x) {
			return nil, fmt.Errorf("multiplot: %s has %d rows, %s has %d", file, len(y), files[0], len(x))
		}
		series = append(series, y)
	}

	p := prepPlot("Anisotropy vs. time", "Time (s)", "Anisotropy")
	p.X.Min = 0
	p.X.Max = floats.Max(x)

	// Annotation anchor: top-left corner of the data, stepped down per
	// series.
	ymin, ymax := floats.Min(series[0]), floats.Max(series[0])
	for _, y := range series[1:] {
		ymin = min(ymin, floats.Min(y))
		ymax = max(ymax, floats.Max(y))
	}
	annX := 0.05 * floats.Max(x)
	annStep := 0.05 * (ymax - ymin)
	if annStep == 0 {
		annStep = 0.05
	}

	for i, y := range series {
		col := Palette(i)

		pts, err := plotter.NewScatter(buildXYs(x, y))
		if err != nil {
			return nil, fmt.Errorf("multiplot %s: %w", labels[i], err)
		}
		pts.GlyphStyle.Color = col
		pts.GlyphStyle.Radius = vg.Points(3)
		pts.Shape = draw.CircleGlyph{}

		coeffs, err := PolyFit(x, y, 1)
		if err != nil {
			return nil, fmt.Errorf("multiplot fit %s: %w", labels[i], err)
		}

		fitted := make([]float64, len(x))
		for j, v := range x {
			fitted[j] = polyval(coeffs, v)
		}

		fitLine, err := plotter.NewLine(buildXYs(x, fitted))
		if err != nil {
			return nil, fmt.Errorf("multiplot fit %s: %w", labels[i], err)
		}
		fitLine.LineStyle.Color = col
		fitLine.LineStyle.Width = vg.Points(2)

		ann, err := plotter.NewLabels(plotter.XYLabels{
			XYs: plotter.XYs{{X: annX, Y: ymax - float64(i)*annStep}},
			Labels: []string{
				fmt.Sprintf("%s: m=%.3e b=%.4f", labels[i], coeffs[0], coeffs[1]),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("multiplot annotation %s: %w", labels[i], err)
		}
		ann.TextStyle[0].Color = col
		ann.TextStyle[0].Font.Variant = "Sans"

		p.Add(pts, fitLine, ann)
		p.Legend.Add(labels[i], pts)
	}

	return p, nil
}
