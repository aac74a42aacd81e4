package flan

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Figure proportions carried over from the bench notebooks.
const (
	SpectrumWidth  = 15 * vg.Inch
	SpectrumHeight = 5 * vg.Inch

	TimecourseWidth  = 10 * vg.Inch
	TimecourseHeight = 10 * vg.Inch
)

// prepPlot applies the house style shared by every renderer: liberation Sans
// everywhere, 1.5pt axis and tick lines, transparent background. gonum/plot
// draws only the left and bottom axes, which is the convention these figures
// want (no top or right border, ticks on left/bottom only).
func prepPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = color.RGBA{A: 0}

	p.Title.Text = title
	p.Title.TextStyle.Font.Typeface = "liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = 24
	p.Title.Padding = font.Length(15)

	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = 18
	p.X.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.Label.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Size = 16

	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = 18
	p.Y.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Size = 16

	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.TextStyle.Font.Size = 16
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(5)

	return p
}

// buildXYs zips two equal-length columns into plotter points.
func buildXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// SavePlot writes p as <dir>/<name>.png, .svg, and .pdf, creating dir if it
// does not exist.
func SavePlot(p *plot.Plot, w, h vg.Length, name, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	path := filepath.Join(dir, name)

	for _, ext := range []string{".png", ".svg", ".pdf"} {
		if err := p.Save(w, h, path+ext); err != nil {
			return fmt.Errorf("save plot %s%s: %w", path, ext, err)
		}
	}
	return nil
}
