package flan

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SpectrumPlot renders an emission spectrum (wavelength vs. intensity) from
// a Fluorolog export. species names the molecular species in the title.
func SpectrumPlot(path, species string) (*plot.Plot, error) {
	wv, intensity, err := loadXY(path)
	if err != nil {
		return nil, err
	}

	p := prepPlot(
		fmt.Sprintf("%s Emission Spectrum", species),
		"Wavelength (nm)", "Intensity",
	)

	line, err := plotter.NewLine(buildXYs(wv, intensity))
	if err != nil {
		return nil, fmt.Errorf("spectrum plot: %w", err)
	}
	line.LineStyle.Color = Palette(0)
	line.LineStyle.Width = vg.Points(2)

	p.Add(line)

	return p, nil
}
