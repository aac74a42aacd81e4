package flan

import (
	"fmt"

	"github.com/Arafatk/glot"
	"go.uber.org/zap"
)

// QuickLook throws the given timecourse files at gnuplot in a persistent
// window for bench-side inspection, one point group per series. It takes the
// same aligned files as MultiPlot but does no fitting. Requires a gnuplot
// binary on PATH.
func QuickLook(files, labels []string) error {
	if len(files) != len(labels) {
		return fmt.Errorf("quicklook: %d files but %d labels", len(files), len(labels))
	}

	dimensions := 2
	persist := true
	debug := false
	plot, err := glot.NewPlot(dimensions, persist, debug)
	if err != nil {
		return fmt.Errorf("quicklook: %w", err)
	}

	plot.SetTitle("Anisotropy vs. time")
	plot.SetXLabel("Time (s)")
	plot.SetYLabel("Anisotropy")

	for i, file := range files {
		x, y, err := loadXY(file)
		if err != nil {
			return err
		}

		if err := plot.AddPointGroup(labels[i], "points", [][]float64{x, y}); err != nil {
			return fmt.Errorf("quicklook %s: %w", labels[i], err)
		}

		zap.S().Debugw("quicklook series", "label", labels[i], "points", len(x))
	}

	return nil
}
