package flan

import (
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestShowFigure(t *testing.T) {
	p := prepPlot("round trip", "x", "y")

	path := filepath.Join(t.TempDir(), "fig.png")
	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		t.Fatalf("save figure: %v", err)
	}

	img, err := ShowFigure(path)
	if err != nil {
		t.Fatalf("ShowFigure: %v", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Errorf("empty image bounds %v", img.Bounds())
	}
}

func TestShowFigureMissing(t *testing.T) {
	if _, err := ShowFigure(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestShowFigureNotAnImage(t *testing.T) {
	path := writeTable(t, "h1", "h2", "1 2")
	if _, err := ShowFigure(path); err == nil {
		t.Fatal("expected error, got nil")
	}
}
