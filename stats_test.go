package flan

import (
	"math"
	"testing"
)

func replicateFixture(t *testing.T) string {
	t.Helper()
	return writeTable(t,
		"Horiba Fluorolog-3",
		"anisotropy replicates",
		"0 0.20",
		"1 0.22",
		"2 0.18",
		"3 0.24",
		"4 0.21",
	)
}

func TestTimepoint(t *testing.T) {
	mean, stddev, err := Timepoint(replicateFixture(t))
	if err != nil {
		t.Fatalf("Timepoint: %v", err)
	}

	if math.Abs(mean-0.21) > 1e-9 {
		t.Errorf("mean = %v, want 0.21", mean)
	}
	// Population stddev (divisor N) of the five replicates is exactly 0.02.
	if math.Abs(stddev-0.02) > 1e-9 {
		t.Errorf("stddev = %v, want 0.02", stddev)
	}
}

func TestTimepoints(t *testing.T) {
	got, err := Timepoints(replicateFixture(t))
	if err != nil {
		t.Fatalf("Timepoints: %v", err)
	}

	want := []float64{0.20, 0.22, 0.18, 0.24, 0.21}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTimepointSingleColumn(t *testing.T) {
	path := writeTable(t, "h1", "h2", "0.20", "0.22")
	if _, _, err := Timepoint(path); err == nil {
		t.Fatal("expected error for one-column table, got nil")
	}
}
