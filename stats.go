package flan

import (
	"gonum.org/v1/gonum/stat"
)

// Timepoint reduces a replicate-measurement file to a single anisotropy
// value and its precision: the mean and population standard deviation
// (divisor N) of the second column.
func Timepoint(path string) (mean, stddev float64, err error) {
	_, an, err := loadXY(path)
	if err != nil {
		return 0, 0, err
	}
	return stat.Mean(an, nil), stat.PopStdDev(an, nil), nil
}

// Timepoints returns the individual replicate measurements for a single
// timepoint, unreduced and in file order.
func Timepoints(path string) ([]float64, error) {
	_, an, err := loadXY(path)
	if err != nil {
		return nil, err
	}
	return an, nil
}
