package flan

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PolyFit computes the ordinary least-squares polynomial fit of degree to
// (x, y). Coefficients are ordered highest degree first, so the fitted
// polynomial is c[0]*x^degree + ... + c[degree].
func PolyFit(x, y []float64, degree int) ([]float64, error) {
	if degree < 0 {
		return nil, fmt.Errorf("polyfit: negative degree %d", degree)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("polyfit: len(x) = %d, len(y) = %d", len(x), len(y))
	}
	if len(x) < degree+1 {
		return nil, fmt.Errorf("polyfit: %d points cannot determine %d coefficients", len(x), degree+1)
	}

	a := vandermonde(x, degree)
	b := mat.NewVecDense(len(y), y)
	c := mat.NewVecDense(degree+1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, fmt.Errorf("polyfit: %w", err)
	}

	// SolveVecTo yields ascending powers; flip to highest-first.
	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = c.AtVec(degree - i)
	}
	return coeffs, nil
}

// GenerateFit fits a degree-power polynomial to (x, y) and evaluates it at
// the given x's, so the fit lands only on the datapoints.
func GenerateFit(x, y []float64, power int) ([]float64, error) {
	coeffs, err := PolyFit(x, y, power)
	if err != nil {
		return nil, err
	}

	fitted := make([]float64, len(x))
	for i, v := range x {
		fitted[i] = polyval(coeffs, v)
	}
	return fitted, nil
}

// polyval evaluates a highest-degree-first coefficient slice at x by
// Horner's method.
func polyval(coeffs []float64, x float64) float64 {
	var y float64
	for _, c := range coeffs {
		y = y*x + c
	}
	return y
}

// vandermonde builds the len(a) x (degree+1) design matrix with ascending
// powers of a across each row.
func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
