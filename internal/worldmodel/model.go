// Package worldmodel implements the closed-form univariate linear regression
// used as the predictive "world model" of the alignment experiments. It is a
// deliberate stand-in for richer future models: a single feature, an ordinary
// least-squares fit, and two scalar error metrics.
//
// LinearModel instances are not safe for concurrent mutation; callers sharing
// a model across goroutines must serialize Fit against Predict and Params.
package worldmodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Params holds the fitted line parameters.
type Params struct {
	Coef      float64
	Intercept float64
}

// LinearModel fits y = coef*x + intercept by ordinary least squares. The
// zero value is an unfitted model; Fit populates the parameters exactly once
// in the guaranteed contract (a second Fit silently overwrites them).
type LinearModel struct {
	params *Params
}

// Fit solves the least-squares normal equations for a single-column feature
// matrix X of shape (n, 1) and a target vector y of length n. The design
// matrix gains a bias column of ones, and the solve uses an SVD
// pseudo-inverse of X'X so that degenerate inputs (e.g. all-identical
// features) still yield the minimum-norm solution instead of failing.
//
// On a shape violation the model state is left untouched and ErrInvalidInput
// is returned.
func (m *LinearModel) Fit(x *mat.Dense, y []float64) error {
	if x == nil {
		return fmt.Errorf("%w: X must be a (n, 1) matrix, got nil", ErrInvalidInput)
	}
	rows, cols := x.Dims()
	if cols != 1 {
		return fmt.Errorf("%w: X must have exactly one feature column, got %d", ErrInvalidInput, cols)
	}
	if rows < 1 {
		return fmt.Errorf("%w: X must have at least one row", ErrInvalidInput)
	}
	if len(y) != rows {
		return fmt.Errorf("%w: X has %d rows but y has length %d", ErrInvalidInput, rows, len(y))
	}

	// Design matrix [X | 1] for the intercept term.
	design := mat.NewDense(rows, 2, nil)
	for i := 0; i < rows; i++ {
		design.Set(i, 0, x.At(i, 0))
		design.Set(i, 1, 1)
	}

	// beta = pinv(X'X) X'y
	var xtx mat.Dense
	xtx.Mul(design.T(), design)
	inv, err := pseudoInverse(&xtx)
	if err != nil {
		return err
	}

	var xty mat.VecDense
	xty.MulVec(design.T(), mat.NewVecDense(rows, y))

	var beta mat.VecDense
	beta.MulVec(inv, &xty)

	m.params = &Params{Coef: beta.AtVec(0), Intercept: beta.AtVec(1)}
	return nil
}

// Predict returns coef*x + intercept for each row of the single-column
// feature matrix X. It returns ErrNotFitted if Fit has not been called.
func (m *LinearModel) Predict(x *mat.Dense) ([]float64, error) {
	if m.params == nil {
		return nil, fmt.Errorf("%w: call Fit before Predict", ErrNotFitted)
	}
	if x == nil {
		return nil, fmt.Errorf("%w: X must be a (n, 1) matrix, got nil", ErrInvalidInput)
	}
	rows, cols := x.Dims()
	if cols != 1 {
		return nil, fmt.Errorf("%w: X must have exactly one feature column, got %d", ErrInvalidInput, cols)
	}

	preds := make([]float64, rows)
	for i := 0; i < rows; i++ {
		preds[i] = m.params.Coef*x.At(i, 0) + m.params.Intercept
	}
	return preds, nil
}

// Params returns the fitted coefficient and intercept, or ErrNotFitted if
// Fit has not been called.
func (m *LinearModel) Params() (Params, error) {
	if m.params == nil {
		return Params{}, fmt.Errorf("%w: call Fit before Params", ErrNotFitted)
	}
	return *m.params, nil
}

// pseudoInverse computes the Moore-Penrose pseudo-inverse via SVD, zeroing
// singular values below the conventional tolerance so rank-deficient
// matrices invert to the minimum-norm solution.
func pseudoInverse(a *mat.Dense) (*mat.Dense, error) {
	rows, cols := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFull); !ok {
		return nil, fmt.Errorf("%w: SVD factorization failed", ErrInvalidInput)
	}

	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var tol float64
	if len(values) > 0 {
		tol = math.Max(float64(rows), float64(cols)) * values[0] * 2.220446049250313e-16
	}

	// S+ has the transposed shape of S with reciprocal singular values.
	sInv := mat.NewDense(cols, rows, nil)
	for i, sv := range values {
		if sv > tol {
			sInv.Set(i, i, 1/sv)
		}
	}

	var tmp, inv mat.Dense
	tmp.Mul(&v, sInv)
	inv.Mul(&tmp, u.T())
	return &inv, nil
}
