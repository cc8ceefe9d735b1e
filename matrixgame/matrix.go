// Package matrixgame holds the payoff grid of a symmetric two-player
// normal-form game and the argmax helper used to pick best responses from it.
package matrixgame

import (
	"math"

	"github.com/pkg/errors"
)

// Matrix is a k x k payoff grid. Cell [i][j] holds the payoff vector when
// the row player plays strategy i against a column player playing j. The
// row player's own payoff is always element 0 of the vector.
type Matrix [][][]float64

// NewMatrix returns a k x k Matrix with two-element zero payoff vectors.
func NewMatrix(k int) Matrix {
	m := make(Matrix, k)
	for i := range m {
		m[i] = make([][]float64, k)
		for j := range m[i] {
			m[i][j] = make([]float64, 2)
		}
	}

	return m
}

// FromRowPayoffs builds a Matrix in which only the row player's payoffs are
// known. The column player's component is left at zero.
func FromRowPayoffs(rows [][]float64) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([][]float64, len(row))
		for j, v := range row {
			m[i][j] = []float64{v, 0}
		}
	}

	return m
}

// NumStrategies returns k, the number of row strategies.
func (m Matrix) NumStrategies() int {
	return len(m)
}

// RowPayoff returns the row player's payoff for (i, j). The second return
// value is false if the cell is absent or does not hold a number.
func (m Matrix) RowPayoff(i, j int) (float64, bool) {
	if i < 0 || i >= len(m) {
		return 0, false
	}

	row := m[i]
	if j < 0 || j >= len(row) || len(row[j]) == 0 {
		return 0, false
	}

	v := row[j][0]
	if math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

// Validate checks that m is a complete k x k grid of payoffs.
func (m Matrix) Validate() error {
	k := len(m)
	for i, row := range m {
		if len(row) != k {
			return errors.Errorf("row %d has %d columns, expected %d", i, len(row), k)
		}

		for j := range row {
			if _, ok := m.RowPayoff(i, j); !ok {
				return errors.Errorf("no payoff for strategy pair (%d, %d)", i, j)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	result := make(Matrix, len(m))
	for i, row := range m {
		result[i] = make([][]float64, len(row))
		for j, cell := range row {
			result[i][j] = append([]float64(nil), cell...)
		}
	}

	return result
}

// ArgMax returns the largest value in vs and its index. Ties go to the
// lowest index regardless of the order in which they are encountered.
// For an empty slice it returns (-Inf, 0).
func ArgMax(vs []float64) (float64, int) {
	best := math.Inf(-1)
	bestIdx := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
		} else if v == best && i < bestIdx {
			bestIdx = i
		}
	}

	return best, bestIdx
}
