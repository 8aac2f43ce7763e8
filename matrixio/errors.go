// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

// ErrEmpty indicates input without any data row.
var ErrEmpty = errors.New("matrixio: no rows")

// ErrParse indicates a cell that is not a floating-point number.
var ErrParse = errors.New("matrixio: malformed value")

// ErrRaggedRow indicates a row whose cell count differs from the first row.
var ErrRaggedRow = errors.New("matrixio: ragged row")

// lineErrorf tags err with a 1-based line (and column when col > 0).
func lineErrorf(line, col int, err error) error {
	if col > 0 {
		return fmt.Errorf("matrixio: line %d, column %d: %w", line, col, err)
	}

	return fmt.Errorf("matrixio: line %d: %w", line, err)
}
