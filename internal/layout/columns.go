package layout

import (
	"math"

	"github.com/bft-labs/spritegrid/internal/domain"
)

// columnTable maps common frame counts to the column count that reads best
// for them. Counts missing from the table fall back to a square-ish grid.
var columnTable = map[int]int{
	1:    1,
	2:    2,
	3:    3,
	4:    2,
	6:    3,
	7:    4,
	8:    4,
	9:    3,
	10:   5,
	12:   4,
	16:   4,
	20:   5,
	24:   6,
	25:   8,
	32:   8,
	64:   8,
	128:  16,
	256:  16,
	512:  32,
	1024: 32,
}

// Columns returns the column count for frameCount frames. A positive
// rowLength is a caller-forced layout and is returned as is.
func Columns(frameCount, rowLength int) int {
	if rowLength > 0 {
		return rowLength
	}
	if c, ok := columnTable[frameCount]; ok {
		return c
	}
	if frameCount <= 1 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(frameCount))))
}

// TableColumns reports the table entry for frameCount, if any.
func TableColumns(frameCount int) (int, bool) {
	c, ok := columnTable[frameCount]
	return c, ok
}

// Rows returns the number of rows cols columns need for frameCount frames.
func Rows(frameCount, cols int) int {
	if cols < 1 {
		cols = 1
	}
	if frameCount < 1 {
		return 1
	}
	return (frameCount + cols - 1) / cols
}

// Natural returns the un-split layout of frameCount frames.
func Natural(frameCount, rowLength int) domain.GridLayout {
	cols := Columns(frameCount, rowLength)
	return domain.GridLayout{Cols: cols, Rows: Rows(frameCount, cols)}
}
