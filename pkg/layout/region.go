package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/panels/pkg/errors"
)

// Open marks a region bound that extends to the edge of the grid.
const Open = -1

// Region is a half-open rectangle [RowStart:RowEnd) x [ColStart:ColEnd) on a
// grid. Any bound may be [Open].
type Region struct {
	RowStart, ColStart, RowEnd, ColEnd int
}

func fmtBound(b int) string {
	if b == Open {
		return "None"
	}
	return strconv.Itoa(b)
}

// String formats r as (RowStart, ColStart, RowEnd, ColEnd).
func (r Region) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)",
		fmtBound(r.RowStart), fmtBound(r.ColStart), fmtBound(r.RowEnd), fmtBound(r.ColEnd))
}

// resolve replaces open bounds with the grid edges.
func (r Region) resolve(nrows, ncols int) (top, left, bottom, right int) {
	top, left, bottom, right = r.RowStart, r.ColStart, r.RowEnd, r.ColEnd
	if top == Open {
		top = 0
	}
	if left == Open {
		left = 0
	}
	if bottom == Open {
		bottom = nrows
	}
	if right == Open {
		right = ncols
	}
	return top, left, bottom, right
}

// Index addresses a row or column range of a [GridSpec].
type Index struct {
	start, stop int
	scalar      bool
}

// At addresses the single row or column i.
func At(i int) Index { return Index{start: i, stop: i + 1, scalar: true} }

// Span addresses [start:stop).
func Span(start, stop int) Index { return Index{start: start, stop: stop} }

// From addresses everything from start to the edge.
func From(start int) Index { return Index{start: start, stop: Open} }

// To addresses everything before stop.
func To(stop int) Index { return Index{start: Open, stop: stop} }

// All addresses the whole axis.
func All() Index { return Index{start: Open, stop: Open} }

// String formats ix in slice notation.
func (ix Index) String() string {
	if ix.scalar {
		return strconv.Itoa(ix.start)
	}
	var b strings.Builder
	if ix.start != Open {
		b.WriteString(strconv.Itoa(ix.start))
	}
	b.WriteByte(':')
	if ix.stop != Open {
		b.WriteString(strconv.Itoa(ix.stop))
	}
	return b.String()
}

// bounds validates ix as a placement bound.
func (ix Index) bounds() (int, int, error) {
	if ix.scalar && ix.start < 0 {
		return 0, 0, errors.New(errors.ErrCodeOutOfBounds, "grid index %d must not be negative", ix.start)
	}
	for _, b := range []int{ix.start, ix.stop} {
		if b < 0 && b != Open {
			return 0, 0, errors.New(errors.ErrCodeOutOfBounds, "grid bound %d must not be negative", b)
		}
	}
	if ix.start != Open && ix.stop != Open && ix.start >= ix.stop {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "empty grid range [%s]", ix)
	}
	return ix.start, ix.stop, nil
}

// cells resolves ix against an axis of length n for reading. Scalar indexes
// may be negative and must be in range; ranges are clamped.
func (ix Index) cells(n int) (lo, hi int, err error) {
	if ix.scalar {
		i, err := errors.CheckIndex("GridSpec", ix.start, n)
		if err != nil {
			return 0, 0, err
		}
		return i, i + 1, nil
	}
	lo, hi = 0, n
	if ix.start != Open {
		lo = min(max(ix.start, 0), n)
	}
	if ix.stop != Open {
		hi = min(max(ix.stop, 0), n)
	}
	return lo, max(lo, hi), nil
}

// regionOf builds the region addressed by rows and cols.
func regionOf(rows, cols Index) (Region, error) {
	r0, r1, err := rows.bounds()
	if err != nil {
		return Region{}, err
	}
	c0, c1, err := cols.bounds()
	if err != nil {
		return Region{}, err
	}
	return Region{RowStart: r0, ColStart: c0, RowEnd: r1, ColEnd: c1}, nil
}

// FormatGrid renders an occupancy matrix one row per line, e.g.
//
//	[[2 1]
//	 [1 0]]
func FormatGrid(grid [][]int) string {
	width := 1
	for _, row := range grid {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range grid {
		if i > 0 {
			b.WriteString("\n ")
		}
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, v)
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
