package frames

import (
	"fmt"
	"slices"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/layout"
)

// Resolution is a selection resolved against a concrete frame count.
type Resolution struct {
	// Indices are the surviving frames in output order.
	Indices []int

	// Dropped lists explicit indices that were out of range.
	Dropped []int

	// OutputColumns is the column count that keeps direction groups on
	// their own rows. Zero means the caller picks freely.
	OutputColumns int
}

// Resolve computes which of total frames survive sel.
func Resolve(total int, sel domain.Selection) (Resolution, error) {
	if total < 1 {
		return Resolution{}, fmt.Errorf("%w: no frames", domain.ErrEmptySelection)
	}

	var (
		res Resolution
		err error
	)
	switch sel.Mode {
	case domain.SelectLinear:
		skip, serr := skipOf(sel)
		if serr != nil {
			return Resolution{}, serr
		}
		res.Indices = strided(total, skip, sel.Symmetric)
	case domain.SelectPerDirection:
		res, err = perDirection(total, sel)
	case domain.SelectPerRotation:
		res, err = perRotation(total, sel)
	case domain.SelectExplicit:
		res = explicit(total, sel.Indices)
	default:
		return Resolution{}, fmt.Errorf("%w: mode %s", domain.ErrInvalidSelection, sel.Mode)
	}
	if err != nil {
		return Resolution{}, err
	}

	if len(res.Indices) == 0 {
		return res, fmt.Errorf("%w: %s selection of %d frames kept nothing",
			domain.ErrEmptySelection, sel.Mode, total)
	}
	return res, nil
}

func skipOf(sel domain.Selection) (int, error) {
	if sel.Skip == 0 {
		return 1, nil
	}
	if sel.Skip < 0 {
		return 0, fmt.Errorf("%w: skip %d", domain.ErrInvalidSelection, sel.Skip)
	}
	return sel.Skip, nil
}

// strided returns {0, skip, 2*skip, ...} below n. In symmetric mode the
// front half is strided and mirrored onto the back half; an odd centre frame
// is kept when it lies on the stride.
func strided(n, skip int, symmetric bool) []int {
	if !symmetric {
		out := make([]int, 0, (n+skip-1)/skip)
		for i := 0; i < n; i += skip {
			out = append(out, i)
		}
		return out
	}

	half := n / 2
	var front []int
	for i := 0; i < half; i += skip {
		front = append(front, i)
	}
	out := make([]int, 0, 2*len(front)+1)
	out = append(out, front...)
	if n%2 == 1 && half%skip == 0 {
		out = append(out, half)
	}
	for i := len(front) - 1; i >= 0; i-- {
		out = append(out, n-1-front[i])
	}
	return out
}

// groups returns the direction count and frames per direction for total
// frames, deriving whichever of the two sel leaves at zero.
func groups(total int, sel domain.Selection) (dirs, per int, err error) {
	dirs, per = sel.DirectionCount, sel.FramesPerDirection
	switch {
	case dirs > 0 && per > 0:
		if dirs*per != total {
			return 0, 0, fmt.Errorf("%w: %d directions of %d frames do not make %d",
				domain.ErrInvalidSelection, dirs, per, total)
		}
	case dirs > 0:
		if total%dirs != 0 {
			return 0, 0, fmt.Errorf("%w: %d frames do not split into %d directions",
				domain.ErrInvalidSelection, total, dirs)
		}
		per = total / dirs
	case per > 0:
		if total%per != 0 {
			return 0, 0, fmt.Errorf("%w: %d frames do not split into groups of %d",
				domain.ErrInvalidSelection, total, per)
		}
		dirs = total / per
	default:
		return 0, 0, fmt.Errorf("%w: direction count or frames per direction required",
			domain.ErrInvalidSelection)
	}
	return dirs, per, nil
}

func perDirection(total int, sel domain.Selection) (Resolution, error) {
	dirs, per, err := groups(total, sel)
	if err != nil {
		return Resolution{}, err
	}
	skip, err := skipOf(sel)
	if err != nil {
		return Resolution{}, err
	}
	inGroup := strided(per, skip, sel.Symmetric)
	out := make([]int, 0, dirs*len(inGroup))
	for d := 0; d < dirs; d++ {
		base := d * per
		for _, i := range inGroup {
			out = append(out, base+i)
		}
	}
	return Resolution{Indices: out, OutputColumns: len(inGroup)}, nil
}

func perRotation(total int, sel domain.Selection) (Resolution, error) {
	dirs, per, err := groups(total, sel)
	if err != nil {
		return Resolution{}, err
	}
	skip, err := skipOf(sel)
	if err != nil {
		return Resolution{}, err
	}
	kept := strided(dirs, skip, sel.Symmetric)
	out := make([]int, 0, len(kept)*per)
	for _, d := range kept {
		for i := 0; i < per; i++ {
			out = append(out, d*per+i)
		}
	}
	return Resolution{Indices: out, OutputColumns: per}, nil
}

// explicit keeps the in-range indices, sorted and de-duplicated.
func explicit(total int, indices []int) Resolution {
	var res Resolution
	for _, i := range indices {
		if i < 0 || i >= total {
			res.Dropped = append(res.Dropped, i)
			continue
		}
		res.Indices = append(res.Indices, i)
	}
	slices.Sort(res.Indices)
	res.Indices = slices.Compact(res.Indices)
	return res
}

// Columns returns the output column count for n selected frames.
func (r Resolution) Columns(rowLength int) int {
	if r.OutputColumns > 0 {
		return r.OutputColumns
	}
	return layout.Columns(len(r.Indices), rowLength)
}

// Apply returns the frames of seq at indices, in order.
func Apply(seq Sequence, indices []int) (Sequence, error) {
	out := make(Sequence, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(seq) {
			return nil, fmt.Errorf("%w: index %d out of %d frames", domain.ErrInvalidSelection, i, len(seq))
		}
		out = append(out, seq[i])
	}
	if len(out) == 0 {
		return nil, domain.ErrEmptySelection
	}
	return out, nil
}
