package interview

import (
	"fmt"
	"math"
	"slices"
)

// Window is an inclusive span [Start, End] on the number line.
type Window struct {
	Start, End int64
}

// Len returns the number of integer points covered by the window.
func (w Window) Len() int64 {
	return w.End - w.Start + 1
}

func (w Window) String() string {
	return fmt.Sprintf("[%d,%d]", w.Start, w.End)
}

// CoveringWindow returns the shortest window that covers k of the given
// positions. Positions may repeat and need not be sorted; the slice is
// not modified. When several windows share the minimal length the one
// with the smallest Start is returned.
func CoveringWindow(positions []int64, k int) (Window, error) {
	if k < 1 {
		return Window{}, invalidf("k", "must be >= 1, got %d", k)
	}
	if k > len(positions) {
		return Window{}, invalidf("k", "%d exceeds the %d positions available", k, len(positions))
	}

	sorted := slices.Clone(positions)
	slices.Sort(sorted)

	var (
		best     Window
		bestSpan uint64
	)
	for i := 0; i+k-1 < len(sorted); i++ {
		w := Window{Start: sorted[i], End: sorted[i+k-1]}
		// End >= Start, so the unsigned difference is exact.
		if span := uint64(w.End) - uint64(w.Start); i == 0 || span < bestSpan {
			best, bestSpan = w, span
		}
	}
	if bestSpan >= math.MaxInt64 {
		return Window{}, invalidf("positions", "span %s overflows int64", best)
	}
	return best, nil
}

// MinCoveringWindow returns the length of the shortest window covering
// k of the given positions.
func MinCoveringWindow(positions []int64, k int) (int64, error) {
	w, err := CoveringWindow(positions, k)
	if err != nil {
		return 0, err
	}
	return w.Len(), nil
}
