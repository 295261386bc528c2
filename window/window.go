// Package window computes which slice of an ordered collection is
// visible given a scroll offset, so a renderer can draw huge lists
// without materializing every row. Compute is a pure O(1) function: the
// engine holds no state between calls, and both scrolling and viewport
// resizes are handled by simply computing again.
//
// All items share one fixed extent. Variable-height items are not
// supported and are not approximated.
package window

import (
	"github.com/gozephyr/renderkit/errors"
)

// Window describes the renderable index range of an ordered collection.
// Start and End are inclusive; an empty window has End < Start.
type Window struct {
	Start       int
	End         int
	ItemExtent  int
	TotalExtent int
}

// Compute returns the window of items to render. itemExtent,
// viewportExtent, and scrollOffset are in the same unit (pixels, rows);
// overscan is the number of extra items kept rendered beyond each
// viewport edge to hide pop-in during fast scrolling.
//
// TotalExtent is always itemCount*itemExtent, independent of the scroll
// offset. A non-positive itemExtent is rejected; negative offsets and
// overscan clamp to zero.
func Compute(itemCount, itemExtent, viewportExtent, scrollOffset, overscan int) (Window, error) {
	if itemExtent <= 0 {
		return Window{}, errors.Wrap("Compute", nil, errors.ErrInvalidExtent)
	}

	if itemCount <= 0 {
		return Window{Start: 0, End: -1, ItemExtent: itemExtent, TotalExtent: 0}, nil
	}

	if viewportExtent < 0 {
		viewportExtent = 0
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if overscan < 0 {
		overscan = 0
	}

	visible := (viewportExtent + itemExtent - 1) / itemExtent

	start := scrollOffset/itemExtent - overscan
	if start < 0 {
		start = 0
	}
	if start > itemCount-1 {
		start = itemCount - 1
	}

	end := start + visible + 2*overscan
	if end > itemCount-1 {
		end = itemCount - 1
	}

	return Window{
		Start:       start,
		End:         end,
		ItemExtent:  itemExtent,
		TotalExtent: itemCount * itemExtent,
	}, nil
}

// Len returns the number of items in the window
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// Empty reports whether the window contains no items
func (w Window) Empty() bool {
	return w.End < w.Start
}

// OffsetOf returns the leading edge of item i, in the same unit as the
// item extent
func (w Window) OffsetOf(i int) int {
	return i * w.ItemExtent
}

// Indices returns every index in the window, in order. Nil when empty.
func (w Window) Indices() []int {
	if w.Empty() {
		return nil
	}
	indices := make([]int, 0, w.Len())
	for i := w.Start; i <= w.End; i++ {
		indices = append(indices, i)
	}
	return indices
}

// Contains reports whether index i falls inside the window
func (w Window) Contains(i int) bool {
	return i >= w.Start && i <= w.End
}

// Slice returns the sub-slice of items covered by the window. The
// result aliases the backing array; callers must not assume a copy.
func Slice[T any](items []T, w Window) []T {
	if w.Empty() || w.Start >= len(items) {
		return nil
	}
	end := w.End
	if end > len(items)-1 {
		end = len(items) - 1
	}
	return items[w.Start : end+1]
}
