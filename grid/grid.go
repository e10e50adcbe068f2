/*
Package grid implements a fixed size two dimensional container.

Access outside of the grid never fails; reads return the zero value and
writes are discarded. Neighbour lookups one cell past the edge of a map rely
on this.
*/
package grid

import "golang.org/x/exp/constraints"

// Grid is a row-major grid of integer cells
type Grid[T constraints.Integer] struct {
	w, h int
	data []T
}

// New returns a zeroed grid of w by h cells
func New[T constraints.Integer](w, h int) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid[T]{
		w:    w,
		h:    h,
		data: make([]T, w*h),
	}
}

// Width returns the number of columns
func (g *Grid[T]) Width() int {
	return g.w
}

// Height returns the number of rows
func (g *Grid[T]) Height() int {
	return g.h
}

func (g *Grid[T]) inside(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the cell at x, y or the zero value if it is out of range
func (g *Grid[T]) Get(x, y int) T {
	if g == nil || !g.inside(x, y) {
		var zero T
		return zero
	}
	return g.data[y*g.w+x]
}

// Set stores v at x, y. Out of range coordinates are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if g == nil || !g.inside(x, y) {
		return
	}
	g.data[y*g.w+x] = v
}
