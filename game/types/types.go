package types

// Point is a cell on the arena, X in [0,Width) and Y in [0,Height)
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions. The grid is toroidal: stepping
// past an edge re-enters from the opposite edge.
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	DefaultWidth         = 13 // Arena width in cells
	DefaultHeight        = 13 // Arena height in cells
	DefaultInitialLength = 2  // Head plus one body segment
)

func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Wrap applies a single step of (dx, dy) to p with toroidal wraparound.
func (g Grid) Wrap(p Point, dx, dy int) Point {
	return Point{
		X: wrapAxis(p.X+dx, g.Width),
		Y: wrapAxis(p.Y+dy, g.Height),
	}
}

// Step moves p one cell in direction d.
func (g Grid) Step(p Point, d Direction) Point {
	dx, dy := d.Delta()
	return g.Wrap(p, dx, dy)
}

// Index returns the row-major index of p.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

func wrapAxis(v, size int) int {
	if size <= 0 {
		return 0
	}
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
