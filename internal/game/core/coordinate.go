package core

import "fmt"

// Coordinate represents a position on the game board
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// IsAdjacentTo checks if this coordinate touches another, diagonals included.
// Towers move onto any of the eight surrounding cells.
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Neighbors returns the eight surrounding coordinates, row by row
func (c Coordinate) Neighbors() []Coordinate {
	return []Coordinate{
		{X: c.X - 1, Y: c.Y - 1},
		{X: c.X, Y: c.Y - 1},
		{X: c.X + 1, Y: c.Y - 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y + 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X + 1, Y: c.Y + 1},
	}
}

// ValidNeighbors returns only the neighbors that are within the given bounds
func (c Coordinate) ValidNeighbors(width, height int) []Coordinate {
	neighbors := c.Neighbors()
	valid := make([]Coordinate, 0, 8)

	for _, n := range neighbors {
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}

	return valid
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
