package core

// Size is the side of the square frame the Avalam board lives in.
const Size = 9

// InitialTowers is the number of valid cells; each starts with a single piece.
const InitialTowers = 48

// TotalPieces is the fixed piece count conserved across the whole game:
// sum(standing heights) + MaxHeight * (leveled towers) == TotalPieces.
const TotalPieces = InitialTowers

// baseLayout is the standard Avalam starting position inside the 9x9 frame.
// +1 is a player-0 piece, -1 a player-1 piece, 0 a cell that is not part of
// the board (including the always-empty center). Indexed [y][x].
var baseLayout = [Size][Size]int8{
	{0, 0, 1, -1, 0, 0, 0, 0, 0},
	{0, 1, -1, 1, -1, 0, 0, 0, 0},
	{0, -1, 1, -1, 1, -1, 1, 0, 0},
	{0, 1, -1, 1, -1, 1, -1, 1, -1},
	{1, -1, 1, -1, 0, -1, 1, -1, 1},
	{-1, 1, -1, 1, -1, 1, -1, 1, 0},
	{0, 0, 1, -1, 1, -1, 1, -1, 0},
	{0, 0, 0, 0, -1, 1, -1, 1, 0},
	{0, 0, 0, 0, 0, -1, 1, 0, 0},
}

// Topology is the fixed set of valid cells and their adjacency relation.
// It is built once and read-only afterwards, so a single instance may be
// shared freely between board states and across goroutines.
type Topology struct {
	valid     [Size * Size]bool
	cells     []Coordinate
	neighbors [Size * Size][]Coordinate
}

// NewTopology builds the board topology from the base layout.
func NewTopology() *Topology {
	tp := &Topology{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if baseLayout[y][x] == 0 {
				continue
			}
			c := Coordinate{X: x, Y: y}
			tp.valid[c.ToIndex(Size)] = true
			tp.cells = append(tp.cells, c)
		}
	}
	for _, c := range tp.cells {
		for _, n := range c.ValidNeighbors(Size, Size) {
			if tp.valid[n.ToIndex(Size)] {
				idx := c.ToIndex(Size)
				tp.neighbors[idx] = append(tp.neighbors[idx], n)
			}
		}
	}
	return tp
}

// Contains reports whether c is a valid board cell.
func (tp *Topology) Contains(c Coordinate) bool {
	return c.IsValid(Size, Size) && tp.valid[c.ToIndex(Size)]
}

// Cells returns every valid cell in row-major order. Callers must not
// modify the returned slice.
func (tp *Topology) Cells() []Coordinate {
	return tp.cells
}

// Neighbors returns the valid cells adjacent to c, or nil if c is not a
// board cell. The relation is symmetric and never contains c itself.
// Callers must not modify the returned slice.
func (tp *Topology) Neighbors(c Coordinate) []Coordinate {
	if !c.IsValid(Size, Size) {
		return nil
	}
	return tp.neighbors[c.ToIndex(Size)]
}

// NumCells returns the number of valid cells.
func (tp *Topology) NumCells() int {
	return len(tp.cells)
}

// initialOwner returns the starting color for a valid cell.
func initialOwner(c Coordinate) int {
	if baseLayout[c.Y][c.X] > 0 {
		return 0
	}
	return 1
}
