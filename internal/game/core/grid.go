package core

// Grid holds per-cell tower occupancy for the Avalam board.
//
// Towers live in a fixed-size array, so Clone is a plain value copy and two
// grids never share mutable backing storage. The topology pointer is shared;
// it is immutable after construction. All writes go through the unexported
// mutators, reachable only via ApplyMove, which keeps the height and
// occupancy invariants unbreakable from outside the package.
type Grid struct {
	topo   *Topology
	towers [Size * Size]Tower
}

// NewGrid returns the starting position: one single-piece tower on every
// valid cell, colors checkerboarded per the base layout.
func NewGrid(tp *Topology) *Grid {
	g := &Grid{topo: tp}
	for _, c := range tp.Cells() {
		g.towers[c.ToIndex(Size)] = Tower{Height: 1, Owner: initialOwner(c)}
	}
	return g
}

// At returns the tower on cell c. ok is false when the cell is empty,
// off-board, or not part of the topology.
func (g *Grid) At(c Coordinate) (Tower, bool) {
	if !g.topo.Contains(c) {
		return Tower{}, false
	}
	t := g.towers[c.ToIndex(Size)]
	return t, !t.IsEmpty()
}

// Topology returns the shared, read-only board topology.
func (g *Grid) Topology() *Topology {
	return g.topo
}

// Clone returns a fully independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := *g
	return &cp
}

// TowerCount returns the number of standing towers.
func (g *Grid) TowerCount() int {
	n := 0
	for _, t := range g.towers {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}

// PieceCount returns the total pieces still on the board.
func (g *Grid) PieceCount() int {
	n := 0
	for _, t := range g.towers {
		n += t.Height
	}
	return n
}

func (g *Grid) place(c Coordinate, t Tower) {
	g.towers[c.ToIndex(Size)] = t
}

func (g *Grid) clear(c Coordinate) {
	g.towers[c.ToIndex(Size)] = Tower{}
}
