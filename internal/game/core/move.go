package core

import "fmt"

// Move is an ordered source-to-destination pair of adjacent cells. The tower
// on From is lifted onto the tower on To. Moves compare by value.
type Move struct {
	From Coordinate
	To   Coordinate
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// Validate checks whether m is legal for playerID on g. It returns nil for a
// legal move and an error wrapping ErrIllegalMove (or ErrInvalidPlayer)
// otherwise. The grid is not modified.
func (m Move) Validate(g *Grid, playerID int) error {
	if !IsValidPlayer(playerID) {
		return ErrInvalidPlayer
	}
	if !g.topo.Contains(m.From) || !g.topo.Contains(m.To) {
		return ErrInvalidCoordinates
	}
	if m.From.Equal(m.To) {
		return ErrMoveToSelf
	}
	if !m.From.IsAdjacentTo(m.To) {
		return ErrNotAdjacent
	}

	src, ok := g.At(m.From)
	if !ok {
		return ErrEmptySource
	}
	if src.Owner != playerID {
		return ErrNotOwned
	}

	dst, ok := g.At(m.To)
	if !ok {
		return ErrEmptyDestination
	}
	if src.Height+dst.Height > MaxHeight {
		return ErrStackTooTall
	}

	return nil
}
