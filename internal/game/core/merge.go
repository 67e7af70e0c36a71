package core

// ApplyMove merges the tower on m.From onto the tower on m.To, in place.
// The source cell is vacated and, because moves only ever target occupied
// cells, can never be occupied again. The merged tower keeps the moving
// tower's owner on top. When the merged height reaches exactly MaxHeight the
// tower is leveled: it is removed from the board and leveled is true, with
// credited naming the player who scores MaxHeight points.
//
// On any validation failure the grid is left untouched and credited is -1.
func ApplyMove(g *Grid, m Move, playerID int) (leveled bool, credited int, err error) {
	if err := m.Validate(g, playerID); err != nil {
		return false, -1, err
	}

	src, _ := g.At(m.From)
	dst, _ := g.At(m.To)
	merged := Tower{Height: src.Height + dst.Height, Owner: src.Owner}

	g.clear(m.From)
	if merged.Height == MaxHeight {
		g.clear(m.To)
		return true, merged.Owner, nil
	}
	g.place(m.To, merged)
	return false, -1, nil
}
