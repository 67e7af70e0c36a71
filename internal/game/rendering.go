package game

import (
	"fmt"
	"strings"

	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
)

// This file contains the textual board rendering for demos and logs. It is a
// display-only projection; game logic never reads it.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"
)

var playerColors = []string{ColorRed, ColorYellow}

// Render returns a string representation of the board: tower heights colored
// by owner, a dot for emptied cells, blanks outside the board.
func (s *BoardState) Render() string {
	const EmptySymbol = "·"

	var sb strings.Builder
	sb.Grow((core.Size*12 + 8) * (core.Size + 4))

	// Column headers
	sb.WriteString("   ")
	for x := 0; x < core.Size; x++ {
		sb.WriteString(fmt.Sprintf("%2d", x))
	}
	sb.WriteString("\n")

	for y := 0; y < core.Size; y++ {
		sb.WriteString(fmt.Sprintf("%2d ", y))
		for x := 0; x < core.Size; x++ {
			c := core.NewCoordinate(x, y)
			if !boardTopology().Contains(c) {
				sb.WriteString("  ")
				continue
			}
			t, ok := s.grid.At(c)
			if !ok {
				sb.WriteString(ColorGray + " " + EmptySymbol + ColorReset)
				continue
			}
			sb.WriteString(getPlayerColor(t.Owner))
			sb.WriteString(fmt.Sprintf("%2d", t.Height))
			sb.WriteString(ColorReset)
		}
		sb.WriteString("\n")
	}

	p0, p1 := s.Score()
	sb.WriteString(fmt.Sprintf("\nturn: player %d  score: %s%d%s/%s%d%s  %s=emptied\n",
		s.turn,
		ColorRed, p0, ColorReset,
		ColorYellow, p1, ColorReset,
		EmptySymbol))

	return sb.String()
}

func getPlayerColor(playerID int) string {
	if playerID >= 0 && playerID < len(playerColors) {
		return playerColors[playerID]
	}
	return ColorGray
}
