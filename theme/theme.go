// Package theme maps pieces to the symbols a board view draws for them.
package theme

import (
	"strings"

	"chinesecheckers/game"

	"golang.org/x/exp/slices"
)

// Theme looks up the symbol of a piece on the board, its smaller variant used in player lists,
// and the symbol of a highlighted destination.
type Theme interface {
	Glyph(piece game.Piece) string
	MiniGlyph(piece game.Piece) string
	MarkerGlyph() string
}

// Classic draws round stones, filled or hollow, plus shapes for the side corners.
type Classic struct{}

var classicGlyphs = map[game.Piece]string{
	game.None:   "·",
	game.White:  "○",
	game.Black:  "●",
	game.Yellow: "◆",
	game.Blue:   "■",
	game.Green:  "▲",
	game.Red:    "★",
}

var classicMini = map[game.Piece]string{
	game.None:   ".",
	game.White:  "∘",
	game.Black:  "•",
	game.Yellow: "⬩",
	game.Blue:   "▪",
	game.Green:  "▴",
	game.Red:    "⋆",
}

func (Classic) Glyph(piece game.Piece) string {
	if g, ok := classicGlyphs[piece]; ok {
		return g
	}
	return "?"
}

func (Classic) MiniGlyph(piece game.Piece) string {
	if g, ok := classicMini[piece]; ok {
		return g
	}
	return "?"
}

func (Classic) MarkerGlyph() string { return "◎" }

// Letters draws the initial of each color, upper case on the board and lower case in lists.
// Blue is U so it does not clash with black.
type Letters struct{}

var letters = map[game.Piece]string{
	game.None:   ".",
	game.White:  "W",
	game.Black:  "B",
	game.Yellow: "Y",
	game.Blue:   "U",
	game.Green:  "G",
	game.Red:    "R",
}

func (Letters) Glyph(piece game.Piece) string {
	if g, ok := letters[piece]; ok {
		return g
	}
	return "?"
}

func (l Letters) MiniGlyph(piece game.Piece) string {
	return strings.ToLower(l.Glyph(piece))
}

func (Letters) MarkerGlyph() string { return "*" }

// ByName returns the theme called name, Letters when the name is unknown.
func ByName(name string) Theme {
	if strings.EqualFold(name, "classic") {
		return Classic{}
	}
	return Letters{}
}

// Render draws the board one grid row per line. Cells that are not on the board are blank and
// marked cells show the marker instead of their piece.
func Render(state *game.State, theme Theme, marked []game.Coordinates) string {
	cells := state.Board().Cells()
	if len(cells) == 0 {
		return ""
	}
	rows := map[int][]game.Coordinates{}
	minCol, maxCol := cells[0].Col, cells[0].Col
	for _, c := range cells {
		rows[c.Row] = append(rows[c.Row], c)
		minCol, maxCol = min(minCol, c.Col), max(maxCol, c.Col)
	}
	rowKeys := make([]int, 0, len(rows))
	for r := range rows {
		rowKeys = append(rowKeys, r)
	}
	slices.Sort(rowKeys)

	var b strings.Builder
	for _, r := range rowKeys {
		line := make([]string, maxCol-minCol+1)
		for i := range line {
			line[i] = " "
		}
		for _, c := range rows[r] {
			glyph := theme.Glyph(state.PieceAt(c))
			if slices.Contains(marked, c) {
				glyph = theme.MarkerGlyph()
			}
			line[c.Col-minCol] = glyph
		}
		b.WriteString(strings.TrimRight(strings.Join(line, ""), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// Legend lists the players in turn order with their mini glyphs, the current one first marked.
func Legend(state *game.State, theme Theme) string {
	var b strings.Builder
	current := state.CurrentPlayer().Piece
	for i, p := range state.Players() {
		if i > 0 {
			b.WriteString(" ")
		}
		if p.Piece == current {
			b.WriteString(">")
		}
		b.WriteString(theme.MiniGlyph(p.Piece))
		b.WriteString(p.Piece.String())
	}
	return b.String()
}
