package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Each board cell renders as two terminal columns so the field looks square.
const cellWidth = 2

// shapeStyles maps each tetromino to its traditional color.
var shapeStyles = map[tetris.Shape]lipgloss.Style{
	tetris.ShapeI: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),  // cyan
	tetris.ShapeO: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),  // yellow
	tetris.ShapeT: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),  // magenta
	tetris.ShapeS: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // green
	tetris.ShapeZ: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // red
	tetris.ShapeJ: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),  // blue
	tetris.ShapeL: lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))

	overlayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("229")).
			Padding(0, 2)
)

// renderGame draws the full frame: board with the falling piece, a side panel
// with score and preview, and an overlay when paused or over.
func renderGame(g tetris.Game, highScore, width, height int) string {
	frame := lipgloss.JoinHorizontal(
		lipgloss.Top,
		boardStyle.Render(renderBoard(g)),
		" ",
		renderSidePanel(g, highScore),
	)

	if overlay := renderOverlay(g); overlay != "" {
		frame = lipgloss.JoinVertical(lipgloss.Center, frame, overlay)
	}

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, frame)
	}
	return frame
}

// renderBoard draws the locked grid with the active piece stamped on top.
func renderBoard(g tetris.Game) string {
	board := g.Board()

	// Active piece cells, looked up per coordinate during the sweep.
	piece := g.ActivePiece()
	active := make(map[tetris.Position]tetris.Shape, 4)
	if g.Phase() != tetris.PhaseOver {
		for _, b := range piece.Blocks() {
			active[b] = piece.Shape
		}
	}

	var sb strings.Builder
	sb.Grow(board.Width() * board.Height() * cellWidth * 2)

	for y := 0; y < board.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < board.Width(); x++ {
			if shape, ok := active[tetris.Position{X: x, Y: y}]; ok {
				sb.WriteString(shapeStyles[shape].Render("██"))
				continue
			}
			cell, _ := board.Get(tetris.Position{X: x, Y: y})
			if cell.Filled {
				sb.WriteString(shapeStyles[cell.Shape].Render("██"))
			} else {
				sb.WriteString(emptyStyle.Render(" ·"))
			}
		}
	}

	return sb.String()
}

// renderSidePanel draws score, level, lines, high score, the next-piece
// preview, and the key hints.
func renderSidePanel(g tetris.Game, highScore int) string {
	score := g.Score()

	var sb strings.Builder
	sb.WriteString(labelStyle.Render("score"))
	sb.WriteString("\n")
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%d", score.Score)))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("level "))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%d", score.Level)))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("lines "))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%d", score.LinesCleared)))
	if highScore > 0 {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render("best  "))
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%d", highScore)))
	}
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("next"))
	sb.WriteString("\n")
	sb.WriteString(renderPreview(g.NextShape()))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("←→ move  ↑ rotate\n↓ soft  ␣ drop\np pause  q quit"))

	return panelStyle.Render(sb.String())
}

// renderPreview draws the next shape inside its bounding box.
func renderPreview(shape tetris.Shape) string {
	n := shape.BoxSize()
	occupied := make(map[tetris.Position]bool, 4)
	for _, b := range shape.Blocks(tetris.R0) {
		occupied[b] = true
	}

	var sb strings.Builder
	for y := 0; y < n; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < n; x++ {
			if occupied[tetris.Position{X: x, Y: y}] {
				sb.WriteString(shapeStyles[shape].Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
	}
	return sb.String()
}

// renderOverlay returns the paused or game-over banner, or "" while playing.
func renderOverlay(g tetris.Game) string {
	switch g.Phase() {
	case tetris.PhasePaused:
		return overlayStyle.Render("PAUSED - p to resume")
	case tetris.PhaseOver:
		return overlayStyle.Render(fmt.Sprintf("GAME OVER - %d\nr restart  q quit", g.Score().Score))
	}
	return ""
}

// centerText centers a single line of text within the given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
