package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiltgame/internal/board"
)

// ledColors follows the LED colours of the Discovery board (LD3..LD10).
var ledColors = [board.LEDCount]lipgloss.Color{
	"9",   // LD3 red
	"12",  // LD4 blue
	"208", // LD5 orange
	"10",  // LD6 green
	"10",  // LD7 green
	"208", // LD8 orange
	"12",  // LD9 blue
	"9",   // LD10 red
}

// compassGrid places LED indices on a 3x3 grid; -1 is the sensor in the middle.
var compassGrid = [3][3]int{
	{1, 0, 2},
	{3, -1, 4},
	{5, 7, 6},
}

var (
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sensorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	targetStyle = lipgloss.NewStyle().Bold(true)
	boardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderLED draws one LED cell. The target LED is bracketed.
func renderLED(led int, on bool, target int) string {
	glyph := offStyle.Render("○")
	if on {
		glyph = lipgloss.NewStyle().Foreground(ledColors[led]).Render("●")
	}
	if led == target {
		return targetStyle.Render("[") + glyph + targetStyle.Render("]")
	}
	return " " + glyph + " "
}

// renderBoard draws the LED compass inside a border.
// target may be out of range, in which case nothing is bracketed.
func renderBoard(frame [board.LEDCount]bool, target int) string {
	rows := make([]string, 0, len(compassGrid))
	for _, row := range compassGrid {
		cells := make([]string, 0, len(row))
		for _, led := range row {
			if led < 0 {
				cells = append(cells, " "+sensorStyle.Render("◎")+" ")
				continue
			}
			cells = append(cells, renderLED(led, frame[led], target))
		}
		rows = append(rows, strings.Join(cells, "  "))
	}
	return boardStyle.Render(strings.Join(rows, "\n\n"))
}

// ledLabel names an LED by its board silkscreen and direction, e.g. "LD5 (NE)".
func ledLabel(led int) string {
	if led < 0 || led >= board.LEDCount {
		return fmt.Sprintf("LED %d (none)", led)
	}
	return fmt.Sprintf("LD%d (%s)", led+3, board.DirectionForLED(led))
}

// renderOutcome returns the banner for a finished game.
func renderOutcome(o board.Outcome) string {
	if o == board.OutcomeWin {
		return winStyle.Render("YOU WIN!")
	}
	return loseStyle.Render("TIME'S UP")
}
