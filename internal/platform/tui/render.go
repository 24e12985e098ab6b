package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// HUDRows is the number of terminal rows below the grid: the status line
// and the key help line.
const HUDRows = 2

// colorCodes maps core.Color to terminal palette codes.
// ColorDefault has no entry and leaves the terminal color alone.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

// cellStyle returns the lipgloss style for a foreground/background pair.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := colorCodes[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colorCodes[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// Theme controls how frames are drawn.
type Theme struct {
	Alive       rune
	Dead        rune
	AliveColor  core.Color
	CursorColor core.Color
	StatusColor core.Color
}

// DefaultTheme matches the default display configuration.
func DefaultTheme() Theme {
	return Theme{
		Alive:       '#',
		Dead:        ' ',
		AliveColor:  core.ColorDefault,
		CursorColor: core.ColorBrightGreen,
		StatusColor: core.ColorBlue,
	}
}

// NewTheme builds a theme from display settings.
func NewTheme(d config.DisplayConfig) (Theme, error) {
	t := Theme{}

	alive := []rune(d.Alive)
	dead := []rune(d.Dead)
	if len(alive) != 1 || len(dead) != 1 {
		return Theme{}, fmt.Errorf("tui: glyphs must be single characters, got %q and %q", d.Alive, d.Dead)
	}
	t.Alive, t.Dead = alive[0], dead[0]

	colors := []struct {
		name string
		dst  *core.Color
	}{
		{d.AliveColor, &t.AliveColor},
		{d.CursorColor, &t.CursorColor},
		{d.StatusColor, &t.StatusColor},
	}
	for _, c := range colors {
		parsed, ok := core.ParseColor(c.name)
		if !ok {
			return Theme{}, fmt.Errorf("tui: unknown color %q", c.name)
		}
		*c.dst = parsed
	}
	return t, nil
}

// DrawFrame draws the grid of f onto s, resizing s to the grid first.
// While paused the cell under the cursor gets the cursor background.
func DrawFrame(s *core.Screen, f life.Frame, t Theme) {
	if s.Width() != f.Width || s.Height() != f.Height {
		s.Resize(f.Width, f.Height)
	}

	for row := range f.Height {
		for col := range f.Width {
			cell := core.Cell{Rune: t.Dead}
			if f.Cells.Get(row, col) {
				cell = core.Cell{Rune: t.Alive, Fg: t.AliveColor}
			}
			s.SetCell(col, row, cell)
		}
	}

	if f.ShowCursor() {
		cell := s.GetCell(f.Cursor.Col, f.Cursor.Row)
		cell.Bg = t.CursorColor
		s.SetCell(f.Cursor.Col, f.Cursor.Row, cell)
	}
}

// StatusText is the unstyled status line for f.
func StatusText(f life.Frame) string {
	text := fmt.Sprintf("update %.2fms | render %.2fms | %.0f fps | %.0f ups | rate %d/s | gen %d | pop %d",
		millis(f.LastUpdate), millis(f.LastRender),
		f.FPS, f.UPS, f.Rate, f.Generation, f.Population,
	)
	if f.Paused {
		text += " | PAUSED"
	}
	return text
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// StatusLine renders the status line for f, cut to width columns.
// A width of zero or less leaves the line whole.
func StatusLine(f life.Frame, t Theme, width int) string {
	return textLine(StatusText(f), t.StatusColor, width)
}

// textLine draws text on a single-row screen so that it is cut by
// character rather than by byte.
func textLine(text string, fg core.Color, width int) string {
	if width <= 0 {
		width = utf8.RuneCountInString(text)
	}
	s := core.NewScreen(width, 1)
	s.DrawText(0, 0, text, fg)
	return RenderScreen(s)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
