package figure

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// halfBlock paints the top pixel with the foreground and the bottom one
// with the background, giving two square-ish pixels per terminal cell.
const halfBlock = "▀"

// TerminalRows returns the number of cell rows that keep the figure's
// aspect ratio at the given width in columns.
func (f *Figure) TerminalRows(cols int) int {
	rows := cols * f.Height / f.Width / 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Terminal renders the figure and downsamples it into cols x rows cells.
func (f *Figure) Terminal(cols, rows int) string {
	return RenderTerminal(f.Render(), cols, rows)
}

// RenderTerminal downsamples img into a block of colored half-block cells.
func RenderTerminal(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := small.RGBAAt(col, row*2)
			bottom := small.RGBAAt(col, row*2+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(Hex(top))).
				Background(lipgloss.Color(Hex(bottom))).
				Render(halfBlock))
		}
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
