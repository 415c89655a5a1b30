package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Ink identifies the color a cell is drawn with. The palette lives in Theme.
type Ink uint8

const (
	InkNone Ink = iota
	InkPart     // + part index
	InkHover    = InkPart + 8
	InkSelected = InkHover + 1
	InkLabel    = InkSelected + 1
)

// PartInk is the resting ink for the part at arena index i.
func PartInk(i int) Ink { return InkPart + Ink(i) }

// Canvas is a braille pixel grid with one ink per cell. Text written with
// [Canvas.Text] replaces the braille glyphs it covers.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Ink           [][]Ink
	Pen           Ink
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Ink:    make([][]Ink, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]Ink, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// PixelSize is the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Set lights the sub-pixel (x, y) with the current pen.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	if !isBraille(c.Grid[row][col]) {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Ink[row][col] = c.Pen
}

func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height || !isBraille(c.Grid[row][col]) {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Ink[i][j] = InkNone
		}
	}
	c.Pen = InkNone
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Text writes s starting at cell (col, row), clipped to the canvas.
func (c *Canvas) Text(col, row int, s string, ink Ink) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= c.Width {
			return
		}
		if col >= 0 {
			c.Grid[row][col] = r
			c.Ink[row][col] = ink
		}
		col++
	}
}

// At returns the rune and ink at cell (col, row).
func (c *Canvas) At(col, row int) (rune, Ink) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return 0, InkNone
	}
	return c.Grid[row][col], c.Ink[row][col]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colors each run of equal ink with style(ink).
func (c *Canvas) Render(style func(Ink) lipgloss.Style) string {
	var b strings.Builder
	for r, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Ink[r][j] == c.Ink[r][start] {
				continue
			}
			b.WriteString(style(c.Ink[r][start]).Render(string(row[start:j])))
			start = j
		}
		if r < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func isBraille(r rune) bool { return r >= blank && r <= blank+0xff }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
