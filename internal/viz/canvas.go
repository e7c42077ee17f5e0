package viz

import (
	"math"
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

// Ink selects the colour a cell is drawn with.
type Ink uint8

const (
	InkNone Ink = iota
	InkGround
	InkBox
	InkForce
	InkDisplacement
	InkArc
	InkParticle
	InkLabel
)

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Inks          [][]Ink
	Pen           Ink
	text          [][]bool
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Inks:   make([][]Ink, h),
		text:   make([][]bool, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Inks[i] = make([]Ink, w)
		c.text[i] = make([]bool, w)
	}
	c.Clear()
	return c
}

// SubWidth and SubHeight give the canvas size in sub-pixels.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height || c.text[row][col] {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if c.Pen != InkNone {
		c.Inks[row][col] = c.Pen
	}
}

// IsText reports whether the cell at (col, row) holds a character written by PutText.
func (c *Canvas) IsText(col, row int) bool {
	if row < 0 || col < 0 || row >= c.Height || col >= c.Width {
		return false
	}
	return c.text[row][col]
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Inks[i][j] = InkNone
			c.text[i][j] = false
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.dashed(x0, y0, x1, y1, 0, 0)
}

// DrawDashed draws a line with on/off runs measured in sub-pixels.
func (c *Canvas) DrawDashed(x0, y0, x1, y1, on, off int) {
	c.dashed(x0, y0, x1, y1, on, off)
}

func (c *Canvas) dashed(x0, y0, x1, y1, on, off int) {
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

	for n := 0; ; n++ {
		if on <= 0 || n%(on+off) < on {
			c.Set(x0, y0)
		}
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

// DrawPolyline connects consecutive points.
func (c *Canvas) DrawPolyline(xs, ys []int) {
	for i := 1; i < len(xs) && i < len(ys); i++ {
		c.DrawLine(xs[i-1], ys[i-1], xs[i], ys[i])
	}
}

func (c *Canvas) DrawRect(x, y, w, h int) {
	c.DrawLine(x, y, x+w, y)
	c.DrawLine(x+w, y, x+w, y+h)
	c.DrawLine(x+w, y+h, x, y+h)
	c.DrawLine(x, y+h, x, y)
}

// FillRect sets every sub-pixel of the rectangle, edges included.
func (c *Canvas) FillRect(x, y, w, h int) {
	for j := y; j <= y+h; j++ {
		for i := x; i <= x+w; i++ {
			c.Set(i, j)
		}
	}
}

// DrawCircle plots a filled disc of radius r.
func (c *Canvas) DrawCircle(cx, cy int, r float64) {
	ir := int(math.Ceil(r))
	for j := -ir; j <= ir; j++ {
		for i := -ir; i <= ir; i++ {
			if float64(i*i+j*j) <= r*r {
				c.Set(cx+i, cy+j)
			}
		}
	}
}

// PutText writes s at the cell containing sub-pixel (x, y). Text cells are not drawn over.
func (c *Canvas) PutText(x, y int, s string) {
	if y < 0 {
		return
	}
	row := y / 4
	if row >= c.Height {
		return
	}
	col := x / 2
	for _, r := range s {
		if col >= c.Width {
			break
		}
		if col >= 0 {
			c.Grid[row][col] = r
			c.Inks[row][col] = c.Pen
			c.text[row][col] = true
		}
		col++
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colours runs of cells by ink.
func (c *Canvas) Render(styles map[Ink]lipgloss.Style) string {
	var b strings.Builder
	for y, row := range c.Grid {
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && c.Inks[y][x] == c.Inks[y][start] {
				continue
			}
			run := string(row[start:x])
			if st, ok := styles[c.Inks[y][start]]; ok {
				run = st.Render(run)
			}
			b.WriteString(run)
			start = x
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
