package render

import "image/color"

// Default canvas colors.
var (
	GridColor  = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	DeadColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	AliveColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// Palette holds the colors used to paint a canvas.
type Palette struct {
	Alive, Dead, Grid color.Color
}

// DefaultPalette returns black cells on white with light grey grid lines.
func DefaultPalette() Palette {
	return Palette{Alive: AliveColor, Dead: DeadColor, Grid: GridColor}
}

// Layout maps a Rows x Cols grid onto a pixel canvas where each cell is
// CellSize pixels square and separated from its neighbors by Border pixels of
// grid line.
type Layout struct {
	Rows, Cols       int
	CellSize, Border int
}

func (l Layout) pitch() int { return l.CellSize + l.Border }

// Bounds returns the canvas size in pixels.
func (l Layout) Bounds() (w, h int) {
	return l.pitch()*l.Cols + l.Border, l.pitch()*l.Rows + l.Border
}

// CellAt maps a canvas pixel to a cell. Positions past the last row or column
// clamp to it; positions left of or above the canvas report false.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || l.Rows <= 0 || l.Cols <= 0 {
		return 0, 0, false
	}
	row = min(y/l.pitch(), l.Rows-1)
	col = min(x/l.pitch(), l.Cols-1)
	return row, col, true
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillCanvasRGBA paints grid lines and cells into buf, which must hold
// 4*w*h bytes for the layout's bounds. Cells are 0 (dead) or non-zero (alive).
func fillCanvasRGBA(buf []byte, l Layout, cells []uint8, p Palette) {
	w, _ := l.Bounds()
	grid, on, off := rgba(p.Grid), rgba(p.Alive), rgba(p.Dead)

	for i := 0; i+3 < len(buf); i += 4 {
		copy(buf[i:i+4], grid[:])
	}

	pitch := l.pitch()
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			px := off
			if cells[row*l.Cols+col] != 0 {
				px = on
			}
			x0 := col*pitch + l.Border
			y0 := row*pitch + l.Border
			for y := y0; y < y0+l.CellSize; y++ {
				base := (y*w + x0) * 4
				for x := 0; x < l.CellSize; x++ {
					copy(buf[base+x*4:base+x*4+4], px[:])
				}
			}
		}
	}
}

// Canvas rasterizes cells into an RGBA byte buffer it owns.
type Canvas struct {
	layout  Layout
	palette Palette
	buf     []byte
}

// NewCanvas allocates a canvas for the layout.
func NewCanvas(l Layout, p Palette) *Canvas {
	w, h := l.Bounds()
	return &Canvas{layout: l, palette: p, buf: make([]byte, 4*w*h)}
}

// Layout returns the canvas layout.
func (c *Canvas) Layout() Layout { return c.layout }

// Paint rasterizes cells and returns the pixel buffer. The buffer is reused by
// the next call. Cells of the wrong length leave the buffer unchanged.
func (c *Canvas) Paint(cells []uint8) []byte {
	if len(cells) != c.layout.Rows*c.layout.Cols {
		return c.buf
	}
	fillCanvasRGBA(c.buf, c.layout, cells, c.palette)
	return c.buf
}
