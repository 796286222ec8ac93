//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a Canvas into a single ebiten image.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewGridPainter allocates a painter for the layout.
func NewGridPainter(l Layout, p Palette) *GridPainter {
	w, h := l.Bounds()
	return &GridPainter{canvas: NewCanvas(l, p), img: ebiten.NewImage(w, h)}
}

// Blit rasterizes cells and draws them at the top-left of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	gp.img.WritePixels(gp.canvas.Paint(cells))
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.canvas.Layout().Bounds() }
