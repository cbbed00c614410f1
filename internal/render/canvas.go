package render

import (
	"image"
	"image/color"
)

// Canvas is an in-memory Display backed by RGBA pixel buffers. Drawing goes to
// a back buffer; Present copies it to the front buffer returned by Pixels.
type Canvas struct {
	w, h  int
	back  []byte
	front []byte
	draw  color.RGBA
}

// NewCanvas allocates a w x h canvas.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{w: w, h: h, back: make([]byte, 4*w*h), front: make([]byte, 4*w*h)}
}

// Pixels returns the last presented frame in RGBA order.
func (c *Canvas) Pixels() []byte { return c.front }

// At returns the presented color at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	base := 4 * (y*c.w + x)
	return color.RGBA{R: c.front[base], G: c.front[base+1], B: c.front[base+2], A: c.front[base+3]}
}

// SetDrawColor selects the color used by Clear and FillRect.
func (c *Canvas) SetDrawColor(col color.RGBA) error {
	c.draw = col
	return nil
}

// Clear fills the whole back buffer with the draw color.
func (c *Canvas) Clear() error {
	fillRGBA(c.back, c.draw)
	return nil
}

// FillRect fills r, clipped to the canvas, with the draw color.
func (c *Canvas) FillRect(r image.Rectangle) error {
	r = r.Intersect(image.Rect(0, 0, c.w, c.h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.back[4*(y*c.w+r.Min.X) : 4*(y*c.w+r.Max.X)]
		fillRGBA(row, c.draw)
	}
	return nil
}

// Present publishes the back buffer.
func (c *Canvas) Present() error {
	copy(c.front, c.back)
	return nil
}

// fillRGBA writes col into every pixel of buf.
func fillRGBA(buf []byte, col color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
