package seedpaint

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- White pixel singleton (no sync.Once: ebiten images belong to the game goroutine) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image, the
// source texture of every untextured triangle a Canvas draws.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Canvas is a Surface backed by a persistent offscreen *ebiten.Image. Strokes
// and fills are triangulated on the CPU and submitted with DrawTriangles, so a
// Canvas can be drawn at any time; reading its pixels back requires a running
// game loop (see Run).
type Canvas struct {
	image *ebiten.Image
	w, h  int

	fill, stroke Color
	lineWidth    float64
	alpha        float64
	lineCap      LineCap
	path         pathState

	vs []ebiten.Vertex
	is []uint16
}

// NewCanvas creates a canvas of the given size in its initial style state.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
	c.resetStyle()
	return c
}

func (c *Canvas) resetStyle() {
	c.fill, c.stroke = ColorBlack, ColorBlack
	c.lineWidth = 1
	c.alpha = 1
	c.lineCap = LineCapButt
	c.path.begin()
}

// Image returns the underlying *ebiten.Image for direct drawing or display.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Reset fills the canvas with transparent black and restores the initial
// style state.
func (c *Canvas) Reset() {
	c.image.Clear()
	c.resetStyle()
}

// Resize deallocates the old image and creates a new one at the given
// dimensions. The style state is reset.
func (c *Canvas) Resize(width, height int) {
	if c.image != nil {
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(width, height)
	c.w = width
	c.h = height
	c.resetStyle()
}

// Dispose deallocates the underlying image. The Canvas should not be used
// after calling Dispose.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}

func (c *Canvas) SetFillColor(col Color)   { c.fill = col }
func (c *Canvas) SetStrokeColor(col Color) { c.stroke = col }
func (c *Canvas) SetLineWidth(w float64)   { c.lineWidth = w }
func (c *Canvas) SetGlobalAlpha(a float64) { c.alpha = a }
func (c *Canvas) SetLineCap(lc LineCap)    { c.lineCap = lc }
func (c *Canvas) BeginPath()               { c.path.begin() }
func (c *Canvas) MoveTo(x, y float64)      { c.path.moveTo(x, y) }
func (c *Canvas) LineTo(x, y float64)      { c.path.lineTo(x, y) }

// Stroke triangulates every segment of the current path and draws it. Joins
// between consecutive segments are not filled; segments of one path that
// overlap blend twice.
func (c *Canvas) Stroke() {
	if c.path.empty() || c.lineWidth <= 0 {
		return
	}
	col := newVertexColor(c.stroke, c.alpha)
	c.vs, c.is = c.vs[:0], c.is[:0]
	for _, sp := range c.path.subpaths {
		for i := 1; i < len(sp); i++ {
			if len(c.vs) >= maxBatchVertices {
				c.flush()
			}
			c.vs, c.is = appendSegment(c.vs, c.is, sp[i-1], sp[i], c.lineWidth, c.lineCap, col)
		}
	}
	c.flush()
}

// FillRect fills the rectangle with the fill color at the global alpha.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.vs, c.is = c.vs[:0], c.is[:0]
	c.vs, c.is = appendRect(c.vs, c.is, x, y, w, h, newVertexColor(c.fill, c.alpha))
	c.flush()
}

// flush submits the pending triangles and empties the batch.
func (c *Canvas) flush() {
	if len(c.is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.image.DrawTriangles(c.vs, c.is, ensureWhitePixel(), op)
	c.vs, c.is = c.vs[:0], c.is[:0]
}

// Snapshot reads the canvas back as a straight-alpha image. It must be called
// from within a running game loop.
func (c *Canvas) Snapshot() *image.NRGBA {
	return readNRGBA(c.image)
}
