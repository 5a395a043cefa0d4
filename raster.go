package seedpaint

import (
	"image"
	"io"

	"github.com/fogleman/gg"
)

// Raster is a Surface rendered on the CPU by gg. It needs no graphics device,
// so it is the surface used for headless export. Strokes are rasterized as
// the union of their segments, the way a canvas does.
type Raster struct {
	dc *gg.Context

	fill, stroke Color
	lineWidth    float64
	alpha        float64
	lineCap      LineCap
	path         pathState
}

// NewRaster creates a transparent raster of the given size.
func NewRaster(w, h int) *Raster {
	r := &Raster{dc: gg.NewContext(w, h)}
	r.resetStyle()
	return r
}

func (r *Raster) resetStyle() {
	r.fill, r.stroke = ColorBlack, ColorBlack
	r.lineWidth = 1
	r.alpha = 1
	r.lineCap = LineCapButt
	r.path.begin()
}

// Reset clears every pixel to transparent black and restores the initial
// style state.
func (r *Raster) Reset() {
	r.dc.ClearPath()
	r.dc.SetRGBA(0, 0, 0, 0)
	r.dc.Clear()
	r.resetStyle()
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.dc.Width() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.dc.Height() }

func (r *Raster) SetFillColor(c Color)     { r.fill = c }
func (r *Raster) SetStrokeColor(c Color)   { r.stroke = c }
func (r *Raster) SetLineWidth(w float64)   { r.lineWidth = w }
func (r *Raster) SetGlobalAlpha(a float64) { r.alpha = a }
func (r *Raster) SetLineCap(c LineCap)     { r.lineCap = c }
func (r *Raster) BeginPath()               { r.path.begin() }
func (r *Raster) MoveTo(x, y float64)      { r.path.moveTo(x, y) }
func (r *Raster) LineTo(x, y float64)      { r.path.lineTo(x, y) }

func (r *Raster) Stroke() {
	if r.path.empty() || r.lineWidth <= 0 {
		return
	}
	r.dc.ClearPath()
	for _, sp := range r.path.subpaths {
		if len(sp) < 2 {
			continue
		}
		r.dc.MoveTo(sp[0].X, sp[0].Y)
		for _, p := range sp[1:] {
			r.dc.LineTo(p.X, p.Y)
		}
	}
	r.dc.SetRGBA(r.stroke.R, r.stroke.G, r.stroke.B, clamp01(r.stroke.A*r.alpha))
	r.dc.SetLineWidth(r.lineWidth)
	r.dc.SetLineCap(ggLineCap(r.lineCap))
	r.dc.Stroke()
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetRGBA(r.fill.R, r.fill.G, r.fill.B, clamp01(r.fill.A*r.alpha))
	r.dc.Fill()
}

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the rendered pixels as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func ggLineCap(c LineCap) gg.LineCap {
	switch c {
	case LineCapRound:
		return gg.LineCapRound
	case LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}
