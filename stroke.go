package seedpaint

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// roundCapSegments is the number of fan triangles in a round cap.
const roundCapSegments = 16

// maxBatchVertices keeps a triangle batch addressable by uint16 indices.
const maxBatchVertices = math.MaxUint16 - 2*(roundCapSegments+2) - 4

// vertexColor is a straight-alpha color written into every vertex of a batch.
type vertexColor struct {
	r, g, b, a float32
}

func newVertexColor(c Color, alpha float64) vertexColor {
	return vertexColor{
		r: float32(clamp01(c.R)),
		g: float32(clamp01(c.G)),
		b: float32(clamp01(c.B)),
		a: float32(clamp01(c.A * alpha)),
	}
}

func appendVertex(vs []ebiten.Vertex, x, y float64, c vertexColor) []ebiten.Vertex {
	return append(vs, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: c.r,
		ColorG: c.g,
		ColorB: c.b,
		ColorA: c.a,
	})
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// appendSegment appends the triangles of the segment a→b stroked with the
// given width and cap. The body quad and the caps share edges and never
// overlap, so a translucent segment blends uniformly.
func appendSegment(vs []ebiten.Vertex, is []uint16, a, b Vec2, width float64, lineCap LineCap, c vertexColor) ([]ebiten.Vertex, []uint16) {
	hw := width / 2
	if hw <= 0 {
		return vs, is
	}
	nx, ny := perpendicular(a, b)
	// Direction of travel is the perpendicular rotated back by 90 degrees.
	dx, dy := ny, -nx

	if lineCap == LineCapSquare {
		a = Vec2{X: a.X - dx*hw, Y: a.Y - dy*hw}
		b = Vec2{X: b.X + dx*hw, Y: b.Y + dy*hw}
	}

	base := uint16(len(vs))
	vs = appendVertex(vs, a.X+nx*hw, a.Y+ny*hw, c)
	vs = appendVertex(vs, a.X-nx*hw, a.Y-ny*hw, c)
	vs = appendVertex(vs, b.X+nx*hw, b.Y+ny*hw, c)
	vs = appendVertex(vs, b.X-nx*hw, b.Y-ny*hw, c)
	is = append(is, base, base+1, base+2, base+1, base+3, base+2)

	if lineCap == LineCapRound {
		phi := math.Atan2(ny, nx)
		vs, is = appendHalfDisc(vs, is, a, hw, phi, c)
		vs, is = appendHalfDisc(vs, is, b, hw, phi+math.Pi, c)
	}
	return vs, is
}

// appendHalfDisc appends a fan covering the half disc of radius r around
// center, sweeping counterclockwise by pi from angle start.
func appendHalfDisc(vs []ebiten.Vertex, is []uint16, center Vec2, r, start float64, c vertexColor) ([]ebiten.Vertex, []uint16) {
	hub := uint16(len(vs))
	vs = appendVertex(vs, center.X, center.Y, c)
	for k := 0; k <= roundCapSegments; k++ {
		theta := start + math.Pi*float64(k)/roundCapSegments
		vs = appendVertex(vs, center.X+r*math.Cos(theta), center.Y+r*math.Sin(theta), c)
	}
	for k := uint16(0); k < roundCapSegments; k++ {
		is = append(is, hub, hub+1+k, hub+2+k)
	}
	return vs, is
}

// appendRect appends two triangles covering the rectangle. Negative sizes
// extend left or up from (x, y), as a canvas does.
func appendRect(vs []ebiten.Vertex, is []uint16, x, y, w, h float64, c vertexColor) ([]ebiten.Vertex, []uint16) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	base := uint16(len(vs))
	vs = appendVertex(vs, x, y, c)
	vs = appendVertex(vs, x+w, y, c)
	vs = appendVertex(vs, x, y+h, c)
	vs = appendVertex(vs, x+w, y+h, c)
	is = append(is, base, base+1, base+2, base+1, base+3, base+2)
	return vs, is
}
