package seedpaint

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// OpKind identifies a Surface call captured by a Recorder.
type OpKind uint8

const (
	OpFillColor OpKind = iota
	OpStrokeColor
	OpLineWidth
	OpGlobalAlpha
	OpLineCap
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpStroke
	OpFillRect
)

var opNames = [...]string{
	OpFillColor:   "fillColor",
	OpStrokeColor: "strokeColor",
	OpLineWidth:   "lineWidth",
	OpGlobalAlpha: "globalAlpha",
	OpLineCap:     "lineCap",
	OpBeginPath:   "beginPath",
	OpMoveTo:      "moveTo",
	OpLineTo:      "lineTo",
	OpStroke:      "stroke",
	OpFillRect:    "fillRect",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "op?"
}

// Op is one recorded Surface call. Args holds the numeric arguments in call
// order (a color is stored as R, G, B, A; a line cap as its ordinal).
type Op struct {
	Kind OpKind
	Args [4]float64
}

// StrokeCall is a Stroke with the style that was in effect when it was issued.
type StrokeCall struct {
	Path  [][]Vec2
	Color Color
	Width float64
	Alpha float64
	Cap   LineCap
}

// Bounds returns the axis-aligned box around every point of the path,
// ignoring line width.
func (s StrokeCall) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sp := range s.Path {
		for _, p := range sp {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// FillCall is a FillRect with the style that was in effect when it was issued.
type FillCall struct {
	Rect  Rect
	Color Color
	Alpha float64
}

// Recorder is a Surface that draws nothing and records every call in order,
// along with a running xxhash digest of the call stream. It is the reference
// surface for verifying that two generations are identical.
type Recorder struct {
	w, h int

	ops     []Op
	strokes []StrokeCall
	fills   []FillCall
	digest  *xxhash.Digest
	buf     [1 + 4*8]byte

	fill, stroke Color
	lineWidth    float64
	alpha        float64
	lineCap      LineCap
	path         pathState
}

// NewRecorder creates a recording surface of the given size.
func NewRecorder(w, h int) *Recorder {
	r := &Recorder{w: w, h: h, digest: xxhash.New()}
	r.Reset()
	return r
}

// Width returns the surface width in pixels.
func (r *Recorder) Width() int { return r.w }

// Height returns the surface height in pixels.
func (r *Recorder) Height() int { return r.h }

// Reset forgets every recorded call and restores the initial style state.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.strokes = r.strokes[:0]
	r.fills = r.fills[:0]
	r.digest.Reset()
	r.fill, r.stroke = ColorBlack, ColorBlack
	r.lineWidth = 1
	r.alpha = 1
	r.lineCap = LineCapButt
	r.path.begin()
}

// Digest returns the xxhash of every call recorded since the last Reset.
func (r *Recorder) Digest() uint64 {
	return r.digest.Sum64()
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []Op { return r.ops }

// Strokes returns every Stroke call with its resolved style.
func (r *Recorder) Strokes() []StrokeCall { return r.strokes }

// Fills returns every FillRect call with its resolved style.
func (r *Recorder) Fills() []FillCall { return r.fills }

func (r *Recorder) record(kind OpKind, args ...float64) {
	op := Op{Kind: kind}
	copy(op.Args[:], args)
	r.ops = append(r.ops, op)

	r.buf[0] = byte(kind)
	for i, a := range op.Args {
		binary.LittleEndian.PutUint64(r.buf[1+i*8:], math.Float64bits(a))
	}
	_, _ = r.digest.Write(r.buf[:])
}

func (r *Recorder) SetFillColor(c Color) {
	r.fill = c
	r.record(OpFillColor, c.R, c.G, c.B, c.A)
}

func (r *Recorder) SetStrokeColor(c Color) {
	r.stroke = c
	r.record(OpStrokeColor, c.R, c.G, c.B, c.A)
}

func (r *Recorder) SetLineWidth(w float64) {
	r.lineWidth = w
	r.record(OpLineWidth, w)
}

func (r *Recorder) SetGlobalAlpha(a float64) {
	r.alpha = a
	r.record(OpGlobalAlpha, a)
}

func (r *Recorder) SetLineCap(c LineCap) {
	r.lineCap = c
	r.record(OpLineCap, float64(c))
}

func (r *Recorder) BeginPath() {
	r.path.begin()
	r.record(OpBeginPath)
}

func (r *Recorder) MoveTo(x, y float64) {
	r.path.moveTo(x, y)
	r.record(OpMoveTo, x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.path.lineTo(x, y)
	r.record(OpLineTo, x, y)
}

func (r *Recorder) Stroke() {
	path := make([][]Vec2, len(r.path.subpaths))
	for i, sp := range r.path.subpaths {
		path[i] = append([]Vec2(nil), sp...)
	}
	r.strokes = append(r.strokes, StrokeCall{
		Path:  path,
		Color: r.stroke,
		Width: r.lineWidth,
		Alpha: r.alpha,
		Cap:   r.lineCap,
	})
	r.record(OpStroke)
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.fills = append(r.fills, FillCall{
		Rect:  Rect{X: x, Y: y, Width: w, Height: h},
		Color: r.fill,
		Alpha: r.alpha,
	})
	r.record(OpFillRect, x, y, w, h)
}
