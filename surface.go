package seedpaint

// Surface is the drawing context a generator renders into. It mirrors the
// subset of a 2D canvas context that sketches need: style state, a single
// current path made of straight segments, stroking, and rectangle fills.
//
// Coordinates are in surface pixels. Style setters affect subsequent Stroke
// and FillRect calls only. A new or Reset surface is transparent black with
// black fill and stroke, line width 1, global alpha 1, butt caps, and an
// empty path.
type Surface interface {
	// Width and Height return the fixed surface size in pixels.
	Width() int
	Height() int

	// Reset clears the surface to transparent and restores the initial style
	// state, so that nothing drawn or set before it can affect what follows.
	Reset()

	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetGlobalAlpha(a float64)
	SetLineCap(c LineCap)

	// BeginPath discards the current path.
	BeginPath()
	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)
	// LineTo appends a straight segment to the current subpath. Without a
	// preceding MoveTo it behaves as MoveTo.
	LineTo(x, y float64)
	// Stroke draws the current path with the stroke style. The path is kept.
	Stroke()
	// FillRect fills an axis-aligned rectangle with the fill style.
	FillRect(x, y, w, h float64)
}

// Digester is implemented by surfaces that can summarize every call made on
// them since the last Reset as a single hash. Two generations with equal
// digests issued identical draw calls with identical arguments on a surface
// in the same initial state.
type Digester interface {
	Surface
	Digest() uint64
}

// surfaceRect returns the full bounds of s.
func surfaceRect(s Surface) Rect {
	return Rect{Width: float64(s.Width()), Height: float64(s.Height())}
}

// pathState is the current-path bookkeeping shared by the concrete surfaces.
type pathState struct {
	subpaths [][]Vec2
}

func (p *pathState) begin() {
	p.subpaths = p.subpaths[:0]
}

func (p *pathState) moveTo(x, y float64) {
	p.subpaths = append(p.subpaths, []Vec2{{X: x, Y: y}})
}

func (p *pathState) lineTo(x, y float64) {
	if len(p.subpaths) == 0 {
		p.moveTo(x, y)
		return
	}
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], Vec2{X: x, Y: y})
}

// empty reports whether the path has no segment to stroke.
func (p *pathState) empty() bool {
	for _, sp := range p.subpaths {
		if len(sp) >= 2 {
			return false
		}
	}
	return true
}

// Tee returns a Surface that forwards every call to primary and then to each
// of others, in order. Its size is primary's. The result is a Digester backed
// by the first of the surfaces that is one; with none, Digest returns 0.
func Tee(primary Surface, others ...Surface) Surface {
	t := &tee{all: append([]Surface{primary}, others...)}
	for _, s := range t.all {
		if d, ok := s.(Digester); ok {
			t.digester = d
			break
		}
	}
	return t
}

type tee struct {
	all      []Surface
	digester Digester
}

func (t *tee) Width() int  { return t.all[0].Width() }
func (t *tee) Height() int { return t.all[0].Height() }

func (t *tee) Reset() {
	for _, s := range t.all {
		s.Reset()
	}
}

func (t *tee) Digest() uint64 {
	if t.digester == nil {
		return 0
	}
	return t.digester.Digest()
}

func (t *tee) SetFillColor(c Color) {
	for _, s := range t.all {
		s.SetFillColor(c)
	}
}

func (t *tee) SetStrokeColor(c Color) {
	for _, s := range t.all {
		s.SetStrokeColor(c)
	}
}

func (t *tee) SetLineWidth(w float64) {
	for _, s := range t.all {
		s.SetLineWidth(w)
	}
}

func (t *tee) SetGlobalAlpha(a float64) {
	for _, s := range t.all {
		s.SetGlobalAlpha(a)
	}
}

func (t *tee) SetLineCap(c LineCap) {
	for _, s := range t.all {
		s.SetLineCap(c)
	}
}

func (t *tee) BeginPath() {
	for _, s := range t.all {
		s.BeginPath()
	}
}

func (t *tee) MoveTo(x, y float64) {
	for _, s := range t.all {
		s.MoveTo(x, y)
	}
}

func (t *tee) LineTo(x, y float64) {
	for _, s := range t.all {
		s.LineTo(x, y)
	}
}

func (t *tee) Stroke() {
	for _, s := range t.all {
		s.Stroke()
	}
}

func (t *tee) FillRect(x, y, w, h float64) {
	for _, s := range t.all {
		s.FillRect(x, y, w, h)
	}
}
