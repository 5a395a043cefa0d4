package seedpaint

// Lines draws a handful of translucent white strokes on a slate background.
// Its draw order is fixed: for each line, start x, start y, end x, end y,
// width, then opacity, followed by one stroke.
type Lines struct{}

var (
	linesBackground = MustColor("#323f4c")
	linesStroke     = MustColor("#fff")

	// Fractions of the surface size.
	linesMargin = Range{Min: 0.05, Max: 0.95}
	linesWidth  = Range{Min: 0.02, Max: 0.1}

	linesOpacity = Range{Min: 0.1, Max: 0.9}
)

func (Lines) Name() string { return "lines" }

func (Lines) Params() []Param {
	return []Param{
		{Name: "seed", Kind: KindInt, Min: 0, Max: 1000, Step: 1, Default: 12},
		{Name: "lines", Kind: KindInt, Min: 5, Max: 20, Step: 1, Default: 10},
	}
}

func (Lines) Background() Color { return linesBackground }

func (Lines) Draw(f *Frame) error {
	s := f.Surface
	n := f.IntParam("lines")
	for i := 0; i < n; i++ {
		x0 := f.Width * f.Between(linesMargin)
		y0 := f.Height * f.Between(linesMargin)
		x1 := f.Width * f.Between(linesMargin)
		y1 := f.Height * f.Between(linesMargin)
		width := f.Width * f.Between(linesWidth)
		alpha := f.Between(linesOpacity)
		if err := f.Err(); err != nil {
			return err
		}

		s.BeginPath()
		s.MoveTo(x0, y0)
		s.LineTo(x1, y1)
		s.SetLineWidth(width)
		s.SetGlobalAlpha(alpha)
		s.SetStrokeColor(linesStroke)
		s.SetLineCap(LineCapRound)
		s.Stroke()
	}
	return f.Err()
}
