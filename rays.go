package seedpaint

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Rays draws strokes radiating from the surface center. Ray lengths are
// biased toward short with an in-quad curve, so long rays stay rare.
// Per ray it draws angle, length, width, palette index, cap, then opacity.
type Rays struct{}

var (
	raysBackground = MustColor("midnightblue")
	raysPalette    = []Color{
		MustColor("gold"),
		MustColor("coral"),
		MustColor("turquoise"),
		MustColor("white"),
	}

	// Fraction of spread times the shorter surface side.
	raysLength  = Range{Min: 0.1, Max: 1}
	raysWidth   = Range{Min: 1, Max: 4}
	raysOpacity = Range{Min: 0.3, Max: 1}
)

func (Rays) Name() string { return "rays" }

func (Rays) Params() []Param {
	return []Param{
		{Name: "seed", Kind: KindInt, Min: 0, Max: 1000, Step: 1, Default: 7},
		{Name: "rays", Kind: KindInt, Min: 3, Max: 60, Step: 1, Default: 24},
		{Name: "spread", Kind: KindNumber, Min: 0.1, Max: 1, Step: 0.05, Default: 0.5},
	}
}

func (Rays) Background() Color { return raysBackground }

func (Rays) Draw(f *Frame) error {
	s := f.Surface
	n := f.IntParam("rays")
	reach := raysLength.Scale(f.Param("spread") * math.Min(f.Width, f.Height) / 2)
	cx, cy := f.Width/2, f.Height/2

	for i := 0; i < n; i++ {
		angle := f.Float(0, 2*math.Pi)
		length := f.Eased(reach.Min, reach.Max, ease.InQuad)
		width := f.Between(raysWidth)
		col := raysPalette[f.Int(0, len(raysPalette)-1)]
		round := f.Bool(0.5)
		alpha := f.Between(raysOpacity)
		if err := f.Err(); err != nil {
			return err
		}

		lineCap := LineCapButt
		if round {
			lineCap = LineCapRound
		}
		s.BeginPath()
		s.MoveTo(cx, cy)
		s.LineTo(cx+length*math.Cos(angle), cy+length*math.Sin(angle))
		s.SetLineWidth(width)
		s.SetGlobalAlpha(alpha)
		s.SetStrokeColor(col)
		s.SetLineCap(lineCap)
		s.Stroke()
	}
	return f.Err()
}
