package seedpaint

import (
	"errors"
	"math"
	"testing"
)

func linesSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := NewSchema(Lines{}.Params()...)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	return s
}

func TestSchemaDefaults(t *testing.T) {
	s := linesSchema(t)
	if v, _ := s.Get("seed"); v != 12 {
		t.Errorf("seed = %v, want 12", v)
	}
	if v, _ := s.Int("lines"); v != 10 {
		t.Errorf("lines = %v, want 10", v)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestSchemaBounds(t *testing.T) {
	s := linesSchema(t)
	tests := []struct {
		value float64
		want  error
	}{
		{4, ErrOutOfRange},
		{21, ErrOutOfRange},
		{math.NaN(), ErrOutOfRange},
		{5, nil},
		{20, nil},
		{12.5, ErrOffStep},
	}
	for _, tt := range tests {
		err := s.Set("lines", tt.value)
		if !errors.Is(err, tt.want) && !(err == nil && tt.want == nil) {
			t.Errorf("Set(lines, %v) = %v, want %v", tt.value, err, tt.want)
		}
	}
}

func TestSchemaRejectedWriteKeepsValue(t *testing.T) {
	s := linesSchema(t)
	_ = s.Set("lines", 7)
	if err := s.Set("lines", 21); err == nil {
		t.Fatal("Set(lines, 21) succeeded")
	}
	if v, _ := s.Get("lines"); v != 7 {
		t.Errorf("lines = %v after rejected write, want 7", v)
	}
}

func TestSchemaUnknownParam(t *testing.T) {
	s := linesSchema(t)
	if _, err := s.Get("nope"); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("Get err = %v, want ErrUnknownParam", err)
	}
	if err := s.Set("nope", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("Set err = %v, want ErrUnknownParam", err)
	}
}

func TestSchemaDeclarationOrder(t *testing.T) {
	s := MustSchema(
		Param{Name: "z", Max: 1},
		Param{Name: "a", Max: 1},
		Param{Name: "m", Max: 1},
	)
	params := s.Params()
	for i, want := range []string{"z", "a", "m"} {
		if params[i].Name != want {
			t.Errorf("Params()[%d] = %q, want %q", i, params[i].Name, want)
		}
	}
}

func TestSchemaBadDeclarations(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
	}{
		{"unnamed", []Param{{Max: 1}}},
		{"inverted range", []Param{{Name: "x", Min: 2, Max: 1, Default: 1}}},
		{"negative step", []Param{{Name: "x", Max: 1, Step: -1}}},
		{"default out of range", []Param{{Name: "x", Max: 1, Default: 2}}},
		{"default off step", []Param{{Name: "x", Max: 10, Step: 2, Default: 3}}},
		{"fractional int step", []Param{{Name: "x", Kind: KindInt, Max: 10, Step: 0.5}}},
		{"duplicate", []Param{{Name: "x", Max: 1}, {Name: "x", Max: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSchema(tt.params...); !errors.Is(err, ErrBadDeclaration) {
				t.Errorf("NewSchema err = %v, want ErrBadDeclaration", err)
			}
		})
	}
}

func TestSchemaFractionalStep(t *testing.T) {
	s := MustSchema(Param{Name: "spread", Min: 0.1, Max: 1, Step: 0.05, Default: 0.5})
	for _, v := range []float64{0.1, 0.15, 0.35, 0.7, 1} {
		if err := s.Set("spread", v); err != nil {
			t.Errorf("Set(spread, %v) = %v", v, err)
		}
	}
	if err := s.Set("spread", 0.12); !errors.Is(err, ErrOffStep) {
		t.Errorf("Set(spread, 0.12) = %v, want ErrOffStep", err)
	}
}

func TestSchemaReset(t *testing.T) {
	s := linesSchema(t)
	_ = s.Set("seed", 900)
	_ = s.Set("lines", 20)
	s.Reset()
	if v, _ := s.Get("seed"); v != 12 {
		t.Errorf("seed after Reset = %v, want 12", v)
	}
	if v, _ := s.Get("lines"); v != 10 {
		t.Errorf("lines after Reset = %v, want 10", v)
	}
}

func TestSchemaCloneIsIndependent(t *testing.T) {
	s := linesSchema(t)
	c := s.Clone()
	_ = c.Set("seed", 1)
	if v, _ := s.Get("seed"); v != 12 {
		t.Errorf("original seed = %v after editing clone, want 12", v)
	}
	if p, ok := c.Lookup("seed"); !ok || p.Value != 1 {
		t.Errorf("clone Lookup(seed) = %+v, %v", p, ok)
	}
}

func TestSchemaNudge(t *testing.T) {
	s := linesSchema(t)
	tests := []struct {
		start float64
		delta int
		want  float64
	}{
		{10, 1, 11},
		{10, -1, 9},
		{20, 1, 5},
		{5, -1, 20},
		{5, 32, 5},
	}
	for _, tt := range tests {
		_ = s.Set("lines", tt.start)
		if err := s.Nudge("lines", tt.delta); err != nil {
			t.Fatalf("Nudge: %v", err)
		}
		if v, _ := s.Get("lines"); v != tt.want {
			t.Errorf("Nudge(%v by %d) = %v, want %v", tt.start, tt.delta, v, tt.want)
		}
	}
}

func TestSchemaNudgeFractional(t *testing.T) {
	s := MustSchema(Param{Name: "spread", Min: 0.1, Max: 1, Step: 0.05, Default: 0.95})
	if err := s.Nudge("spread", 1); err != nil {
		t.Fatalf("Nudge: %v", err)
	}
	if v, _ := s.Get("spread"); !approxEqual(v, 1, 1e-9) {
		t.Errorf("spread = %v, want 1", v)
	}
	if err := s.Nudge("spread", 1); err != nil {
		t.Fatalf("Nudge: %v", err)
	}
	if v, _ := s.Get("spread"); !approxEqual(v, 0.1, 1e-9) {
		t.Errorf("spread = %v, want wrap to 0.1", v)
	}
}

func TestKindString(t *testing.T) {
	if KindNumber.String() != "number" || KindInt.String() != "int" {
		t.Errorf("Kind strings = %q, %q", KindNumber, KindInt)
	}
}
