package seedpaint

import (
	"fmt"
	"math"
)

// Kind is the value type of a parameter.
type Kind uint8

const (
	KindNumber Kind = iota // any real number on the declared step grid
	KindInt                // whole numbers; Step must be a whole number >= 1
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindInt:
		return "int"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Param describes one tunable input of a sketch. Value is only meaningful on
// descriptors returned by Schema.Params; it is ignored on declarations.
type Param struct {
	Name    string
	Kind    Kind
	Min     float64
	Max     float64
	Step    float64 // zero means continuous
	Default float64
	Value   float64
}

// onStep reports whether v is Min plus a whole number of Steps.
func (p Param) onStep(v float64) bool {
	if p.Step == 0 {
		return true
	}
	k := (v - p.Min) / p.Step
	return math.Abs(k-math.Round(k)) <= 1e-9*math.Max(1, math.Abs(k))
}

// validate checks v against the descriptor bounds and step.
func (p Param) validate(v float64) error {
	if math.IsNaN(v) || v < p.Min || v > p.Max {
		return fmt.Errorf("set %q to %g, want [%g, %g]: %w", p.Name, v, p.Min, p.Max, ErrOutOfRange)
	}
	if !p.onStep(v) {
		return fmt.Errorf("set %q to %g, want %g + k*%g: %w", p.Name, v, p.Min, p.Step, ErrOffStep)
	}
	return nil
}

// Schema is the typed key-value store of a sketch's parameters. Declaration
// order is preserved and is the display order for editors. Values are
// validated when written and read back verbatim.
type Schema struct {
	params []Param
	index  map[string]int
}

// NewSchema declares a schema. Every parameter starts at its Default.
func NewSchema(params ...Param) (*Schema, error) {
	s := &Schema{
		params: make([]Param, 0, len(params)),
		index:  make(map[string]int, len(params)),
	}
	for _, p := range params {
		if err := checkDeclaration(p); err != nil {
			return nil, err
		}
		if _, dup := s.index[p.Name]; dup {
			return nil, fmt.Errorf("declare %q twice: %w", p.Name, ErrBadDeclaration)
		}
		p.Value = p.Default
		s.index[p.Name] = len(s.params)
		s.params = append(s.params, p)
	}
	return s, nil
}

func checkDeclaration(p Param) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("declare unnamed parameter: %w", ErrBadDeclaration)
	case math.IsNaN(p.Min) || math.IsNaN(p.Max) || p.Min > p.Max:
		return fmt.Errorf("declare %q with range [%g, %g]: %w", p.Name, p.Min, p.Max, ErrBadDeclaration)
	case math.IsNaN(p.Step) || p.Step < 0:
		return fmt.Errorf("declare %q with step %g: %w", p.Name, p.Step, ErrBadDeclaration)
	case p.Kind == KindInt && (p.Step < 1 || p.Step != math.Trunc(p.Step) || p.Min != math.Trunc(p.Min)):
		return fmt.Errorf("declare int %q with min %g step %g: %w", p.Name, p.Min, p.Step, ErrBadDeclaration)
	case p.Kind > KindInt:
		return fmt.Errorf("declare %q with %v: %w", p.Name, p.Kind, ErrBadDeclaration)
	}
	if err := p.validate(p.Default); err != nil {
		return fmt.Errorf("declare %q default: %w: %w", p.Name, ErrBadDeclaration, err)
	}
	return nil
}

// MustSchema is like NewSchema but panics on a bad declaration. Intended for
// package-level sketch declarations.
func MustSchema(params ...Param) *Schema {
	s, err := NewSchema(params...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of declared parameters.
func (s *Schema) Len() int {
	return len(s.params)
}

// Lookup returns the descriptor for name, including its current Value.
func (s *Schema) Lookup(name string) (Param, bool) {
	i, ok := s.index[name]
	if !ok {
		return Param{}, false
	}
	return s.params[i], true
}

// Params returns a copy of every descriptor in declaration order.
func (s *Schema) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)
	return out
}

// Get returns the current value of name.
func (s *Schema) Get(name string) (float64, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("get %q: %w", name, ErrUnknownParam)
	}
	return s.params[i].Value, nil
}

// Int returns the current value of name as an int. The value is rounded, so a
// stepped number parameter such as 10.000000001 reads as 10.
func (s *Schema) Int(name string) (int, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}
	return int(math.Round(v)), nil
}

// Set writes v to name. Out-of-range and off-step values are rejected, never
// clamped, and leave the previous value in place.
func (s *Schema) Set(name string, v float64) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("set %q: %w", name, ErrUnknownParam)
	}
	if err := s.params[i].validate(v); err != nil {
		return err
	}
	s.params[i].Value = v
	return nil
}

// Reset restores every parameter to its Default.
func (s *Schema) Reset() {
	for i := range s.params {
		s.params[i].Value = s.params[i].Default
	}
}

// Clone returns an independent copy with the same declarations and values.
func (s *Schema) Clone() *Schema {
	c := &Schema{
		params: s.Params(),
		index:  make(map[string]int, len(s.index)),
	}
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}

// Nudge moves name by delta steps, wrapping around the declared range, the way
// a keyboard-driven editor cycles a value. Continuous parameters move in
// hundredths of their range.
func (s *Schema) Nudge(name string, delta int) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("nudge %q: %w", name, ErrUnknownParam)
	}
	p := s.params[i]
	step := p.Step
	if step == 0 {
		step = (p.Max - p.Min) / 100
	}
	if step == 0 {
		return nil
	}
	last := math.Floor((p.Max-p.Min)/step + 1e-9)
	k := math.Round((p.Value-p.Min)/step) + float64(delta)
	k = math.Mod(k, last+1)
	if k < 0 {
		k += last + 1
	}
	v := p.Min + k*step
	if v > p.Max {
		v = p.Max
	}
	return s.Set(name, v)
}
