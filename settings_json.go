package seedpaint

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ApplyJSON writes the values of a flat JSON object such as
// {"seed": 12, "lines": 10} into the schema. Every entry is validated before
// any is committed, so a rejected document leaves the schema untouched.
// Parameters missing from the document keep their current value.
func (s *Schema) ApplyJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("parse settings: invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return fmt.Errorf("parse settings: want object, got %s", doc.Type)
	}

	staged := make([]float64, len(s.params))
	for i := range s.params {
		staged[i] = s.params[i].Value
	}

	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		i, ok := s.index[name]
		if !ok {
			err = fmt.Errorf("parse settings: %q: %w", name, ErrUnknownParam)
			return false
		}
		if value.Type != gjson.Number {
			err = fmt.Errorf("parse settings: %q is %s, want number", name, value.Type)
			return false
		}
		v := value.Float()
		if verr := s.params[i].validate(v); verr != nil {
			err = fmt.Errorf("parse settings: %w", verr)
			return false
		}
		staged[i] = v
		return true
	})
	if err != nil {
		return err
	}

	for i, v := range staged {
		s.params[i].Value = v
	}
	return nil
}

// MarshalJSON encodes the current values as a flat object in declaration
// order, the same shape ApplyJSON reads.
func (s *Schema) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, p := range s.params {
		var err error
		out, err = sjson.SetBytes(out, escapePath(p.Name), p.Value)
		if err != nil {
			return nil, fmt.Errorf("encode settings %q: %w", p.Name, err)
		}
	}
	return out, nil
}

// escapePath escapes the characters sjson treats as path syntax.
func escapePath(name string) string {
	if !strings.ContainsAny(name, `.*?|#@\:!=<>%`) {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) * 2)
	for _, r := range name {
		if strings.ContainsRune(`.*?|#@\:!=<>%`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
