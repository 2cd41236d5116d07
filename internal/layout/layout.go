// Package layout loads caller-authored decode plans: TOML documents
// listing fields in decode order with their kinds and byte widths. A
// plan is the source of the widths the cursor decoder requires; the
// binary input itself carries no type information.
package layout

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Kind names a decodable field type in a plan.
type Kind string

const (
	KindU8    Kind = "u8"
	KindU16   Kind = "u16"
	KindU32   Kind = "u32"
	KindU64   Kind = "u64"
	KindI8    Kind = "i8"
	KindI16   Kind = "i16"
	KindI32   Kind = "i32"
	KindI64   Kind = "i64"
	KindF32   Kind = "f32"
	KindF64   Kind = "f64"
	KindText  Kind = "text"
	KindBytes Kind = "bytes"
)

// FieldSpec declares one field of a plan.
type FieldSpec struct {
	Name    string `toml:"name"`
	Kind    Kind   `toml:"type"`
	Count   int    `toml:"count"`    // numeric kinds: elements to decode, 0 means one
	Len     int    `toml:"len"`      // text/bytes: fixed byte width
	LenFrom string `toml:"len_from"` // text/bytes: width from an earlier unsigned field
}

// Plan is an ordered decode description for one binary format.
type Plan struct {
	Name   string      `toml:"name"`
	Fields []FieldSpec `toml:"field"`
}

// Load reads, parses, and validates a plan file.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("layout load failed (%s): %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Plan{}, fmt.Errorf("layout parse failed (%s): %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a plan from TOML bytes.
func Parse(data []byte) (Plan, error) {
	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return Plan{}, err
	}
	if p.Name == "" {
		p.Name = "unnamed"
	}
	if err := Validate(p); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Validate checks a plan's internal consistency: unique names, known
// kinds, and width declarations that the interpreter can satisfy.
func Validate(p Plan) error {
	if len(p.Fields) == 0 {
		return fmt.Errorf("layout %q: no fields", p.Name)
	}
	seen := make(map[string]FieldSpec, len(p.Fields))
	for i, f := range p.Fields {
		if f.Name == "" {
			return fmt.Errorf("layout %q: field %d has no name", p.Name, i)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("layout %q: duplicate field name %q", p.Name, f.Name)
		}
		switch f.Kind {
		case KindU8, KindU16, KindU32, KindU64, KindI8, KindI16, KindI32, KindI64, KindF32, KindF64:
			if f.Count < 0 {
				return fmt.Errorf("layout %q: field %q has negative count", p.Name, f.Name)
			}
			if f.Len != 0 || f.LenFrom != "" {
				return fmt.Errorf("layout %q: field %q: len/len_from apply to text and bytes only", p.Name, f.Name)
			}
		case KindText, KindBytes:
			if f.Count != 0 {
				return fmt.Errorf("layout %q: field %q: count applies to numeric kinds only", p.Name, f.Name)
			}
			if err := validateWidth(p.Name, f, seen); err != nil {
				return err
			}
		case "":
			return fmt.Errorf("layout %q: field %q has no type", p.Name, f.Name)
		default:
			return fmt.Errorf("layout %q: field %q has unknown type %q", p.Name, f.Name, f.Kind)
		}
		seen[f.Name] = f
	}
	return nil
}

func validateWidth(plan string, f FieldSpec, earlier map[string]FieldSpec) error {
	switch {
	case f.Len < 0:
		return fmt.Errorf("layout %q: field %q has negative len", plan, f.Name)
	case f.Len > 0 && f.LenFrom != "":
		return fmt.Errorf("layout %q: field %q declares both len and len_from", plan, f.Name)
	case f.Len == 0 && f.LenFrom == "":
		return fmt.Errorf("layout %q: field %q needs len or len_from", plan, f.Name)
	case f.LenFrom != "":
		src, ok := earlier[f.LenFrom]
		if !ok {
			return fmt.Errorf("layout %q: field %q: len_from %q is not an earlier field", plan, f.Name, f.LenFrom)
		}
		switch src.Kind {
		case KindU8, KindU16, KindU32, KindU64:
		default:
			return fmt.Errorf("layout %q: field %q: len_from %q must be an unsigned field, is %q", plan, f.Name, f.LenFrom, src.Kind)
		}
		if src.Count > 0 {
			return fmt.Errorf("layout %q: field %q: len_from %q must be a single value, not an array", plan, f.Name, f.LenFrom)
		}
	}
	return nil
}
