package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/bytecursor/cursor"
)

// Value is one decoded field. Numeric kinds fill exactly one of the
// slice fields with Count elements (one element for single values);
// text and bytes kinds fill Text or Bytes.
type Value struct {
	Name   string
	Kind   Kind
	Uints  []uint64
	Ints   []int64
	Floats []float64
	Text   string
	Bytes  []byte
}

// Uint returns the single unsigned value of the field.
func (v Value) Uint() uint64 {
	if len(v.Uints) != 1 {
		return 0
	}
	return v.Uints[0]
}

func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return fmt.Sprintf("%s=%q", v.Name, v.Text)
	case KindBytes:
		return fmt.Sprintf("%s=%x", v.Name, v.Bytes)
	case KindF32, KindF64:
		return v.Name + "=" + joinNums(v.Floats)
	case KindI8, KindI16, KindI32, KindI64:
		return v.Name + "=" + joinNums(v.Ints)
	default:
		return v.Name + "=" + joinNums(v.Uints)
	}
}

func joinNums[T int64 | uint64 | float64](nums []T) string {
	if len(nums) == 1 {
		return fmt.Sprintf("%v", nums[0])
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%v", n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Run decodes the plan's fields in order from the cursor. Decoding
// stops at the first failure; values decoded before the failure are
// returned alongside the error.
func Run(p Plan, c *cursor.Cursor) ([]Value, error) {
	values := make([]Value, 0, len(p.Fields))
	byName := make(map[string]Value, len(p.Fields))
	for _, f := range p.Fields {
		v, err := runField(f, c, byName)
		if err != nil {
			log.Debug().Str("plan", p.Name).Str("field", f.Name).Err(err).Msg("decode stopped")
			return values, fmt.Errorf("layout %q: field %q: %w", p.Name, f.Name, err)
		}
		values = append(values, v)
		byName[f.Name] = v
	}
	return values, nil
}

func runField(f FieldSpec, c *cursor.Cursor, earlier map[string]Value) (Value, error) {
	v := Value{Name: f.Name, Kind: f.Kind}
	count := f.Count
	if count == 0 {
		count = 1
	}
	var err error
	switch f.Kind {
	case KindU8:
		v.Uints, err = readUints[uint8](c, count)
	case KindU16:
		v.Uints, err = readUints[uint16](c, count)
	case KindU32:
		v.Uints, err = readUints[uint32](c, count)
	case KindU64:
		v.Uints, err = readUints[uint64](c, count)
	case KindI8:
		v.Ints, err = readInts[int8](c, count)
	case KindI16:
		v.Ints, err = readInts[int16](c, count)
	case KindI32:
		v.Ints, err = readInts[int32](c, count)
	case KindI64:
		v.Ints, err = readInts[int64](c, count)
	case KindF32:
		v.Floats, err = readFloats[float32](c, count)
	case KindF64:
		v.Floats, err = readFloats[float64](c, count)
	case KindText:
		var width int
		width, err = fieldWidth(f, earlier)
		if err == nil {
			v.Text, err = c.ReadText(width)
		}
	case KindBytes:
		var width int
		width, err = fieldWidth(f, earlier)
		if err == nil {
			var raw []uint8
			raw, err = cursor.ReadArray[uint8](c, width)
			v.Bytes = raw
		}
	default:
		err = fmt.Errorf("unknown kind %q", f.Kind)
	}
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

func fieldWidth(f FieldSpec, earlier map[string]Value) (int, error) {
	if f.LenFrom == "" {
		return f.Len, nil
	}
	src, ok := earlier[f.LenFrom]
	if !ok {
		return 0, fmt.Errorf("len_from %q not decoded yet", f.LenFrom)
	}
	n := src.Uint()
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("len_from %q value %d is too large", f.LenFrom, n)
	}
	return int(n), nil
}

func readUints[T ~uint8 | ~uint16 | ~uint32 | ~uint64](c *cursor.Cursor, count int) ([]uint64, error) {
	raw, err := cursor.ReadArray[T](c, count)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(raw))
	for i, r := range raw {
		out[i] = uint64(r)
	}
	return out, nil
}

func readInts[T ~int8 | ~int16 | ~int32 | ~int64](c *cursor.Cursor, count int) ([]int64, error) {
	raw, err := cursor.ReadArray[T](c, count)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(raw))
	for i, r := range raw {
		out[i] = int64(r)
	}
	return out, nil
}

func readFloats[T ~float32 | ~float64](c *cursor.Cursor, count int) ([]float64, error) {
	out := make([]float64, count)
	for i := range out {
		v, err := cursor.ReadFloat[T](c)
		if err != nil {
			return nil, err
		}
		out[i] = float64(v)
	}
	return out, nil
}
