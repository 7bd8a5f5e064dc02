package abimarshal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
)

// ValueKind identifies the variant of a dynamic Value.
type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindFloat
	KindBool
	KindString
	KindBytes
	KindArray
)

var valueKindNames = [...]string{
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindString: "string",
	KindBytes:  "bytes",
	KindArray:  "array",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", uint8(k))
}

// Value is a dynamically-typed value supplied by, or handed back to, a host
// environment. This is a sealed interface - only types within this package
// can implement it.
type Value interface {
	// isValue is unexported to seal the interface.
	isValue()

	// Kind reports which variant this value is.
	Kind() ValueKind
}

// Int is a host integer. The host's native width is 64 bits.
type Int int64

// Float is a host floating point number. It has no token mapping.
type Float float64

// Bool is a host boolean.
type Bool bool

// String is a host string.
type String string

// Bytes is a host byte sequence.
type Bytes []byte

// Array is an ordered sequence of values.
type Array []Value

func (Int) isValue()    {}
func (Float) isValue()  {}
func (Bool) isValue()   {}
func (String) isValue() {}
func (Bytes) isValue()  {}
func (Array) isValue()  {}

func (Int) Kind() ValueKind    { return KindInt }
func (Float) Kind() ValueKind  { return KindFloat }
func (Bool) Kind() ValueKind   { return KindBool }
func (String) Kind() ValueKind { return KindString }
func (Bytes) Kind() ValueKind  { return KindBytes }
func (Array) Kind() ValueKind  { return KindArray }

// FromAny converts a plain Go value into a Value.
// Supported types:
//   - int, int8-int64, and unsigned integers that fit in int64
//   - float32, float64
//   - json.Number (integral literals, including exponent forms, become Int
//     and fail with ErrIntegerOverflow outside int64; fractions become Float)
//   - bool, string, []byte
//   - []any and []Value (converted recursively)
//   - any Value (returned as is)
//
// Errors are *EncodeError values whose path locates the failing element.
func FromAny(v any) (Value, error) {
	return fromAny(v, nil)
}

func fromAny(v any, path []int) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintValue(uint64(x), path)
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case uint64:
		return uintValue(x, path)
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	case json.Number:
		return numberValue(x, path)
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case []byte:
		return Bytes(x), nil
	case []any:
		out := make(Array, len(x))
		for i, elem := range x {
			val, err := fromAny(elem, appendPath(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil
	case []Value:
		return Array(x), nil
	default:
		return nil, &EncodeError{Path: path, Err: fmt.Errorf("%w: %T", ErrUnsupportedValueType, v)}
	}
}

func uintValue(u uint64, path []int) (Value, error) {
	if u > math.MaxInt64 {
		return nil, &EncodeError{Path: path, Err: ErrIntegerOverflow}
	}
	return Int(u), nil
}

// numberValue keeps integral JSON numbers exact. Only literals with a
// non-zero fractional part become Float.
func numberValue(n json.Number, path []int) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return Int(i), nil
	}

	r, ok := new(big.Rat).SetString(n.String())
	if !ok {
		return nil, &EncodeError{Path: path, Err: fmt.Errorf("%w: number %q", ErrUnsupportedValueType, n.String())}
	}
	if r.IsInt() {
		if !r.Num().IsInt64() {
			return nil, &EncodeError{Path: path, Err: fmt.Errorf("%w: %s", ErrIntegerOverflow, n.String())}
		}
		return Int(r.Num().Int64()), nil
	}

	f, err := n.Float64()
	if err != nil {
		return nil, &EncodeError{Path: path, Err: fmt.Errorf("%w: %v", ErrUnsupportedValueType, err)}
	}
	return Float(f), nil
}

// ToAny converts a Value into plain Go values: int64, float64, bool, string,
// []byte and []any.
func ToAny(v Value) any {
	switch x := v.(type) {
	case Int:
		return int64(x)
	case Float:
		return float64(x)
	case Bool:
		return bool(x)
	case String:
		return string(x)
	case Bytes:
		return []byte(x)
	case Array:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = ToAny(elem)
		}
		return out
	default:
		return nil
	}
}

// ParseJSON reads a single JSON array of parameters. Integral numbers become
// Int, other numbers become Float. Trailing data after the array is an error.
func ParseJSON(data []byte) ([]Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("abimarshal: parse json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("abimarshal: parse json: trailing data after parameter array")
	}

	values := make([]Value, len(raw))
	for i, elem := range raw {
		v, err := fromAny(elem, []int{i})
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
