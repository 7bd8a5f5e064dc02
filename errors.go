package abimarshal

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrMalformedAddress indicates a 0x-prefixed string that is not a 20-byte hex address.
	ErrMalformedAddress = errors.New("abimarshal: malformed address")

	// ErrUnsupportedSignedValue indicates a negative integer under the unsigned-only policy.
	ErrUnsupportedSignedValue = errors.New("abimarshal: signed value not supported")

	// ErrUnsupportedValueType indicates a value or token with no defined mapping.
	ErrUnsupportedValueType = errors.New("abimarshal: unsupported value type")

	// ErrIntegerOverflow indicates a decoded integer outside the host's int64 range.
	ErrIntegerOverflow = errors.New("abimarshal: integer overflows host width")

	// ErrStructuralMismatch indicates a token list whose length or shape differs from what the caller expected.
	ErrStructuralMismatch = errors.New("abimarshal: structural mismatch")

	// ErrNoTransport indicates a client was built without a transport.
	ErrNoTransport = errors.New("abimarshal: no transport configured")
)

// EncodeError reports the value that could not be encoded and where it sits
// in the input tree.
type EncodeError struct {
	Path  []int
	Value Value
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("abimarshal: encode %s at %s: %v", kindOf(e.Value), formatPath(e.Path), e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError reports the token that could not be decoded and where it sits
// in the token tree.
type DecodeError struct {
	Path  []int
	Token Token
	Err   error
}

func (e *DecodeError) Error() string {
	kind := "nil"
	if e.Token != nil {
		kind = e.Token.Kind().String()
	}
	return fmt.Sprintf("abimarshal: decode %s at %s: %v", kind, formatPath(e.Path), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StructuralMismatchError indicates a token list of unexpected length.
type StructuralMismatchError struct {
	Method   string
	Expected int
	Got      int
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("abimarshal: method %q: expected %d tokens, got %d", e.Method, e.Expected, e.Got)
}

func (e *StructuralMismatchError) Unwrap() error {
	return ErrStructuralMismatch
}

// Stage identifies which step of a remote call failed.
type Stage string

const (
	StageEncode    Stage = "encode"
	StageTransport Stage = "transport"
	StageDecode    Stage = "decode"
)

// CallError wraps errors that occur while performing a call or query.
type CallError struct {
	Method string
	Stage  Stage
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("abimarshal: %s %q: %v", e.Stage, e.Method, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func formatPath(path []int) string {
	if len(path) == 0 {
		return "root"
	}
	return fmt.Sprint(path)
}

func kindOf(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}
