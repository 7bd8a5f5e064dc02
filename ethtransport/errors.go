package ethtransport

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnsupportedABIType indicates an ABI type with no token mapping (tuples).
	ErrUnsupportedABIType = errors.New("ethtransport: unsupported ABI type")

	// ErrOutOfRange indicates a value that does not fit the target ABI type.
	ErrOutOfRange = errors.New("ethtransport: value out of range")

	// ErrNoTransactor indicates Send was called without transact options.
	ErrNoTransactor = errors.New("ethtransport: no transact options configured")
)

// MethodNotFoundError indicates the contract doesn't have the requested method.
type MethodNotFoundError struct {
	Contract common.Address
	Method   string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("ethtransport: method %q not found in contract %s", e.Method, e.Contract.Hex())
}

// ArgumentError indicates an issue with a function argument or result.
type ArgumentError struct {
	Method string
	Index  int
	Err    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("ethtransport: argument %d for method %q: %v", e.Index, e.Method, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// TypeMismatchError indicates a token kind that doesn't match the ABI type.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("ethtransport: type mismatch: expected %s, got %s", e.Expected, e.Got)
}

// ConversionError wraps a failure converting to or from an ABI type.
type ConversionError struct {
	Type string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("ethtransport: convert %s: %v", e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
