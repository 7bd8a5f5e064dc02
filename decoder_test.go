package abimarshal

import (
	"errors"
	"math"
	"math/big"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

func TestDecodeScalars(t *testing.T) {
	addr := common.HexToAddress(testAddrHex)

	tests := []struct {
		name  string
		token Token
		want  Value
	}{
		{"uint", NewUint(7), Int(7)},
		{"max int64 as uint", NewUint(math.MaxInt64), Int(math.MaxInt64)},
		{"int", NewInt(-3), Int(-3)},
		{"min int64", NewInt(math.MinInt64), Int(math.MinInt64)},
		{"string", StringToken("hello"), String("hello")},
		{"bool", BoolToken(true), Bool(true)},
		{"bytes", BytesToken{0xde, 0xad}, Bytes{0xde, 0xad}},
		{"fixed bytes", FixedBytesToken{0x01, 0x02, 0x03, 0x04}, Bytes{0x01, 0x02, 0x03, 0x04}},
		{"address lowercased", AddressToken(addr), String("0xab5801a7d398351b8be11c439e05c5b3259aec9b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Decode([]Token{tt.token})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(values) != 1 {
				t.Fatalf("Expected 1 value, got %d", len(values))
			}
			if !reflect.DeepEqual(values[0], tt.want) {
				t.Errorf("Expected %#v, got %#v", tt.want, values[0])
			}
		})
	}
}

func TestDecodeArrays(t *testing.T) {
	tokens := []Token{
		ArrayToken{NewUint(1), ArrayToken{StringToken("a"), BoolToken(false)}},
		FixedArrayToken{BytesToken{0x01}, NewUint(2)},
	}

	values, err := Decode(tokens)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []Value{
		Array{Int(1), Array{String("a"), Bool(false)}},
		Array{Bytes{0x01}, Int(2)},
	}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("Expected %#v, got %#v", want, values)
	}
}

func TestDecodeEmpty(t *testing.T) {
	values, err := Decode(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("Expected empty values, got %d", len(values))
	}
}

func TestDecodeOverflow(t *testing.T) {
	var big64 uint256.Int
	big64.SetUint64(math.MaxInt64)
	big64.AddUint64(&big64, 1)

	hugeSigned := new(big.Int).Lsh(big.NewInt(1), 100)
	hugeNegative := new(big.Int).Neg(hugeSigned)

	tests := []struct {
		name   string
		tokens []Token
		path   []int
	}{
		{"uint just above int64", []Token{UintToken{Value: big64}}, []int{0}},
		{"max uint64", []Token{NewUint(math.MaxUint64)}, []int{0}},
		{"large int", []Token{IntToken{Value: hugeSigned}}, []int{0}},
		{"large negative int", []Token{IntToken{Value: hugeNegative}}, []int{0}},
		{"nested", []Token{StringToken("ok"), ArrayToken{NewUint(1), NewUint(math.MaxUint64)}}, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Decode(tt.tokens)
			if !errors.Is(err, ErrIntegerOverflow) {
				t.Fatalf("Expected ErrIntegerOverflow, got %v", err)
			}
			if values != nil {
				t.Errorf("Expected no partial result, got %#v", values)
			}

			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("Expected *DecodeError, got %T", err)
			}
			if !reflect.DeepEqual(decErr.Path, tt.path) {
				t.Errorf("Expected path %v, got %v", tt.path, decErr.Path)
			}
		})
	}
}

func TestDecodeNilToken(t *testing.T) {
	_, err := Decode([]Token{NewUint(1), nil})
	if !errors.Is(err, ErrUnsupportedValueType) {
		t.Errorf("Expected ErrUnsupportedValueType, got %v", err)
	}
}

func TestDecodeCopiesBytes(t *testing.T) {
	tok := BytesToken{0x01, 0x02}
	values, err := Decode([]Token{tok})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	values[0].(Bytes)[0] = 0xFF
	if tok[0] != 0x01 {
		t.Error("Decode must not alias token bytes")
	}
}
