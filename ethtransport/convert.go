package ethtransport

import (
	"fmt"
	"math/big"
	"reflect"

	abimarshal "github.com/branched-services/go-abimarshal"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ToABI converts a token into the Go value go-ethereum packs for abiType.
// Numeric tokens are accepted for any uint/int width as long as the value
// fits; other kinds must match the ABI type exactly.
func ToABI(abiType abi.Type, tok abimarshal.Token) (any, error) {
	switch abiType.T {
	case abi.UintTy, abi.IntTy:
		n, err := tokenBig(tok, abiType)
		if err != nil {
			return nil, err
		}
		return bigToABI(abiType, n)

	case abi.BoolTy:
		b, ok := tok.(abimarshal.BoolToken)
		if !ok {
			return nil, mismatch(abiType, tok)
		}
		return bool(b), nil

	case abi.StringTy:
		s, ok := tok.(abimarshal.StringToken)
		if !ok {
			return nil, mismatch(abiType, tok)
		}
		return string(s), nil

	case abi.AddressTy:
		a, ok := tok.(abimarshal.AddressToken)
		if !ok {
			return nil, mismatch(abiType, tok)
		}
		return common.Address(a), nil

	case abi.BytesTy:
		switch b := tok.(type) {
		case abimarshal.BytesToken:
			return []byte(b), nil
		case abimarshal.FixedBytesToken:
			return []byte(b), nil
		}
		return nil, mismatch(abiType, tok)

	case abi.FixedBytesTy, abi.HashTy, abi.FunctionTy:
		var raw []byte
		switch b := tok.(type) {
		case abimarshal.FixedBytesToken:
			raw = b
		case abimarshal.BytesToken:
			raw = b
		default:
			return nil, mismatch(abiType, tok)
		}
		arr := reflect.New(abiType.GetType()).Elem()
		if len(raw) != arr.Len() {
			return nil, &ConversionError{Type: abiType.String(), Err: fmt.Errorf("%w: want %d bytes, got %d", ErrOutOfRange, arr.Len(), len(raw))}
		}
		reflect.Copy(arr, reflect.ValueOf(raw))
		return arr.Interface(), nil

	case abi.SliceTy:
		elems, err := tokenElems(tok, abiType)
		if err != nil {
			return nil, err
		}
		out := reflect.MakeSlice(abiType.GetType(), len(elems), len(elems))
		if err := fillElems(out, *abiType.Elem, elems); err != nil {
			return nil, err
		}
		return out.Interface(), nil

	case abi.ArrayTy:
		elems, err := tokenElems(tok, abiType)
		if err != nil {
			return nil, err
		}
		if len(elems) != abiType.Size {
			return nil, &ConversionError{Type: abiType.String(), Err: fmt.Errorf("%w: want %d elements, got %d", abimarshal.ErrStructuralMismatch, abiType.Size, len(elems))}
		}
		out := reflect.New(abiType.GetType()).Elem()
		if err := fillElems(out, *abiType.Elem, elems); err != nil {
			return nil, err
		}
		return out.Interface(), nil

	default:
		return nil, &ConversionError{Type: abiType.String(), Err: ErrUnsupportedABIType}
	}
}

// FromABI converts a value unpacked by go-ethereum for abiType into a token.
func FromABI(abiType abi.Type, v any) (abimarshal.Token, error) {
	switch abiType.T {
	case abi.UintTy:
		n, err := abiToBig(abiType, v)
		if err != nil {
			return nil, err
		}
		tok, err := abimarshal.NewUintFromBig(n)
		if err != nil {
			return nil, &ConversionError{Type: abiType.String(), Err: fmt.Errorf("%w: %v", ErrOutOfRange, err)}
		}
		return tok, nil

	case abi.IntTy:
		n, err := abiToBig(abiType, v)
		if err != nil {
			return nil, err
		}
		tok, err := abimarshal.NewIntFromBig(n)
		if err != nil {
			return nil, &ConversionError{Type: abiType.String(), Err: fmt.Errorf("%w: %v", ErrOutOfRange, err)}
		}
		return tok, nil

	case abi.BoolTy:
		b, ok := v.(bool)
		if !ok {
			return nil, unexpected(abiType, v)
		}
		return abimarshal.BoolToken(b), nil

	case abi.StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, unexpected(abiType, v)
		}
		return abimarshal.StringToken(s), nil

	case abi.AddressTy:
		a, ok := v.(common.Address)
		if !ok {
			return nil, unexpected(abiType, v)
		}
		return abimarshal.AddressToken(a), nil

	case abi.BytesTy:
		b, ok := v.([]byte)
		if !ok {
			return nil, unexpected(abiType, v)
		}
		return abimarshal.BytesToken(append([]byte{}, b...)), nil

	case abi.FixedBytesTy, abi.HashTy, abi.FunctionTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Array || rv.Type().Elem().Kind() != reflect.Uint8 {
			return nil, unexpected(abiType, v)
		}
		out := make([]byte, rv.Len())
		for i := range out {
			out[i] = byte(rv.Index(i).Uint())
		}
		return abimarshal.FixedBytesToken(out), nil

	case abi.SliceTy, abi.ArrayTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, unexpected(abiType, v)
		}
		elems := make([]abimarshal.Token, rv.Len())
		for i := range elems {
			elem, err := FromABI(*abiType.Elem, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		if abiType.T == abi.ArrayTy {
			return abimarshal.FixedArrayToken(elems), nil
		}
		return abimarshal.ArrayToken(elems), nil

	default:
		return nil, &ConversionError{Type: abiType.String(), Err: ErrUnsupportedABIType}
	}
}

// ToABIArgs converts a token list into packable values for args.
func ToABIArgs(method string, args abi.Arguments, tokens []abimarshal.Token) ([]any, error) {
	if len(tokens) != len(args) {
		return nil, &abimarshal.StructuralMismatchError{Method: method, Expected: len(args), Got: len(tokens)}
	}
	out := make([]any, len(tokens))
	for i, tok := range tokens {
		v, err := ToABI(args[i].Type, tok)
		if err != nil {
			return nil, &ArgumentError{Method: method, Index: i, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// FromABIResults converts unpacked results into a token list.
func FromABIResults(method string, args abi.Arguments, values []any) ([]abimarshal.Token, error) {
	if len(values) != len(args) {
		return nil, &abimarshal.StructuralMismatchError{Method: method, Expected: len(args), Got: len(values)}
	}
	out := make([]abimarshal.Token, len(values))
	for i, v := range values {
		tok, err := FromABI(args[i].Type, v)
		if err != nil {
			return nil, &ArgumentError{Method: method, Index: i, Err: err}
		}
		out[i] = tok
	}
	return out, nil
}

func tokenBig(tok abimarshal.Token, abiType abi.Type) (*big.Int, error) {
	switch t := tok.(type) {
	case abimarshal.UintToken:
		return t.Big(), nil
	case abimarshal.IntToken:
		if t.Value == nil {
			return nil, mismatch(abiType, tok)
		}
		return new(big.Int).Set(t.Value), nil
	default:
		return nil, mismatch(abiType, tok)
	}
}

// bigToABI range-checks n against abiType and returns it in the Go type
// go-ethereum expects for that width.
func bigToABI(abiType abi.Type, n *big.Int) (any, error) {
	var lo, hi *big.Int
	if abiType.T == abi.UintTy {
		lo = new(big.Int)
		hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(abiType.Size)), big.NewInt(1))
	} else {
		hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(abiType.Size-1)), big.NewInt(1))
		lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(abiType.Size-1)))
	}
	if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
		return nil, &ConversionError{Type: abiType.String(), Err: fmt.Errorf("%w: %s", ErrOutOfRange, n)}
	}

	goType := abiType.GetType()
	if goType == reflect.TypeOf(&big.Int{}) {
		return n, nil
	}
	rv := reflect.New(goType).Elem()
	if abiType.T == abi.UintTy {
		rv.SetUint(n.Uint64())
	} else {
		rv.SetInt(n.Int64())
	}
	return rv.Interface(), nil
}

func abiToBig(abiType abi.Type, v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, unexpected(abiType, v)
		}
		return n, nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	default:
		return nil, unexpected(abiType, v)
	}
}

func tokenElems(tok abimarshal.Token, abiType abi.Type) ([]abimarshal.Token, error) {
	switch t := tok.(type) {
	case abimarshal.ArrayToken:
		return t, nil
	case abimarshal.FixedArrayToken:
		return t, nil
	default:
		return nil, mismatch(abiType, tok)
	}
}

func fillElems(out reflect.Value, elemType abi.Type, elems []abimarshal.Token) error {
	for i, elem := range elems {
		v, err := ToABI(elemType, elem)
		if err != nil {
			return err
		}
		out.Index(i).Set(reflect.ValueOf(v))
	}
	return nil
}

func mismatch(abiType abi.Type, tok abimarshal.Token) error {
	got := "nil"
	if tok != nil {
		got = tok.Kind().String()
	}
	return &TypeMismatchError{Expected: abiType.String(), Got: got}
}

func unexpected(abiType abi.Type, v any) error {
	return &TypeMismatchError{Expected: abiType.String(), Got: fmt.Sprintf("%T", v)}
}
