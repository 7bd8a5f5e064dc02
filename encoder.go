package abimarshal

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddressPrefix marks a string value as an address.
const AddressPrefix = "0x"

// Encode converts host values into a token list for a remote call.
//
// Each value is classified in this order, first match wins:
//   - String with the 0x prefix: AddressToken (ErrMalformedAddress if the
//     rest is not exactly 40 hex digits)
//   - String: StringToken
//   - Int: UintToken (negative values fail with ErrUnsupportedSignedValue
//     unless WithSignedIntegers is set)
//   - Bool: BoolToken (dropped when WithBoolFilter is set)
//   - Array: ArrayToken of the recursively encoded elements
//   - Bytes: BytesToken
//   - anything else: ErrUnsupportedValueType
//
// Encode never mutates its input. On failure it returns nil and an
// *EncodeError locating the offending value.
func Encode(values []Value, opts ...EncodeOption) ([]Token, error) {
	cfg := defaultEncodeConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return encodeList(values, nil, cfg)
}

func encodeList(values []Value, path []int, cfg *encodeConfig) ([]Token, error) {
	tokens := make([]Token, 0, len(values))
	for i, v := range values {
		elemPath := appendPath(path, i)

		if _, isBool := v.(Bool); isBool && cfg.dropBools {
			continue
		}

		tok, err := encodeValue(v, elemPath, cfg)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func encodeValue(v Value, path []int, cfg *encodeConfig) (Token, error) {
	switch val := v.(type) {
	case String:
		if strings.HasPrefix(string(val), AddressPrefix) {
			if !common.IsHexAddress(string(val)) {
				return nil, &EncodeError{Path: path, Value: v, Err: ErrMalformedAddress}
			}
			return AddressToken(common.HexToAddress(string(val))), nil
		}
		return StringToken(val), nil

	case Int:
		if val < 0 {
			if !cfg.signedInts {
				return nil, &EncodeError{Path: path, Value: v, Err: ErrUnsupportedSignedValue}
			}
			return NewInt(int64(val)), nil
		}
		return NewUint(uint64(val)), nil

	case Bool:
		return BoolToken(val), nil

	case Array:
		elems, err := encodeList(val, path, cfg)
		if err != nil {
			return nil, err
		}
		return ArrayToken(elems), nil

	case Bytes:
		return BytesToken(append([]byte{}, val...)), nil

	case Float:
		return nil, &EncodeError{Path: path, Value: v, Err: ErrUnsupportedValueType}

	default:
		// nil
		return nil, &EncodeError{Path: path, Value: v, Err: ErrUnsupportedValueType}
	}
}

// appendPath returns a fresh path so callers never share backing arrays.
func appendPath(path []int, i int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = i
	return out
}
