package abimarshal

import (
	"math"
)

// Decode converts a token list, typically the results of a query, into host
// values.
//
// Mapping:
//   - UintToken, IntToken: Int (ErrIntegerOverflow outside the int64 range)
//   - StringToken: String
//   - BoolToken: Bool
//   - BytesToken, FixedBytesToken: Bytes (copied)
//   - ArrayToken, FixedArrayToken: Array of the recursively decoded elements
//   - AddressToken: String, rendered as 0x-prefixed lowercase hex
//
// Decoding is atomic: on any failure Decode returns nil and a *DecodeError.
func Decode(tokens []Token) ([]Value, error) {
	return decodeList(tokens, nil)
}

func decodeList(tokens []Token, path []int) ([]Value, error) {
	values := make([]Value, len(tokens))
	for i, tok := range tokens {
		v, err := decodeToken(tok, appendPath(path, i))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func decodeToken(tok Token, path []int) (Value, error) {
	switch t := tok.(type) {
	case UintToken:
		if !t.Value.IsUint64() || t.Value.Uint64() > math.MaxInt64 {
			return nil, &DecodeError{Path: path, Token: tok, Err: ErrIntegerOverflow}
		}
		return Int(t.Value.Uint64()), nil

	case IntToken:
		if t.Value == nil || !t.Value.IsInt64() {
			return nil, &DecodeError{Path: path, Token: tok, Err: ErrIntegerOverflow}
		}
		return Int(t.Value.Int64()), nil

	case StringToken:
		return String(t), nil

	case BoolToken:
		return Bool(t), nil

	case BytesToken:
		return Bytes(append([]byte{}, t...)), nil

	case FixedBytesToken:
		return Bytes(append([]byte{}, t...)), nil

	case ArrayToken:
		return decodeArray(t, path)

	case FixedArrayToken:
		return decodeArray(t, path)

	case AddressToken:
		return String(t.Hex()), nil

	case nil:
		return nil, &DecodeError{Path: path, Err: ErrUnsupportedValueType}
	}

	// Token is sealed and every variant is handled above.
	panic("abimarshal: unreachable token variant")
}

func decodeArray(tokens []Token, path []int) (Value, error) {
	elems, err := decodeList(tokens, path)
	if err != nil {
		return nil, err
	}
	return Array(elems), nil
}
