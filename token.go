package abimarshal

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// TokenKind identifies the variant of a Token.
type TokenKind uint8

const (
	KindUint TokenKind = iota
	KindSignedInt
	KindBoolToken
	KindFixedBytes
	KindBytesToken
	KindAddress
	KindStringToken
	KindFixedArray
	KindArrayToken
)

var tokenKindNames = [...]string{
	KindUint:        "uint256",
	KindSignedInt:   "int256",
	KindBoolToken:   "bool",
	KindFixedBytes:  "bytesN",
	KindBytesToken:  "bytes",
	KindAddress:     "address",
	KindStringToken: "string",
	KindFixedArray:  "T[N]",
	KindArrayToken:  "T[]",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Token is a strongly-typed ABI value. The variant set is closed: this is a
// sealed interface and only the token types in this package implement it.
type Token interface {
	// isToken is unexported to seal the interface.
	isToken()

	// Kind reports which variant this token is.
	Kind() TokenKind
}

// UintToken is an unsigned 256-bit word.
type UintToken struct {
	Value uint256.Int
}

// IntToken is a signed integer in the int256 range.
type IntToken struct {
	Value *big.Int
}

// BoolToken is an ABI bool.
type BoolToken bool

// FixedBytesToken is a bytesN value (1 <= N <= 32).
type FixedBytesToken []byte

// BytesToken is a variable-length bytes value.
type BytesToken []byte

// AddressToken is a 20-byte account or contract address.
type AddressToken common.Address

// StringToken is an ABI string.
type StringToken string

// FixedArrayToken is a T[N] array.
type FixedArrayToken []Token

// ArrayToken is a T[] array.
type ArrayToken []Token

func (UintToken) isToken()       {}
func (IntToken) isToken()        {}
func (BoolToken) isToken()       {}
func (FixedBytesToken) isToken() {}
func (BytesToken) isToken()      {}
func (AddressToken) isToken()    {}
func (StringToken) isToken()     {}
func (FixedArrayToken) isToken() {}
func (ArrayToken) isToken()      {}

func (UintToken) Kind() TokenKind       { return KindUint }
func (IntToken) Kind() TokenKind        { return KindSignedInt }
func (BoolToken) Kind() TokenKind       { return KindBoolToken }
func (FixedBytesToken) Kind() TokenKind { return KindFixedBytes }
func (BytesToken) Kind() TokenKind      { return KindBytesToken }
func (AddressToken) Kind() TokenKind    { return KindAddress }
func (StringToken) Kind() TokenKind     { return KindStringToken }
func (FixedArrayToken) Kind() TokenKind { return KindFixedArray }
func (ArrayToken) Kind() TokenKind      { return KindArrayToken }

var (
	maxInt256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minInt256 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))

	errUint256Range = errors.New("value outside uint256 range")
	errInt256Range  = errors.New("value outside int256 range")
)

// NewUint creates a uint256 token from a uint64.
func NewUint(v uint64) UintToken {
	var t UintToken
	t.Value.SetUint64(v)
	return t
}

// NewUintFromBig creates a uint256 token from a *big.Int.
func NewUintFromBig(v *big.Int) (UintToken, error) {
	var t UintToken
	if v == nil || v.Sign() < 0 {
		return t, errUint256Range
	}
	if overflow := t.Value.SetFromBig(v); overflow {
		return UintToken{}, errUint256Range
	}
	return t, nil
}

// Big returns the token value as a new *big.Int.
func (t UintToken) Big() *big.Int {
	return t.Value.ToBig()
}

// NewInt creates an int256 token from an int64.
func NewInt(v int64) IntToken {
	return IntToken{Value: big.NewInt(v)}
}

// NewIntFromBig creates an int256 token from a *big.Int. The value is copied.
func NewIntFromBig(v *big.Int) (IntToken, error) {
	if v == nil || v.Cmp(minInt256) < 0 || v.Cmp(maxInt256) > 0 {
		return IntToken{}, errInt256Range
	}
	return IntToken{Value: new(big.Int).Set(v)}, nil
}

// Address returns the token as a go-ethereum address.
func (t AddressToken) Address() common.Address {
	return common.Address(t)
}

// Hex renders the address as a 0x-prefixed lowercase hex string.
func (t AddressToken) Hex() string {
	return hexutil.Encode(t[:])
}
