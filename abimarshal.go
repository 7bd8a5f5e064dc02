// Package abimarshal converts between dynamic host values and strongly-typed
// contract-call ABI tokens.
//
// A host environment (a scripting runtime, a JSON-RPC bridge, a game engine)
// hands over parameters with no static type information. Encode infers a
// token for each value and Decode maps call results back to host values.
//
// # Basic Usage
//
//	params, err := abimarshal.ParseJSON([]byte(`["0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B", 100]`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tokens, err := abimarshal.Encode(params)
//	// tokens: [AddressToken, UintToken(100)]
//
//	values, err := abimarshal.Decode(tokens)
//	// values: [String("0xab5801a7d398351b8be11c439e05c5b3259aec9b"), Int(100)]
//
// # Type Inference
//
// Values are classified in priority order:
//
//   - Strings starting with 0x are addresses and must hold exactly 40 hex
//     digits. Anything else is a MalformedAddress error, never a string.
//   - Other strings are strings.
//   - Integers are uint256. Negative integers fail unless WithSignedIntegers
//     is set, in which case they become int256.
//   - Booleans are bools.
//   - Arrays are encoded element by element into a T[] token.
//   - Byte sequences are bytes.
//   - Floats, and anything else, fail with ErrUnsupportedValueType.
//
// # Round Trips
//
// Decode(Encode(v)) returns v for non-address strings, non-negative integers,
// booleans, byte sequences and nested arrays of those. Address strings come
// back lowercased. Integer tokens wider than int64 fail to decode with
// ErrIntegerOverflow instead of being truncated.
//
// # Calls
//
// A Client couples the marshaller with a Transport, which performs the actual
// remote call. See the ethtransport package for a go-ethereum implementation.
//
//	transport := ethtransport.New(tokenAddr, tokenABI, ethClient)
//	client, err := abimarshal.NewClient(transport)
//	balance, err := client.Query(ctx, "balanceOf", from, []abimarshal.Value{abimarshal.String(holder)})
//
// Encode, Decode and Client are stateless with respect to calls and safe to
// use from multiple goroutines.
package abimarshal
