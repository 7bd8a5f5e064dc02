package abimarshal

import (
	"github.com/ethereum/go-ethereum/log"
)

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

// encodeConfig holds the inference policies for Encode.
type encodeConfig struct {
	dropBools  bool
	signedInts bool
}

// defaultEncodeConfig returns the default encode configuration.
func defaultEncodeConfig() *encodeConfig {
	return &encodeConfig{
		dropBools:  false,
		signedInts: false,
	}
}

// WithBoolFilter enables or disables dropping boolean values from the
// encoded output at every nesting level. Disabled by default.
// Dropped values still count toward the index paths reported in errors.
func WithBoolFilter(enabled bool) EncodeOption {
	return func(c *encodeConfig) {
		c.dropBools = enabled
	}
}

// WithSignedIntegers enables or disables encoding negative integers as
// int256 tokens. When disabled (default), negative integers fail with
// ErrUnsupportedSignedValue.
func WithSignedIntegers(enabled bool) EncodeOption {
	return func(c *encodeConfig) {
		c.signedInts = enabled
	}
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for call tracing.
// Default is log.Root().
func WithLogger(logger log.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEncodeOptions sets the encode policies applied to every call.
func WithEncodeOptions(opts ...EncodeOption) ClientOption {
	return func(c *Client) {
		c.encodeOpts = append(c.encodeOpts, opts...)
	}
}
