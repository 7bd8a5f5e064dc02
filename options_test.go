package abimarshal

import (
	"testing"

	"github.com/ethereum/go-ethereum/log"
)

func TestDefaultEncodeConfig(t *testing.T) {
	config := defaultEncodeConfig()

	t.Run("bool filter disabled by default", func(t *testing.T) {
		if config.dropBools {
			t.Error("Expected dropBools to be false by default")
		}
	})

	t.Run("signed integers disabled by default", func(t *testing.T) {
		if config.signedInts {
			t.Error("Expected signedInts to be false by default")
		}
	})
}

func TestWithBoolFilter(t *testing.T) {
	config := defaultEncodeConfig()
	WithBoolFilter(true)(config)
	if !config.dropBools {
		t.Error("Expected dropBools to be true")
	}

	WithBoolFilter(false)(config)
	if config.dropBools {
		t.Error("Expected dropBools to be false")
	}
}

func TestWithSignedIntegers(t *testing.T) {
	config := defaultEncodeConfig()
	WithSignedIntegers(true)(config)
	if !config.signedInts {
		t.Error("Expected signedInts to be true")
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("default logger is root", func(t *testing.T) {
		c, err := NewClient(&fakeTransport{})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if c.logger != log.Root() {
			t.Error("Expected root logger by default")
		}
	})

	t.Run("nil logger is ignored", func(t *testing.T) {
		c, err := NewClient(&fakeTransport{}, WithLogger(nil))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if c.logger == nil {
			t.Error("Logger should not be nil")
		}
	})

	t.Run("encode options accumulate", func(t *testing.T) {
		c, err := NewClient(&fakeTransport{},
			WithEncodeOptions(WithBoolFilter(true)),
			WithEncodeOptions(WithSignedIntegers(true)),
		)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(c.encodeOpts) != 2 {
			t.Errorf("Expected 2 encode options, got %d", len(c.encodeOpts))
		}
	})
}
