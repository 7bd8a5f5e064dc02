package abimarshal

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestRoundTrip(t *testing.T) {
	t.Run("non-address strings", func(t *testing.T) {
		for _, s := range []string{"", "hello", "0", "x0abc", "0Xdeadbeef", "héllo wörld"} {
			assertRoundTrip(t, []Value{String(s)}, []Value{String(s)})
		}
	})

	t.Run("address strings are lowercased", func(t *testing.T) {
		assertRoundTrip(t, []Value{String(testAddrHex)}, []Value{String(strings.ToLower(testAddrHex))})
	})

	t.Run("non-negative integers", func(t *testing.T) {
		for _, n := range []int64{0, 1, 255, 1 << 40, math.MaxInt64} {
			assertRoundTrip(t, []Value{Int(n)}, []Value{Int(n)})
		}
	})

	t.Run("bytes", func(t *testing.T) {
		assertRoundTrip(t, []Value{Bytes{0x00, 0xff}}, []Value{Bytes{0x00, 0xff}})
	})

	t.Run("nested shape", func(t *testing.T) {
		addr := "0xAb00000000000000000000000000000000000001"
		in := []Value{Int(1), Array{String("a"), Bool(true)}, String(addr)}
		want := []Value{Int(1), Array{String("a"), Bool(true)}, String(strings.ToLower(addr))}
		assertRoundTrip(t, in, want)
	})

	t.Run("empty", func(t *testing.T) {
		tokens, err := Encode([]Value{})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		values, err := Decode(tokens)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(values) != 0 {
			t.Errorf("Expected empty result, got %#v", values)
		}
	})
}

func TestConcurrentRoundTrips(t *testing.T) {
	var g errgroup.Group

	for i := 0; i < 64; i++ {
		i := i
		g.Go(func() error {
			addr := fmt.Sprintf("0x%040x", i+1)
			in := []Value{
				Int(i),
				String(fmt.Sprintf("call-%d", i)),
				Array{Int(i * 2), String(addr), Array{Bool(i%2 == 0)}},
			}
			want := []Value{
				Int(i),
				String(fmt.Sprintf("call-%d", i)),
				Array{Int(i * 2), String(addr), Array{Bool(i%2 == 0)}},
			}

			for j := 0; j < 50; j++ {
				tokens, err := Encode(in)
				if err != nil {
					return err
				}
				got, err := Decode(tokens)
				if err != nil {
					return err
				}
				if !reflect.DeepEqual(got, want) {
					return fmt.Errorf("goroutine %d: expected %#v, got %#v", i, want, got)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func assertRoundTrip(t *testing.T, in, want []Value) {
	t.Helper()

	tokens, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode(%#v): %v", in, err)
	}
	got, err := Decode(tokens)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %#v, got %#v", want, got)
	}
}
