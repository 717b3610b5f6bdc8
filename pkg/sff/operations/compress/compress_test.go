package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/scantools/sff/pkg/sff/operations"
)

var sample = []byte(strings.Repeat("OT: numnam\n\n(): num\n", 64))

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		op   operations.Operation
	}{
		{"zlib", NewZlibOperation()},
		{"gzip", NewGzipOperation()},
		{"bzip2", NewBzip2Operation()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			compressed, err := tc.op.Apply(sample)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if bytes.Equal(compressed, sample) {
				t.Error("Apply returned input unchanged")
			}

			restored, err := tc.op.Reverse(compressed)
			if err != nil {
				t.Fatalf("Reverse: %v", err)
			}
			if !bytes.Equal(restored, sample) {
				t.Error("Reverse(Apply(x)) != x")
			}
		})
	}
}

func TestStreamRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		op   operations.Operation
	}{
		{"zlib", NewZlibOperation()},
		{"gzip", NewGzipOperation()},
		{"bzip2", NewBzip2Operation()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var compressed bytes.Buffer
			if err := tc.op.ApplyStream(bytes.NewReader(sample), &compressed); err != nil {
				t.Fatalf("ApplyStream: %v", err)
			}

			var restored bytes.Buffer
			if err := tc.op.ReverseStream(&compressed, &restored); err != nil {
				t.Fatalf("ReverseStream: %v", err)
			}
			if !bytes.Equal(restored.Bytes(), sample) {
				t.Error("stream round trip mismatch")
			}
		})
	}
}

func TestRegisteredOnInit(t *testing.T) {
	testCases := []struct {
		id   uint8
		name string
	}{
		{operations.OP_ZLIB, "ZLIB"},
		{operations.OP_GZIP, "GZIP"},
		{operations.OP_BZIP2, "BZIP2"},
	}

	for _, tc := range testCases {
		op, err := operations.Get(tc.id)
		if err != nil {
			t.Errorf("Get(0x%02x): %v", tc.id, err)
			continue
		}
		if op.Name() != tc.name {
			t.Errorf("Get(0x%02x).Name() = %q, want %q", tc.id, op.Name(), tc.name)
		}
	}
}

func TestRegistryKeysCarryRealIDs(t *testing.T) {
	// Registration must go through the constructors: a zero-value
	// operation would land in the registry under OP_NONE and shadow
	// every other codec.
	if _, err := operations.Get(operations.OP_NONE); err == nil {
		t.Error("an operation is registered under OP_NONE")
	}

	for id, op := range operations.Registry {
		if op.ID() != id {
			t.Errorf("registry key 0x%02x holds operation with ID 0x%02x", id, op.ID())
		}
	}
}

func TestFromString(t *testing.T) {
	testCases := []struct {
		input string
		id    uint8
	}{
		{"zlib", operations.OP_ZLIB},
		{"GZIP", operations.OP_GZIP},
		{"bzip2", operations.OP_BZIP2},
		{"bz2", operations.OP_BZIP2},
		{" zlib ", operations.OP_ZLIB},
	}

	for _, tc := range testCases {
		op, err := operations.FromString(tc.input)
		if err != nil {
			t.Errorf("FromString(%q): %v", tc.input, err)
			continue
		}
		if op.ID() != tc.id {
			t.Errorf("FromString(%q).ID() = 0x%02x, want 0x%02x", tc.input, op.ID(), tc.id)
		}
	}
}
