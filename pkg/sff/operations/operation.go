// Package operations provides reversible byte transformations for sff
// storage: compression codecs registered by ID and addressable by name.
package operations

import (
	"fmt"
	"io"
)

// Operation identifiers. Compression codecs live in 0x10-0x2F.
const (
	// No operation - raw data
	OP_NONE = 0x00

	OP_GZIP  = 0x10 // GZIP compression
	OP_ZLIB  = 0x11 // ZLIB compression (the .sffz codec)
	OP_BZIP2 = 0x13 // BZIP2 compression
)

// Operation is a single reversible transformation over bytes.
type Operation interface {
	// ID returns the operation identifier (e.g., OP_ZLIB)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// Apply applies the operation to input data
	Apply(input []byte) ([]byte, error)

	// ApplyStream applies the operation to a stream
	ApplyStream(input io.Reader, output io.Writer) error

	// Reverse reverses the operation (decompress)
	Reverse(input []byte) ([]byte, error)

	// ReverseStream reverses the operation on a stream
	ReverseStream(input io.Reader, output io.Writer) error
}

// BaseOperation provides common identity for operations
type BaseOperation struct {
	OpID   uint8
	OpName string
}

func (o *BaseOperation) ID() uint8 {
	return o.OpID
}

func (o *BaseOperation) Name() string {
	return o.OpName
}

// Registry maps operation IDs to implementations
var Registry = make(map[uint8]Operation)

// Register registers an operation implementation
func Register(op Operation) {
	Registry[op.ID()] = op
}

// Get retrieves an operation by ID
func Get(id uint8) (Operation, error) {
	op, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown operation: 0x%02x", id)
	}
	return op, nil
}

// GetName returns the name of an operation by ID
func GetName(id uint8) string {
	switch id {
	case OP_NONE:
		return "NONE"
	case OP_GZIP:
		return "GZIP"
	case OP_ZLIB:
		return "ZLIB"
	case OP_BZIP2:
		return "BZIP2"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}
