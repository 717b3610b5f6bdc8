package compress

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/scantools/sff/pkg/sff/operations"
)

func init() {
	// Register ZLIB operation on package init
	operations.Register(NewZlibOperation())
}

// ZlibOperation implements ZLIB compression. It is the codec behind the
// .sffz representation, so Reverse(Apply(x)) must reproduce x exactly.
type ZlibOperation struct {
	operations.BaseOperation
}

// NewZlibOperation creates a new ZLIB operation
func NewZlibOperation() *ZlibOperation {
	return &ZlibOperation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_ZLIB,
			OpName: "ZLIB",
		},
	}
}

// Apply compresses data using ZLIB at best compression
func (o *ZlibOperation) Apply(input []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("creating zlib writer: %w", err)
	}

	if _, err := zw.Write(input); err != nil {
		zw.Close()
		return nil, fmt.Errorf("writing zlib data: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing zlib writer: %w", err)
	}

	return buf.Bytes(), nil
}

// ApplyStream compresses a stream using ZLIB
func (o *ZlibOperation) ApplyStream(input io.Reader, output io.Writer) error {
	zw, err := zlib.NewWriterLevel(output, zlib.BestCompression)
	if err != nil {
		return fmt.Errorf("creating zlib writer: %w", err)
	}
	defer zw.Close()

	if _, err := io.Copy(zw, input); err != nil {
		return fmt.Errorf("compressing stream: %w", err)
	}

	return zw.Close()
}

// Reverse decompresses ZLIB data
func (o *ZlibOperation) Reverse(input []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("creating zlib reader: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("reading zlib data: %w", err)
	}

	return data, nil
}

// ReverseStream decompresses a ZLIB stream
func (o *ZlibOperation) ReverseStream(input io.Reader, output io.Writer) error {
	zr, err := zlib.NewReader(input)
	if err != nil {
		return fmt.Errorf("creating zlib reader: %w", err)
	}
	defer zr.Close()

	if _, err := io.Copy(output, zr); err != nil {
		return fmt.Errorf("decompressing stream: %w", err)
	}

	return nil
}
