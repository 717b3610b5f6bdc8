package sff

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/scantools/sff/pkg/sff/operations"
	_ "github.com/scantools/sff/pkg/sff/operations/compress"
)

// Writer saves documents in any of the three output kinds. The
// compressed form always decompresses to the byte-identical raw XML.
type Writer struct {
	logger hclog.Logger
}

// NewWriter creates a writer.
func NewWriter() *Writer {
	return NewWriterWithLogger(hclog.NewNullLogger())
}

// NewWriterWithLogger creates a writer with a custom logger.
func NewWriterWithLogger(logger hclog.Logger) *Writer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Writer{logger: logger}
}

// Write encodes d in the given kind and stores it at base plus the
// kind's extension, returning the written path.
func (w *Writer) Write(d *Document, kind OutputKind, base string) (string, error) {
	data, err := w.encode(d, kind)
	if err != nil {
		return "", err
	}

	path := base + kind.Ext()
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	w.logger.Debug("wrote document",
		"path", path, "kind", kind.String(), "bytes", len(data))
	return path, nil
}

func (w *Writer) encode(d *Document, kind OutputKind) ([]byte, error) {
	switch kind {
	case PlainText:
		return []byte(d.Text()), nil
	case CompressedXML:
		op, err := operations.Get(operations.OP_ZLIB)
		if err != nil {
			return nil, err
		}
		return op.Apply([]byte(d.XML()))
	default:
		return []byte(d.XML()), nil
	}
}

// Save stores d at base plus the kind's extension with default
// settings, returning the written path.
func Save(d *Document, kind OutputKind, base string) (string, error) {
	return NewWriter().Write(d, kind, base)
}
