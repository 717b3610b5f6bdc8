package sff

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/scantools/sff/pkg/sff/operations"
	_ "github.com/scantools/sff/pkg/sff/operations/compress"
)

// Reader opens stored sff documents. Dispatch is purely on file
// extension: .txt is plain-text decoded, .sffx is XML decoded, .sffz is
// zlib-decompressed and then XML decoded. Any other extension is
// rejected.
type Reader struct {
	path   string
	logger hclog.Logger
}

// NewReader creates a reader for path.
func NewReader(path string) *Reader {
	return NewReaderWithLogger(path, hclog.NewNullLogger())
}

// NewReaderWithLogger creates a reader for path with a custom logger.
func NewReaderWithLogger(path string, logger hclog.Logger) *Reader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reader{path: path, logger: logger}
}

// Read loads and decodes the document.
func (r *Reader) Read() (*Document, error) {
	if _, err := os.Stat(r.path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}
		return nil, err
	}

	ext := filepath.Ext(r.path)
	r.logger.Debug("opening document", "path", r.path, "ext", ext)

	switch ext {
	case ExtPlainText:
		data, err := os.ReadFile(r.path)
		if err != nil {
			return nil, err
		}
		return ParseText(string(data)), nil

	case ExtRawXML:
		data, err := os.ReadFile(r.path)
		if err != nil {
			return nil, err
		}
		return ParseXML(string(data))

	case ExtCompressedXML:
		compressed, err := os.ReadFile(r.path)
		if err != nil {
			return nil, err
		}
		op, err := operations.Get(operations.OP_ZLIB)
		if err != nil {
			return nil, err
		}
		xmlData, err := op.Reverse(compressed)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("decompressed document",
			"compressed", len(compressed), "raw", len(xmlData))
		return ParseXML(string(xmlData))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
}

// Open loads the document stored at path with default settings.
func Open(path string) (*Document, error) {
	return NewReader(path).Read()
}
