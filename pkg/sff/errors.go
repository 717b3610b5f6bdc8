package sff

import "errors"

var (
	// ErrMalformedXML marks input that is not well-formed XML.
	ErrMalformedXML = errors.New("malformed xml")

	// ErrMissingSection marks a document missing a required structural
	// node. Wrapped with the section name (Metadata or Balloons).
	ErrMissingSection = errors.New("missing section")

	// ErrInvalidImageEncoding marks an img node whose text is not valid
	// URL-safe unpadded base64.
	ErrInvalidImageEncoding = errors.New("invalid image encoding")

	// ErrUnsupportedExtension marks a file suffix the reader does not
	// recognize.
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrNotFound marks a nonexistent input path.
	ErrNotFound = errors.New("file not found")
)
