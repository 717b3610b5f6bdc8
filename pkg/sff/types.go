package sff

// BalloonType classifies a balloon. The zero value is Dialogue.
type BalloonType uint8

const (
	Dialogue BalloonType = iota
	Square
	Thinking
	SubText
	OverText
)

// String returns the XML attribute form of the type.
func (t BalloonType) String() string {
	switch t {
	case Square:
		return "Square"
	case Thinking:
		return "Thinking"
	case SubText:
		return "ST"
	case OverText:
		return "OT"
	default:
		return "Dialogue"
	}
}

// Prefix returns the two-character plain-text line prefix of the type.
func (t BalloonType) Prefix() string {
	switch t {
	case Square:
		return "[]"
	case Thinking:
		return "{}"
	case SubText:
		return "ST"
	case OverText:
		return "OT"
	default:
		return "()"
	}
}

// BalloonTypeFromAttr maps an XML type attribute to a BalloonType.
// Unknown values fall back to Dialogue, never an error.
func BalloonTypeFromAttr(s string) BalloonType {
	switch s {
	case "Square":
		return Square
	case "Thinking":
		return Thinking
	case "ST":
		return SubText
	case "OT":
		return OverText
	default:
		return Dialogue
	}
}

// BalloonTypeFromPrefix maps the first two characters of a plain-text
// line to a BalloonType. Unrecognized or too-short prefixes fall back
// to Dialogue.
func BalloonTypeFromPrefix(line string) BalloonType {
	if len(line) < 2 {
		return Dialogue
	}
	switch line[:2] {
	case "[]":
		return Square
	case "{}":
		return Thinking
	case "ST":
		return SubText
	case "OT":
		return OverText
	default:
		return Dialogue
	}
}

// OutputKind selects which on-disk representation a save produces.
type OutputKind uint8

const (
	// RawXML is the canonical XML form (.sffx). Lossless.
	RawXML OutputKind = iota
	// CompressedXML is zlib-compressed canonical XML (.sffz). Lossless.
	CompressedXML
	// PlainText is the human-readable form (.txt). Lossy: metadata and
	// images are dropped.
	PlainText
)

// Ext returns the file extension for the output kind, dot included.
func (k OutputKind) Ext() string {
	switch k {
	case CompressedXML:
		return ExtCompressedXML
	case PlainText:
		return ExtPlainText
	default:
		return ExtRawXML
	}
}

// String returns the human-readable name of the output kind.
func (k OutputKind) String() string {
	switch k {
	case CompressedXML:
		return "zlib"
	case PlainText:
		return "txt"
	default:
		return "raw"
	}
}

// File extensions handled by Reader and Writer.
const (
	ExtRawXML        = ".sffx"
	ExtCompressedXML = ".sffz"
	ExtPlainText     = ".txt"
)
