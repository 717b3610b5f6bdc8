package sff

import (
	"strconv"
	"strings"
)

// Wire format identity. The script version only changes when the format
// itself does.
const (
	DefaultScriptVersion = "Scanlation Script File v0.2.0"
	DefaultInfo          = "Num"
)

// Document is an ordered collection of balloons plus script, app and
// info metadata.
//
// Callers mutate Balloons directly; derived metrics (character totals,
// line count, balloon count) are recomputed on demand and never stored,
// so they cannot go stale.
type Document struct {
	// ScriptVersion identifies the file format version.
	ScriptVersion string
	// AppVersion identifies the producing application. Empty by default.
	AppVersion string
	// Info is free-form extra metadata.
	Info string

	Balloons []*Balloon
}

// NewDocument returns an empty document with default metadata.
func NewDocument() *Document {
	return &Document{
		ScriptVersion: DefaultScriptVersion,
		Info:          DefaultInfo,
	}
}

// TranslationChars returns the total byte length of all translation
// lines across all balloons.
func (d *Document) TranslationChars() int {
	total := 0
	for _, b := range d.Balloons {
		total += b.TranslationChars()
	}
	return total
}

// ProofreadChars returns the total byte length of all proofread lines
// across all balloons.
func (d *Document) ProofreadChars() int {
	total := 0
	for _, b := range d.Balloons {
		total += b.ProofreadChars()
	}
	return total
}

// CommentChars returns the total byte length of all comment lines
// across all balloons.
func (d *Document) CommentChars() int {
	total := 0
	for _, b := range d.Balloons {
		total += b.CommentChars()
	}
	return total
}

// LineCount returns the total shipped line count of the document.
func (d *Document) LineCount() int {
	total := 0
	for _, b := range d.Balloons {
		total += b.LineCount()
	}
	return total
}

// BalloonCount returns the number of balloons.
func (d *Document) BalloonCount() int {
	return len(d.Balloons)
}

// Text renders the document's plain-text form: each balloon's text,
// joined by blank lines. Lossy: metadata and images are dropped.
func (d *Document) Text() string {
	parts := make([]string, len(d.Balloons))
	for i, b := range d.Balloons {
		parts[i] = b.Text()
	}
	return strings.Join(parts, "\n\n")
}

// XML renders the document's canonical XML form. All five metadata
// metrics are computed at render time so the emitted header is always
// consistent with the current balloon content. Lossless.
func (d *Document) XML() string {
	var sb strings.Builder

	sb.WriteString("<Document><Metadata>")
	writeTextElement(&sb, "Script", d.ScriptVersion)
	writeTextElement(&sb, "App", d.AppVersion)
	writeTextElement(&sb, "Info", d.Info)
	writeMetricElement(&sb, "TLLength", d.TranslationChars())
	writeMetricElement(&sb, "PRLength", d.ProofreadChars())
	writeMetricElement(&sb, "CMLength", d.CommentChars())
	writeMetricElement(&sb, "BalloonCount", d.BalloonCount())
	writeMetricElement(&sb, "LineCount", d.LineCount())
	sb.WriteString("</Metadata><Balloons>")

	for _, b := range d.Balloons {
		sb.WriteString(b.XML())
	}

	sb.WriteString("</Balloons></Document>")
	return sb.String()
}

func writeMetricElement(sb *strings.Builder, tag string, n int) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	sb.WriteByte('>')
	sb.WriteString(strconv.Itoa(n))
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}
