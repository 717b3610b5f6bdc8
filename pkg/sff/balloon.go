package sff

import (
	"encoding/base64"
	"strings"
)

// Image payloads travel base64-encoded in the XML form: URL-safe
// alphabet, no padding.
var b64 = base64.RawURLEncoding

// BalloonImage is an opaque image attachment. Kind is a file-extension
// style label ("jpg", "png"); Data is the raw bytes, never validated.
type BalloonImage struct {
	Kind string
	Data []byte
}

// Balloon is one dialogue/caption unit of a document.
//
// It owns three ordered line lists (translation, proofread, comments),
// a type tag and an optional image. All lists may be empty; an empty
// balloon is valid and renders as an empty unit.
type Balloon struct {
	Translation []string
	Proofread   []string
	Comments    []string
	Kind        BalloonType
	Image       *BalloonImage
}

// AddImage attaches an image to the balloon, replacing any previous one.
func (b *Balloon) AddImage(kind string, data []byte) {
	b.Image = &BalloonImage{Kind: kind, Data: data}
}

// RemoveImage detaches the balloon's image.
func (b *Balloon) RemoveImage() {
	b.Image = nil
}

// TranslationChars returns the total byte length of all translation
// lines. Spaces included.
func (b *Balloon) TranslationChars() int {
	return charSum(b.Translation)
}

// ProofreadChars returns the total byte length of all proofread lines.
// Spaces included.
func (b *Balloon) ProofreadChars() int {
	return charSum(b.Proofread)
}

// CommentChars returns the total byte length of all comment lines.
// Spaces included.
func (b *Balloon) CommentChars() int {
	return charSum(b.Comments)
}

// LineCount returns the number of lines that will actually ship:
// proofread lines when any exist, translation lines otherwise.
func (b *Balloon) LineCount() int {
	if len(b.Proofread) > 0 {
		return len(b.Proofread)
	}
	return len(b.Translation)
}

func charSum(lines []string) int {
	total := 0
	for _, ln := range lines {
		total += len(ln)
	}
	return total
}

// Text renders the balloon's plain-text form: one prefixed line per
// shipped line, joined by the continuation marker. Proofread content
// supersedes translation content; the two sources are never merged.
//
// Lossy: the type prefix survives but the image and the non-shipped
// line list are dropped.
func (b *Balloon) Text() string {
	header := b.Kind.Prefix() + ": "

	lines := b.Translation
	if len(b.Proofread) > 0 {
		lines = b.Proofread
	}

	prefixed := make([]string, len(lines))
	for i, ln := range lines {
		prefixed[i] = header + ln
	}
	return strings.Join(prefixed, "\n"+continuationMarker+"\n")
}

// XML renders the balloon's XML form. Tag order is fixed: TL*, PR*,
// Comment*, then img if an image is attached. Lossless.
func (b *Balloon) XML() string {
	var sb strings.Builder
	sb.WriteString(`<Balloon type="`)
	sb.WriteString(b.Kind.String())
	sb.WriteString(`">`)

	for _, tl := range b.Translation {
		writeTextElement(&sb, "TL", tl)
	}
	for _, pr := range b.Proofread {
		writeTextElement(&sb, "PR", pr)
	}
	for _, c := range b.Comments {
		writeTextElement(&sb, "Comment", c)
	}

	if b.Image != nil {
		sb.WriteString(`<img type="`)
		sb.WriteString(escapeXML(b.Image.Kind))
		sb.WriteString(`">`)
		sb.WriteString(b64.EncodeToString(b.Image.Data))
		sb.WriteString(`</img>`)
	}

	sb.WriteString(`</Balloon>`)
	return sb.String()
}

func writeTextElement(sb *strings.Builder, tag, text string) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	sb.WriteByte('>')
	sb.WriteString(escapeXML(text))
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}
