package sff

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// escapeXML escapes reserved characters in text content and attribute
// values. The decoder resolves entities on read, so escaping here is
// what keeps reserved characters round-trip safe.
func escapeXML(s string) string {
	if !strings.ContainsAny(s, `&<>'"`+"\t\n\r") {
		return s
	}
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

// ParseXML reconstructs a document from its canonical XML form.
//
// The metric fields of the Metadata block (TLLength etc.) are
// documentation-only on the wire: they are not stored, the model
// recomputes them, and a mismatch never fails a decode. Missing
// Script/App/Info nodes and unknown type attributes resolve to their
// defaults; the hard failures are ErrMalformedXML, ErrMissingSection
// and ErrInvalidImageEncoding.
func ParseXML(input string) (*Document, error) {
	root, err := parseXMLTree(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}

	md := root.descendant("Metadata")
	if md == nil && root.name == "Metadata" {
		md = root
	}
	if md == nil {
		return nil, fmt.Errorf("%w: Metadata", ErrMissingSection)
	}

	d := NewDocument()
	d.ScriptVersion = md.childText("Script")
	d.AppVersion = md.childText("App")
	d.Info = md.childText("Info")

	bs := root.descendant("Balloons")
	if bs == nil && root.name == "Balloons" {
		bs = root
	}
	if bs == nil {
		return nil, fmt.Errorf("%w: Balloons", ErrMissingSection)
	}

	for _, node := range bs.children {
		b, err := parseBalloonNode(node)
		if err != nil {
			return nil, err
		}
		d.Balloons = append(d.Balloons, b)
	}

	return d, nil
}

// parseBalloonNode reads one Balloon element. Child tags are collected
// in document order per list; an element with missing text contributes
// an empty string.
func parseBalloonNode(node *xmlNode) (*Balloon, error) {
	b := &Balloon{Kind: BalloonTypeFromAttr(node.attr("type"))}

	for _, c := range node.children {
		switch c.name {
		case "TL":
			b.Translation = append(b.Translation, c.text)
		case "PR":
			b.Proofread = append(b.Proofread, c.text)
		case "Comment":
			b.Comments = append(b.Comments, c.text)
		case "img":
			if b.Image != nil {
				continue
			}
			data, err := b64.DecodeString(c.text)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidImageEncoding, err)
			}
			b.Image = &BalloonImage{Kind: c.attr("type"), Data: data}
		}
	}

	return b, nil
}
