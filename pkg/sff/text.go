package sff

import "strings"

// continuationMarker joins lines that belong to the same balloon in the
// plain-text form.
const continuationMarker = "//"

// Length of a plain-text line header: two-character type prefix plus
// ": ".
const textHeaderLen = 4

// textParserState is the accumulator state of the plain-text parser.
type textParserState uint8

const (
	// stateIdle: the next content line starts a balloon of its own
	// unless a continuation marker follows it.
	stateIdle textParserState = iota
	// stateAccumulating: previous content lines are waiting to be
	// merged with the current one into a single balloon.
	stateAccumulating
)

// ParseText reconstructs a document from its lossy plain-text form.
//
// The text form has no explicit balloon delimiters, so boundaries are
// inferred: a line containing the continuation marker never becomes
// content itself, but its presence after a content line means the next
// content line belongs to the same balloon. The marker check is
// substring containment, so a content line with "//" anywhere in it is
// treated as a marker line and skipped — a documented limitation of
// the format, not a bug to fix here.
//
// All reconstructed content lands in Translation: the text form cannot
// distinguish translation from proofread provenance. This parser never
// fails; at worst the result does not faithfully represent malformed
// input.
func ParseText(input string) *Document {
	d := NewDocument()

	var lines []string
	for _, ln := range strings.Split(input, "\n") {
		if ln != "" {
			lines = append(lines, ln)
		}
	}

	state := stateIdle
	var pending []string
	var pendingKind BalloonType

	for i, current := range lines {
		if strings.Contains(current, continuationMarker) {
			continue
		}

		kind := BalloonTypeFromPrefix(current)
		content := stripTextHeader(current)

		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}

		if strings.Contains(next, continuationMarker) {
			pending = append(pending, content)
			pendingKind = kind
			state = stateAccumulating
			continue
		}

		b := &Balloon{Kind: kind}
		if state == stateAccumulating {
			// Continuation merge: the accumulated lines and the current
			// one are one logical line split for display, so they join
			// into a single translation line.
			b.Translation = []string{strings.Join(append(pending, content), "")}
			pending = nil
			state = stateIdle
		} else {
			b.Translation = []string{content}
		}
		d.Balloons = append(d.Balloons, b)
	}

	// Input ended on a continuation marker: flush the accumulated lines
	// as a final balloon instead of dropping them.
	if state == stateAccumulating && len(pending) > 0 {
		d.Balloons = append(d.Balloons, &Balloon{
			Kind:        pendingKind,
			Translation: []string{strings.Join(pending, "")},
		})
	}

	return d
}

// stripTextHeader drops the 4-byte line header and trims surrounding
// whitespace. Lines too short to carry a header yield empty content.
func stripTextHeader(line string) string {
	if len(line) <= textHeaderLen {
		return ""
	}
	return strings.TrimSpace(line[textHeaderLen:])
}
