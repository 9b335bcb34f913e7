package render

import (
	"strings"
	"unicode/utf8"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineCode           // code only
	lineNote           // comment only
	lineEntry          // code padded to the column, then comment
)

// line is one output line before layout.
type line struct {
	kind    lineKind
	indent  int
	code    string
	comment string
}

// document collects line records and lays them out in a final pass, so
// content and alignment stay separate.
type document struct {
	target Target
	lines  []line
}

func newDocument(target Target) *document {
	return &document{target: target}
}

func (d *document) blank() {
	d.lines = append(d.lines, line{kind: lineBlank})
}

func (d *document) code(indent int, code string) {
	d.lines = append(d.lines, line{kind: lineCode, indent: indent, code: code})
}

// note writes a comment-only line. An empty text yields a bare comment
// symbol.
func (d *document) note(indent int, text string) {
	d.lines = append(d.lines, line{kind: lineNote, indent: indent, comment: text})
}

// entry writes code whose trailing comment is aligned to the target column.
func (d *document) entry(indent int, code, comment string) {
	d.lines = append(d.lines, line{kind: lineEntry, indent: indent, code: code, comment: comment})
}

// String lays out every line. Runs of blank lines collapse to one and
// the document ends with a single newline.
func (d *document) String() string {
	var b strings.Builder
	prevBlank := true

	for _, l := range d.lines {
		if l.kind == lineBlank {
			if !prevBlank {
				b.WriteByte('\n')
			}
			prevBlank = true
			continue
		}
		prevBlank = false

		b.WriteString(d.format(l))
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func (d *document) format(l line) string {
	prefix := strings.Repeat(indentUnit, l.indent)

	switch l.kind {
	case lineCode:
		return prefix + l.code
	case lineNote:
		return prefix + d.commentText(l.comment)
	case lineEntry:
		return pad(prefix+l.code, d.target.column) + d.commentText(l.comment)
	default:
		return ""
	}
}

func (d *document) commentText(text string) string {
	if text == "" {
		return d.target.comment
	}
	return d.target.comment + " " + text
}

// pad right-pads s with spaces to width. Code at or past the width gets a
// single separating space.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}
