// Package codewriter provides the line sink that element writers render into.
// Writers emit whole lines tagged with an indentation depth; turning depths into
// indentation text is left to the consumer of the recorded lines.
package codewriter

import "strings"

// LineWriter receives rendered lines.
type LineWriter interface {
	// WriteLine writes one line at the current depth. An empty line is
	// recorded without indentation.
	WriteLine(line string)

	// WriteLines writes each line at the current depth.
	WriteLines(lines ...string)

	// IncreaseIndent increases the depth of subsequent lines.
	IncreaseIndent()

	// DecreaseIndent decreases the depth of subsequent lines. It never goes
	// below zero.
	DecreaseIndent()

	// StartBlock writes the opening line of a block and increases the depth.
	StartBlock(line string)

	// CloseBlock decreases the depth and writes the closing line of a block.
	// An empty line closes with "}".
	CloseBlock(line string)
}

// Line is a recorded line and its indentation depth.
type Line struct {
	Depth int
	Text  string
}

// Buffer is an in-memory LineWriter.
// A Buffer is not safe for concurrent use; each rendered unit gets its own.
type Buffer struct {
	lines []Line
	depth int
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// WriteLine implements LineWriter.
func (b *Buffer) WriteLine(line string) {
	if line == "" {
		b.lines = append(b.lines, Line{})
		return
	}
	b.lines = append(b.lines, Line{Depth: b.depth, Text: line})
}

// WriteLines implements LineWriter.
func (b *Buffer) WriteLines(lines ...string) {
	for _, l := range lines {
		b.WriteLine(l)
	}
}

// IncreaseIndent implements LineWriter.
func (b *Buffer) IncreaseIndent() {
	b.depth++
}

// DecreaseIndent implements LineWriter.
func (b *Buffer) DecreaseIndent() {
	if b.depth > 0 {
		b.depth--
	}
}

// StartBlock implements LineWriter.
func (b *Buffer) StartBlock(line string) {
	b.WriteLine(line)
	b.IncreaseIndent()
}

// CloseBlock implements LineWriter.
func (b *Buffer) CloseBlock(line string) {
	if line == "" {
		line = "}"
	}
	b.DecreaseIndent()
	b.WriteLine(line)
}

// Depth returns the current indentation depth.
func (b *Buffer) Depth() int { return b.depth }

// Len returns the number of recorded lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Lines returns a copy of the recorded lines.
func (b *Buffer) Lines() []Line {
	result := make([]Line, len(b.lines))
	copy(result, b.lines)
	return result
}

// Reset discards all recorded lines and resets the depth.
func (b *Buffer) Reset() {
	b.lines = b.lines[:0]
	b.depth = 0
}

// Render joins the recorded lines, indenting each by depth copies of indent.
// The result ends with a newline unless the buffer is empty.
func (b *Buffer) Render(indent string) string {
	var sb strings.Builder
	for _, l := range b.lines {
		if l.Text != "" {
			sb.WriteString(strings.Repeat(indent, l.Depth))
			sb.WriteString(l.Text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Texts returns the recorded lines without indentation.
func (b *Buffer) Texts() []string {
	result := make([]string, len(b.lines))
	for i, l := range b.lines {
		result[i] = l.Text
	}
	return result
}

// WriteTo replays the recorded lines into w, nested below w's current depth.
func (b *Buffer) WriteTo(w LineWriter) {
	depth := 0
	for _, l := range b.lines {
		if l.Text == "" {
			w.WriteLine("")
			continue
		}
		for ; depth < l.Depth; depth++ {
			w.IncreaseIndent()
		}
		for ; depth > l.Depth; depth-- {
			w.DecreaseIndent()
		}
		w.WriteLine(l.Text)
	}
	for ; depth > 0; depth-- {
		w.DecreaseIndent()
	}
}
