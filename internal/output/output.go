// Package output renders replay reports as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written to it.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 && !o.needsSpace {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputReport writes a report in the text format:
//
//	[Game "Fool's mate"]
//	[Light "Light"]
//	[Dark "Dark"]
//
//	1. f3 1. e5 2. g4 2. Qh4#
//
//	Checkmate 0-1
func OutputReport(w io.Writer, r *Report, maxLineLength int) {
	writeTag(w, "Game", r.Name)
	if r.File != "" {
		writeTag(w, "File", r.File)
	}
	writeTag(w, "GameId", r.GameID)
	if r.InitialFEN != "" {
		writeTag(w, "FEN", r.InitialFEN)
	}
	writeTag(w, "Light", r.Light.Name)
	writeTag(w, "Dark", r.Dark.Name)
	fmt.Fprintln(w)

	ow := NewOutputWriter(w, maxLineLength)
	for _, s := range r.Steps {
		if s.Accepted && s.Notation != "" {
			ow.Write(s.Notation)
		}
	}
	ow.NewLine()

	for _, s := range r.Steps {
		if s.Accepted {
			continue
		}
		why := s.Reason
		if s.Error != "" {
			why = s.Error
		}
		fmt.Fprintf(w, "line %d: %s rejected: %s\n", s.Line, s.Step, why)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", r.GameOver, r.Result)
	writeCaptures(w, r.Light)
	writeCaptures(w, r.Dark)
	fmt.Fprintf(w, "%s\n", r.FinalFEN)
	if r.Board != "" {
		fmt.Fprint(w, r.Board)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "stopped: %s\n", r.Error)
	}
	fmt.Fprintln(w)
}

func writeTag(w io.Writer, name, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// writeCaptures writes "Name: 4 points, 36 material (Knight 1, Pawn 1)".
func writeCaptures(w io.Writer, p PlayerReport) {
	fmt.Fprintf(w, "%s: %d points, %d material", p.Name, p.Points, p.Material)
	if len(p.Captured) > 0 {
		parts := make([]string, len(p.Captured))
		for i, c := range p.Captured {
			parts[i] = fmt.Sprintf("%s %d", c.Piece, c.Count)
		}
		fmt.Fprintf(w, " (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintln(w)
}
