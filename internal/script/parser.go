package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Parser reads scripts from a line-oriented input.
type Parser struct {
	scanner *bufio.Scanner
	file    string
	line    int

	// pending holds a game header read while finishing the previous script.
	pending     string
	pendingLine int
	hasPending  bool
	done        bool
}

// NewParser creates a parser. file names the input in error messages and
// in the default script name; it may be empty.
func NewParser(r io.Reader, file string) *Parser {
	return &Parser{scanner: bufio.NewScanner(r), file: file}
}

// ParseScript parses the next script from the input. It returns nil, nil
// when the input is exhausted.
func (p *Parser) ParseScript() (*Script, error) {
	if p.done && !p.hasPending {
		return nil, nil
	}

	s := &Script{File: p.file, Name: p.defaultName()}
	started := false
	if p.hasPending {
		s.Name, s.StartLine = p.pending, p.pendingLine
		p.hasPending = false
		started = true
	}

	for p.scanner.Scan() {
		p.line++
		text := strings.TrimSpace(p.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		keyword, rest := splitKeyword(text)
		switch keyword {
		case "game":
			if started {
				p.pending, p.pendingLine, p.hasPending = rest, p.line, true
				return s, nil
			}
			s.Name, s.StartLine, started = rest, p.line, true
		case "fen":
			if len(s.Steps) > 0 || s.FEN != "" {
				return nil, p.errorf(text, "fen must precede every move")
			}
			if rest == "" {
				return nil, p.errorf(text, "fen needs a position")
			}
			s.FEN = rest
		case "resign", "claim":
			colour, err := parseColour(rest)
			if err != nil {
				return nil, &errors.ParseError{Err: err, File: p.file, Line: p.line, Got: text}
			}
			kind := ResignStep
			if keyword == "claim" {
				kind = ClaimStep
			}
			s.Steps = append(s.Steps, Step{Line: p.line, Kind: kind, Colour: colour})
		default:
			step, err := p.parseMove(text)
			if err != nil {
				return nil, err
			}
			s.Steps = append(s.Steps, step)
		}
		if !started {
			s.StartLine, started = p.line, true
		}
	}
	p.done = true

	if err := p.scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", p.location())
	}
	if !started {
		return nil, nil
	}
	return s, nil
}

// ParseAllScripts parses every script in the input.
func (p *Parser) ParseAllScripts() ([]*Script, error) {
	var scripts []*Script
	for {
		s, err := p.ParseScript()
		if err != nil {
			return scripts, err
		}
		if s == nil {
			return scripts, nil
		}
		scripts = append(scripts, s)
	}
}

// ParseFile parses every script in the named file.
func ParseFile(path string) ([]*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scripts")
	}
	defer f.Close()
	return NewParser(f, path).ParseAllScripts()
}

// ParseString parses every script in s.
func ParseString(s string) ([]*Script, error) {
	return NewParser(strings.NewReader(s), "").ParseAllScripts()
}

// parseMove accepts "e2 e4", "e2-e4" or "e2e4", optionally followed by the
// caller's FEN for the resulting position.
func (p *Parser) parseMove(text string) (Step, error) {
	fields := strings.Fields(text)
	var source, target string
	var rest []string

	switch first := fields[0]; {
	case len(first) == 4:
		source, target, rest = first[:2], first[2:], fields[1:]
	case len(first) == 5 && (first[2] == '-' || first[2] == 'x'):
		source, target, rest = first[:2], first[3:], fields[1:]
	case len(first) == 2 && len(fields) >= 2:
		source, target, rest = first, fields[1], fields[2:]
	default:
		return Step{}, p.errorf(text, "expected a move such as e2 e4")
	}

	for _, sq := range []string{source, target} {
		if _, err := chess.ParsePosition(sq); err != nil {
			return Step{}, &errors.ParseError{Err: err, File: p.file, Line: p.line, Got: sq}
		}
	}

	return Step{
		Line:   p.line,
		Kind:   MoveStep,
		Source: strings.ToLower(source),
		Target: strings.ToLower(target),
		FEN:    strings.Join(rest, " "),
	}, nil
}

func (p *Parser) errorf(got, format string, args ...interface{}) error {
	return &errors.ParseError{
		Err:  fmt.Errorf(format+": %w", append(args, errors.ErrParseFailure)...),
		File: p.file,
		Line: p.line,
		Got:  got,
	}
}

func (p *Parser) defaultName() string {
	if p.file == "" {
		return "stdin"
	}
	return strings.TrimSuffix(filepath.Base(p.file), filepath.Ext(p.file))
}

func (p *Parser) location() string {
	if p.file == "" {
		return "input"
	}
	return p.file
}

// splitKeyword returns the lowercased first word and the trimmed remainder.
func splitKeyword(text string) (string, string) {
	i := strings.IndexAny(text, " \t")
	if i < 0 {
		return strings.ToLower(text), ""
	}
	return strings.ToLower(text[:i]), strings.TrimSpace(text[i+1:])
}

func parseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "light", "white":
		return chess.Light, nil
	case "dark", "black":
		return chess.Dark, nil
	}
	return chess.Light, fmt.Errorf("colour %q: %w", s, errors.ErrParseFailure)
}
