package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// TestTextWriter_WriteReport verifies the text layout
func TestTextWriter_WriteReport(t *testing.T) {
	r := replay(t, testutil.FoolsMateScript)

	var buf bytes.Buffer
	writer := NewTextWriter(&buf, 80)
	if err := writer.WriteReport(r); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`[Game "Fool's mate"]`,
		`[Light "Light"]`,
		"1. f3 1. e5 2. g4 2. Qh4#",
		"Checkmate 0-1",
		"Light: 0 points",
	} {
		testutil.AssertContains(t, out, want)
	}
}

// failingWriter fails every write.
type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestTextWriter_WriteError(t *testing.T) {
	errClosed := errors.New("pipe closed")
	tw := NewTextWriter(failingWriter{err: errClosed}, 80)

	err := tw.WriteReport(replay(t, testutil.FoolsMateScript))
	testutil.AssertErrorIs(t, err, errClosed)
}

func TestTextWriter_RejectedLines(t *testing.T) {
	r := replay(t, "e2 e5\n")

	var buf bytes.Buffer
	OutputReport(&buf, r, 80)

	testutil.AssertContains(t, buf.String(), "line 1: e2 e5 rejected: illegal move")
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1. e4", "1. e5", "2. Nf3"} {
		ow.Write(s)
	}
	ow.NewLine()

	want := "1. e4\n1. e5\n2. Nf3\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestEscapeTagValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{`a\b`, `a\\b`},
	}
	for _, tt := range tests {
		if got := escapeTagValue(tt.in); got != tt.want {
			t.Errorf("escapeTagValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestJSONWriter_RoundTrip verifies batched JSON decodes back to the reports
func TestJSONWriter_RoundTrip(t *testing.T) {
	reports := []*Report{
		replay(t, testutil.FoolsMateScript),
		replay(t, "e2 e4\nresign light\n"),
	}

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	for _, r := range reports {
		if err := writer.WriteReport(r); err != nil {
			t.Fatalf("WriteReport failed: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var decoded JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, decoded.Games, reports)
}

func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)
	if err := writer.WriteReport(replay(t, "e2 e4\n")); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("single writer should write immediately")
	}

	var r Report
	if err := json.Unmarshal(buf.Bytes(), &r); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, r.Steps[0].Notation, "1. e4")
	testutil.AssertEqual(t, r.Result, "*")
}

// TestReportWriter_Interface verifies that writers implement the interface
func TestReportWriter_Interface(t *testing.T) {
	var buf bytes.Buffer
	var _ ReportWriter = NewTextWriter(&buf, 0)
	var _ ReportWriter = NewJSONWriter(&buf)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()
	if _, ok := NewWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("NewWriter with JSON output should return *JSONWriter")
	}

	cfg = config.NewConfig()
	if _, ok := NewWriter(&buf, cfg).(*TextWriter); !ok {
		t.Error("NewWriter by default should return *TextWriter")
	}
}

func TestJSONWriter_EmptyFlush(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONWriter(&buf).Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "" {
		t.Errorf("empty flush wrote %q", buf.String())
	}
}
