package parser

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func testParser() *Parser {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const sampleInput = `BEGIN
DISP: 1
PID: p1
ArrTime: 0
SrvTime: 5
PID: p2
ArrTime: 2
SrvTime: 3
END
EOF
`

func TestParse_ValidInput(t *testing.T) {
	w, err := testParser().Parse(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if w.DispatchCost != 1 {
		t.Errorf("dispatch cost = %d, want 1", w.DispatchCost)
	}
	if len(w.Processes) != 2 {
		t.Fatalf("got %d processes, want 2", len(w.Processes))
	}
	p1, p2 := w.Processes[0], w.Processes[1]
	if p1.ID != "p1" || p1.Arrival != 0 || p1.Service != 5 {
		t.Errorf("p1 = %+v, want {p1 0 5}", p1)
	}
	if p2.ID != "p2" || p2.Arrival != 2 || p2.Service != 3 {
		t.Errorf("p2 = %+v, want {p2 2 3}", p2)
	}
}

func TestParse_IgnoresMarkersCaseAndBlankLines(t *testing.T) {
	input := "begin\n\nDISP: 0\n\nPID: p3\nArrTime: 1\nSrvTime: 2\n\neof\n"
	w, err := testParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(w.Processes) != 1 || w.Processes[0].ID != "p3" {
		t.Errorf("processes = %+v, want single p3", w.Processes)
	}
}

func TestParse_KeysAreCaseInsensitive(t *testing.T) {
	input := "disp: 2\npid: p1\narrtime: 0\nsrvtime: 4\n"
	w, err := testParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if w.DispatchCost != 2 || len(w.Processes) != 1 {
		t.Errorf("workload = %+v, want DISP 2 and one process", w)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "malformed line",
			input:    "DISP: 1\ngarbage here\n",
			wantLine: 2,
			wantMsg:  "malformed line",
		},
		{
			name:     "duplicate DISP",
			input:    "DISP: 1\nDISP: 2\n",
			wantLine: 2,
			wantMsg:  "DISP specified more than once",
		},
		{
			name:     "missing DISP",
			input:    "PID: p1\nArrTime: 0\nSrvTime: 1\n",
			wantLine: 0,
			wantMsg:  "missing required DISP",
		},
		{
			name:     "negative DISP",
			input:    "DISP: -1\n",
			wantLine: 1,
			wantMsg:  "DISP must be >= 0",
		},
		{
			name:     "unknown key",
			input:    "DISP: 1\nPriority: 3\n",
			wantLine: 2,
			wantMsg:  "unknown key",
		},
		{
			name:     "ArrTime before PID",
			input:    "DISP: 1\nArrTime: 0\n",
			wantLine: 2,
			wantMsg:  "ArrTime before any PID",
		},
		{
			name:     "SrvTime before PID",
			input:    "DISP: 1\nSrvTime: 3\n",
			wantLine: 2,
			wantMsg:  "SrvTime before any PID",
		},
		{
			name:     "non-numeric value",
			input:    "DISP: 1\nPID: p1\nArrTime: soon\n",
			wantLine: 3,
			wantMsg:  "invalid integer",
		},
		{
			name:     "zero service time",
			input:    "DISP: 1\nPID: p1\nArrTime: 0\nSrvTime: 0\n",
			wantLine: 4,
			wantMsg:  "SrvTime must be > 0",
		},
		{
			name:     "negative arrival",
			input:    "DISP: 1\nPID: p1\nArrTime: -2\nSrvTime: 1\n",
			wantLine: 3,
			wantMsg:  "ArrTime must be >= 0",
		},
		{
			name:     "missing SrvTime at EOF",
			input:    "DISP: 1\nPID: p1\nArrTime: 0\n",
			wantLine: 2,
			wantMsg:  "missing SrvTime",
		},
		{
			name:     "missing ArrTime before next block",
			input:    "DISP: 1\nPID: p1\nSrvTime: 3\nPID: p2\nArrTime: 0\nSrvTime: 1\n",
			wantLine: 4,
			wantMsg:  "missing ArrTime",
		},
		{
			name:     "duplicate PID",
			input:    "DISP: 0\nPID: p1\nArrTime: 0\nSrvTime: 1\nPID: p1\nArrTime: 1\nSrvTime: 1\n",
			wantLine: 5,
			wantMsg:  "duplicate PID",
		},
		{
			name:     "bad PID format",
			input:    "DISP: 0\nPID: q7\nArrTime: 0\nSrvTime: 1\n",
			wantLine: 2,
			wantMsg:  "p<number>",
		},
		{
			name:     "empty PID",
			input:    "DISP: 0\nPID:\nArrTime: 0\nSrvTime: 1\n",
			wantLine: 2,
			wantMsg:  "PID value missing",
		},
		{
			name:     "decreasing arrivals",
			input:    "DISP: 0\nPID: p1\nArrTime: 5\nSrvTime: 1\nPID: p2\nArrTime: 2\nSrvTime: 1\n",
			wantLine: 0,
			wantMsg:  "non-decreasing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testParser().Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error type %T, want *ParseError (%v)", err, err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("error line = %d, want %d (%v)", pe.Line, tt.wantLine, pe)
			}
			if !strings.Contains(pe.Msg, tt.wantMsg) {
				t.Errorf("error %q does not contain %q", pe.Msg, tt.wantMsg)
			}
		})
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	if _, err := testParser().ParseFile("does-not-exist.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
