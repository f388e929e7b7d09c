// Package parser reads the key-value workload format and produces a
// validated model.Workload. Every malformed input is rejected here with a
// line-numbered error; the simulator never re-validates.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/me/schedsim/pkg/model"
)

// ParseError is a user-facing input error with the offending line number.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

func errf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Parser converts workload text into a model.Workload.
//
// The format is line-oriented key-value pairs:
//
//	DISP: 1
//	PID: p1
//	ArrTime: 0
//	SrvTime: 5
//
// Keys are case-insensitive. Blank lines are skipped, and bare BEGIN, END,
// and EOF marker lines are ignored. DISP must appear exactly once; each
// process block starts at its PID line and must carry both ArrTime and
// SrvTime before the next block begins.
type Parser struct {
	logger *slog.Logger
}

// New creates a Parser with the given logger.
func New(logger *slog.Logger) *Parser {
	return &Parser{logger: logger.With("component", "parser")}
}

// ParseFile parses a workload file from disk.
func (p *Parser) ParseFile(path string) (*model.Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads workload text and returns the validated workload.
func (p *Parser) Parse(r io.Reader) (*model.Workload, error) {
	var (
		disp     *int
		procs    []model.Process
		seenPIDs = make(map[string]int) // pid -> defining line

		curPID  string
		curLine int // line of the current PID, for error reporting
		curArr  *int
		curSrv  *int
	)

	finishBlock := func(line int) error {
		if curPID == "" {
			return nil
		}
		if curArr == nil {
			return errf(line, "missing ArrTime for process %s", curPID)
		}
		if curSrv == nil {
			return errf(line, "missing SrvTime for process %s", curPID)
		}
		procs = append(procs, model.Process{ID: curPID, Arrival: *curArr, Service: *curSrv})
		curPID, curArr, curSrv = "", nil, nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !strings.Contains(line, ":") {
			switch strings.ToUpper(line) {
			case "BEGIN", "END", "EOF":
				continue // structural markers, no content
			}
			return nil, errf(lineNo, "malformed line (expected Key: Value): %s", line)
		}

		key, value, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch strings.ToUpper(key) {
		case "DISP":
			if disp != nil {
				return nil, errf(lineNo, "DISP specified more than once")
			}
			v, err := parseIntField(value, lineNo, "DISP")
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, errf(lineNo, "DISP must be >= 0, got %d", v)
			}
			disp = &v

		case "PID":
			if err := finishBlock(lineNo); err != nil {
				return nil, err
			}
			if value == "" {
				return nil, errf(lineNo, "PID value missing")
			}
			if _, err := model.PIDNumber(value); err != nil {
				return nil, errf(lineNo, "%v", err)
			}
			if prev, dup := seenPIDs[value]; dup {
				return nil, errf(lineNo, "duplicate PID %s (first defined on line %d)", value, prev)
			}
			seenPIDs[value] = lineNo
			curPID = value
			curLine = lineNo

		case "ARRTIME":
			if curPID == "" {
				return nil, errf(lineNo, "ArrTime before any PID block")
			}
			v, err := parseIntField(value, lineNo, "ArrTime")
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, errf(lineNo, "ArrTime must be >= 0, got %d", v)
			}
			curArr = &v

		case "SRVTIME":
			if curPID == "" {
				return nil, errf(lineNo, "SrvTime before any PID block")
			}
			v, err := parseIntField(value, lineNo, "SrvTime")
			if err != nil {
				return nil, err
			}
			if v <= 0 {
				return nil, errf(lineNo, "SrvTime must be > 0, got %d", v)
			}
			curSrv = &v

		default:
			return nil, errf(lineNo, "unknown key: %s", key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if err := finishBlock(curLine); err != nil {
		return nil, err
	}
	if disp == nil {
		return nil, errf(0, "missing required DISP line")
	}

	// Arrivals must be non-decreasing in file order; the simulator admits
	// processes by walking this sequence.
	for i := 1; i < len(procs); i++ {
		if procs[i].Arrival < procs[i-1].Arrival {
			return nil, errf(0, "arrival times must be non-decreasing: %s at %d after %s at %d",
				procs[i].ID, procs[i].Arrival, procs[i-1].ID, procs[i-1].Arrival)
		}
	}

	p.logger.Debug("workload parsed", "dispatch_cost", *disp, "processes", len(procs))
	return &model.Workload{DispatchCost: *disp, Processes: procs}, nil
}

func parseIntField(s string, line int, field string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errf(line, "invalid integer for %s: %q", field, s)
	}
	return v, nil
}
