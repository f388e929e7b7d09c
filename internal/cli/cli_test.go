package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

const testInput = `BEGIN
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

func writeInputFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.txt")
	if err := os.WriteFile(path, []byte(testInput), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRunCommand_PrintsAllAlgorithms(t *testing.T) {
	out, err := execute(t, "run", writeInputFile(t))
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}

	for _, want := range []string{"FCFS:", "RR:", "SRR:", "FB:", "Summary", "T1: p1", "T7: p2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCommand_SingleAlgorithm(t *testing.T) {
	out, err := execute(t, "run", "--algorithm", "fcfs", writeInputFile(t))
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !strings.Contains(out, "FCFS:") {
		t.Errorf("output missing FCFS section:\n%s", out)
	}
	for _, absent := range []string{"RR:", "SRR:", "FB:"} {
		if strings.Contains(out, "\n"+absent) {
			t.Errorf("output unexpectedly contains %q:\n%s", absent, out)
		}
	}
}

func TestRunCommand_UnknownAlgorithm(t *testing.T) {
	if _, err := execute(t, "run", "--algorithm", "sjf", writeInputFile(t)); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestRunCommand_MissingFile(t *testing.T) {
	if _, err := execute(t, "run", "nope.txt"); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestRunCommand_ParseErrorReportsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("DISP: 1\nbogus line\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	_, err := execute(t, "run", path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name line 2", err)
	}
}

func TestRunSaveListShow_RoundTrip(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")

	out, err := execute(t, "run", "--save", "--db", db, writeInputFile(t))
	if err != nil {
		t.Fatalf("run --save: %v\n%s", err, out)
	}

	m := regexp.MustCompile(`Saved as (run_\S+)`).FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("no saved run ID in output:\n%s", out)
	}
	runID := m[1]

	out, err = execute(t, "list", "--db", db)
	if err != nil {
		t.Fatalf("list: %v\n%s", err, out)
	}
	if !strings.Contains(out, runID) {
		t.Errorf("list output missing %s:\n%s", runID, out)
	}
	if !strings.Contains(out, "workload.txt") {
		t.Errorf("list output missing run name:\n%s", out)
	}

	out, err = execute(t, "show", "--db", db, runID)
	if err != nil {
		t.Fatalf("show: %v\n%s", err, out)
	}
	for _, want := range []string{"FCFS:", "Summary", "T1: p1"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestListCommand_EmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")
	out, err := execute(t, "list", "--db", db)
	if err != nil {
		t.Fatalf("list: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No saved runs.") {
		t.Errorf("output = %q, want 'No saved runs.'", out)
	}
}

func TestShowCommand_MissingRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")
	if _, err := execute(t, "show", "--db", db, "run_missing"); err == nil {
		t.Fatal("expected error for missing run")
	}
}
