package debugger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/lexer"
	"github.com/lookbusy1344/weave/service"
)

func newTestDebugger(t *testing.T) *Debugger {
	t.Helper()
	svc := service.NewLexService(intern.NewPool(), lexer.TriviaDocumentation)
	return NewDebugger(svc)
}

func writeTestFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.weave")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestDebugger_LoadPopulatesTokensAndResetsCursor(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let x = 1;\n")

	dbg.Cursor = 5
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if dbg.Cursor != 0 {
		t.Fatalf("Cursor = %d, want 0 after load", dbg.Cursor)
	}
	if !dbg.Service.Loaded() {
		t.Fatal("Service.Loaded() = false after load")
	}
	if out := dbg.GetOutput(); !strings.Contains(out, "tokens") {
		t.Fatalf("load output = %q, want mention of token count", out)
	}
}

func TestDebugger_LoadMissingFileReturnsError(t *testing.T) {
	dbg := newTestDebugger(t)
	if err := dbg.ExecuteCommand("load /nonexistent/path.weave"); err == nil {
		t.Fatal("ExecuteCommand(load missing file) = nil error, want error")
	}
}

func TestDebugger_NextAndPrevMoveCursor(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let x = 1;\nlet y = 2;\n")
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}

	start := dbg.Cursor
	if err := dbg.ExecuteCommand("next"); err != nil {
		t.Fatalf("next: %v", err)
	}
	if dbg.Cursor != start+1 {
		t.Fatalf("Cursor = %d, want %d after next", dbg.Cursor, start+1)
	}

	if err := dbg.ExecuteCommand("prev"); err != nil {
		t.Fatalf("prev: %v", err)
	}
	if dbg.Cursor != start {
		t.Fatalf("Cursor = %d, want %d after prev", dbg.Cursor, start)
	}
}

func TestDebugger_PrevAtFirstTokenErrors(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let x = 1;\n")
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := dbg.ExecuteCommand("prev"); err == nil {
		t.Fatal("ExecuteCommand(prev) at first token = nil error, want error")
	}
}

func TestDebugger_GotoMovesToIndex(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let x = 1;\nlet y = 2;\n")
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}

	toks := dbg.Service.TokenSummaries()
	if len(toks) < 3 {
		t.Fatalf("got %d tokens, want at least 3", len(toks))
	}

	if err := dbg.ExecuteCommand("goto 2"); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if dbg.Cursor != 2 {
		t.Fatalf("Cursor = %d, want 2 after goto 2", dbg.Cursor)
	}
}

func TestDebugger_GotoOutOfRangeErrors(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let x = 1;\n")
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := dbg.ExecuteCommand("goto 9999"); err == nil {
		t.Fatal("ExecuteCommand(goto out of range) = nil error, want error")
	}
}

func TestDebugger_FindLocatesMatchingToken(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let alpha = 1;\nlet beta = 2;\n")
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := dbg.ExecuteCommand("find beta"); err != nil {
		t.Fatalf("find: %v", err)
	}

	toks := dbg.Service.TokenSummaries()
	if !strings.Contains(toks[dbg.Cursor].Text, "beta") {
		t.Fatalf("cursor landed on %q, want a token containing %q", toks[dbg.Cursor].Text, "beta")
	}
}

func TestDebugger_FindNotFoundReturnsError(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let x = 1;\n")
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := dbg.ExecuteCommand("find nosuchidentifier"); err == nil {
		t.Fatal("ExecuteCommand(find missing text) = nil error, want error")
	}
}

func TestDebugger_UnknownCommandReturnsError(t *testing.T) {
	dbg := newTestDebugger(t)
	if err := dbg.ExecuteCommand("frobnicate"); err == nil {
		t.Fatal("ExecuteCommand(unknown command) = nil error, want error")
	}
}

func TestDebugger_EmptyCommandRepeatsLast(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let x = 1;\nlet y = 2;\n")
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}
	dbg.GetOutput()

	if err := dbg.ExecuteCommand("next"); err != nil {
		t.Fatalf("next: %v", err)
	}
	afterFirstNext := dbg.Cursor
	dbg.GetOutput()

	if err := dbg.ExecuteCommand(""); err != nil {
		t.Fatalf("repeat via empty command: %v", err)
	}
	if dbg.Cursor != afterFirstNext+1 {
		t.Fatalf("Cursor = %d, want %d after repeating next", dbg.Cursor, afterFirstNext+1)
	}
}

func TestDebugger_FormatLintXRefRequireLoadedDocument(t *testing.T) {
	dbg := newTestDebugger(t)

	for _, cmd := range []string{"format", "lint", "xref", "tokens", "diagnostics", "render", "dump"} {
		if err := dbg.ExecuteCommand(cmd); err == nil {
			t.Errorf("ExecuteCommand(%q) with no document loaded = nil error, want error", cmd)
		}
	}
}

func TestDebugger_BackAndForwardReplayHistory(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let x = 1;\nlet y = 2;\nlet z = 3;\n")
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := dbg.ExecuteCommand("goto 3"); err != nil {
		t.Fatalf("goto 3: %v", err)
	}
	if err := dbg.ExecuteCommand("goto 6"); err != nil {
		t.Fatalf("goto 6: %v", err)
	}

	if err := dbg.ExecuteCommand("back"); err != nil {
		t.Fatalf("back: %v", err)
	}
	if dbg.Cursor != 3 {
		t.Fatalf("Cursor = %d, want 3 after back", dbg.Cursor)
	}

	if err := dbg.ExecuteCommand("forward"); err != nil {
		t.Fatalf("forward: %v", err)
	}
	if dbg.Cursor != 6 {
		t.Fatalf("Cursor = %d, want 6 after forward", dbg.Cursor)
	}
}

func TestDebugger_BackWithNoHistoryErrors(t *testing.T) {
	dbg := newTestDebugger(t)
	if err := dbg.ExecuteCommand("back"); err == nil {
		t.Fatal("ExecuteCommand(back) with no history = nil error, want error")
	}
}

func TestDebugger_HistoryListsPastCommands(t *testing.T) {
	dbg := newTestDebugger(t)
	path := writeTestFile(t, "let x = 1;\nlet y = 2;\n")
	if err := dbg.ExecuteCommand("load " + path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := dbg.ExecuteCommand("goto 3"); err != nil {
		t.Fatalf("goto 3: %v", err)
	}
	dbg.GetOutput()

	if err := dbg.ExecuteCommand("history"); err != nil {
		t.Fatalf("history: %v", err)
	}
	out := dbg.GetOutput()
	if !strings.Contains(out, "goto 3") {
		t.Fatalf("history output = %q, want it to list the earlier goto", out)
	}

	// "back"/"forward"/"history" themselves must not pollute the log.
	if err := dbg.ExecuteCommand("history"); err != nil {
		t.Fatalf("history: %v", err)
	}
	out = dbg.GetOutput()
	if strings.Count(out, "history") > 0 {
		t.Fatalf("history output = %q, want navigation commands excluded from the log", out)
	}
}

func TestDebugger_HelpListsCommands(t *testing.T) {
	dbg := newTestDebugger(t)
	if err := dbg.ExecuteCommand("help"); err != nil {
		t.Fatalf("help: %v", err)
	}
	if out := dbg.GetOutput(); !strings.Contains(out, "load") || !strings.Contains(out, "goto") {
		t.Fatalf("help output = %q, want a command listing", out)
	}
}
