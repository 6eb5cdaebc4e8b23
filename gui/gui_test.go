package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/lexer"
	"github.com/lookbusy1344/weave/service"
)

func newTestGUI(t *testing.T) *GUI {
	t.Helper()

	testApp := test.NewApp()
	t.Cleanup(testApp.Quit)

	svc := service.NewLexService(intern.NewPool(), lexer.TriviaDocumentation)

	g := &GUI{
		Service: svc,
		App:     testApp,
		Window:  testApp.NewWindow("test"),
	}
	g.initializeViews()
	g.buildLayout()
	g.setupToolbar()
	return g
}

func TestNewGUI_InitializesViews(t *testing.T) {
	g := newTestGUI(t)

	if g.SourceView == nil {
		t.Error("SourceView not initialized")
	}
	if g.TokenList == nil {
		t.Error("TokenList not initialized")
	}
	if g.DiagnosticsView == nil {
		t.Error("DiagnosticsView not initialized")
	}
	if g.ConsoleOutput == nil {
		t.Error("ConsoleOutput not initialized")
	}
	if g.StatusLabel == nil {
		t.Error("StatusLabel not initialized")
	}
	if g.Toolbar == nil {
		t.Error("Toolbar not initialized")
	}
}

func TestGUI_UpdateSourceWithNoDocument(t *testing.T) {
	g := newTestGUI(t)

	g.updateSource()
	if g.SourceView.Text() != "No document loaded" {
		t.Errorf("SourceView.Text() = %q, want %q", g.SourceView.Text(), "No document loaded")
	}
}

func TestGUI_RefreshViewsAfterLoad(t *testing.T) {
	g := newTestGUI(t)

	if err := g.Service.LoadSource("sample.weave", []byte("let x = 1;\n")); err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	g.refreshViews()

	if g.SourceView.Text() == "No document loaded" {
		t.Error("SourceView.Text() still reports no document after load")
	}
	if len(g.tokens) == 0 {
		t.Error("tokens not populated after refreshViews")
	}
	if g.DiagnosticsView.Text() != "no diagnostics" {
		t.Errorf("DiagnosticsView.Text() = %q, want %q for a clean document", g.DiagnosticsView.Text(), "no diagnostics")
	}
}

func TestGUI_FormatDocumentWritesConsole(t *testing.T) {
	g := newTestGUI(t)

	if err := g.Service.LoadSource("sample.weave", []byte("let x=1;\n")); err != nil {
		t.Fatalf("LoadSource: %v", err)
	}

	g.formatDocument()
	if g.ConsoleOutput.Text() == "" {
		t.Error("ConsoleOutput.Text() empty after formatDocument")
	}
}

func TestGUI_LintAndXRefWithNoDocument(t *testing.T) {
	g := newTestGUI(t)

	g.lintDocument()
	if g.ConsoleOutput.Text() != "no document loaded\n" {
		t.Errorf("lintDocument console = %q, want %q", g.ConsoleOutput.Text(), "no document loaded\n")
	}

	g.xrefDocument()
	want := "no document loaded\nno document loaded\n"
	if g.ConsoleOutput.Text() != want {
		t.Errorf("xrefDocument console = %q, want %q", g.ConsoleOutput.Text(), want)
	}
}
