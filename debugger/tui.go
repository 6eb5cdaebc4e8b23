package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/weave/service"
)

// TUI is the text user interface over a Debugger session.
type TUI struct {
	// Core components
	Debugger *Debugger
	App      *tview.Application
	Pages    *tview.Pages

	// Layout containers
	MainLayout *tview.Flex
	LeftPanel  *tview.Flex
	RightPanel *tview.Flex

	// View panels
	SourceView      *tview.TextView
	TokenListView   *tview.TextView
	DiagnosticsView *tview.TextView
	OutputView      *tview.TextView
	CommandInput    *tview.InputField
}

// NewTUI creates a new text user interface over dbg.
func NewTUI(dbg *Debugger) *TUI {
	tui := &TUI{
		Debugger: dbg,
		App:      tview.NewApplication(),
	}

	tui.initializeViews()
	tui.buildLayout()
	tui.setupKeyBindings()

	return tui
}

// initializeViews creates all the view panels.
func (t *TUI) initializeViews() {
	t.SourceView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.SourceView.SetBorder(true).SetTitle(" Source ")

	t.TokenListView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.TokenListView.SetBorder(true).SetTitle(" Tokens ")

	t.DiagnosticsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.DiagnosticsView.SetBorder(true).SetTitle(" Diagnostics ")

	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

// buildLayout constructs the TUI layout.
func (t *TUI) buildLayout() {
	t.LeftPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.SourceView, 0, 3, false).
		AddItem(t.TokenListView, TokenListRows, 0, false)

	t.RightPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.DiagnosticsView, DiagnosticsViewRows, 0, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.LeftPanel, 0, 3, false).
		AddItem(t.RightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

// setupKeyBindings sets up keyboard shortcuts.
func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			t.executeCommand("help")
			return nil
		case tcell.KeyF5:
			t.executeCommand("next")
			return nil
		case tcell.KeyF6:
			t.executeCommand("prev")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

// handleCommand processes command input.
func (t *TUI) handleCommand(key tcell.Key) {
	if key == tcell.KeyEnter {
		cmd := t.CommandInput.GetText()
		if cmd != "" {
			t.executeCommand(cmd)
			t.CommandInput.SetText("")
		}
	}
}

// executeCommand executes a debugger command and refreshes every panel.
func (t *TUI) executeCommand(cmd string) {
	t.Debugger.Output.Reset()

	err := t.Debugger.ExecuteCommand(cmd)
	output := t.Debugger.GetOutput()

	if err != nil {
		t.WriteOutput(fmt.Sprintf("[red]Error:[white] %v\n", err))
	}
	if output != "" {
		t.WriteOutput(output)
	}

	t.RefreshAll()
}

// WriteOutput writes to the output view.
func (t *TUI) WriteOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text))
	t.OutputView.ScrollToEnd()
}

// RefreshAll refreshes all view panels.
func (t *TUI) RefreshAll() {
	t.UpdateSourceView()
	t.UpdateTokenListView()
	t.UpdateDiagnosticsView()
	t.App.Draw()
}

// UpdateSourceView updates the source code view, highlighting the line
// the cursor token sits on.
func (t *TUI) UpdateSourceView() {
	t.SourceView.Clear()

	src := t.Debugger.Service.SourceText()
	if src == nil {
		t.SourceView.SetText("[yellow]No document loaded[white]")
		return
	}

	toks := t.Debugger.Service.TokenSummaries()
	currentLine := 0
	if t.Debugger.Cursor < len(toks) {
		currentLine = toks[t.Debugger.Cursor].Line
	}

	startLine := currentLine - SourceContextLinesBefore
	if startLine < 1 {
		startLine = 1
	}
	endLine := currentLine + SourceContextLinesAfter

	var lines []string
	for i := startLine; i <= endLine && i <= src.LineCount(); i++ {
		content := strings.TrimRight(string(src.LineContentText(i-1)), "\r\n")
		marker := "  "
		color := "white"
		if i == currentLine {
			marker = "->"
			color = "yellow"
		}
		lines = append(lines, fmt.Sprintf("[%s]%s %4d: %s[white]", color, marker, i, content))
	}

	t.SourceView.SetText(strings.Join(lines, "\n"))
}

// UpdateTokenListView updates the token list, marking the cursor.
func (t *TUI) UpdateTokenListView() {
	t.TokenListView.Clear()

	if !t.Debugger.Service.Loaded() {
		t.TokenListView.SetText("[yellow]No document loaded[white]")
		return
	}

	toks := t.Debugger.Service.TokenSummaries()
	start := t.Debugger.Cursor - TokenListContextBefore
	if start < 0 {
		start = 0
	}
	end := t.Debugger.Cursor + TokenListContextAfter
	if end > len(toks) {
		end = len(toks)
	}

	var lines []string
	for i := start; i < end; i++ {
		tok := toks[i]
		marker := "  "
		color := "white"
		if i == t.Debugger.Cursor {
			marker = "->"
			color = "yellow"
		}
		lines = append(lines, fmt.Sprintf("[%s]%s %4d: %-20s %q[white]", color, marker, i, tok.Kind, tok.Text))
	}

	t.TokenListView.SetText(strings.Join(lines, "\n"))
}

// UpdateDiagnosticsView updates the diagnostics panel.
func (t *TUI) UpdateDiagnosticsView() {
	t.DiagnosticsView.Clear()

	if !t.Debugger.Service.Loaded() {
		t.DiagnosticsView.SetText("[yellow]No document loaded[white]")
		return
	}

	diags := t.Debugger.Service.DiagnosticSummaries()
	if len(diags) == 0 {
		t.DiagnosticsView.SetText("[green]No diagnostics[white]")
		return
	}

	var lines []string
	for _, d := range diags {
		lines = append(lines, fmt.Sprintf("[%s]%s[white] %d:%d %s", levelColor(d), d.Level, d.Line, d.Column, d.Message))
	}
	t.DiagnosticsView.SetText(strings.Join(lines, "\n"))
}

func levelColor(d service.DiagnosticSummary) string {
	switch d.Level {
	case "error":
		return "red"
	case "warning":
		return "yellow"
	default:
		return "white"
	}
}

// Run starts the TUI application.
func (t *TUI) Run() error {
	t.RefreshAll()

	t.WriteOutput("[green]Weave Lexer Debugger[white]\n")
	t.WriteOutput("Press F1 for help, F5/F6 to move the token cursor\n")
	t.WriteOutput("Type 'help' for the command list\n\n")

	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop stops the TUI application.
func (t *TUI) Stop() {
	t.App.Stop()
}
