// Package gui is a desktop source explorer for a service.LexService,
// built on fyne.io/fyne: load a document, browse its tokens and
// diagnostics, and re-run format/lint/xref over the current text.
package gui

import (
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/lookbusy1344/weave/service"
	"github.com/lookbusy1344/weave/tools"
)

// GUI is the desktop window over one LexService.
type GUI struct {
	Service *service.LexService
	App     fyne.App
	Window  fyne.Window

	SourceView      *widget.TextGrid
	TokenList       *widget.List
	DiagnosticsView *widget.TextGrid
	ConsoleOutput   *widget.TextGrid
	StatusLabel     *widget.Label

	Toolbar *widget.Toolbar

	tokens []service.TokenSummary

	consoleBuffer strings.Builder
	consoleMutex  sync.Mutex
}

// RunGUI starts the desktop source explorer over svc and blocks until
// the window is closed.
func RunGUI(svc *service.LexService) error {
	g := newGUI(svc)
	g.Window.ShowAndRun()
	return nil
}

func newGUI(svc *service.LexService) *GUI {
	myApp := app.New()
	myWindow := myApp.NewWindow("Weave Source Explorer")

	g := &GUI{
		Service: svc,
		App:     myApp,
		Window:  myWindow,
	}

	g.initializeViews()
	g.buildLayout()
	g.setupToolbar()

	myWindow.Resize(fyne.NewSize(1200, 800))

	return g
}

func (g *GUI) initializeViews() {
	g.SourceView = widget.NewTextGrid()
	g.SourceView.SetText("No document loaded")

	g.TokenList = widget.NewList(
		func() int { return len(g.tokens) },
		func() fyne.CanvasObject { return widget.NewLabel("template") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			t := g.tokens[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%4d: %-20s %d:%d %q", id, t.Kind, t.Line, t.Column, t.Text))
		},
	)

	g.DiagnosticsView = widget.NewTextGrid()
	g.DiagnosticsView.SetText("")

	g.ConsoleOutput = widget.NewTextGrid()
	g.ConsoleOutput.SetText("")

	g.StatusLabel = widget.NewLabel("Ready")
}

func (g *GUI) buildLayout() {
	sourcePanel := container.NewBorder(
		widget.NewLabel("Source"), nil, nil, nil,
		container.NewScroll(g.SourceView),
	)
	tokenPanel := container.NewBorder(
		widget.NewLabel("Tokens"), nil, nil, nil,
		g.TokenList,
	)
	diagnosticsPanel := container.NewBorder(
		widget.NewLabel("Diagnostics"), nil, nil, nil,
		container.NewScroll(g.DiagnosticsView),
	)
	consolePanel := container.NewBorder(
		widget.NewLabel("Console"), nil, nil, nil,
		container.NewScroll(g.ConsoleOutput),
	)

	rightTabs := container.NewAppTabs(
		container.NewTabItem("Diagnostics", diagnosticsPanel),
		container.NewTabItem("Console", consolePanel),
	)

	rightSplit := container.NewVSplit(tokenPanel, rightTabs)
	rightSplit.SetOffset(0.5)

	mainSplit := container.NewHSplit(sourcePanel, rightSplit)
	mainSplit.SetOffset(0.55)

	content := container.NewBorder(
		g.Toolbar,
		container.NewBorder(nil, nil, nil, nil, g.StatusLabel),
		nil, nil,
		mainSplit,
	)

	g.Window.SetContent(content)
}

func (g *GUI) setupToolbar() {
	g.Toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { g.openFile() }),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() { g.refreshViews() }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { g.formatDocument() }),
		widget.NewToolbarAction(theme.WarningIcon(), func() { g.lintDocument() }),
		widget.NewToolbarAction(theme.SearchIcon(), func() { g.xrefDocument() }),
	)
}

// openFile shows a file picker and lexes the chosen document.
func (g *GUI) openFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		uri := reader.URI()

		var buf strings.Builder
		chunk := make([]byte, 4096)
		for {
			n, rerr := reader.Read(chunk)
			if n > 0 {
				buf.Write(chunk[:n])
			}
			if rerr != nil {
				break
			}
		}

		if err := g.Service.LoadSource(uri.Name(), []byte(buf.String())); err != nil {
			g.StatusLabel.SetText(fmt.Sprintf("error: %v", err))
			return
		}
		g.StatusLabel.SetText("loaded " + uri.Name())
		g.refreshViews()
	}, g.Window)
}

func (g *GUI) refreshViews() {
	g.updateSource()
	g.updateTokens()
	g.updateDiagnostics()
}

func (g *GUI) updateSource() {
	src := g.Service.SourceText()
	if src == nil {
		g.SourceView.SetText("No document loaded")
		return
	}

	var sb strings.Builder
	for i := 0; i < src.LineCount(); i++ {
		fmt.Fprintf(&sb, "%4d: %s\n", i+1, src.LineContentText(i))
	}
	g.SourceView.SetText(sb.String())
}

func (g *GUI) updateTokens() {
	g.tokens = g.Service.TokenSummaries()
	g.TokenList.Refresh()
}

func (g *GUI) updateDiagnostics() {
	diags := g.Service.DiagnosticSummaries()
	if len(diags) == 0 {
		g.DiagnosticsView.SetText("no diagnostics")
		return
	}
	var sb strings.Builder
	for _, d := range diags {
		fmt.Fprintf(&sb, "%s: %d:%d: %s\n", d.Level, d.Line, d.Column, d.Message)
	}
	g.DiagnosticsView.SetText(sb.String())
}

func (g *GUI) writeConsole(text string) {
	g.consoleMutex.Lock()
	defer g.consoleMutex.Unlock()
	g.consoleBuffer.WriteString(text)
	g.ConsoleOutput.SetText(g.consoleBuffer.String())
}

func (g *GUI) formatDocument() {
	src := g.Service.SourceText()
	if src == nil {
		g.writeConsole("no document loaded\n")
		return
	}
	formatted, err := tools.FormatString(string(src.Bytes()), src.Name())
	if err != nil {
		g.writeConsole(fmt.Sprintf("format error: %v\n", err))
		return
	}
	g.writeConsole("--- formatted ---\n" + formatted)
}

func (g *GUI) lintDocument() {
	src := g.Service.SourceText()
	if src == nil {
		g.writeConsole("no document loaded\n")
		return
	}
	issues := tools.LintString(string(src.Bytes()), src.Name())
	if len(issues) == 0 {
		g.writeConsole("no lint issues\n")
		return
	}
	for _, issue := range issues {
		g.writeConsole(fmt.Sprintf("%s: %d:%d: %s\n", issue.Level, issue.Line, issue.Column, issue.Message))
	}
}

func (g *GUI) xrefDocument() {
	src := g.Service.SourceText()
	if src == nil {
		g.writeConsole("no document loaded\n")
		return
	}
	symbols, err := tools.NewXRefGenerator().Generate(string(src.Bytes()), src.Name())
	if err != nil {
		g.writeConsole(fmt.Sprintf("xref error: %v\n", err))
		return
	}
	for name, sym := range symbols {
		g.writeConsole(fmt.Sprintf("%s: %d occurrence(s)\n", name, len(sym.Occurrences)))
	}
}
