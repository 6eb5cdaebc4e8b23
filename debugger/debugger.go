// Package debugger is an interactive front end over a service.LexService:
// a command loop plus a tcell/tview text UI for stepping through a
// document's token stream and diagnostics one request at a time.
package debugger

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/weave/service"
)

// Debugger holds the interactive session state around one LexService:
// command history, the current cursor into the token stream, and an
// output buffer commands write into.
type Debugger struct {
	Service *service.LexService

	// Command history
	History *CommandHistory

	// Cursor is the index of the currently selected token, used by
	// next/prev and by the TUI's token list highlight.
	Cursor int

	// Last command (for repeat on empty input)
	LastCommand string

	// Output buffer
	Output strings.Builder
}

// NewDebugger creates a new debugger session wrapping svc. No document
// is loaded until a "load" command runs.
func NewDebugger(svc *service.LexService) *Debugger {
	return &Debugger{
		Service: svc,
		History: NewCommandHistory(),
	}
}

// historyExempt commands replay or inspect the navigation log rather
// than advancing it, so ExecuteCommand doesn't record them back into
// History -- recording a "back" as a history entry would make the next
// "back" jump to itself.
var historyExempt = map[string]bool{
	"back": true, "bk": true,
	"forward": true, "fwd": true,
	"history": true, "hist": true,
}

// ExecuteCommand processes and executes a debugger command.
func (d *Debugger) ExecuteCommand(cmdLine string) error {
	cmdLine = strings.TrimSpace(cmdLine)

	// Empty command repeats last command (for next/prev).
	if cmdLine == "" {
		cmdLine = d.LastCommand
	}

	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return nil
	}

	d.LastCommand = cmdLine
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	err := d.handleCommand(cmd, args)
	if !historyExempt[cmd] {
		d.History.Add(cmdLine, d.Cursor)
	}
	return err
}

// handleCommand dispatches commands to appropriate handlers.
func (d *Debugger) handleCommand(cmd string, args []string) error {
	switch cmd {
	case "load", "l":
		return d.cmdLoad(args)
	case "tokens", "t":
		return d.cmdTokens(args)
	case "diagnostics", "diag":
		return d.cmdDiagnostics(args)
	case "render":
		return d.cmdRender(args)
	case "dump":
		return d.cmdDump(args)
	case "format", "fmt":
		return d.cmdFormat(args)
	case "lint":
		return d.cmdLint(args)
	case "xref":
		return d.cmdXRef(args)
	case "goto", "g":
		return d.cmdGoto(args)
	case "find", "f":
		return d.cmdFind(args)
	case "next", "n":
		return d.cmdNext(args)
	case "prev", "p":
		return d.cmdPrev(args)
	case "back", "bk":
		return d.cmdBack(args)
	case "forward", "fwd":
		return d.cmdForward(args)
	case "history", "hist":
		return d.cmdHistory(args)
	case "help", "h", "?":
		return d.cmdHelp(args)
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

// GetOutput returns and clears the output buffer.
func (d *Debugger) GetOutput() string {
	output := d.Output.String()
	d.Output.Reset()
	return output
}

// Printf writes formatted output to the output buffer.
func (d *Debugger) Printf(format string, args ...interface{}) {
	d.Output.WriteString(fmt.Sprintf(format, args...))
}

// Println writes a line to the output buffer.
func (d *Debugger) Println(args ...interface{}) {
	d.Output.WriteString(fmt.Sprintln(args...))
}
