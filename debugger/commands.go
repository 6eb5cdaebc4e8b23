package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// cmdLoad lexes filename and makes it the session's current document.
func (d *Debugger) cmdLoad(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: load <filename>")
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 -- operator-supplied debugger command
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}

	if err := d.Service.LoadSource(args[0], data); err != nil {
		return err
	}
	d.Cursor = 0

	result := d.Service.Result("")
	d.Printf("loaded %s: %d tokens, %d diagnostics\n", args[0], result.TokenCount, result.DiagnosticCount)
	return nil
}

// cmdTokens lists every token, marking the cursor.
func (d *Debugger) cmdTokens(args []string) error {
	if !d.Service.Loaded() {
		return fmt.Errorf("no document loaded")
	}
	for i, t := range d.Service.TokenSummaries() {
		marker := "  "
		if i == d.Cursor {
			marker = "=>"
		}
		d.Printf("%s %4d: %-20s %d:%d  %q\n", marker, i, t.Kind, t.Line, t.Column, t.Text)
	}
	return nil
}

// cmdDiagnostics lists every recorded diagnostic.
func (d *Debugger) cmdDiagnostics(args []string) error {
	if !d.Service.Loaded() {
		return fmt.Errorf("no document loaded")
	}
	diags := d.Service.DiagnosticSummaries()
	if len(diags) == 0 {
		d.Println("no diagnostics")
		return nil
	}
	for _, diagnostic := range diags {
		d.Printf("%s: %d:%d: %s\n", diagnostic.Level, diagnostic.Line, diagnostic.Column, diagnostic.Message)
	}
	return nil
}

// cmdRender writes the framed diagnostic render for the current document.
func (d *Debugger) cmdRender(args []string) error {
	if !d.Service.Loaded() {
		return fmt.Errorf("no document loaded")
	}
	limit := 20
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			limit = n
		}
	}
	text, err := d.Service.RenderDiagnostics(limit)
	if err != nil {
		return err
	}
	d.Output.WriteString(text)
	return nil
}

// cmdDump writes the canonical token dump for the current document.
func (d *Debugger) cmdDump(args []string) error {
	if !d.Service.Loaded() {
		return fmt.Errorf("no document loaded")
	}
	text, err := d.Service.Dump()
	if err != nil {
		return err
	}
	d.Output.WriteString(text)
	return nil
}

// cmdFormat re-emits the current document's source text, normalized.
func (d *Debugger) cmdFormat(args []string) error {
	src := d.Service.SourceText()
	if src == nil {
		return fmt.Errorf("no document loaded")
	}
	formatted, err := formatCurrentSource(src.Name(), string(src.Bytes()))
	if err != nil {
		return err
	}
	d.Output.WriteString(formatted)
	return nil
}

// cmdLint reports style issues in the current document.
func (d *Debugger) cmdLint(args []string) error {
	src := d.Service.SourceText()
	if src == nil {
		return fmt.Errorf("no document loaded")
	}
	issues := lintCurrentSource(src.Name(), string(src.Bytes()))
	if len(issues) == 0 {
		d.Println("no lint issues")
		return nil
	}
	for _, issue := range issues {
		d.Println(issue)
	}
	return nil
}

// cmdXRef prints the identifier cross-reference for the current document.
func (d *Debugger) cmdXRef(args []string) error {
	src := d.Service.SourceText()
	if src == nil {
		return fmt.Errorf("no document loaded")
	}
	lines, err := xrefCurrentSource(src.Name(), string(src.Bytes()))
	if err != nil {
		return err
	}
	for _, line := range lines {
		d.Println(line)
	}
	return nil
}

// cmdGoto moves the cursor to a token index.
func (d *Debugger) cmdGoto(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: goto <index>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid token index: %s", args[0])
	}
	toks := d.Service.TokenSummaries()
	if n < 0 || n >= len(toks) {
		return fmt.Errorf("token index out of range: %d", n)
	}
	d.Cursor = n
	t := toks[n]
	d.Printf("%4d: %-20s %d:%d  %q\n", n, t.Kind, t.Line, t.Column, t.Text)
	return nil
}

// cmdFind moves the cursor to the next token whose text contains needle.
func (d *Debugger) cmdFind(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: find <text>")
	}
	needle := strings.Join(args, " ")
	toks := d.Service.TokenSummaries()
	for i := d.Cursor + 1; i < len(toks); i++ {
		if strings.Contains(toks[i].Text, needle) {
			d.Cursor = i
			t := toks[i]
			d.Printf("%4d: %-20s %d:%d  %q\n", i, t.Kind, t.Line, t.Column, t.Text)
			return nil
		}
	}
	return fmt.Errorf("not found: %s", needle)
}

// cmdNext advances the cursor by one token.
func (d *Debugger) cmdNext(args []string) error {
	toks := d.Service.TokenSummaries()
	if d.Cursor+1 >= len(toks) {
		return fmt.Errorf("at last token")
	}
	d.Cursor++
	t := toks[d.Cursor]
	d.Printf("%4d: %-20s %d:%d  %q\n", d.Cursor, t.Kind, t.Line, t.Column, t.Text)
	return nil
}

// cmdPrev moves the cursor back by one token.
func (d *Debugger) cmdPrev(args []string) error {
	if d.Cursor == 0 {
		return fmt.Errorf("at first token")
	}
	d.Cursor--
	toks := d.Service.TokenSummaries()
	t := toks[d.Cursor]
	d.Printf("%4d: %-20s %d:%d  %q\n", d.Cursor, t.Kind, t.Line, t.Column, t.Text)
	return nil
}

// cmdBack replays the navigation history one step backward, moving the
// cursor to wherever the previous recorded command left it. This is
// browser-style history replay over token-cursor positions, distinct
// from cmdPrev's single-token step.
func (d *Debugger) cmdBack(args []string) error {
	cmd, cursor, ok := d.History.Previous()
	if ok && cursor == d.Cursor {
		// The newest entry is the position we are already at; step past it.
		cmd, cursor, ok = d.History.Previous()
	}
	if !ok {
		return fmt.Errorf("no earlier history")
	}
	return d.jumpToHistoryCursor(cmd, cursor)
}

// cmdForward replays the navigation history one step forward. See
// cmdBack.
func (d *Debugger) cmdForward(args []string) error {
	cmd, cursor, ok := d.History.Next()
	if !ok {
		return fmt.Errorf("no later history")
	}
	return d.jumpToHistoryCursor(cmd, cursor)
}

func (d *Debugger) jumpToHistoryCursor(cmd string, cursor int) error {
	toks := d.Service.TokenSummaries()
	if cursor < 0 || cursor >= len(toks) {
		return fmt.Errorf("history position out of range: %d", cursor)
	}
	d.Cursor = cursor
	t := toks[cursor]
	d.Printf("history %q -> %4d: %-20s %d:%d  %q\n", cmd, cursor, t.Kind, t.Line, t.Column, t.Text)
	return nil
}

// cmdHistory prints the navigation log, or only entries whose command
// starts with a given prefix.
func (d *Debugger) cmdHistory(args []string) error {
	var entries []HistoryEntry
	if len(args) > 0 {
		entries = d.History.Search(args[0])
	} else {
		entries = d.History.GetAll()
	}
	if len(entries) == 0 {
		d.Println("no history")
		return nil
	}
	for i, e := range entries {
		d.Printf("%4d: %-20s cursor=%d\n", i, e.Command, e.Cursor)
	}
	return nil
}

// cmdHelp displays help information.
func (d *Debugger) cmdHelp(args []string) error {
	d.Println("Weave lexer debugger commands:")
	d.Println()
	d.Println("  load (l) <file>      - lex a file and make it current")
	d.Println("  tokens (t)           - list every token, cursor marked")
	d.Println("  diagnostics (diag)   - list every diagnostic")
	d.Println("  render [limit]       - print the framed diagnostic render")
	d.Println("  dump                 - print the canonical token dump")
	d.Println("  format (fmt)         - print the normalized source text")
	d.Println("  lint                 - print style issues")
	d.Println("  xref                 - print the identifier cross-reference")
	d.Println("  goto (g) <index>     - move the cursor to a token index")
	d.Println("  find (f) <text>      - move the cursor to the next matching token")
	d.Println("  next (n)             - advance the cursor by one token")
	d.Println("  prev (p)             - move the cursor back by one token")
	d.Println("  back (bk)            - replay the navigation history backward")
	d.Println("  forward (fwd)        - replay the navigation history forward")
	d.Println("  history (hist) [pfx] - list past commands and the cursor each left")
	d.Println("  help (h, ?)          - show this message")
	d.Println("  quit (q)             - exit the debugger")
	return nil
}
