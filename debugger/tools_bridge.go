package debugger

import (
	"fmt"
	"sort"

	"github.com/lookbusy1344/weave/tools"
)

// formatCurrentSource re-lexes src under its own Formatter and returns
// the normalized text, the same convenience tools.FormatString gives
// the API and CLI front ends.
func formatCurrentSource(name, src string) (string, error) {
	return tools.FormatString(src, name)
}

// lintCurrentSource re-lexes src and renders each tools.LintIssue as a
// single line for the command output buffer.
func lintCurrentSource(name, src string) []string {
	issues := tools.LintString(src, name)
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = fmt.Sprintf("%s: %d:%d: %s", issue.Level, issue.Line, issue.Column, issue.Message)
	}
	return lines
}

// xrefCurrentSource re-lexes src, builds its identifier cross-reference,
// and renders it as sorted "name: N occurrences" lines.
func xrefCurrentSource(name, src string) ([]string, error) {
	gen := tools.NewXRefGenerator()
	symbols, err := gen.Generate(src, name)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(symbols))
	for sym := range symbols {
		names = append(names, sym)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, sym := range names {
		lines[i] = fmt.Sprintf("%s: %d occurrence(s), first at %d:%d",
			sym, len(symbols[sym].Occurrences), symbols[sym].First.Line, symbols[sym].First.Column)
	}
	return lines, nil
}
