package debugger

// TUI Display Update Constants
const (
	// DisplayUpdateFrequency is a TUI refresh-rate value; no code in this
	// package reads it, and TUI refreshes are not throttled.
	DisplayUpdateFrequency = 100
)

// Source View Context Constants
const (
	// SourceContextLinesBefore is the number of source lines to show
	// before the cursor token in the source pane.
	SourceContextLinesBefore = 10

	// SourceContextLinesAfter is the number of source lines to show
	// after the cursor token in the source pane.
	SourceContextLinesAfter = 20
)

// Token List Display Constants
const (
	// TokenListRows is the fixed height of the token list panel.
	TokenListRows = 16

	// TokenListContextBefore is the number of tokens shown before the
	// cursor in the token list panel.
	TokenListContextBefore = 6

	// TokenListContextAfter is the number of tokens shown after the
	// cursor in the token list panel.
	TokenListContextAfter = 16
)

// Diagnostics Display Constants
const (
	// DiagnosticsViewRows is the fixed height of the diagnostics panel.
	DiagnosticsViewRows = 10
)
