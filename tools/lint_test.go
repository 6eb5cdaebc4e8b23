package tools

import (
	"strings"
	"testing"
)

func TestLint_TrailingWhitespace(t *testing.T) {
	source := "let x = 1;   \nlet y = 2;\n"

	issues := LintString(source, "test.weave")

	found := false
	for _, issue := range issues {
		if issue.Code == "TRAILING_WHITESPACE" {
			found = true
		}
	}
	if !found {
		t.Error("expected trailing whitespace warning")
	}
}

func TestLint_MixedIndentation(t *testing.T) {
	source := "fn main() {\n\t    let x = 1;\n}\n"

	issues := LintString(source, "test.weave")

	found := false
	for _, issue := range issues {
		if issue.Code == "MIXED_INDENTATION" {
			found = true
		}
	}
	if !found {
		t.Error("expected mixed indentation warning")
	}
}

func TestLint_LineTooLong(t *testing.T) {
	long := "let x = " + strings.Repeat("1", 120) + ";"

	options := DefaultLintOptions()
	options.MaxLineWidth = 80
	linter := NewLinter(options)
	issues := linter.Lint(long, "test.weave")

	found := false
	for _, issue := range issues {
		if issue.Code == "LINE_TOO_LONG" {
			found = true
		}
	}
	if !found {
		t.Error("expected line-too-long info")
	}
}

func TestLint_TodoComment(t *testing.T) {
	source := "// TODO: handle overflow\nlet x = 1;\n"

	issues := LintString(source, "test.weave")

	found := false
	for _, issue := range issues {
		if issue.Code == "TODO_COMMENT" {
			found = true
		}
	}
	if !found {
		t.Error("expected TODO comment info")
	}
}

func TestLint_RedundantSemicolon(t *testing.T) {
	source := "let x = 1;;\n"

	issues := LintString(source, "test.weave")

	found := false
	for _, issue := range issues {
		if issue.Code == "REDUNDANT_SEMICOLON" {
			found = true
		}
	}
	if !found {
		t.Error("expected redundant semicolon warning")
	}
}

func TestLint_LexErrorSurfaced(t *testing.T) {
	source := "let s = \"unterminated\n"

	issues := LintString(source, "test.weave")

	found := false
	for _, issue := range issues {
		if issue.Code == "LEX_ERROR" && issue.Level == LintError {
			found = true
		}
	}
	if !found {
		t.Error("expected a lexical error to surface as a lint issue")
	}
}

func TestLint_CleanSourceHasNoWarnings(t *testing.T) {
	source := "fn main() {\n    let x = 1;\n}\n"

	issues := LintString(source, "test.weave")

	for _, issue := range issues {
		if issue.Level != LintInfo {
			t.Errorf("unexpected issue in clean source: %v", issue)
		}
	}
}

func TestLint_IssuesSortedByLine(t *testing.T) {
	source := "let x = 1;;\nlet y = 2;   \n"

	issues := LintString(source, "test.weave")

	for i := 1; i < len(issues); i++ {
		if issues[i].Line < issues[i-1].Line {
			t.Error("issues not sorted by line number")
		}
	}
}

func TestLint_CheckDisabledSkipsIssue(t *testing.T) {
	source := "let x = 1;   \n"

	options := DefaultLintOptions()
	options.CheckTrailingSpace = false
	linter := NewLinter(options)
	issues := linter.Lint(source, "test.weave")

	for _, issue := range issues {
		if issue.Code == "TRAILING_WHITESPACE" {
			t.Error("expected trailing whitespace check to be disabled")
		}
	}
}
