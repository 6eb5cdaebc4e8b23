package tools

import (
	"strings"
	"testing"
)

func TestXRef_CountsOccurrences(t *testing.T) {
	source := "let count = 0;\ncount = count + 1;\n"

	gen := NewXRefGenerator()
	symbols, err := gen.Generate(source, "test.weave")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	sym, ok := symbols["count"]
	if !ok {
		t.Fatal("expected 'count' symbol")
	}
	if len(sym.Occurrences) != 3 {
		t.Errorf("expected 3 occurrences of 'count', got %d", len(sym.Occurrences))
	}
	if sym.First.Line != 1 {
		t.Errorf("expected first occurrence on line 1, got %d", sym.First.Line)
	}
}

func TestXRef_IgnoresKeywords(t *testing.T) {
	source := "let x = 1;\n"

	gen := NewXRefGenerator()
	symbols, err := gen.Generate(source, "test.weave")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, ok := symbols["let"]; ok {
		t.Error("keywords should not be indexed as identifiers")
	}
	if _, ok := symbols["x"]; !ok {
		t.Error("expected 'x' symbol")
	}
}

func TestXRef_GetUnique(t *testing.T) {
	source := "let x = 1;\nlet y = x + x;\n"

	gen := NewXRefGenerator()
	_, err := gen.Generate(source, "test.weave")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	unique := gen.GetUnique()
	foundY := false
	for _, sym := range unique {
		if sym.Name == "y" {
			foundY = true
		}
		if sym.Name == "x" {
			t.Error("'x' occurs three times and should not be unique")
		}
	}
	if !foundY {
		t.Error("expected 'y' to be a unique (single-occurrence) identifier")
	}
}

func TestGenerateXRef_ReportContainsSummary(t *testing.T) {
	report, err := GenerateXRef("let a = 1;\nlet b = a;\n", "test.weave")
	if err != nil {
		t.Fatalf("GenerateXRef error: %v", err)
	}

	for _, want := range []string{"Identifier Cross-Reference", "Distinct identifiers:", "Total occurrences:"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
