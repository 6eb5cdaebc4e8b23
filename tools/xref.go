package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lookbusy1344/weave/diag"
	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/lexer"
	"github.com/lookbusy1344/weave/source"
	"github.com/lookbusy1344/weave/token"
)

// Occurrence is a single place an identifier's spelling appears. There
// is no parser in this repository, so an Occurrence cannot be
// classified as definition vs. use from lexical information alone;
// XRefGenerator instead tracks the first occurrence separately as a
// convenience, not as a semantic claim about where the identifier was
// "defined".
type Occurrence struct {
	Line   int
	Column int
}

// Symbol collects every occurrence of one interned identifier spelling.
type Symbol struct {
	Name        string
	First       Occurrence
	Occurrences []Occurrence
}

// XRefGenerator builds an identifier occurrence index over a lexed
// token stream.
type XRefGenerator struct {
	symbols map[string]*Symbol
}

// NewXRefGenerator creates a new cross-reference generator.
func NewXRefGenerator() *XRefGenerator {
	return &XRefGenerator{symbols: make(map[string]*Symbol)}
}

// Generate lexes input and indexes every identifier occurrence.
func (x *XRefGenerator) Generate(input, filename string) (map[string]*Symbol, error) {
	src, err := source.New(filename, []byte(input))
	if err != nil {
		return nil, fmt.Errorf("invalid source: %w", err)
	}

	sink := diag.NewSink()
	lx := lexer.New(sink, src, intern.NewPool(), lexer.TriviaNone)

	for _, tok := range lx.All() {
		if tok.Kind != token.Identifier {
			continue
		}
		view, ok := tok.Identifier()
		if !ok {
			continue
		}
		name := view.String()
		lp := src.LinePosition(tok.Span.Start)
		occ := Occurrence{Line: int(lp.Line) + 1, Column: int(lp.Column) + 1}

		sym, exists := x.symbols[name]
		if !exists {
			sym = &Symbol{Name: name, First: occ}
			x.symbols[name] = sym
		}
		sym.Occurrences = append(sym.Occurrences, occ)
	}

	return x.symbols, nil
}

// GetSymbols returns all symbols found in the source.
func (x *XRefGenerator) GetSymbols() map[string]*Symbol {
	return x.symbols
}

// GetSymbol returns a specific symbol by name.
func (x *XRefGenerator) GetSymbol(name string) (*Symbol, bool) {
	sym, exists := x.symbols[name]
	return sym, exists
}

// GetUnique returns symbols that occur exactly once -- candidates for a
// typo, since a name used only a single time in a whole file is
// statistically suspicious even without knowing the grammar.
func (x *XRefGenerator) GetUnique() []*Symbol {
	var unique []*Symbol
	for _, sym := range x.symbols {
		if len(sym.Occurrences) == 1 {
			unique = append(unique, sym)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Name < unique[j].Name })
	return unique
}

// XRefReport renders cross-reference information as text.
type XRefReport struct {
	symbols []*Symbol
}

// NewXRefReport creates a new cross-reference report.
func NewXRefReport(symbols map[string]*Symbol) *XRefReport {
	sorted := make([]*Symbol, 0, len(symbols))
	for _, sym := range symbols {
		sorted = append(sorted, sym)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &XRefReport{symbols: sorted}
}

// String generates a text report.
func (r *XRefReport) String() string {
	var sb strings.Builder

	sb.WriteString("Identifier Cross-Reference\n")
	sb.WriteString("===========================\n\n")

	for _, sym := range r.symbols {
		sb.WriteString(fmt.Sprintf("%-30s", sym.Name))
		sb.WriteString(fmt.Sprintf(" first at line %d\n", sym.First.Line))

		lines := make([]string, len(sym.Occurrences))
		for i, occ := range sym.Occurrences {
			lines[i] = fmt.Sprintf("%d", occ.Line)
		}
		sb.WriteString(fmt.Sprintf("  occurrences: %d (line(s) %s)\n", len(sym.Occurrences), strings.Join(lines, ", ")))
		sb.WriteString("\n")
	}

	sb.WriteString("Summary\n")
	sb.WriteString("=======\n")
	sb.WriteString(fmt.Sprintf("Distinct identifiers: %d\n", len(r.symbols)))

	total := 0
	for _, sym := range r.symbols {
		total += len(sym.Occurrences)
	}
	sb.WriteString(fmt.Sprintf("Total occurrences:    %d\n", total))

	return sb.String()
}

// GenerateXRef is a convenience function to generate a cross-reference
// report.
func GenerateXRef(input, filename string) (string, error) {
	gen := NewXRefGenerator()
	symbols, err := gen.Generate(input, filename)
	if err != nil {
		return "", err
	}

	report := NewXRefReport(symbols)
	return report.String(), nil
}
