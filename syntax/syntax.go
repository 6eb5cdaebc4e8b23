// Package syntax is a stub for the out-of-scope parser: it reserves a
// NodeKind range that continues numerically from token.Kind's own
// firstSyntaxNode/lastSyntaxNode sentinels, and documents the narrow
// interface the core actually promises a parser.
//
// Nothing in this repository implements a parser. This package exists
// so a future one has somewhere to start: a place to hang node kinds
// that coexist with token.Kind's numbering without colliding, and a
// Consumer interface that pins down exactly which Token fields a parser
// is allowed to depend on.
package syntax

import "github.com/lookbusy1344/weave/token"

// NodeKind identifies a syntax tree node. It is deliberately empty here
// -- only the reservation matters -- because the grammar a parser would
// build is outside the core's scope.
type NodeKind int

// Consumer is the interface a parser is built against. The core
// guarantees that consuming only Kind and Span is sufficient to parse;
// Payload is only ever needed when the parser descends into a literal
// node.
type Consumer interface {
	// Token returns the current lookahead token.
	Token() token.Token
	// Advance consumes the current token and returns the next one.
	Advance() token.Token
}
