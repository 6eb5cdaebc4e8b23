package token

// keywordsByName is the canonical-spelling lookup table the lexer
// consults immediately after reading an identifier lexeme. It is built
// once, at package init, from the same name tables used for rendering,
// so the two can never drift apart.
var keywordsByName = func() map[string]Kind {
	m := make(map[string]Kind, 64)
	for k, name := range kindNames {
		if k.IsKeyword() {
			m[name] = k
		}
	}
	return m
}()

// KeywordLookup returns the Kind for a canonical keyword spelling, and
// false if spelling names no keyword (in which case the lexer leaves the
// lexeme classified as Identifier).
func KeywordLookup(spelling string) (Kind, bool) {
	k, ok := keywordsByName[spelling]
	return k, ok
}
