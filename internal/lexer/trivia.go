package lexer

// skipSpace consumes a run of spaces, newlines and tabs. Whitespace never
// becomes a token.
func (lx *lexer) skipSpace() {
	lx.cursor.BumpWhile(isSpace)
}
