// Package token defines the lexical tokens of sumc expressions.
// Invariants:
//   - Kind is a closed set: Plus, Minus, Number. Switches over Kind list every case.
//   - Token.Loc covers exactly the lexeme: digits for Number, the operator byte otherwise.
//   - Lexeme.N is meaningful only for Number.
//   - Whitespace is never a token.
package token
