// Package lexer turns a sumc expression into tokens.
//
// Lex is a single left-to-right pass with one byte of lookahead and no
// backtracking. It stops at the first byte it cannot classify and returns
// that failure as a *Error; tokens produced before the failure are dropped.
// Lex keeps no package state and is safe for concurrent use on independent
// inputs.
package lexer
