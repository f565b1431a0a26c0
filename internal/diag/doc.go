// Package diag defines the top-level error of the sumc pipeline and its
// caret diagnostic.
//
// # Data model
//
// Error is a tagged wrapper around the failure of one pipeline stage:
//
//   - StageLexer wraps a *lexer.Error.
//   - StageCodegen wraps a *x86.Error.
//
// New stages add a Stage constant and a constructor; ShowDiagnostic and
// Diagnostic keep their signatures. The wrapped stage error is the cause
// returned by Unwrap, so errors.As reaches it through any fmt.Errorf %w chain.
//
// Every failure maps to a stable Code (LEX1001, GEN2001, ...) and a Severity.
//
// # Rendering
//
// ShowDiagnostic writes the plain two-line form: the input verbatim, then a
// line of Loc.Start spaces and Loc.Len() carets. Colour and headers are
// internal/diagfmt's business.
package diag
