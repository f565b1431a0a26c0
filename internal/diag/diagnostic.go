package diag

import (
	"sumc/internal/source"
)

// Diagnostic is the serialisable view of an Error.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Loc
}
