package diagfmt

import (
	"encoding/json"
	"io"

	"sumc/internal/diag"
	"sumc/internal/source"
)

// LocationJSON представляет местоположение во входе для JSON
type LocationJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

func makeLocation(loc source.Loc, idx source.LineIndex) LocationJSON {
	start, end := idx.Resolve(loc)
	return LocationJSON{
		StartByte: loc.Start,
		EndByte:   loc.End,
		StartLine: start.Line,
		StartCol:  start.Col,
		EndLine:   end.Line,
		EndCol:    end.Col,
	}
}

// DiagnosticJSONFor builds the JSON view of e against input.
func DiagnosticJSONFor(e *diag.Error, input string) DiagnosticJSON {
	d := e.Diagnostic()
	return DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: makeLocation(d.Primary, source.BuildLineIndex(input)),
	}
}

// FormatDiagnosticJSON writes e as an indented JSON object.
func FormatDiagnosticJSON(w io.Writer, e *diag.Error, input string) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(DiagnosticJSONFor(e, input))
}
