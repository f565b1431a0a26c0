package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// ShowHeader prepends "error[CODE]: message" to the two-line diagnostic.
	ShowHeader bool
}

// Format is a token dump format.
type Format string

const (
	FormatPretty  Format = "pretty"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(s); f {
	case FormatPretty, FormatJSON, FormatMsgpack:
		return f, true
	}
	return "", false
}
