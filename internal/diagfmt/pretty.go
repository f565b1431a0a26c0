package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sumc/internal/diag"
)

// Pretty форматирует ошибку в человекочитаемый вид:
//
//	error[LEX1001]: 2-3: invalid char: *
//	3 * 4
//	  ^
//
// Заголовок печатается только с ShowHeader; цвет включается опцией.
func Pretty(w io.Writer, e *diag.Error, input string, opts PrettyOpts) {
	errColor := color.New(color.FgRed, color.Bold)
	codeColor := color.New(color.FgYellow)
	if opts.Color {
		errColor.EnableColor()
		codeColor.EnableColor()
	} else {
		errColor.DisableColor()
		codeColor.DisableColor()
	}

	d := e.Diagnostic()
	if opts.ShowHeader {
		fmt.Fprintf(w, "%s[%s]: %s\n",
			errColor.Sprint(strings.ToLower(d.Severity.String())),
			codeColor.Sprint(d.Code.ID()),
			d.Message)
	}
	fmt.Fprintln(w, input)
	pad := strings.Repeat(" ", int(d.Primary.Start))
	carets := strings.Repeat("^", int(d.Primary.Len()))
	fmt.Fprintln(w, pad+errColor.Sprint(carets))
}
