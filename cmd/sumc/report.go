package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sumc/internal/diag"
	"sumc/internal/diagfmt"
	"sumc/internal/observ"
)

// reportDiagnostic renders e for input on the command's stderr.
func reportDiagnostic(cmd *cobra.Command, cfg cliConfig, e *diag.Error, input string) {
	w := cmd.ErrOrStderr()
	f, _ := w.(*os.File)
	diagfmt.Pretty(w, e, input, diagfmt.PrettyOpts{
		Color:      cfg.useColor(f),
		ShowHeader: cfg.Output.Header,
	})
}

// printTimings writes the timer summary when --timings is set and --quiet is not.
func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	if !wantTimings(cmd) {
		return
	}
	writeOrIgnore(cmd.ErrOrStderr(), timer.Summary())
}

func wantTimings(cmd *cobra.Command) bool {
	timings, _ := cmd.Flags().GetBool("timings")
	quiet, _ := cmd.Flags().GetBool("quiet")
	return timings && !quiet
}

func writeOrIgnore(w io.Writer, s string) {
	_, _ = fmt.Fprint(w, s)
}
