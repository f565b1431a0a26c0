package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sumc/internal/version"
)

// errReported marks a failure whose diagnostic has already been written.
var errReported = errors.New("diagnostics reported")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sumc",
		Short:         "Compiler for sums and differences of unsigned integers",
		Long:          `sumc lexes an expression such as "12 + 34 - 5" and compiles it to x86-64 assembly`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Bool("header", false, "print an error[CODE] line above each diagnostic")
	rootCmd.PersistentFlags().String("config", "", "path to sumc.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write runtime trace to file")

	return rootCmd
}

// main builds the command tree and executes it. Any error exits with status 1;
// errors other than already-rendered diagnostics are printed first.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "sumc:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
