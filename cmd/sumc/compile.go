package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sumc/internal/driver"
	"sumc/internal/observ"
)

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <expr>",
		Short: "Compile an expression to x86-64 assembly",
		Long:  `Compile lexes the expression and prints an Intel-syntax program whose main returns its value`,
		Args:  cobra.ExactArgs(1),
		RunE:  withProfiling(runCompile),
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input := args[0]

	timer := observ.NewTimer()
	res, err := driver.Compile(input, timer)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}
	printTimings(cmd, timer)

	if res.Err != nil {
		reportDiagnostic(cmd, cfg, res.Err, input)
		return errReported
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), res.Assembly); err != nil {
		return fmt.Errorf("failed to write assembly: %w", err)
	}
	return nil
}
