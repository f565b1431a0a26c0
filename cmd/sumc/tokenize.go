package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sumc/internal/diagfmt"
	"sumc/internal/driver"
	"sumc/internal/observ"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <expr>...",
		Short: "Tokenize one or more expressions",
		Long:  `Tokenize breaks each expression into Number, Plus and Minus tokens with their byte spans`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  withProfiling(runTokenize),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Int("jobs", 0, "max concurrent lexers (0 = GOMAXPROCS)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, _ := diagfmt.ParseFormat(cfg.Tokenize.Format)
	quiet, _ := cmd.Flags().GetBool("quiet")

	timer := observ.NewTimer()
	idx := timer.Begin("lex")
	results, err := driver.TokenizeAll(cmd.Context(), args, cfg.Tokenize.Jobs)
	timer.End(idx, fmt.Sprintf("%d inputs", len(args)))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, res := range results {
		if res.Err != nil {
			reportDiagnostic(cmd, cfg, res.Err, res.Input)
			failed = true
			continue
		}
		if len(results) > 1 && !quiet && format == diagfmt.FormatPretty {
			if _, err := fmt.Fprintf(out, "# %s\n", res.Input); err != nil {
				return err
			}
		}
		if err := diagfmt.FormatTokens(out, format, res.Input, res.Tokens); err != nil {
			return fmt.Errorf("failed to write tokens: %w", err)
		}
	}

	printTimings(cmd, timer)
	if failed {
		return errReported
	}
	return nil
}
