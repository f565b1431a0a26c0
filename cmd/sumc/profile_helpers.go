package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sumc/internal/prof"
)

// setupProfiling inspects persistent profiling flags and starts the
// requested profilers. The returned stop function is safe to call more than once.
func setupProfiling(cmd *cobra.Command) (func() error, error) {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	session, err := prof.Start(prof.Options{
		CPUPath:   cpuProfile,
		MemPath:   memProfile,
		TracePath: tracePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start profiling: %w", err)
	}
	return session.Stop, nil
}

// withProfiling wraps a RunE so profiles cover exactly the command's work.
func withProfiling(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		stop, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if stopErr := stop(); stopErr != nil && err == nil {
				err = fmt.Errorf("failed to write profiles: %w", stopErr)
			}
		}()
		return run(cmd, args)
	}
}
