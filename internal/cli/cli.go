// SPDX-License-Identifier: MIT

// Package cli wires the gridcalc subcommands. Every command loads the two
// matrices from the input file, runs one engine operation, and prints the
// result. Hard failures (shape mismatches, load errors) abort the command;
// soft failures (bounds violations in mutators) are logged as warnings and
// the unchanged matrix is printed, so the run continues.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridcalc/internal/config"
	"github.com/katalvlaran/gridcalc/matio"
	"github.com/katalvlaran/gridcalc/matrix"
)

// Matrix labels accepted by the --target flag.
const (
	TargetA = "A"
	TargetB = "B"
)

// App carries the shared dependencies of all subcommands.
type App struct {
	Cfg *config.Config
	Log *zap.Logger
	Out io.Writer
}

// printOpts builds the printer options from configuration.
func (a *App) printOpts() matio.PrintOptions {
	return matio.PrintOptions{FieldWidth: a.Cfg.Output.FieldWidth}
}

// print writes a labeled matrix block to the configured output.
func (a *App) print(label string, m matrix.Matrix) error {
	if _, err := fmt.Fprintln(a.Out, label); err != nil {
		return err
	}

	return matio.FprintWith(a.Out, m, a.printOpts())
}

// pickTarget selects matrix A or B by label.
func pickTarget(target string, a, b *matrix.Dense) (*matrix.Dense, error) {
	switch target {
	case TargetA:
		return a, nil
	case TargetB:
		return b, nil
	default:
		return nil, fmt.Errorf("unknown target %q, want %s or %s", target, TargetA, TargetB)
	}
}

// parseIndex parses a positional integer argument with a named role for
// readable usage errors.
func parseIndex(role, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", role, s)
	}

	return v, nil
}
