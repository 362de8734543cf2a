// SPDX-License-Identifier: MIT

// gridcalc — command line tool for integer square-matrix arithmetic.
//
// Usage:
//
//	gridcalc [--config FILE] <command> <file> [args] [flags]
//
// Commands:
//
//	show       Print matrices A and B
//	add        Print the element-wise sum A + B
//	mul        Print the matrix product A * B
//	diag       Print main and secondary diagonal sums
//	swap-rows  Swap two rows of a matrix
//	swap-cols  Swap two columns of a matrix
//	set        Update a single element
//	run        Run the full demonstration flow
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridcalc/internal/cli"
	"github.com/katalvlaran/gridcalc/internal/config"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	var cfgPath string

	app := &cli.App{Out: os.Stdout}

	rootCmd := &cobra.Command{
		Use:           "gridcalc",
		Short:         "gridcalc — integer square-matrix calculator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Logging.Level)
			if err != nil {
				return err
			}
			app.Cfg, app.Log = cfg, logger

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to yaml config file")

	rootCmd.AddCommand(
		cli.NewShowCmd(app),
		cli.NewAddCmd(app),
		cli.NewMulCmd(app),
		cli.NewDiagCmd(app),
		cli.NewSwapRowsCmd(app),
		cli.NewSwapColsCmd(app),
		cli.NewSetCmd(app),
		cli.NewRunCmd(app),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger builds a production zap logger at the configured level.
// Logs go to stderr so stdout stays clean for matrix output.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
