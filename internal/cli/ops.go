// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridcalc/matio"
	"github.com/katalvlaran/gridcalc/matrix"
)

// NewShowCmd prints both loaded matrices.
func NewShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print matrices A and B",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := matio.LoadPairFile(args[0])
			if err != nil {
				return err
			}
			if err = app.print("Matrix A:", a); err != nil {
				return err
			}

			return app.print("Matrix B:", b)
		},
	}
}

// NewAddCmd prints the element-wise sum A + B.
// A shape mismatch is a hard failure: the command aborts with the error.
func NewAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Print the element-wise sum A + B",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := matio.LoadPairFile(args[0])
			if err != nil {
				return err
			}
			sum, err := matrix.Add(a, b)
			if err != nil {
				return err
			}

			return app.print("Result (A + B):", sum)
		},
	}
}

// NewMulCmd prints the matrix product A × B.
// An inner-dimension mismatch is a hard failure: the command aborts.
func NewMulCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mul <file>",
		Short: "Print the matrix product A * B",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := matio.LoadPairFile(args[0])
			if err != nil {
				return err
			}
			prod, err := matrix.Mul(a, b)
			if err != nil {
				return err
			}

			return app.print("Result (A * B):", prod)
		},
	}
}

// NewDiagCmd prints the diagonal sums of the selected matrix.
// A non-square target is a soft failure: logged, nothing printed, exit zero.
func NewDiagCmd(app *App) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "diag <file>",
		Short: "Print main and secondary diagonal sums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := matio.LoadPairFile(args[0])
			if err != nil {
				return err
			}
			m, err := pickTarget(target, a, b)
			if err != nil {
				return err
			}

			mainSum, secondarySum, err := matrix.DiagonalSums(m)
			if err != nil {
				// Soft failure: report and continue without sums.
				app.Log.Warn("diagonal sums skipped", zap.Error(err))

				return nil
			}
			if _, err = fmt.Fprintf(app.Out, "Sum of main diagonal elements: %d\n", mainSum); err != nil {
				return err
			}
			_, err = fmt.Fprintf(app.Out, "Sum of secondary diagonal elements: %d\n", secondarySum)

			return err
		},
	}
	cmd.Flags().StringVar(&target, "target", TargetA, "matrix to sum (A or B)")

	return cmd
}
