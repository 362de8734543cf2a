// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridcalc/internal/cli"
	"github.com/katalvlaran/gridcalc/internal/config"
)

// newApp builds an App with default config, a no-op logger, and a capture buffer.
func newApp() (*cli.App, *bytes.Buffer) {
	var out bytes.Buffer
	app := &cli.App{
		Cfg: config.Default(),
		Log: zap.NewNop(),
		Out: &out,
	}

	return app, &out
}

// writePair drops an input file into a temp dir and returns its path.
func writePair(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pair.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// execute runs a command with args the way the binary would.
func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)

	return cmd.Execute()
}

// TestShowCmd prints both matrices with labels.
func TestShowCmd(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "1\n3\n4\n")

	require.NoError(t, execute(t, cli.NewShowCmd(app), path))

	want := "Matrix A:\n     3\n\nMatrix B:\n     4\n\n"
	require.Equal(t, want, out.String())
}

// TestAddCmd prints the element-wise sum.
func TestAddCmd(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	require.NoError(t, execute(t, cli.NewAddCmd(app), path))

	want := "Result (A + B):\n" +
		"     6     8\n" +
		"    10    12\n" +
		"\n"
	require.Equal(t, want, out.String())
}

// TestMulCmd prints the matrix product.
func TestMulCmd(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	require.NoError(t, execute(t, cli.NewMulCmd(app), path))

	want := "Result (A * B):\n" +
		"    19    22\n" +
		"    43    50\n" +
		"\n"
	require.Equal(t, want, out.String())
}

// TestDiagCmd prints both diagonal sums of the selected matrix.
func TestDiagCmd(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	require.NoError(t, execute(t, cli.NewDiagCmd(app), path))
	require.Equal(t, "Sum of main diagonal elements: 5\nSum of secondary diagonal elements: 5\n", out.String())

	out.Reset()
	require.NoError(t, execute(t, cli.NewDiagCmd(app), path, "--target", "B"))
	require.Equal(t, "Sum of main diagonal elements: 13\nSum of secondary diagonal elements: 13\n", out.String())
}

// TestSwapRowsCmd swaps rows of A and prints the result.
func TestSwapRowsCmd(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	require.NoError(t, execute(t, cli.NewSwapRowsCmd(app), path, "0", "1"))

	want := "Matrix A after row swap:\n" +
		"     3     4\n" +
		"     1     2\n" +
		"\n"
	require.Equal(t, want, out.String())
}

// TestSwapRowsCmdOutOfBounds treats a bad index as soft: the command
// succeeds and prints the unchanged matrix.
func TestSwapRowsCmdOutOfBounds(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	require.NoError(t, execute(t, cli.NewSwapRowsCmd(app), path, "0", "9"))

	want := "Matrix A after row swap:\n" +
		"     1     2\n" +
		"     3     4\n" +
		"\n"
	require.Equal(t, want, out.String()) // unchanged grid still printed
}

// TestSwapRowsCmdBadArgs rejects non-integer indices as hard usage errors.
func TestSwapRowsCmdBadArgs(t *testing.T) {
	app, _ := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	err := execute(t, cli.NewSwapRowsCmd(app), path, "zero", "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "row1")
}

// TestSwapColsCmd swaps columns of B (the default target) and prints it.
func TestSwapColsCmd(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	require.NoError(t, execute(t, cli.NewSwapColsCmd(app), path, "0", "1"))

	want := "Matrix B after column swap:\n" +
		"     6     5\n" +
		"     8     7\n" +
		"\n"
	require.Equal(t, want, out.String())
}

// TestSetCmd updates one element of the chosen matrix.
func TestSetCmd(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	require.NoError(t, execute(t, cli.NewSetCmd(app), path, "1", "0", "99", "--target", "B"))

	want := "Matrix B after update:\n" +
		"     5     6\n" +
		"    99     8\n" +
		"\n"
	require.Equal(t, want, out.String())
}

// TestUnknownTarget rejects targets other than A and B.
func TestUnknownTarget(t *testing.T) {
	app, _ := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	err := execute(t, cli.NewDiagCmd(app), path, "--target", "C")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown target")
}

// TestLoadFailureAborts ensures loader errors surface as command errors.
func TestLoadFailureAborts(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "0\n")

	err := execute(t, cli.NewAddCmd(app), path)
	require.Error(t, err)
	require.Empty(t, out.String()) // nothing printed before the abort
}

// TestRunCmdGolden pins the full demonstration flow on a 3×3 pair, where
// every configured mutation step is in bounds.
func TestRunCmdGolden(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "3\n1 2 3 4 5 6 7 8 9\n9 8 7 6 5 4 3 2 1\n")

	require.NoError(t, execute(t, cli.NewRunCmd(app), path))

	want := "Matrices loaded\n" +
		"Matrix A:\n" +
		"     1     2     3\n" +
		"     4     5     6\n" +
		"     7     8     9\n" +
		"\n" +
		"Matrix B:\n" +
		"     9     8     7\n" +
		"     6     5     4\n" +
		"     3     2     1\n" +
		"\n" +
		"Matrix Addition\n" +
		"Result (A + B):\n" +
		"    10    10    10\n" +
		"    10    10    10\n" +
		"    10    10    10\n" +
		"\n" +
		"Matrix Multiplication\n" +
		"Result (A * B):\n" +
		"    30    24    18\n" +
		"    84    69    54\n" +
		"   138   114    90\n" +
		"\n" +
		"Diagonal Sums (Matrix A)\n" +
		"Sum of main diagonal elements: 15\n" +
		"Sum of secondary diagonal elements: 15\n" +
		"Swapping Rows 0 and 1 of Matrix A\n" +
		"Matrix A after row swap:\n" +
		"     4     5     6\n" +
		"     1     2     3\n" +
		"     7     8     9\n" +
		"\n" +
		"Swapping Columns 1 and 2 of Matrix B\n" +
		"Matrix B after column swap:\n" +
		"     9     7     8\n" +
		"     6     4     5\n" +
		"     3     1     2\n" +
		"\n" +
		"Updating Element (2, 2) in Matrix A to 99\n" +
		"Matrix A after update:\n" +
		"     1     2     3\n" +
		"     4     5     6\n" +
		"     7     8    99\n" +
		"\n"
	require.Equal(t, want, out.String())
}

// TestRunCmdSoftStepsOn2x2 ensures out-of-bounds demo steps degrade softly:
// the run completes and the untouched clones are printed.
func TestRunCmdSoftStepsOn2x2(t *testing.T) {
	app, out := newApp()
	path := writePair(t, "2\n1 2 3 4\n5 6 7 8\n")

	// Default demo swaps cols 1,2 and updates (2,2) — both out of bounds
	// for a 2×2 matrix. The command must still succeed.
	require.NoError(t, execute(t, cli.NewRunCmd(app), path))

	require.Contains(t, out.String(), "Matrix B after column swap:\n     5     6\n     7     8\n")
	require.Contains(t, out.String(), "Matrix A after update:\n     1     2\n     3     4\n")
}
