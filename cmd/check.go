package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colormatrix/crosscheck"
	"github.com/mmuldo/colormatrix/matrix"
)

const defaultTolerance = 5e-3

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compares a derived matrix with reference sRGB implementations",
	Long: `Derives the matrices of a color system, normalizes them to unit white
luminance and reports how far they are from the sRGB matrices of
go-colorful and go-chromath. Rec709 shares the sRGB primaries and white
point, so "colormatrix check -p Rec709" should stay within tolerance.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), &opts)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64Var(&opts.tolerance, "tolerance", defaultTolerance, "largest accepted coefficient difference")
	checkCmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a difference exceeds the tolerance")
}

func runCheck(w io.Writer, o *options) error {
	setDefaults(o)

	cs, err := resolveSystem(o)
	if err != nil {
		return err
	}

	res, err := matrix.Compute(cs)
	if err != nil {
		return fmt.Errorf("%s: %w", cs.Name, err)
	}

	r := crosscheck.Against(res)
	fmt.Fprintf(w, "system: %s\n", r.System)
	fmt.Fprintf(w, "go-colorful  forward %.6f  inverse %.6f\n", r.ColorfulForward, r.ColorfulInverse)
	fmt.Fprintf(w, "go-chromath  forward %.6f  deltaE2000 %.4f\n", r.ChromathForward, r.DeltaE)

	if r.Within(o.tolerance) {
		fmt.Fprintf(w, "within tolerance %g\n", o.tolerance)
		return nil
	}

	fmt.Fprintf(w, "exceeds tolerance %g\n", o.tolerance)
	if o.strict {
		return fmt.Errorf("%s differs from sRGB by more than %g", cs.Name, o.tolerance)
	}
	return nil
}
