package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colormatrix/matrix"
	"github.com/mmuldo/colormatrix/render"
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Prints the XYZ to RGB matrix of a color system",
	Long: `Derives the RGB to XYZ matrix of a color system from its primaries and
white point, inverts it, and prints the XYZ to RGB matrix.

The system is a preset (NTSC, EBU, SMPTE, HDTV, CIE, Rec709) or a system
defined under "systems" in the config file; --red, --green, --blue, --white
and --illuminant replace individual chromaticities. For example:

  colormatrix compute -p Rec709
  colormatrix compute -p EBU --white 0.3101,0.3162 -f glsl`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompute(cmd.OutOrStdout(), &opts)
	},
}

func init() {
	rootCmd.AddCommand(computeCmd)

	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("output format %v (default \"plain\")", render.Formats()))
	rootCmd.PersistentFlags().IntVar(&opts.precision, "precision", 0, "decimal places (default 6)")
	rootCmd.PersistentFlags().BoolVarP(&opts.normalize, "normalize", "n", false, "scale so the white point has luminance Y = 1")
	rootCmd.PersistentFlags().BoolVar(&opts.forward, "forward", false, "also print the RGB to XYZ matrix")
}

func runCompute(w io.Writer, o *options) error {
	setDefaults(o)

	cs, err := resolveSystem(o)
	if err != nil {
		return err
	}
	logger.Printf("%s: red %v green %v blue %v white %v", cs.Name, cs.Red, cs.Green, cs.Blue, cs.White)

	res, err := matrix.Compute(cs)
	if err != nil {
		return fmt.Errorf("%s: %w", cs.Name, err)
	}
	if o.normalize {
		res = res.Normalized()
	}

	return render.Write(w, res, render.Options{
		Format:    o.format,
		Precision: o.precision,
		Forward:   o.forward,
	})
}
