package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Lists the known color systems",
	Long: `Lists the predefined color systems followed by those defined under
"systems" in the config file, with their primaries and white points.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPresets(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func listPresets(w io.Writer) error {
	systems, err := allSystems()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tRED\tGREEN\tBLUE\tWHITE\tGAMMA")
	for _, cs := range systems {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\t%v\t%g\n", cs.Name, cs.Red, cs.Green, cs.Blue, cs.White, cs.Gamma)
	}

	return tw.Flush()
}
