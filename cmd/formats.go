package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-print/internal/layout"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List print formats",
	Long: `List every print format with its canvas size at 300 DPI.

Examples:
  photo-print formats
  photo-print formats --json`,
	Args: cobra.NoArgs,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.Flags().Bool("json", false, "Output as JSON")
}

func runFormats(cmd *cobra.Command, args []string) error {
	entries := layout.ListFormats()
	if mustGetBool(cmd, "json") {
		return outputJSON(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORMAT\tPIXELS\tINCHES\tASPECT")
	fmt.Fprintln(w, "------\t------\t------\t------")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%dx%d\t%.4gx%.4g\t%.3f\n",
			e.Key, e.Size.Width, e.Size.Height,
			layout.PixelsToInches(float64(e.Size.Width)), layout.PixelsToInches(float64(e.Size.Height)),
			layout.AspectRatio(e.Key))
	}
	return w.Flush()
}
