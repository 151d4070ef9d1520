package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/config"
	"github.com/kozaktomas/photo-print/internal/layout"
)

var safeAreaCmd = &cobra.Command{
	Use:   "safe-area [format]",
	Short: "Show margins and caption geometry for a format",
	Long: `Show the text pad, image margin and caption font size for a single
print of the given format. Without a format, PRINT_FORMAT (default 4x6) is used.

Examples:
  photo-print safe-area 8x10
  photo-print safe-area 4x6 --mode commercial --text-size 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSafeArea,
}

func init() {
	rootCmd.AddCommand(safeAreaCmd)
	safeAreaCmd.Flags().String("mode", "", "Print mode: normal or commercial (default from PRINT_MODE)")
	safeAreaCmd.Flags().Float64("text-size", 0, "Caption text size multiplier, 0.5 to 3.0 (default from PRINT_TEXT_SIZE)")
}

func runSafeArea(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	opts, err := applyCompositionFlags(cmd, cfg.ComposeOptions())
	if err != nil {
		return err
	}

	format := cfg.Print.Format
	if len(args) == 1 {
		format = layout.Format(args[0])
	}
	if !layout.DefaultCatalog().Known(format) {
		return fmt.Errorf("unknown format %q", format)
	}

	size := layout.GetSize(format)
	mc := layout.ConfigFor(opts.Mode)
	safe := mc.SafeArea(size.Width, opts.TextSizeMultiplier)

	fmt.Printf("Format:        %s (%dx%d px)\n", format, size.Width, size.Height)
	fmt.Printf("Mode:          %s\n", opts.Mode)
	fmt.Printf("Text pad:      %d px (%.3f in)\n", safe.TextPad, layout.PixelsToInches(float64(safe.TextPad)))
	fmt.Printf("Image margin:  %d px (%.3f in)\n", safe.ImageMargin, layout.PixelsToInches(float64(safe.ImageMargin)))
	fmt.Printf("Caption font:  %d px\n", safe.FontSizePx)
	fmt.Printf("Text band:     %d px\n", safe.TextArea())
	fmt.Printf("Image region:  %dx%d px\n", size.Width-2*safe.ImageMargin, size.Height-2*safe.ImageMargin)
	fmt.Printf("Contact sheet: %d px minimum margin\n", mc.ContactMargin)
	if opts.Mode == layout.ModeCommercial {
		fmt.Printf("Cut tolerance: %.3f to %.3f in\n", layout.MinCuttingToleranceIn, layout.MaxCuttingToleranceIn)
	}
	return nil
}

// applyCompositionFlags overlays the shared --mode and --text-size flags
// and any contact sheet flags the command defines.
func applyCompositionFlags(cmd *cobra.Command, opts compose.Options) (compose.Options, error) {
	if s := mustGetString(cmd, "mode"); s != "" {
		mode, err := layout.ParseMode(s)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	if v := mustGetFloat64(cmd, "text-size"); v != 0 {
		opts.TextSizeMultiplier = v
	}
	if cmd.Flags().Lookup("no-filenames") != nil && mustGetBool(cmd, "no-filenames") {
		opts.ShowFilenames = false
	}
	if cmd.Flags().Lookup("no-exif") != nil && mustGetBool(cmd, "no-exif") {
		opts.ShowExif = false
	}
	for _, name := range []string{"margin", "spacing", "font-size", "concurrency"} {
		if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
			continue
		}
		v := mustGetInt(cmd, name)
		switch name {
		case "margin":
			opts.Margin = v
		case "spacing":
			opts.Spacing = v
		case "font-size":
			opts.FontSize = v
		case "concurrency":
			opts.Concurrency = v
		}
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
