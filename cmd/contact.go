package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/config"
	"github.com/kozaktomas/photo-print/internal/layout"
	"github.com/kozaktomas/photo-print/internal/photofs"
)

var contactCmd = &cobra.Command{
	Use:   "contact <file|folder>...",
	Short: "Render a contact sheet",
	Long: `Render up to 56 photos as a grid on one 10x8 contact sheet, each with
its file name and camera settings. Photos past the largest grid (8x7) are
left out and reported.

Examples:
  photo-print contact ./holiday
  photo-print contact ./holiday --mode commercial --output ./prints
  photo-print contact a.jpg b.jpg c.jpg --no-exif --spacing 16`,
	Args: cobra.MinimumNArgs(1),
	RunE: runContact,
}

func init() {
	rootCmd.AddCommand(contactCmd)
	contactCmd.Flags().String("mode", "", "Print mode: normal or commercial (default from PRINT_MODE)")
	contactCmd.Flags().Float64("text-size", 0, "Text size multiplier, 0.5 to 3.0 (default from PRINT_TEXT_SIZE)")
	contactCmd.Flags().Bool("no-filenames", false, "Do not print file names")
	contactCmd.Flags().Bool("no-exif", false, "Do not print camera settings")
	contactCmd.Flags().Int("margin", 0, "Outer margin in pixels, raised to the mode minimum")
	contactCmd.Flags().Int("spacing", 0, "Gap between cells in pixels")
	contactCmd.Flags().Int("font-size", 0, "Caption font size in pixels")
	contactCmd.Flags().Int("concurrency", 0, "Photos decoded in parallel (0 = all at once)")
	contactCmd.Flags().StringP("output", "o", "", "Output directory, must exist (default from PRINT_OUTPUT_DIR)")
	contactCmd.Flags().Bool("json", false, "Print the result summary as JSON")
}

// contactSummary is the JSON form of a finished sheet.
type contactSummary struct {
	Path      string                     `json:"path"`
	Title     string                     `json:"title"`
	Grid      layout.GridPlan            `json:"grid"`
	Placed    int                        `json:"placed"`
	Skipped   int                        `json:"skipped"`
	Truncated int                        `json:"truncated"`
	Failures  []string                   `json:"failures,omitempty"`
	Warnings  []layout.ValidationWarning `json:"warnings,omitempty"`
}

func runContact(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	opts, err := applyCompositionFlags(cmd, cfg.ComposeOptions())
	if err != nil {
		return err
	}
	outDir := mustGetString(cmd, "output")
	if outDir == "" {
		outDir = cfg.Print.OutputDir
	}
	if err := photofs.CheckOutputDir(outDir); err != nil {
		return err
	}
	jsonOutput := mustGetBool(cmd, "json")

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}
	if len(paths) > layout.MaxGridCapacity {
		fmt.Printf("Found %d photos; only the first %d fit on one sheet\n", len(paths), layout.MaxGridCapacity)
		paths = paths[:layout.MaxGridCapacity]
	}

	ctx := context.Background()
	ingested, err := photofs.NewIngester(photofs.WithConcurrency(cfg.Ingest.Concurrency)).Ingest(ctx, paths)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if !jsonOutput {
		bar = newPhotoProgressBar(len(ingested.Photos), "Composing contact sheet")
		opts.OnPhoto = func(compose.PhotoOutcome) {
			_ = bar.Add(1)
		}
	}

	outcome := <-compose.NewEngine().StartContactSheet(ctx, ingested.Photos, opts)
	if bar != nil {
		_ = bar.Finish()
	}
	if outcome.Err != nil {
		return outcome.Err
	}
	res := outcome.Result

	path, err := photofs.SavePNG(outDir, photofs.ContactSheetFileName(time.Now()), res.Canvas)
	if err != nil {
		return err
	}

	summary := contactSummary{
		Path:      path,
		Title:     res.Title,
		Grid:      res.Grid,
		Placed:    res.Placed,
		Skipped:   res.Skipped + len(ingested.Failures),
		Truncated: res.Truncated,
		Warnings:  res.Warnings,
	}
	for _, f := range ingested.Failures {
		summary.Failures = append(summary.Failures, fmt.Sprintf("%s: %v", f.Path, f.Err))
	}
	for _, f := range res.Failures {
		summary.Failures = append(summary.Failures, fmt.Sprintf("%s: %v", f.Name, f.Err))
	}

	if jsonOutput {
		return outputJSON(summary)
	}
	fmt.Printf("\n%s (%dx%d grid)\n", summary.Title, res.Grid.Cols, res.Grid.Rows)
	fmt.Printf("Placed: %d, skipped: %d, left out: %d\n", summary.Placed, summary.Skipped, summary.Truncated)
	for _, f := range summary.Failures {
		fmt.Printf("  failed: %s\n", f)
	}
	fmt.Printf("Saved to %s\n", path)
	return nil
}
