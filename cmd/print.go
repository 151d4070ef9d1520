package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/config"
	"github.com/kozaktomas/photo-print/internal/layout"
	"github.com/kozaktomas/photo-print/internal/photofs"
)

var printCmd = &cobra.Command{
	Use:   "print <file|folder>...",
	Short: "Render framed prints with EXIF captions",
	Long: `Render one print per photo onto a fixed-size canvas with cutting-safe
margins. Folders are scanned (not recursively) for supported images.
Output files are named <photo>_print.png and written to an existing
directory.

Examples:
  photo-print print IMG_0001.jpg --format 5x7
  photo-print print ./holiday --mode commercial --output ./prints
  photo-print print ./holiday --orientation auto --jpeg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().String("format", "", "Print format (default from PRINT_FORMAT)")
	printCmd.Flags().String("mode", "", "Print mode: normal or commercial (default from PRINT_MODE)")
	printCmd.Flags().Float64("text-size", 0, "Caption text size multiplier, 0.5 to 3.0 (default from PRINT_TEXT_SIZE)")
	printCmd.Flags().Bool("no-filenames", false, "Do not print file names")
	printCmd.Flags().Bool("no-exif", false, "Do not print EXIF captions")
	printCmd.Flags().String("orientation", "landscape", "Canvas orientation: landscape, portrait or auto")
	printCmd.Flags().StringP("output", "o", "", "Output directory, must exist (default from PRINT_OUTPUT_DIR)")
	printCmd.Flags().Bool("jpeg", false, "Write JPEG instead of PNG")
}

// collectPaths expands folders into their image files.
func collectPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", arg, err)
		}
		if info.IsDir() {
			found, err := photofs.ScanFolder(arg)
			if err != nil {
				return nil, err
			}
			paths = append(paths, found...)
			continue
		}
		if !photofs.IsImageFile(arg) {
			log.Printf("WARNING: skipping unsupported file %s", arg)
			continue
		}
		paths = append(paths, arg)
	}
	if len(paths) == 0 {
		return nil, errors.New("no supported images found")
	}
	return paths, nil
}

// canvasSize orients a catalog size for one photo.
func canvasSize(size layout.Size, orientation string, photo compose.Photo) layout.Size {
	portrait := layout.Size{Width: size.Height, Height: size.Width}
	switch orientation {
	case "portrait":
		return portrait
	case "auto":
		fa, ok := photo.Asset.(photofs.FileAsset)
		if !ok {
			return size
		}
		w, h, _, err := photofs.Dimensions(fa.Path)
		if err == nil && h > w {
			return portrait
		}
	}
	return size
}

func newPhotoProgressBar(count int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(count,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("photos"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	opts, err := applyCompositionFlags(cmd, cfg.ComposeOptions())
	if err != nil {
		return err
	}

	format := cfg.Print.Format
	if s := mustGetString(cmd, "format"); s != "" {
		format = layout.Format(s)
	}
	if !layout.DefaultCatalog().Known(format) {
		return fmt.Errorf("unknown format %q", format)
	}
	orientation := mustGetString(cmd, "orientation")
	switch orientation {
	case "landscape", "portrait", "auto":
	default:
		return fmt.Errorf("invalid orientation %q", orientation)
	}
	outDir := mustGetString(cmd, "output")
	if outDir == "" {
		outDir = cfg.Print.OutputDir
	}
	if err := photofs.CheckOutputDir(outDir); err != nil {
		return err
	}
	asJPEG := mustGetBool(cmd, "jpeg")

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	ingested, err := photofs.NewIngester(photofs.WithConcurrency(cfg.Ingest.Concurrency)).Ingest(ctx, paths)
	if err != nil {
		return err
	}
	for _, f := range ingested.Failures {
		fmt.Printf("Skipped %s: %v\n", f.Path, f.Err)
	}

	engine := compose.NewEngine()
	size := engine.Catalog().GetSize(format)
	bar := newPhotoProgressBar(len(ingested.Photos), "Rendering prints")

	var written, failed, lowRes int
	for _, photo := range ingested.Photos {
		res, err := engine.RenderPrintOn(ctx, photo, canvasSize(size, orientation, photo), opts)
		if err != nil {
			if errors.Is(err, compose.ErrInvalidCanvas) || errors.Is(err, compose.ErrInvalidOptions) {
				return err
			}
			log.Printf("WARNING: failed to render %s: %v", photo.Name, err)
			failed++
			bar.Add(1)
			continue
		}
		if res.EffectiveDPI < layout.LowResDPIThreshold {
			lowRes++
		}

		if asJPEG {
			_, err = photofs.SaveJPEG(outDir, photofs.PrintFileName(photo.Name, "jpg"), res.Canvas, cfg.Print.JPEGQuality)
		} else {
			_, err = photofs.SavePNG(outDir, photofs.PrintFileName(photo.Name, "png"), res.Canvas)
		}
		if errors.Is(err, photofs.ErrOutputDir) {
			return err
		}
		if err != nil {
			log.Printf("WARNING: failed to save %s: %v", photo.Name, err)
			failed++
		} else {
			written++
		}
		bar.Add(1)
	}
	bar.Finish()

	fmt.Printf("\nWrote %d %s prints to %s", written, format, outDir)
	if failed > 0 {
		fmt.Printf(" (%d failed)", failed)
	}
	fmt.Println()
	if lowRes > 0 {
		fmt.Printf("%d prints are below %.0f DPI and may look soft\n", lowRes, layout.LowResDPIThreshold)
	}
	return nil
}
