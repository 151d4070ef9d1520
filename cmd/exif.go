package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-print/internal/config"
	"github.com/kozaktomas/photo-print/internal/exif"
	"github.com/kozaktomas/photo-print/internal/photofs"
)

var exifCmd = &cobra.Command{
	Use:   "exif <file|folder>...",
	Short: "Show the captions photos would be printed with",
	Long: `Read EXIF metadata, apply the ingestion defaults for missing tags, and
show the caption lines a print would carry.

Examples:
  photo-print exif IMG_0001.jpg
  photo-print exif ./holiday --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExif,
}

func init() {
	rootCmd.AddCommand(exifCmd)
	exifCmd.Flags().Bool("json", false, "Output as JSON")
}

// exifInfo is one photo's metadata and captions.
type exifInfo struct {
	Path     string        `json:"path"`
	Name     string        `json:"name"`
	Caption  string        `json:"caption"`
	Camera   string        `json:"camera"`
	Label    string        `json:"label"`
	Metadata exif.Metadata `json:"metadata"`
}

func runExif(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	paths, err := collectPaths(args)
	if err != nil {
		return err
	}

	res, err := photofs.NewIngester(photofs.WithConcurrency(cfg.Ingest.Concurrency)).Ingest(context.Background(), paths)
	if err != nil {
		return err
	}

	infos := make([]exifInfo, 0, len(res.Photos))
	for _, p := range res.Photos {
		path := p.Name
		if fa, ok := p.Asset.(photofs.FileAsset); ok {
			path = fa.Path
		}
		infos = append(infos, exifInfo{
			Path:     path,
			Name:     p.Name,
			Caption:  exif.Caption(p.Metadata),
			Camera:   exif.CameraLine(p.Metadata),
			Label:    exif.TruncateName(p.Name),
			Metadata: p.Metadata,
		})
	}

	if mustGetBool(cmd, "json") {
		return outputJSON(infos)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PHOTO\tCAPTION\tCAMERA\tTAKEN")
	fmt.Fprintln(w, "-----\t-------\t------\t-----")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			info.Label, info.Caption, info.Camera, info.Metadata.Get(exif.KeyDateTimeOriginal))
	}
	w.Flush()

	for _, f := range res.Failures {
		fmt.Printf("Skipped %s: %v\n", f.Path, f.Err)
	}
	fmt.Printf("\nTotal: %d photos\n", len(infos))
	return nil
}
