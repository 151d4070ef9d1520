package config

import (
	_ "embed"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/layout"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Print        PrintConfig        `yaml:"print"`
	ContactSheet ContactSheetConfig `yaml:"contact_sheet"`
	Ingest       IngestConfig       `yaml:"ingest"`
	Server       ServerConfig       `yaml:"server"`
}

type PrintConfig struct {
	Mode               layout.PrintMode `yaml:"mode"`
	Format             layout.Format    `yaml:"format"`
	TextSizeMultiplier float64          `yaml:"text_size_multiplier"`
	ShowFilenames      bool             `yaml:"show_filenames"`
	ShowExif           bool             `yaml:"show_exif"`
	JPEGQuality        int              `yaml:"jpeg_quality"`
	OutputDir          string           `yaml:"output_dir"` // must already exist when saving
}

type ContactSheetConfig struct {
	Margin      int `yaml:"margin"`
	Spacing     int `yaml:"spacing"`
	FontSize    int `yaml:"font_size"`
	Concurrency int `yaml:"concurrency"` // 0 loads every cell at once
}

type IngestConfig struct {
	Concurrency int `yaml:"concurrency"`
}

type ServerConfig struct {
	RenderCacheTTLMinutes int `yaml:"render_cache_ttl_minutes"`
}

// RenderCacheTTL is how long rendered sheets stay downloadable.
func (c ServerConfig) RenderCacheTTL() time.Duration {
	return time.Duration(c.RenderCacheTTLMinutes) * time.Minute
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envNonNegInt is envInt for settings where zero is meaningful.
func envNonNegInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	return defaultVal
}

// envFloat reads a positive float, falling back like envInt.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

// envBool accepts the strconv.ParseBool spellings.
func envBool(key string, defaultVal bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return defaultVal
}

func defaults() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}
	return cfg
}

func Load() *Config {
	cfg := defaults()

	if s := os.Getenv("PRINT_MODE"); s != "" {
		mode, err := layout.ParseMode(s)
		if err != nil {
			log.Printf("WARNING: ignoring PRINT_MODE: %v", err)
		} else {
			cfg.Print.Mode = mode
		}
	}
	if s := os.Getenv("PRINT_FORMAT"); s != "" {
		if f := layout.Format(s); layout.DefaultCatalog().Known(f) {
			cfg.Print.Format = f
		} else {
			log.Printf("WARNING: ignoring unknown PRINT_FORMAT %q", s)
		}
	}
	cfg.Print.TextSizeMultiplier = envFloat("PRINT_TEXT_SIZE", cfg.Print.TextSizeMultiplier)
	cfg.Print.ShowFilenames = envBool("PRINT_SHOW_FILENAMES", cfg.Print.ShowFilenames)
	cfg.Print.ShowExif = envBool("PRINT_SHOW_EXIF", cfg.Print.ShowExif)
	cfg.Print.JPEGQuality = envInt("PRINT_JPEG_QUALITY", cfg.Print.JPEGQuality)
	if dir := os.Getenv("PRINT_OUTPUT_DIR"); dir != "" {
		cfg.Print.OutputDir = dir
	}

	cfg.ContactSheet.Margin = envNonNegInt("CONTACT_SHEET_MARGIN", cfg.ContactSheet.Margin)
	cfg.ContactSheet.Spacing = envNonNegInt("CONTACT_SHEET_SPACING", cfg.ContactSheet.Spacing)
	cfg.ContactSheet.FontSize = envInt("CONTACT_SHEET_FONT_SIZE", cfg.ContactSheet.FontSize)

	concurrency := envInt("PRINT_CONCURRENCY", 0)
	if concurrency > 0 {
		cfg.Ingest.Concurrency = concurrency
		cfg.ContactSheet.Concurrency = concurrency
	}
	cfg.Server.RenderCacheTTLMinutes = envInt("RENDER_CACHE_TTL_MINUTES", cfg.Server.RenderCacheTTLMinutes)

	return &cfg
}

// ComposeOptions converts the configuration into engine options.
func (c *Config) ComposeOptions() compose.Options {
	return compose.Options{
		Mode:               c.Print.Mode,
		TextSizeMultiplier: c.Print.TextSizeMultiplier,
		ShowFilenames:      c.Print.ShowFilenames,
		ShowExif:           c.Print.ShowExif,
		Margin:             c.ContactSheet.Margin,
		Spacing:            c.ContactSheet.Spacing,
		FontSize:           c.ContactSheet.FontSize,
		Concurrency:        c.ContactSheet.Concurrency,
	}
}
