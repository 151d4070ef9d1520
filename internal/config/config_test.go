package config

import (
	"testing"
	"time"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/layout"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Print.Mode != layout.ModeNormal {
		t.Errorf("expected normal mode, got %s", cfg.Print.Mode)
	}
	if cfg.Print.Format != layout.Format4x6 {
		t.Errorf("expected 4x6, got %s", cfg.Print.Format)
	}
	if cfg.Server.RenderCacheTTL() != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.Server.RenderCacheTTL())
	}
	if cfg.Ingest.Concurrency != 8 {
		t.Errorf("expected ingest concurrency 8, got %d", cfg.Ingest.Concurrency)
	}

	// The embedded defaults must match the engine's own.
	if got, want := cfg.ComposeOptions(), compose.DefaultOptions(); got.Mode != want.Mode ||
		got.TextSizeMultiplier != want.TextSizeMultiplier ||
		got.ShowFilenames != want.ShowFilenames ||
		got.ShowExif != want.ShowExif ||
		got.Margin != want.Margin ||
		got.Spacing != want.Spacing ||
		got.FontSize != want.FontSize ||
		got.Concurrency != want.Concurrency {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PRINT_MODE", "commercial")
	t.Setenv("PRINT_FORMAT", "8x10")
	t.Setenv("PRINT_TEXT_SIZE", "1.5")
	t.Setenv("PRINT_SHOW_FILENAMES", "false")
	t.Setenv("PRINT_SHOW_EXIF", "0")
	t.Setenv("PRINT_OUTPUT_DIR", "/tmp/prints")
	t.Setenv("PRINT_CONCURRENCY", "3")
	t.Setenv("RENDER_CACHE_TTL_MINUTES", "5")

	cfg := Load()

	if cfg.Print.Mode != layout.ModeCommercial {
		t.Errorf("expected commercial, got %s", cfg.Print.Mode)
	}
	if cfg.Print.Format != layout.Format8x10 {
		t.Errorf("expected 8x10, got %s", cfg.Print.Format)
	}
	if cfg.Print.TextSizeMultiplier != 1.5 {
		t.Errorf("expected 1.5, got %v", cfg.Print.TextSizeMultiplier)
	}
	if cfg.Print.ShowFilenames || cfg.Print.ShowExif {
		t.Error("expected captions disabled")
	}
	if cfg.Print.OutputDir != "/tmp/prints" {
		t.Errorf("unexpected output dir %s", cfg.Print.OutputDir)
	}
	if cfg.Ingest.Concurrency != 3 || cfg.ContactSheet.Concurrency != 3 {
		t.Errorf("expected concurrency 3, got %d/%d", cfg.Ingest.Concurrency, cfg.ContactSheet.Concurrency)
	}
	if cfg.Server.RenderCacheTTL() != 5*time.Minute {
		t.Errorf("expected 5m TTL, got %v", cfg.Server.RenderCacheTTL())
	}
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("PRINT_MODE", "glossy")
	t.Setenv("PRINT_FORMAT", "poster")
	t.Setenv("PRINT_TEXT_SIZE", "-2")
	t.Setenv("PRINT_SHOW_EXIF", "maybe")
	t.Setenv("PRINT_CONCURRENCY", "abc")

	cfg := Load()

	if cfg.Print.Mode != layout.ModeNormal {
		t.Errorf("expected normal fallback, got %s", cfg.Print.Mode)
	}
	if cfg.Print.Format != layout.Format4x6 {
		t.Errorf("expected 4x6 fallback, got %s", cfg.Print.Format)
	}
	if cfg.Print.TextSizeMultiplier != 1.0 {
		t.Errorf("expected 1.0 fallback, got %v", cfg.Print.TextSizeMultiplier)
	}
	if !cfg.Print.ShowExif {
		t.Error("expected EXIF captions to stay enabled")
	}
	if cfg.Ingest.Concurrency != 8 {
		t.Errorf("expected default concurrency, got %d", cfg.Ingest.Concurrency)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "42")
	if got := envInt("TEST_ENV_INT", 1); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	t.Setenv("TEST_ENV_INT", "0")
	if got := envInt("TEST_ENV_INT", 1); got != 1 {
		t.Errorf("expected default for zero, got %d", got)
	}
}

func TestLoad_ZeroSpacingAndMargin(t *testing.T) {
	t.Setenv("CONTACT_SHEET_MARGIN", "0")
	t.Setenv("CONTACT_SHEET_SPACING", "0")
	t.Setenv("CONTACT_SHEET_FONT_SIZE", "0")

	cfg := Load()
	if cfg.ContactSheet.Margin != 0 {
		t.Errorf("expected margin 0, got %d", cfg.ContactSheet.Margin)
	}
	if cfg.ContactSheet.Spacing != 0 {
		t.Errorf("expected spacing 0, got %d", cfg.ContactSheet.Spacing)
	}
	// A zero font size is not usable, so it keeps the default.
	if cfg.ContactSheet.FontSize != 8 {
		t.Errorf("expected default font size, got %d", cfg.ContactSheet.FontSize)
	}
	if err := cfg.ComposeOptions().Validate(); err != nil {
		t.Errorf("zero margin and spacing should validate: %v", err)
	}
}

func TestEnvNonNegInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"0", 0},
		{"12", 12},
		{"-1", 5},
		{"abc", 5},
		{"", 5},
	}
	for _, tt := range tests {
		t.Setenv("TEST_ENV_NON_NEG_INT", tt.value)
		if got := envNonNegInt("TEST_ENV_NON_NEG_INT", 5); got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.value, tt.want, got)
		}
	}
}
