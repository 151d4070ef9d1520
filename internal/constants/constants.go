// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

import "time"

// Processing constants
const (
	// WorkerPoolSize is the default number of parallel workers for photo ingestion
	WorkerPoolSize = 8

	// LowResDPIThreshold is the effective DPI below which a print is flagged
	LowResDPIThreshold = 200.0
)

// Render cache constants
const (
	// DefaultRenderCacheTTL is how long a rendered contact sheet stays downloadable
	DefaultRenderCacheTTL = 30 * time.Minute

	// RenderCacheCleanupInterval is how often expired renders are purged
	RenderCacheCleanupInterval = 5 * time.Minute
)

// SupportedImageExtensions lists the file extensions accepted for ingestion,
// lower case and without the dot.
var SupportedImageExtensions = []string{"jpg", "jpeg", "png", "tiff", "tif", "bmp", "webp"}
