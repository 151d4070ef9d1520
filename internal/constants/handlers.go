package constants

// File upload constants
const (
	// MaxUploadSize is the maximum multipart request body in bytes (256MB)
	MaxUploadSize = 256 << 20

	// MaxUploadMemory is how much of a multipart form is kept in memory before spilling to disk
	MaxUploadMemory = 32 << 20

	// MaxContactSheetUploads is the most files accepted by one contact sheet request.
	// Anything past the largest grid is dropped anyway.
	MaxContactSheetUploads = 64
)

// Render ID constants
const (
	// RenderIDHeader carries the render ID of a generated contact sheet
	RenderIDHeader = "X-Render-ID"
)
