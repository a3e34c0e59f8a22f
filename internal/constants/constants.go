// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Frame output constants
const (
	// DefaultWidth is the default output width in pixels (5.65" e-paper panel)
	DefaultWidth = 600

	// DefaultHeight is the default output height in pixels
	DefaultHeight = 448

	// MaxDimension caps requested output dimensions to bound canvas allocations
	MaxDimension = 4096
)

// Duplicate scanner constants
const (
	// ExternalLibraryRoot is the path prefix of assets imported from the
	// external library mount (the NAS photo share)
	ExternalLibraryRoot = "/volume1/photo/Photos"

	// PhoneUploadRoot is the path prefix of assets uploaded through the
	// mobile app into Immich's own storage
	PhoneUploadRoot = "/usr/src/app/upload/upload/"
)
