// Package frame turns Immich libraries into photo-frame pictures: it picks
// a random asset tagged with requested people and normalizes it to the
// exact panel dimensions.
package frame

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/kozaktomas/immich-frame/internal/constants"
	"github.com/kozaktomas/immich-frame/internal/immich"
)

// Frame runs the photo pipeline: resolve names to people, pick a random
// tagged asset, download it and normalize it to the requested dimensions.
type Frame struct {
	immich   *immich.Immich
	randIntN func(n int) int // uniform draw from [0, n); swappable for deterministic tests
}

// New creates a Frame backed by the given Immich client.
func New(im *immich.Immich) *Frame {
	return &Frame{
		immich:   im,
		randIntN: rand.IntN,
	}
}

// Request is a typed photo request. All fields are required; callers apply
// defaults before validation.
type Request struct {
	Names  []string
	Width  int
	Height int
}

// Validate checks a request at the boundary, before any upstream call.
func (r Request) Validate() error {
	if len(r.Names) == 0 {
		return errors.New("at least one name is required")
	}
	for _, name := range r.Names {
		if strings.TrimSpace(name) == "" {
			return errors.New("names must not be blank")
		}
	}
	return ValidateDimensions(r.Width, r.Height)
}

// ValidateDimensions checks that the requested output size is usable.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("width and height must be positive")
	}
	if width > constants.MaxDimension || height > constants.MaxDimension {
		return fmt.Errorf("width and height must be at most %d", constants.MaxDimension)
	}
	return nil
}

// Photo runs the full pipeline for a validated request and returns the
// normalized JPEG bytes.
func (f *Frame) Photo(ctx context.Context, req Request) ([]byte, error) {
	assetID, err := f.SelectAsset(ctx, req.Names)
	if err != nil {
		return nil, err
	}
	return f.RenderAsset(ctx, assetID, req.Width, req.Height)
}

// RenderAsset downloads one asset and normalizes it to the given dimensions.
func (f *Frame) RenderAsset(ctx context.Context, assetID string, width, height int) ([]byte, error) {
	data, err := f.immich.DownloadAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return Render(data, width, height)
}
