package frame

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode means the downloaded bytes could not be decoded as an image.
var ErrDecode = errors.New("could not decode image")

// Render fits an encoded image onto a black canvas of exactly width x height:
// scaled by min(width/srcW, height/srcH) so the whole picture stays visible,
// resampled with Catmull-Rom, centered, and re-encoded as JPEG. Sources
// smaller than the canvas are scaled up. Integer centering may leave a 1px
// asymmetry.
//
// The blank codec imports register the decoders once at startup: JPEG, PNG
// and GIF from the standard library plus TIFF (the camera raw container),
// WebP and BMP.
func Render(data []byte, width, height int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	bounds := img.Bounds()
	scaledW, scaledH := fitDimensions(bounds.Dx(), bounds.Dy(), width, height)
	offsetX := (width - scaledW) / 2
	offsetY := (height - scaledH) / 2

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	target := image.Rect(offsetX, offsetY, offsetX+scaledW, offsetY+scaledH)
	draw.CatmullRom.Scale(canvas, target, img, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("could not encode image: %w", err)
	}

	return buf.Bytes(), nil
}

// fitDimensions computes the scaled size that fits (srcW, srcH) inside
// (maxW, maxH) while preserving aspect ratio. The limiting axis matches the
// box exactly; the other is rounded and clamped to at least 1px.
func fitDimensions(srcW, srcH, maxW, maxH int) (int, int) {
	scale := min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))
	return max(w, 1), max(h, 1)
}
