package ocr

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

const (
	// cropPadding is added on all sides of the token window, clamped to
	// the image bounds.
	cropPadding = 20

	// cropMinSize is the floor below which a crop is considered too
	// small to help a vision model and none is produced.
	cropMinSize = 50
)

// CropRect computes the pixel rectangle covering the target token's line
// plus one line above and below, padded by cropPadding and clamped to
// the image. Returns ok=false when no tokens fall in the window or the
// result is under cropMinSize in either dimension; callers must treat an
// absent crop as "no visual context", not as an error.
func CropRect(target domain.RecognizedToken, tokens []domain.RecognizedToken, imageWidth, imageHeight float64) (domain.Rect, bool) {
	byLine := groupByLine(tokens)

	var window []domain.RecognizedToken
	for _, id := range []int{target.LineID - 1, target.LineID, target.LineID + 1} {
		window = append(window, byLine[id]...)
	}
	if len(window) == 0 {
		return domain.Rect{}, false
	}

	minX, minY := window[0].BoundingBox.MinX(), window[0].BoundingBox.MinY()
	maxX, maxY := window[0].BoundingBox.MaxX(), window[0].BoundingBox.MaxY()
	for _, tok := range window[1:] {
		minX = min(minX, tok.BoundingBox.MinX())
		minY = min(minY, tok.BoundingBox.MinY())
		maxX = max(maxX, tok.BoundingBox.MaxX())
		maxY = max(maxY, tok.BoundingBox.MaxY())
	}

	x0 := max(0, minX-cropPadding)
	y0 := max(0, minY-cropPadding)
	x1 := min(imageWidth, maxX+cropPadding)
	y1 := min(imageHeight, maxY+cropPadding)

	rect := domain.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	if rect.Width < cropMinSize || rect.Height < cropMinSize {
		return domain.Rect{}, false
	}
	return rect, true
}

// Crop returns the sub-image of src described by r, re-drawn into a
// fresh RGBA so the result does not alias the source pixels.
func Crop(src image.Image, r domain.Rect) image.Image {
	bounds := image.Rect(int(r.X), int(r.Y), int(r.MaxX()), int(r.MaxY())).Intersect(src.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), src, bounds.Min, draw.Src)
	return out
}

// highlightColor approximates a translucent system-yellow marker.
var highlightColor = color.NRGBA{R: 255, G: 204, B: 0, A: 89}

// HighlightedCrop crops src to the context window around the token and
// overlays a translucent highlight on the token's own box. Returns
// ok=false when CropRect produces no usable rectangle.
func HighlightedCrop(src image.Image, target domain.RecognizedToken, tokens []domain.RecognizedToken) (image.Image, bool) {
	bounds := src.Bounds()
	rect, ok := CropRect(target, tokens, float64(bounds.Dx()), float64(bounds.Dy()))
	if !ok {
		return nil, false
	}

	out := Crop(src, rect).(*image.RGBA)

	// Token box relative to the crop origin.
	hl := image.Rect(
		int(target.BoundingBox.X-rect.X),
		int(target.BoundingBox.Y-rect.Y),
		int(target.BoundingBox.MaxX()-rect.X),
		int(target.BoundingBox.MaxY()-rect.Y),
	).Intersect(out.Bounds())

	draw.Draw(out, hl, image.NewUniform(highlightColor), image.Point{}, draw.Over)
	return out, true
}
