package ocr

import "github.com/wordlens/wordlens-backend/internal/domain"

// PixelRect converts a recognizer box (unit-square normalized,
// bottom-left origin) to image pixel coordinates (top-left origin).
// The vertical flip is pixelY = (1 - normY - normH) * imageHeight.
// All box conversions must go through this function; inlining the flip
// at call sites is how sign bugs happen.
func PixelRect(box domain.RectNorm, imageWidth, imageHeight float64) domain.Rect {
	return domain.Rect{
		X:      box.X * imageWidth,
		Y:      (1 - box.Y - box.Height) * imageHeight,
		Width:  box.Width * imageWidth,
		Height: box.Height * imageHeight,
	}
}

// subBox returns the horizontal slice of box between startFraction and
// startFraction+widthFraction. Height is always reused in full; only x
// and width are subdivided.
func subBox(box domain.RectNorm, startFraction, widthFraction float64) domain.RectNorm {
	return domain.RectNorm{
		X:      box.X + box.Width*startFraction,
		Y:      box.Y,
		Width:  box.Width * widthFraction,
		Height: box.Height,
	}
}
