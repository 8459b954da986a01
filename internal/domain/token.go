package domain

import "github.com/google/uuid"

// Rect is an axis-aligned rectangle in image pixel coordinates
// (origin top-left, y increasing downward).
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// RectNorm is a rectangle in the text-recognition engine's convention:
// unit-square normalized with a bottom-left origin, y increasing upward.
type RectNorm struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// YCenter returns the vertical center of the normalized box.
func (r RectNorm) YCenter() float64 { return r.Y + r.Height/2 }

// Observation is one raw result from the on-device text recognizer:
// a piece of recognized text with its normalized box and confidence.
type Observation struct {
	Text        string   `json:"text"`
	Confidence  float64  `json:"confidence"`
	BoundingBox RectNorm `json:"bounding_box"`
}

// RecognizedToken is a single recognized word, produced per image and
// never persisted. Text is guaranteed non-empty with at least one letter.
type RecognizedToken struct {
	ID             uuid.UUID `json:"id"`
	Text           string    `json:"text"`
	NormalizedText string    `json:"normalized_text"`
	BoundingBox    Rect      `json:"bounding_box"`
	LineID         int       `json:"line_id"`
	Confidence     float64   `json:"confidence"`
}
