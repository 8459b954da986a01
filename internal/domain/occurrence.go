package domain

import (
	"time"

	"github.com/google/uuid"
)

// Occurrence records one capture event for a term: the raw tapped text,
// its surrounding context window, and the stored image paths.
// Occurrences are immutable after creation and removed only by cascade
// when their term is deleted.
type Occurrence struct {
	ID             uuid.UUID
	TermID         uuid.UUID
	RawText        string
	Context        string
	ScreenshotPath string
	CropPath       *string
	SourceLabel    *string
	CreatedAt      time.Time
}
