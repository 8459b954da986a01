package vocab

import (
	"strings"

	"github.com/google/uuid"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// OccurrenceInput describes one capture event attached to a save.
type OccurrenceInput struct {
	RawText        string
	Context        string
	ScreenshotPath string
	CropPath       *string
	SourceLabel    *string
}

// SaveWordInput holds the parameters for SaveWord. Enrichment fields are
// each independently allowed to be empty.
type SaveWordInput struct {
	Primary     string
	Lemma       string
	Pos         domain.PartOfSpeech
	ArticleMode bool
	Enrichment  domain.Enrichment
	FolderID    *uuid.UUID

	// SourceLanguage and TargetLanguage decide whether an occurrence is
	// recorded: identical languages mean dictionary lookup mode, nothing
	// to archive.
	SourceLanguage string
	TargetLanguage string

	Occurrence OccurrenceInput
}

// Validate checks all fields and collects all errors.
func (i *SaveWordInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Lemma) == "" {
		errs = append(errs, domain.FieldError{Field: "lemma", Message: "required"})
	}
	if strings.TrimSpace(i.Primary) == "" {
		errs = append(errs, domain.FieldError{Field: "primary", Message: "required"})
	}
	if !i.Pos.IsValid() {
		errs = append(errs, domain.FieldError{Field: "pos", Message: "unknown part of speech"})
	}
	if i.SourceLanguage == "" {
		errs = append(errs, domain.FieldError{Field: "source_language", Message: "required"})
	}
	if i.TargetLanguage == "" {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FindTermsInput holds the parameters for FindTerms.
type FindTermsInput struct {
	FolderID *uuid.UUID
	Pos      domain.PartOfSpeech
	DueOnly  bool
	Search   string
	Limit    int
	Offset   int
}

// Validate checks pagination bounds.
func (i *FindTermsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be in [0, 500]"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if i.Pos != "" && !i.Pos.IsValid() {
		errs = append(errs, domain.FieldError{Field: "pos", Message: "unknown part of speech"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
