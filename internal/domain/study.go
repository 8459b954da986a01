package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLog is one recorded review of a term during a study session.
type ReviewLog struct {
	ID         uuid.UUID
	TermID     uuid.UUID
	Grade      ReviewGrade
	ReviewedAt time.Time
}
