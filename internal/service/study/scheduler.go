package study

import (
	"time"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// Scheduler advances term due dates. The model is deliberately flat: a
// correct answer pushes the due date exactly one calendar day forward,
// a wrong answer leaves the term immediately due. There is no streak
// tracking or graduated interval.
type Scheduler struct {
	loc *time.Location
}

// NewScheduler creates a scheduler doing calendar arithmetic in loc.
func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{loc: loc}
}

// Next computes the new due date for a grade given at now.
//
// GOT_IT adds one calendar day in the scheduler's location, so the
// wall-clock time is preserved across daylight-saving shifts and
// month/year rollovers; it is not a fixed 24h offset. AGAIN returns
// now unchanged: the term stays due.
func (s *Scheduler) Next(grade domain.ReviewGrade, now time.Time) time.Time {
	switch grade {
	case domain.ReviewGradeGotIt:
		return now.In(s.loc).AddDate(0, 0, 1)
	default:
		return now
	}
}
