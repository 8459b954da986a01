package study

import (
	"testing"
	"time"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

func TestScheduler_GotIt_AddsOneCalendarDay(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.UTC)
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	got := s.Next(domain.ReviewGradeGotIt, now)
	want := time.Date(2025, 3, 11, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestScheduler_GotIt_MonthRollover(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.UTC)
	now := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)

	got := s.Next(domain.ReviewGradeGotIt, now)
	want := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestScheduler_GotIt_YearRollover(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.UTC)
	now := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)

	got := s.Next(domain.ReviewGradeGotIt, now)
	want := time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestScheduler_GotIt_DSTSpringForward(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	s := NewScheduler(loc)

	// 2025-03-08 10:00 EST; the next day the clocks jump forward.
	now := time.Date(2025, 3, 8, 10, 0, 0, 0, loc)
	got := s.Next(domain.ReviewGradeGotIt, now)

	if got.Year() != 2025 || got.Month() != 3 || got.Day() != 9 {
		t.Fatalf("date = %v, want March 9", got)
	}
	// Calendar addition keeps the wall-clock hour, a fixed 24h offset would not.
	if got.Hour() != 10 {
		t.Errorf("hour = %d, want 10 (wall clock preserved across DST)", got.Hour())
	}
}

func TestScheduler_Again_Identity(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.UTC)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if got := s.Next(domain.ReviewGradeAgain, now); !got.Equal(now) {
		t.Errorf("Next(AGAIN) = %v, want %v unchanged", got, now)
	}
}

func TestScheduler_IsDue_EqualityBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want bool
	}{
		{"past due", now.Add(-time.Hour), true},
		{"due exactly now", now, true},
		{"due later", now.Add(time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			term := &domain.Term{DueDate: tt.due}
			if got := term.IsDue(now); got != tt.want {
				t.Errorf("IsDue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheduler_NilLocationDefaultsToLocal(t *testing.T) {
	t.Parallel()

	s := NewScheduler(nil)
	now := time.Now()
	got := s.Next(domain.ReviewGradeGotIt, now)
	if !got.After(now) {
		t.Error("GOT_IT should move the due date forward")
	}
}
