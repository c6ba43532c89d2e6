package services

import (
	"context"
	"time"

	"daily-todo/internal/domain"
)

// Selection holds the one date the list shows. It starts at today.
type Selection struct {
	date     domain.Date
	clock    Clock
	onChange func(context.Context, domain.Date) error
}

// NewSelection creates a selection set to today according to clock.
// A nil clock uses time.Now.
func NewSelection(clock Clock) *Selection {
	if clock == nil {
		clock = time.Now
	}
	return &Selection{
		date:  domain.DateOf(clock()),
		clock: clock,
	}
}

// OnChange registers the listener called after the selected date changes.
func (s *Selection) OnChange(fn func(context.Context, domain.Date) error) {
	s.onChange = fn
}

// Date returns the selected date.
func (s *Selection) Date() domain.Date {
	return s.date
}

// Today returns today's date from the selection's clock.
func (s *Selection) Today() domain.Date {
	return domain.DateOf(s.clock())
}

// Select makes date the selection. The listener runs only when the date
// differs from the current one; its error is returned but the selection
// still moves.
func (s *Selection) Select(ctx context.Context, date domain.Date) (bool, error) {
	if date.IsZero() || date.Equal(s.date) {
		return false, nil
	}

	s.date = date
	if s.onChange != nil {
		return true, s.onChange(ctx, date)
	}
	return true, nil
}
