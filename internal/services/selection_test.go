package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"daily-todo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int, month time.Month, day int) Clock {
	return func() time.Time {
		return time.Date(year, month, day, 15, 30, 0, 0, time.UTC)
	}
}

func TestSelection_DefaultsToToday(t *testing.T) {
	selection := NewSelection(fixedClock(2024, 6, 1))

	assert.Equal(t, "2024-06-01", selection.Date().String())
	assert.Equal(t, "2024-06-01", selection.Today().String())
}

func TestSelection_NilClockUsesNow(t *testing.T) {
	selection := NewSelection(nil)

	assert.False(t, selection.Date().IsZero())
}

func TestSelection_Select(t *testing.T) {
	ctx := context.Background()
	selection := NewSelection(fixedClock(2024, 6, 1))

	var notified []string
	selection.OnChange(func(_ context.Context, d domain.Date) error {
		notified = append(notified, d.String())
		return nil
	})

	changed, err := selection.Select(ctx, domain.NewDate(2024, 6, 1))
	require.NoError(t, err)
	assert.False(t, changed, "selecting the current date is not a change")

	changed, err = selection.Select(ctx, domain.NewDate(2024, 6, 2))
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = selection.Select(ctx, domain.Date{})
	require.NoError(t, err)
	assert.False(t, changed, "zero date is ignored")

	assert.Equal(t, []string{"2024-06-02"}, notified)
	assert.Equal(t, "2024-06-02", selection.Date().String())
}

func TestSelection_Select_ListenerError(t *testing.T) {
	ctx := context.Background()
	selection := NewSelection(fixedClock(2024, 6, 1))
	selection.OnChange(func(context.Context, domain.Date) error {
		return fmt.Errorf("load failed")
	})

	changed, err := selection.Select(ctx, domain.NewDate(2024, 6, 5))

	assert.True(t, changed)
	assert.EqualError(t, err, "load failed")
	assert.Equal(t, "2024-06-05", selection.Date().String())
}
