package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeContextProvider_Instructions(t *testing.T) {
	p := NewTimeContextProvider(nil)
	p.Now = func() time.Time {
		return time.Date(2026, 6, 15, 8, 30, 0, 0, time.UTC)
	}

	got := p.Instructions(context.Background())

	want := "Today is Monday, June 15, 2026. The current local time is 8:30 AM UTC. The current UTC time is 8:30 AM."
	assert.Equal(t, want, got)
}

func TestTimeContextProvider_ZonedClock(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)

	p := NewTimeContextProvider(nil)
	p.Now = func() time.Time {
		return time.Date(2026, 6, 15, 14, 5, 0, 0, loc)
	}

	got := p.Instructions(context.Background())

	assert.Contains(t, got, "The current local time is 2:05 PM PST.")
	assert.Contains(t, got, "The current UTC time is 10:05 PM.")
}

func TestTimeContextProvider_UnnamedZone(t *testing.T) {
	loc := time.FixedZone("", -5*60*60)

	p := NewTimeContextProvider(nil)
	p.Now = func() time.Time {
		return time.Date(2026, 6, 15, 9, 0, 0, 0, loc)
	}

	got := p.Instructions(context.Background())

	assert.Contains(t, got, "The current local time is 9:00 AM Local.")
}

func TestTimeContextProvider_NotCached(t *testing.T) {
	calls := 0
	p := NewTimeContextProvider(nil)
	p.Now = func() time.Time {
		calls++
		return time.Date(2026, 6, 15, 8, 0, calls, 0, time.UTC)
	}

	p.Instructions(context.Background())
	p.Instructions(context.Background())

	assert.Equal(t, 2, calls)
}
