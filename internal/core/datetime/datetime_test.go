package datetime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cordoba(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Argentina/Cordoba")
	require.NoError(t, err)
	return loc
}

// mondayMorning is Monday 2026-10-12 10:00 local.
func mondayMorning(loc *time.Location) time.Time {
	return time.Date(2026, 10, 12, 10, 0, 0, 0, loc)
}

type stubFallback struct {
	out   string
	ok    bool
	calls int
}

func (s *stubFallback) ResolveDateTime(_ context.Context, _ string, _ *time.Location) (string, bool) {
	s.calls++
	return s.out, s.ok
}

func TestParseLiteral(t *testing.T) {
	loc := cordoba(t)
	want := time.Date(2026, 10, 16, 10, 0, 0, 0, loc)

	tests := []struct {
		in string
		ok bool
	}{
		{"2026-10-16T10:00:00", true},
		{"2026-10-16 10:00", true},
		{"2026-10-16T10:00:00-03:00", true},
		{"2026-10-16T13:00:00Z", true},
		{"  2026-10-16 10:00:00  ", true},
		{"16/10/2026 10:00", false},
		{"viernes a las 10", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLiteral(tt.in, loc)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, want.Equal(got), "got %s", got)
			}
		})
	}

	day, ok := ParseLiteral("2026-10-16", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, loc), day)
}

func TestParseWeekdayPhrase(t *testing.T) {
	tests := []struct {
		in   string
		want WeekdayPhrase
		ok   bool
	}{
		{"lunes a las 15", WeekdayPhrase{Weekday: 1, Hour: 15}, true},
		{"el próximo martes 10:30", WeekdayPhrase{Weekday: 2, Next: true, Hour: 10, Minute: 30}, true},
		{"Viernes que viene a las 7 de la tarde", WeekdayPhrase{Weekday: 5, Next: true, Hour: 19}, true},
		{"sábado próximo 9am", WeekdayPhrase{Weekday: 6, Next: true, Hour: 9}, true},
		{"miércoles 16/10 a las 10", WeekdayPhrase{Weekday: 3, Hour: 10}, true},
		{"a las 10 el jueves", WeekdayPhrase{Weekday: 4, Hour: 10}, true},
		{"domingo 18hs", WeekdayPhrase{Weekday: 7, Hour: 18}, true},
		{"jueves 9.30", WeekdayPhrase{Weekday: 4, Hour: 9, Minute: 30}, true},
		{"miércoles 16/10 10hs", WeekdayPhrase{Weekday: 3, Hour: 10}, true},
		{"viernes 2026-10-16 a las 11:15", WeekdayPhrase{Weekday: 5, Hour: 11, Minute: 15}, true},
		{"lunes 16/10", WeekdayPhrase{}, false},
		{"lunes a las 25", WeekdayPhrase{}, false},
		{"lunes", WeekdayPhrase{}, false},
		{"mañana a las 10", WeekdayPhrase{}, false},
		{"lunesito a las 10", WeekdayPhrase{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseWeekdayPhrase(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	loc := cordoba(t)
	now := mondayMorning(loc)

	tests := []struct {
		name   string
		phrase WeekdayPhrase
		want   time.Time
	}{
		{"same weekday means next week", WeekdayPhrase{Weekday: 1, Hour: 15}, time.Date(2026, 10, 19, 15, 0, 0, 0, loc)},
		{"later this week", WeekdayPhrase{Weekday: 5, Hour: 10}, time.Date(2026, 10, 16, 10, 0, 0, 0, loc)},
		{"next modifier adds a week", WeekdayPhrase{Weekday: 2, Next: true, Hour: 10, Minute: 30}, time.Date(2026, 10, 20, 10, 30, 0, 0, loc)},
		{"sunday", WeekdayPhrase{Weekday: 7, Hour: 9}, time.Date(2026, 10, 18, 9, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.phrase, now, loc)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.After(now))
		})
	}
}

func TestNextOccurrence_UsesTenantZone(t *testing.T) {
	loc := cordoba(t)
	// Sunday 23:30 in Córdoba is already Monday in UTC.
	now := time.Date(2026, 10, 18, 23, 30, 0, 0, loc).UTC()

	got := NextOccurrence(WeekdayPhrase{Weekday: 1, Hour: 9}, now, loc)

	assert.Equal(t, time.Date(2026, 10, 19, 9, 0, 0, 0, loc), got)
}

func TestResolver_Tiers(t *testing.T) {
	loc := cordoba(t)
	ctx := context.Background()

	t.Run("literal wins without touching the fallback", func(t *testing.T) {
		fb := &stubFallback{out: "2030-01-01 00:00", ok: true}
		r := NewResolver(loc, fb).WithClock(func() time.Time { return mondayMorning(loc) })

		got, ok := r.Resolve(ctx, "2026-10-16 10:00")

		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 10, 16, 10, 0, 0, 0, loc), got)
		assert.Zero(t, fb.calls)
	})

	t.Run("weekday grammar", func(t *testing.T) {
		r := NewResolver(loc, nil).WithClock(func() time.Time { return mondayMorning(loc) })

		got, ok := r.Resolve(ctx, "lunes a las 15")

		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 10, 19, 15, 0, 0, 0, loc), got)
	})

	t.Run("fallback accepted when well formed", func(t *testing.T) {
		fb := &stubFallback{out: "2026-10-22T11:00:00", ok: true}
		r := NewResolver(loc, fb)

		got, ok := r.Resolve(ctx, "pasado mañana a la mañana")

		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 10, 22, 11, 0, 0, 0, loc), got)
		assert.Equal(t, 1, fb.calls)
	})

	t.Run("malformed fallback output discarded", func(t *testing.T) {
		fb := &stubFallback{out: "el jueves temprano", ok: true}
		_, ok := NewResolver(loc, fb).Resolve(ctx, "cuando puedas")
		assert.False(t, ok)
	})

	t.Run("fallback says null", func(t *testing.T) {
		fb := &stubFallback{ok: false}
		_, ok := NewResolver(loc, fb).Resolve(ctx, "cuando puedas")
		assert.False(t, ok)
	})

	t.Run("no fallback", func(t *testing.T) {
		_, ok := NewResolver(loc, nil).Resolve(ctx, "cuando puedas")
		assert.False(t, ok)
	})
}

func TestFormatLocal(t *testing.T) {
	loc := cordoba(t)
	at := time.Date(2026, 10, 16, 13, 0, 0, 0, time.UTC)

	assert.Equal(t, "viernes 16/10 a las 10:00", FormatLocal(at, loc))
	assert.Equal(t, "2026-10-16T10:00:00-03:00", FormatISO(at, loc))
}
