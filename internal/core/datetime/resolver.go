package datetime

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Fallback resolves phrases the local tiers could not. It returns raw text
// that must still pass the literal parser.
type Fallback interface {
	ResolveDateTime(ctx context.Context, phrase string, loc *time.Location) (string, bool)
}

// Resolver runs the three resolution tiers in order.
type Resolver struct {
	loc      *time.Location
	now      func() time.Time
	fallback Fallback
}

// NewResolver creates a resolver for loc. fallback may be nil.
func NewResolver(loc *time.Location, fallback Fallback) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{loc: loc, now: time.Now, fallback: fallback}
}

// WithClock replaces the time source, for tests.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// Location returns the tenant timezone.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Resolve converts text to an instant. The boolean is false when every tier
// fails; that is an expected outcome, not an error.
func (r *Resolver) Resolve(ctx context.Context, text string) (time.Time, bool) {
	if t, ok := ParseLiteral(text, r.loc); ok {
		return t, true
	}

	if phrase, ok := ParseWeekdayPhrase(text); ok {
		return NextOccurrence(phrase, r.now(), r.loc), true
	}

	if r.fallback == nil {
		return time.Time{}, false
	}
	raw, ok := r.fallback.ResolveDateTime(ctx, text, r.loc)
	if !ok {
		return time.Time{}, false
	}
	t, ok := ParseLiteral(raw, r.loc)
	if !ok {
		zerolog.Ctx(ctx).Warn().Str("phrase", text).Str("output", raw).Msg("⚠️ Discarding malformed date from fallback")
		return time.Time{}, false
	}
	return t, true
}
