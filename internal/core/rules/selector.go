package rules

import (
	"sort"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/textnorm"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

// MatchKind tells how a rule was selected.
type MatchKind string

const (
	MatchNone       MatchKind = "none"
	MatchByTrigger  MatchKind = "trigger"
	MatchSimilarity MatchKind = "similarity"
)

// MatchResult is the outcome of Select. Rule is nil when Kind is MatchNone.
type MatchResult struct {
	Rule  *models.BusinessRule
	Kind  MatchKind
	Score float64
}

// Matched reports whether a rule was selected.
func (r MatchResult) Matched() bool {
	return r.Rule != nil
}

// Candidates keeps the rules of mode plus the shared common rules, ordered by
// priority descending and then by id for a deterministic order.
func Candidates(all []models.BusinessRule, mode string) []models.BusinessRule {
	out := make([]models.BusinessRule, 0, len(all))
	for _, r := range all {
		if r.Mode == mode || r.Mode == models.ModeCommon {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Select picks at most one rule for message from candidates, which must
// already be in evaluation order. Trigger hits win; otherwise the similarity
// classifier gets a chance. Rules whose guard rejects the message are skipped
// in both passes.
func Select(message string, candidates []models.BusinessRule) MatchResult {
	normalized := textnorm.Normalize(message)

	eligible := make([]models.BusinessRule, 0, len(candidates))
	for _, r := range candidates {
		if passesGuard(r.Condition, message) {
			eligible = append(eligible, r)
		}
	}

	for i := range eligible {
		for _, trigger := range ParseTriggers(eligible[i].Triggers) {
			if MatchTrigger(normalized, trigger) {
				return MatchResult{Rule: &eligible[i], Kind: MatchByTrigger, Score: 1}
			}
		}
	}

	if rule, score := BestSimilar(message, eligible); rule != nil {
		return MatchResult{Rule: rule, Kind: MatchSimilarity, Score: score}
	}
	return MatchResult{Kind: MatchNone}
}
