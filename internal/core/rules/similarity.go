package rules

import (
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/textnorm"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

// SimilarityThreshold is the minimum Jaccard score for the fallback classifier.
// Low enough for paraphrases, high enough that one shared generic word is not a match.
const SimilarityThreshold = 0.34

// Jaccard returns |A∩B| / |A∪B| over the token sets of a and b.
// An empty union is treated as size 1, so it scores 0.
func Jaccard(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	inter := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		union = 1
	}
	return float64(inter) / float64(union)
}

// BestSimilar scores every trigger of every candidate against message and
// returns the highest scoring rule at or above SimilarityThreshold. The first
// rule reaching the best score wins ties.
func BestSimilar(message string, candidates []models.BusinessRule) (*models.BusinessRule, float64) {
	msgTokens := textnorm.Tokenize(message)

	var best *models.BusinessRule
	bestScore := 0.0
	for i := range candidates {
		for _, trigger := range ParseTriggers(candidates[i].Triggers) {
			score := Jaccard(msgTokens, textnorm.Tokenize(trigger))
			if score < SimilarityThreshold {
				continue
			}
			if best == nil || score > bestScore {
				best = &candidates[i]
				bestScore = score
			}
		}
	}
	return best, bestScore
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
