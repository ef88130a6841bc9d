// Package rules selects at most one business rule for an incoming message.
package rules

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/textnorm"
)

// ShortTriggerLength is the longest trigger (in runes, canonical form) that
// must match on word boundaries instead of as a plain substring.
const ShortTriggerLength = 3

// ParseTriggers decodes a rule's trigger list. It accepts a JSON array or a
// JSON string holding an encoded array. Anything malformed yields nil.
func ParseTriggers(raw datatypes.JSON) []string {
	return parseTriggers([]byte(raw), true)
}

func parseTriggers(raw []byte, allowNested bool) []string {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}

	var items []interface{}
	if err := json.Unmarshal(raw, &items); err == nil {
		triggers := make([]string, 0, len(items))
		for _, item := range items {
			switch v := item.(type) {
			case nil:
				continue
			case string:
				triggers = append(triggers, v)
			default:
				triggers = append(triggers, fmt.Sprint(v))
			}
		}
		return triggers
	}

	var encoded string
	if allowNested && json.Unmarshal(raw, &encoded) == nil {
		return parseTriggers([]byte(encoded), false)
	}
	return nil
}

// MatchTrigger reports whether trigger occurs in an already-normalized message.
func MatchTrigger(normalizedMessage, trigger string) bool {
	t := textnorm.Normalize(trigger)
	if t == "" {
		return false
	}
	if utf8.RuneCountInString(t) <= ShortTriggerLength {
		return containsWord(normalizedMessage, t)
	}
	return strings.Contains(normalizedMessage, t)
}

// containsWord finds t in s with a non-word character (or the string edge) on both sides.
func containsWord(s, t string) bool {
	for offset := 0; offset <= len(s)-len(t); {
		i := strings.Index(s[offset:], t)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(t)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		offset = start + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
