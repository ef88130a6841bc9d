package rules

import "github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/textnorm"

// ConditionPureGreeting guards greeting rules so they only fire on messages
// that are nothing but a greeting.
const ConditionPureGreeting = "saludo_basico"

const maxGreetingTokens = 5

var greetingVocabulary = map[string]struct{}{
	"hola": {}, "hey": {}, "buenas": {}, "buen": {}, "buenos": {}, "dia": {}, "dias": {},
	"tardes": {}, "noches": {}, "quetal": {}, "que": {}, "tal": {}, "como": {}, "saludos": {},
}

// guards maps a condition tag to the predicate the message must satisfy.
var guards = map[string]func(message string) bool{
	ConditionPureGreeting: IsPureGreeting,
}

// IsPureGreeting reports whether every token of message is a greeting word and
// there are at most five of them.
func IsPureGreeting(message string) bool {
	tokens := textnorm.Tokenize(message)
	if len(tokens) > maxGreetingTokens {
		return false
	}
	for _, tok := range tokens {
		if _, ok := greetingVocabulary[tok]; !ok {
			return false
		}
	}
	return true
}

// passesGuard reports whether a rule with the given condition may fire for message.
// Unknown conditions are informational and never block.
func passesGuard(condition, message string) bool {
	guard, ok := guards[condition]
	if !ok {
		return true
	}
	return guard(message)
}
