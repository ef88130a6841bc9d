// Package seed holds the rule set every new tenant starts with.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

//go:embed default_rules.json
var defaultRulesJSON []byte

type ruleSpec struct {
	Mode      string   `json:"mode"`
	Condition string   `json:"condition"`
	Triggers  []string `json:"triggers"`
	Action    string   `json:"action"`
	Priority  int      `json:"priority"`
}

type ruleSet struct {
	Common       []ruleSpec `json:"common"`
	Sales        []ruleSpec `json:"sales"`
	Reservations []ruleSpec `json:"reservations"`
}

// DefaultRules returns the default rules (common, sales, then reservations) for tenantID.
func DefaultRules(tenantID string) ([]models.BusinessRule, error) {
	var set ruleSet
	if err := json.Unmarshal(defaultRulesJSON, &set); err != nil {
		return nil, fmt.Errorf("decode default rules: %w", err)
	}

	specs := make([]ruleSpec, 0, len(set.Common)+len(set.Sales)+len(set.Reservations))
	specs = append(specs, set.Common...)
	specs = append(specs, set.Sales...)
	specs = append(specs, set.Reservations...)

	rules := make([]models.BusinessRule, 0, len(specs))
	for _, s := range specs {
		rule, err := NewRule(tenantID, s.Mode, s.Condition, s.Triggers, s.Action, s.Priority)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, nil
}

// NewRule builds a BusinessRule, encoding triggers as a JSON array.
// A zero priority becomes models.DefaultRulePriority.
func NewRule(tenantID, mode, condition string, triggers []string, action string, priority int) (*models.BusinessRule, error) {
	if triggers == nil {
		triggers = []string{}
	}
	raw, err := json.Marshal(triggers)
	if err != nil {
		return nil, fmt.Errorf("encode triggers: %w", err)
	}
	if priority == 0 {
		priority = models.DefaultRulePriority
	}
	return &models.BusinessRule{
		TenantID:  tenantID,
		Mode:      mode,
		Condition: condition,
		Triggers:  datatypes.JSON(raw),
		Action:    action,
		Priority:  priority,
	}, nil
}
