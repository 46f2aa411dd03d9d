package ingestion

import (
	"strings"

	"github.com/jeovahfialho/fidelity-trades/internal/domain"
)

// actionRules is checked in order. Conversion must come first: converted
// positions read like "CONVERSION SHARES BOUGHT" and would otherwise
// classify as a buy.
var actionRules = []struct {
	keyword string
	action  domain.Action
}{
	{"CONVERSION", domain.ActionConversion},
	{"BOUGHT", domain.ActionBought},
	{"SOLD", domain.ActionSold},
}

// ClassifyAction maps raw free-text action descriptions like
// "YOU BOUGHT OPENING TRANSACTION" to the closed action vocabulary.
func ClassifyAction(raw string) domain.Action {
	upper := strings.ToUpper(raw)
	for _, rule := range actionRules {
		if strings.Contains(upper, rule.keyword) {
			return rule.action
		}
	}
	return domain.ActionUnknown
}
