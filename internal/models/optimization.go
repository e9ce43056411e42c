package models

import "github.com/shopspring/decimal"

const (
	SuggestedActionCancel      = "cancel"
	SuggestedActionDowngrade   = "downgrade"
	SuggestedActionConsolidate = "consolidate"
	SuggestedActionNegotiate   = "negotiate"
)

// IsValidSuggestedAction checks if the suggested action is valid
func IsValidSuggestedAction(action string) bool {
	switch action {
	case SuggestedActionCancel, SuggestedActionDowngrade, SuggestedActionConsolidate, SuggestedActionNegotiate:
		return true
	default:
		return false
	}
}

// OptimizationSuggestion is a cost-saving proposal derived from one recurring
// charge. Suggestions are computed at read time from the rule catalog and are
// never persisted; the next aggregation supersedes them.
type OptimizationSuggestion struct {
	ChargeID           string          `json:"chargeId"`
	MerchantName       string          `json:"merchantName"`
	CurrentAmount      decimal.Decimal `json:"currentAmount"`
	SuggestedAction    string          `json:"suggestedAction"`
	PotentialSavings   decimal.Decimal `json:"potentialSavings"`
	Reasoning          string          `json:"reasoning"`
	AlternativeOptions []string        `json:"alternativeOptions"`
}
