package services

import (
	"fmt"
	"sort"
	"strings"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// ruleCatalogVersion identifies the rule table below. Bump it whenever
// tiers or thresholds change so downstream consumers can tell which rules
// produced a suggestion set.
const ruleCatalogVersion = "2026-07"

// planTier is one price point a merchant sells.
type planTier struct {
	Name  string
	Price decimal.Decimal
}

// merchantRule describes the catalog entry for one merchant: the known
// tiers in ascending price order, plus an optional action override for
// charges above every known tier.
type merchantRule struct {
	Merchant string
	Tiers    []planTier
	// ConsolidateWith names a sibling product when the cheaper move is
	// merging subscriptions rather than downgrading.
	ConsolidateWith string
}

// ruleCatalog is the versioned merchant -> tiers lookup table. Deterministic
// and offline: the advisor never calls out to anything. New merchants are
// added here, not in the aggregation path.
var ruleCatalog = []merchantRule{
	{
		Merchant: "adobe creative cloud",
		Tiers: []planTier{
			{Name: "Photography", Price: decimal.NewFromFloat(19.99)},
			{Name: "Single App", Price: decimal.NewFromFloat(34.49)},
			{Name: "All Apps", Price: decimal.NewFromFloat(52.99)},
			{Name: "All Apps + Stock", Price: decimal.NewFromFloat(82.98)},
		},
	},
	{
		Merchant: "slack",
		Tiers: []planTier{
			{Name: "Pro", Price: decimal.NewFromFloat(8.75)},
			{Name: "Business+", Price: decimal.NewFromFloat(15.00)},
		},
	},
	{
		Merchant: "zoom",
		Tiers: []planTier{
			{Name: "Pro", Price: decimal.NewFromFloat(13.33)},
			{Name: "Business", Price: decimal.NewFromFloat(18.33)},
		},
		ConsolidateWith: "Google Meet (bundled with Workspace)",
	},
	{
		Merchant: "dropbox",
		Tiers: []planTier{
			{Name: "Plus", Price: decimal.NewFromFloat(11.99)},
			{Name: "Professional", Price: decimal.NewFromFloat(19.99)},
			{Name: "Standard", Price: decimal.NewFromFloat(18.00)},
		},
		ConsolidateWith: "Google Drive (bundled with Workspace)",
	},
	{
		Merchant: "notion",
		Tiers: []planTier{
			{Name: "Plus", Price: decimal.NewFromFloat(10.00)},
			{Name: "Business", Price: decimal.NewFromFloat(15.00)},
		},
	},
	{
		Merchant: "github",
		Tiers: []planTier{
			{Name: "Team", Price: decimal.NewFromFloat(4.00)},
			{Name: "Enterprise", Price: decimal.NewFromFloat(21.00)},
		},
	},
}

// OptimizationService matches recurring charges against the rule catalog
// and emits downgrade/consolidate suggestions. Charges with no matching
// rule produce no suggestion; absence is not an error.
type OptimizationService struct {
	rules   map[string]merchantRule
	metrics MetricsRecorderInterface
}

// NewOptimizationService creates an advisor over the built-in catalog
func NewOptimizationService(metrics MetricsRecorderInterface) OptimizationServiceInterface {
	rules := make(map[string]merchantRule, len(ruleCatalog))
	for _, rule := range ruleCatalog {
		rules[rule.Merchant] = rule
	}
	return &OptimizationService{rules: rules, metrics: metrics}
}

// CatalogVersion returns the version tag of the active rule table
func (s *OptimizationService) CatalogVersion() string {
	return ruleCatalogVersion
}

// Suggest evaluates every charge against the catalog. Output order follows
// the input charge order, at most one suggestion per charge.
func (s *OptimizationService) Suggest(charges []models.NormalizedRecurringCharge) []models.OptimizationSuggestion {
	suggestions := make([]models.OptimizationSuggestion, 0)

	for _, charge := range charges {
		rule, ok := s.rules[normalizeMerchant(charge.MerchantName)]
		if !ok {
			continue
		}
		if suggestion := evaluateRule(rule, charge); suggestion != nil {
			suggestions = append(suggestions, *suggestion)
			if s.metrics != nil {
				s.metrics.IncrementCounter("optimization.suggested", nil)
			}
		}
	}

	return suggestions
}

// evaluateRule produces at most one suggestion for a charge matched to a
// catalog rule. The charge amount is located within the tier ladder; a
// cheaper tier yields a downgrade with savings = current - next lower.
func evaluateRule(rule merchantRule, charge models.NormalizedRecurringCharge) *models.OptimizationSuggestion {
	tiers := sortedTiers(rule.Tiers)
	lower := nextLowerTier(tiers, charge.Amount)

	if lower != nil {
		savings := charge.Amount.Sub(lower.Price)
		if savings.IsNegative() {
			savings = decimal.Zero
		}
		return &models.OptimizationSuggestion{
			ChargeID:         charge.ID,
			MerchantName:     charge.MerchantName,
			CurrentAmount:    charge.Amount,
			SuggestedAction:  models.SuggestedActionDowngrade,
			PotentialSavings: savings,
			Reasoning: fmt.Sprintf("%s offers the %s plan at %s/month, below your current %s/month charge.",
				charge.MerchantName, lower.Name, lower.Price.StringFixed(2), charge.Amount.StringFixed(2)),
			AlternativeOptions: tierOptions(tiers, charge.Amount),
		}
	}

	if rule.ConsolidateWith != "" {
		return &models.OptimizationSuggestion{
			ChargeID:         charge.ID,
			MerchantName:     charge.MerchantName,
			CurrentAmount:    charge.Amount,
			SuggestedAction:  models.SuggestedActionConsolidate,
			PotentialSavings: charge.Amount,
			Reasoning: fmt.Sprintf("%s overlaps with %s; consolidating would remove this charge entirely.",
				charge.MerchantName, rule.ConsolidateWith),
			AlternativeOptions: []string{rule.ConsolidateWith},
		}
	}

	return nil
}

// nextLowerTier returns the most expensive tier strictly below amount,
// or nil when the charge already sits at or below the cheapest tier.
func nextLowerTier(tiers []planTier, amount decimal.Decimal) *planTier {
	var lower *planTier
	for i := range tiers {
		if tiers[i].Price.LessThan(amount) {
			lower = &tiers[i]
		}
	}
	return lower
}

// tierOptions renders every tier other than the one currently paid for
func tierOptions(tiers []planTier, amount decimal.Decimal) []string {
	options := make([]string, 0, len(tiers))
	for _, tier := range tiers {
		if tier.Price.Equal(amount) {
			continue
		}
		options = append(options, fmt.Sprintf("%s (%s/month)", tier.Name, tier.Price.StringFixed(2)))
	}
	return options
}

func sortedTiers(tiers []planTier) []planTier {
	sorted := make([]planTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Price.LessThan(sorted[j].Price)
	})
	return sorted
}

func normalizeMerchant(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
