package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nguyentantai21042004/truth-weaver/internal/analysis"
)

// TopIndicators is how many lie types the insights list
const TopIndicators = 5

const (
	TierLow    = "Low"
	TierMedium = "Medium"
	TierGood   = "Good"
	TierHigh   = "High"
)

var (
	lowThreshold    = decimal.RequireFromString("0.7")
	mediumThreshold = decimal.RequireFromString("0.4")
	goodThreshold   = decimal.RequireFromString("0.1")
	hundred         = decimal.NewFromInt(100)
)

type LieTypeCount struct {
	LieType string `json:"lie_type"`
	Count   int    `json:"count"`
}

type Insights struct {
	TotalRecords int `json:"total_records"`
	// SkillDistribution leaves out records whose mastery is unknown
	SkillDistribution      map[string]int `json:"skill_distribution"`
	SkillAssessed          int            `json:"skill_assessed"`
	TopDeceptionIndicators []LieTypeCount `json:"top_deception_indicators"`
	Languages              []string       `json:"languages"`
	LeadershipClaims       map[string]int `json:"leadership_claims"`
	DeceptionPatternCount  int            `json:"deception_pattern_count"`
	DeceptionRate          float64        `json:"deception_rate"`
	CredibilityTier        string         `json:"credibility_tier"`
	OverallCredibility     string         `json:"overall_credibility"`
}

// ComputeInsights aggregates records in the order given
func ComputeInsights(records []analysis.Record) Insights {
	skills := newCounter()
	lies := newCounter()
	leadership := newCounter()
	languages := make([]string, 0)
	seenLanguage := make(map[string]bool)
	patterns := 0

	for _, r := range records {
		truth := r.RevealedTruth

		if skill := strings.ToLower(strings.TrimSpace(string(truth.SkillMastery))); skill != "" && skill != string(analysis.SkillUnknown) {
			skills.add(skill)
		}

		if verdict := strings.ToLower(strings.TrimSpace(string(truth.LeadershipClaims))); verdict != "" {
			leadership.add(verdict)
		}

		for _, lang := range splitLanguages(truth.ProgrammingLanguage) {
			if !seenLanguage[lang] {
				seenLanguage[lang] = true
				languages = append(languages, lang)
			}
		}

		for _, p := range r.DeceptionPatterns {
			lies.add(p.LieType)
			patterns++
		}
	}

	tier, label, rate := Credibility(patterns, len(records))
	rateFloat, _ := rate.Round(4).Float64()

	return Insights{
		TotalRecords:           len(records),
		SkillDistribution:      skills.table(),
		SkillAssessed:          skills.total(),
		TopDeceptionIndicators: lies.top(TopIndicators),
		Languages:              languages,
		LeadershipClaims:       leadership.table(),
		DeceptionPatternCount:  patterns,
		DeceptionRate:          rateFloat,
		CredibilityTier:        tier,
		OverallCredibility:     label,
	}
}

// Credibility maps patterns per record onto the four tiers. Every boundary
// belongs to the lower-rate tier: exactly 0.4 is Good, 0.41 is Medium.
func Credibility(patterns, records int) (tier, label string, rate decimal.Decimal) {
	rate = decimal.Zero
	if records > 0 {
		rate = decimal.NewFromInt(int64(patterns)).Div(decimal.NewFromInt(int64(records)))
	}

	switch {
	case rate.GreaterThan(lowThreshold):
		tier = TierLow
	case rate.GreaterThan(mediumThreshold):
		tier = TierMedium
	case rate.GreaterThan(goodThreshold):
		tier = TierGood
	default:
		tier = TierHigh
	}

	label = fmt.Sprintf("%s (%s%% deception rate)", tier, rate.Mul(hundred).StringFixed(1))
	return tier, label, rate
}

// splitLanguages lower-cases a comma separated language field and drops
// the sentinels meaning "no language"
func splitLanguages(field string) []string {
	var out []string
	for _, part := range strings.Split(field, ",") {
		lang := strings.ToLower(strings.TrimSpace(part))
		if lang == "" || lang == analysis.NotSpecified || lang == analysis.FallbackNotAnalyzed {
			continue
		}
		out = append(out, lang)
	}
	return out
}
