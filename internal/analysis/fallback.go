package analysis

// Sentinel values of the fallback record
const (
	FallbackExperience  = "analysis_failed"
	FallbackNotAnalyzed = "not analyzed"
	FallbackKeyword     = "analysis_error"
	FallbackClaim       = "Could not analyze due to technical error"
)

// Fallback is the fixed record substituted when analysis is unavailable
func Fallback(shadowID string) Record {
	return Record{
		ShadowID: shadowID,
		RevealedTruth: RevealedTruth{
			ProgrammingExperience:  FallbackExperience,
			ProgrammingLanguage:    FallbackNotAnalyzed,
			SkillMastery:           SkillUnknown,
			LeadershipClaims:       LeadershipVerdict(FallbackNotAnalyzed),
			TeamExperience:         FallbackNotAnalyzed,
			SkillsAndOtherKeywords: []string{FallbackKeyword},
		},
		DeceptionPatterns: []DeceptionPattern{
			{
				LieType:             LieAnalysisUnavailable,
				ContradictoryClaims: []string{FallbackClaim},
			},
		},
	}
}
