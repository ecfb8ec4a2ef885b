package analysis

import "strings"

type SkillMastery string

const (
	SkillBeginner     SkillMastery = "beginner"
	SkillIntermediate SkillMastery = "intermediate"
	SkillAdvanced     SkillMastery = "advanced"
	SkillUnknown      SkillMastery = "unknown"
)

type LeadershipVerdict string

const (
	LeadershipAuthentic   LeadershipVerdict = "authentic"
	LeadershipExaggerated LeadershipVerdict = "exaggerated"
	LeadershipFabricated  LeadershipVerdict = "fabricated"
	LeadershipUnclear     LeadershipVerdict = "unclear"
)

const (
	TeamIndividual = "individual contributor"
	TeamMemberLead = "team member/lead"
	TeamSenior     = "senior leadership"
)

// NotSpecified is what the model answers when the transcript is silent
const NotSpecified = "not specified"

// Lie-type vocabulary the prompt offers; models may still answer outside it
const (
	LieExperienceInflation       = "experience_inflation"
	LieResponsibilityEmbellished = "responsibility_embellishment"
	LieSkillExaggeration         = "skill_exaggeration"
	LieOther                     = "other"
	LieAnalysisUnavailable       = "analysis_unavailable"
)

type Record struct {
	ShadowID          string             `json:"shadow_id"`
	RevealedTruth     RevealedTruth      `json:"revealed_truth"`
	DeceptionPatterns []DeceptionPattern `json:"deception_patterns"`
}

type RevealedTruth struct {
	ProgrammingExperience  string            `json:"programming_experience" jsonschema:"description=Experience range such as 3-5 years"`
	ProgrammingLanguage    string            `json:"programming_language"`
	SkillMastery           SkillMastery      `json:"skill_mastery" jsonschema:"enum=beginner,enum=intermediate,enum=advanced,enum=unknown"`
	LeadershipClaims       LeadershipVerdict `json:"leadership_claims" jsonschema:"enum=authentic,enum=exaggerated,enum=fabricated,enum=unclear"`
	TeamExperience         string            `json:"team_experience"`
	SkillsAndOtherKeywords []string          `json:"skills_and_other_keywords"`
}

type DeceptionPattern struct {
	LieType             string   `json:"lie_type"`
	ContradictoryClaims []string `json:"contradictory_claims"`
}

type Status string

const (
	StatusAnalyzed Status = "analyzed"
	StatusFallback Status = "fallback"
)

// Outcome is either an analyzed record or the fallback record; both carry
// the requested shadow id. Reason is set only for the fallback shape.
type Outcome struct {
	Status Status
	Record Record
	Reason error
}

func (o Outcome) ShadowID() string {
	return o.Record.ShadowID
}

func (o Outcome) IsFallback() bool {
	return o.Status == StatusFallback
}

// normalize lower-cases enumerations, fills empty enumerations with their
// unknown sentinels and replaces null lists with empty ones
func (r *Record) normalize(shadowID string) {
	r.ShadowID = shadowID

	t := &r.RevealedTruth
	t.ProgrammingExperience = strings.TrimSpace(t.ProgrammingExperience)
	t.ProgrammingLanguage = strings.TrimSpace(t.ProgrammingLanguage)
	t.TeamExperience = strings.ToLower(strings.TrimSpace(t.TeamExperience))
	t.SkillMastery = SkillMastery(strings.ToLower(strings.TrimSpace(string(t.SkillMastery))))
	t.LeadershipClaims = LeadershipVerdict(strings.ToLower(strings.TrimSpace(string(t.LeadershipClaims))))

	if t.ProgrammingLanguage == "" {
		t.ProgrammingLanguage = NotSpecified
	}
	if t.SkillMastery == "" {
		t.SkillMastery = SkillUnknown
	}
	if t.LeadershipClaims == "" {
		t.LeadershipClaims = LeadershipUnclear
	}
	if t.SkillsAndOtherKeywords == nil {
		t.SkillsAndOtherKeywords = []string{}
	}

	if r.DeceptionPatterns == nil {
		r.DeceptionPatterns = []DeceptionPattern{}
	}
	for i := range r.DeceptionPatterns {
		p := &r.DeceptionPatterns[i]
		p.LieType = strings.ToLower(strings.TrimSpace(p.LieType))
		if p.ContradictoryClaims == nil {
			p.ContradictoryClaims = []string{}
		}
	}
}
