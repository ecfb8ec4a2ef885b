package analysis

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Models do not always honour the requested field types. The Unmarshal
// methods below accept any well-formed JSON for the free-form fields:
// lists are joined with ", ", numbers and booleans keep their literal text.

// flexString decodes a string, number, boolean, list or object into text
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case 'n':
		*f = ""
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
	case '[':
		var items []flexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		parts := make([]string, 0, len(items))
		for _, it := range items {
			if s := strings.TrimSpace(string(it)); s != "" {
				parts = append(parts, s)
			}
		}
		*f = flexString(strings.Join(parts, ", "))
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*f = flexString(buf.String())
	default:
		*f = flexString(data)
	}
	return nil
}

// flexList decodes a list of loosely typed items, or a single scalar, into strings
type flexList []string

func (l *flexList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == 'n' {
		*l = nil
		return nil
	}

	if data[0] != '[' {
		var s flexString
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = nil
		if s != "" {
			*l = flexList{string(s)}
		}
		return nil
	}

	var items []flexString
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	out := make(flexList, 0, len(items))
	for _, it := range items {
		if string(it) != "" {
			out = append(out, string(it))
		}
	}
	*l = out
	return nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		ShadowID          flexString      `json:"shadow_id"`
		RevealedTruth     json.RawMessage `json:"revealed_truth"`
		DeceptionPatterns json.RawMessage `json:"deception_patterns"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{ShadowID: string(raw.ShadowID)}

	if isObject(raw.RevealedTruth) {
		if err := json.Unmarshal(raw.RevealedTruth, &r.RevealedTruth); err != nil {
			return err
		}
	}

	patterns := bytes.TrimSpace(raw.DeceptionPatterns)
	switch {
	case len(patterns) == 0 || patterns[0] == 'n':
	case patterns[0] == '[':
		if err := json.Unmarshal(patterns, &r.DeceptionPatterns); err != nil {
			return err
		}
	default:
		var p DeceptionPattern
		if err := json.Unmarshal(patterns, &p); err != nil {
			return err
		}
		r.DeceptionPatterns = []DeceptionPattern{p}
	}
	return nil
}

func (t *RevealedTruth) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProgrammingExperience  flexString `json:"programming_experience"`
		ProgrammingLanguage    flexString `json:"programming_language"`
		SkillMastery           flexString `json:"skill_mastery"`
		LeadershipClaims       flexString `json:"leadership_claims"`
		TeamExperience         flexString `json:"team_experience"`
		SkillsAndOtherKeywords flexList   `json:"skills_and_other_keywords"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = RevealedTruth{
		ProgrammingExperience:  string(raw.ProgrammingExperience),
		ProgrammingLanguage:    string(raw.ProgrammingLanguage),
		SkillMastery:           SkillMastery(raw.SkillMastery),
		LeadershipClaims:       LeadershipVerdict(raw.LeadershipClaims),
		TeamExperience:         string(raw.TeamExperience),
		SkillsAndOtherKeywords: []string(raw.SkillsAndOtherKeywords),
	}
	return nil
}

// UnmarshalJSON also accepts a bare string, taken as the lie type
func (p *DeceptionPattern) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		var s flexString
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = DeceptionPattern{LieType: string(s)}
		return nil
	}

	var raw struct {
		LieType             flexString `json:"lie_type"`
		ContradictoryClaims flexList   `json:"contradictory_claims"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = DeceptionPattern{
		LieType:             string(raw.LieType),
		ContradictoryClaims: []string(raw.ContradictoryClaims),
	}
	return nil
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}
