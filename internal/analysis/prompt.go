package analysis

import "fmt"

const analysisPrompt = `You are "Truth Weaver", an analyst of interview speech. You look for deception, assess skill level and judge credibility.

Analyse the transcribed audio below and answer in the exact JSON format that follows.

TRANSCRIBED TEXT:
"%[1]s"

Assess:
1. Programming experience (as a range of years)
2. Programming languages mentioned or implied
3. Skill mastery (beginner/intermediate/advanced)
4. Leadership claims and whether they hold up
5. Team experience (individual contributor, team member/lead, senior leadership)
6. Contradictions or inconsistencies between statements
7. Deception patterns or other credibility concerns

Return ONLY this JSON object:
{
    "shadow_id": "%[2]s",
    "revealed_truth": {
        "programming_experience": "X-Y years",
        "programming_language": "language_name",
        "skill_mastery": "beginner/intermediate/advanced",
        "leadership_claims": "authentic/exaggerated/fabricated/unclear",
        "team_experience": "individual contributor/team member/lead/senior leadership",
        "skills_and_other_keywords": ["keyword1", "keyword2", "keyword3"]
    },
    "deception_patterns": [
        {
            "lie_type": "experience_inflation/responsibility_embellishment/skill_exaggeration/other",
            "contradictory_claims": ["claim1", "claim2"]
        }
    ]
}

Use only what the text says. When something is not clearly stated answer "not specified" or "unclear". Use an empty deception_patterns list when the statements are consistent.`

// BuildPrompt interpolates the transcript and shadow id into the fixed template
func BuildPrompt(transcript, shadowID string) string {
	return fmt.Sprintf(analysisPrompt, transcript, shadowID)
}
