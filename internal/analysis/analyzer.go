package analysis

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
)

// maxLoggedResponse bounds how much raw model output lands in the log
const maxLoggedResponse = 500

// Analyze asks the generator once. Service errors and unparseable answers
// both degrade to the fallback record; there is no retry.
func (a *implAnalyzer) Analyze(ctx context.Context, transcript, shadowID string) Outcome {
	prompt := BuildPrompt(transcript, shadowID)

	a.logger.Info(ctx, "Analyzing %s (%d characters of transcript)", shadowID, utf8.RuneCountInString(transcript))

	response, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		a.logger.Error(ctx, "Analysis service failed for %s: %v", shadowID, err)
		return fallback(shadowID, fmt.Errorf("generate: %w", err))
	}

	rec, err := Parse(response, shadowID)
	if err != nil {
		a.logger.Error(ctx, "JSON parsing error for %s: %v", shadowID, err)
		a.logger.Debug(ctx, "Raw response: %s", truncate(response, maxLoggedResponse))
		return fallback(shadowID, err)
	}

	a.logger.Info(ctx, "Analysis complete for %s: %d deception patterns", shadowID, len(rec.DeceptionPatterns))
	return Outcome{Status: StatusAnalyzed, Record: rec}
}

func fallback(shadowID string, cause error) Outcome {
	return Outcome{
		Status: StatusFallback,
		Record: Fallback(shadowID),
		Reason: apperror.New(apperror.KindAnalysisUnavailable, cause).WithSubject(shadowID),
	}
}

// truncate keeps the first max runes of s
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}
