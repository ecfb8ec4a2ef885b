package analysis

import "context"

//go:generate go tool mockgen -source=interface.go -destination=mocks/generator_mock.go -package=mocks

// Generator is the black-box language model: prompt in, free-form text out
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analyzer produces one Outcome per combined transcript and never fails
type Analyzer interface {
	Analyze(ctx context.Context, transcript, shadowID string) Outcome
}
