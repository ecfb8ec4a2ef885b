package analysis

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
)

const openAIMaxOutputTokens = 2000

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Generator on the OpenAI responses API with the Record
// schema enforced as structured output.
func NewOpenAI(apiKey, model string, log logger.Logger, opts ...option.RequestOption) (Generator, error) {
	if apiKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &implOpenAI{
		client: &client,
		model:  model,
		logger: log,
	}, nil
}

func (o *implOpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "TruthWeaverAnalysis",
			Schema:      RecordSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Credibility analysis of one subject"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           o.model,
		MaxOutputTokens: openai.Int(openAIMaxOutputTokens),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := o.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}

	o.logger.Debug(ctx, "OpenAI response %s received", resp.ID)
	return resp.OutputText(), nil
}
