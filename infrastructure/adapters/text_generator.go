package adapters

import (
	"context"
	"fmt"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"net/http"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/config"
	"strings"
)

const (
	titleSystemPrompt  = "Be precise and concise."
	titleUserPrompt    = "Generate a short 5-10 word title for this news in the form of a simple line without mentioning any introduction or double quotes. The news: "
	scriptSystemPrompt = "Be creative and artistic."
	scriptUserPrompt   = "Create a 20 second dialog for a single speaker in the form of a simple paragraph without mentioning speaker or double quotes. This should provide an easy to understand text considering every detail in the news. The news:"
)

type textGenerator struct {
	logger           outbound.LoggerPort
	client           openai.Client
	perplexityConfig *config.PerplexityConfig
}

// NewTextGenerator talks to any OpenAI compatible chat completions API. The
// Perplexity specific search parameters are sent as extra JSON fields.
func NewTextGenerator(perplexityConfig *config.PerplexityConfig, httpClient *http.Client, logger outbound.LoggerPort) outbound.TextGeneratorPort {
	opts := []option.RequestOption{
		option.WithAPIKey(perplexityConfig.ApiKey),
		option.WithBaseURL(perplexityConfig.ApiUrl),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &textGenerator{
		logger:           logger,
		client:           openai.NewClient(opts...),
		perplexityConfig: perplexityConfig,
	}
}

func (g *textGenerator) GenerateTitle(ctx context.Context, summaryText string) (string, error) {
	return g.complete(ctx, titleSystemPrompt, titleUserPrompt+summaryText)
}

func (g *textGenerator) GenerateScript(ctx context.Context, summaryText string) (string, error) {
	return g.complete(ctx, scriptSystemPrompt, scriptUserPrompt+summaryText)
}

func (g *textGenerator) complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.perplexityConfig.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		MaxTokens:        openai.Int(int64(g.perplexityConfig.MaxTokens)),
		Temperature:      openai.Float(0.2),
		TopP:             openai.Float(0.9),
		PresencePenalty:  openai.Float(0),
		FrequencyPenalty: openai.Float(1),
	},
		option.WithJSONSet("search_domain_filter", []string{"perplexity.ai"}),
		option.WithJSONSet("return_images", false),
		option.WithJSONSet("return_related_questions", false),
		option.WithJSONSet("search_recency_filter", "month"),
		option.WithJSONSet("top_k", 0),
		option.WithJSONSet("stream", false),
	)
	if err != nil {
		g.logger.Error(err, "Text generation request failed")
		return "", fmt.Errorf("text generation API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from text generation API")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	g.logger.DebugWithFields("Text generated", map[string]interface{}{
		"content": content,
	})

	return content, nil
}
