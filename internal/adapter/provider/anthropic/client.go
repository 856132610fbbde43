// Package anthropic implements the completion-service client used for
// suspicious-word harvesting. The model reads free text and returns the
// words it judges potentially obscene, space-separated, no explanations.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/textwarden/obscenity-backend/internal/config"
)

const harvestPrompt = "Find words in the text that may be obscene. " +
	"Print ONLY found words separated by spaces without explanations."

// Client proposes suspicious words via the Anthropic Messages API.
type Client struct {
	api       sdk.Client
	model     string
	maxTokens int64
}

// New creates a completion-service client from LLMConfig.
func New(cfg config.LLMConfig) *Client {
	return &Client{
		api:       sdk.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// ProposeSuspiciousWords sends text to the model and parses the reply as
// whitespace-separated candidate words. An empty reply is an error so the
// caller can treat it as a harvesting failure.
func (c *Client) ProposeSuspiciousWords(ctx context.Context, text string) ([]string, error) {
	msg, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(harvestPrompt)),
			sdk.NewUserMessage(sdk.NewTextBlock(text)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("completion api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	words := ParseWords(msg.Content[0].Text)
	if len(words) == 0 {
		return nil, fmt.Errorf("completion response contains no words")
	}
	return words, nil
}

// ParseWords splits a model reply into candidate words, dropping empty
// tokens and duplicates while preserving first-seen order.
func ParseWords(reply string) []string {
	fields := strings.Fields(reply)
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fields))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		words = append(words, f)
	}
	return words
}
