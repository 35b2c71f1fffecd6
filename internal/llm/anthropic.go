package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

// AnthropicAnalyzer generates company analyses via the Anthropic API.
type AnthropicAnalyzer struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicAnalyzer(apiKey, model string) *AnthropicAnalyzer {
	return &AnthropicAnalyzer{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

// Analyze asks the model for a structured report on the company.
func (a *AnthropicAnalyzer) Analyze(ctx context.Context, companyName, analysisType string) (string, string, error) {
	prompt := fmt.Sprintf(
		"Analyze the company %q using a %s analysis. Provide a structured and detailed report.",
		companyName, analysisType,
	)

	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(a.model),
		MaxTokens: 2048,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			content = *block.Text
			break
		}
	}
	if content == "" {
		return "", "", fmt.Errorf("anthropic response contained no text content")
	}

	return content, a.model, nil
}
