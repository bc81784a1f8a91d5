package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"coverletter-backend/internal/llm"
)

const providerName = "gemini"

// Client implements llm.Completer on the Gemini generateContent API using a
// JSON response schema.
type Client struct {
	models      *genai.Models
	model       string
	temperature float32
}

// Config configures a Gemini client.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	// BaseURL overrides the Gemini endpoint, mostly for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient constructs a Gemini client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{
		models:      client.Models,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// responseSchema mirrors schema/cover_letter.json in Gemini's schema dialect.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recruiter_message": {
				Type:        genai.TypeString,
				Description: "Personalized message for the recruiter",
			},
			"cover_letter": {
				Type:        genai.TypeString,
				Description: "Generated cover letter",
			},
		},
		Required:         []string{"recruiter_message", "cover_letter"},
		PropertyOrdering: []string{"recruiter_message", "cover_letter"},
	}
}

// Complete sends one generateContent request and returns the schema-checked result.
func (c *Client) Complete(ctx context.Context, prompt string) (llm.CoverLetter, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(llm.SystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(c.temperature),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema(),
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return llm.CoverLetter{}, llm.Fail(providerName, fmt.Errorf("gemini generate: %w", err))
	}
	llm.LogUsage(providerName, c.model, toUsage(resp))

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return llm.CoverLetter{}, llm.Fail(providerName, fmt.Errorf("gemini blocked prompt: %s", resp.PromptFeedback.BlockReason))
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return llm.CoverLetter{}, llm.Fail(providerName, fmt.Errorf("gemini response empty content"))
	}

	out, err := llm.ParseResult(text)
	if err != nil {
		return llm.CoverLetter{}, llm.Fail(providerName, err)
	}
	return out, nil
}

func toUsage(resp *genai.GenerateContentResponse) *llm.Usage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &llm.Usage{
		PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
		CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
	}
}
