package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/time/rate"
	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"

	"callprep/internal/config"
	"callprep/internal/domain/models"
)

// generateMethod is the supported-generation-method name that marks a model
// as usable for free-form text generation.
const generateMethod = "generateContent"

// Client wraps the Generative Language API behind the two interfaces the
// core needs: model discovery and single-shot text generation. The API key
// is passed through opaquely; the client never inspects it.
type Client struct {
	svc     *generativelanguage.Service
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a Gemini client authenticated with the given API key.
func NewClient(ctx context.Context, apiKey string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}

	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative language service: %w", err)
	}

	return &Client{
		svc: svc,
		// Free-tier quota guard: at most 2 requests per second
		limiter: rate.NewLimiter(rate.Every(time.Second/2), 2),
		logger:  logger,
	}, nil
}

// ListTextModels returns the identifiers of models whose supported
// generation methods include free-form text generation.
func (c *Client) ListTextModels(ctx context.Context) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var names []string
	call := c.svc.Models.List().PageSize(config.ModelListPageSize)
	err := call.Pages(ctx, func(page *generativelanguage.ListModelsResponse) error {
		for _, m := range page.Models {
			if slices.Contains(m.SupportedGenerationMethods, generateMethod) {
				names = append(names, m.Name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	c.logger.Debug("models discovered", "count", len(names))
	return names, nil
}

// GenerateText performs one generation call with the given payload shape.
// The payload's system instruction, when present, travels in the dedicated
// systemInstruction field; otherwise the message alone carries everything.
func (c *Client) GenerateText(ctx context.Context, model string, payload models.RequestPayload) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: payload.Message}},
			},
		},
		GenerationConfig: &generativelanguage.GenerationConfig{
			// Briefings should be reproducible, not creative
			Temperature:     0,
			ForceSendFields: []string{"Temperature"},
		},
	}
	if payload.HasSystemInstruction() {
		req.SystemInstruction = &generativelanguage.Content{
			Parts: []*generativelanguage.Part{{Text: payload.SystemInstruction}},
		}
	}

	start := time.Now()
	resp, err := c.svc.Models.GenerateContent(model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.New("model returned an empty response")
	}

	c.logger.Debug("generation complete",
		"model", model,
		"duration_ms", time.Since(start).Milliseconds(),
		"chars", len(text),
	)
	return text, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *generativelanguage.GenerateContentResponse) string {
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			b.WriteString(part.Text)
		}
		break
	}
	return b.String()
}
