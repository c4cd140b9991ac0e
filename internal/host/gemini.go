package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/genai"
)

// ErrKeyRejected means the Gemini API refused the key.
var ErrKeyRejected = errors.New("API key rejected by Gemini")

// Verifier checks that an API key is usable
type Verifier interface {
	Verify(ctx context.Context, apiKey string) error
}

// GeminiConfig holds the configuration for the Gemini verifier
type GeminiConfig struct {
	Model string
	// BaseURL overrides the Gemini endpoint; empty uses the default.
	BaseURL string
}

// GeminiVerifier verifies keys by looking up a model with them.
type GeminiVerifier struct {
	model   string
	baseURL string
	log     *slog.Logger
}

// NewGeminiVerifier creates a verifier for the given model
func NewGeminiVerifier(cfg GeminiConfig, log *slog.Logger) (*GeminiVerifier, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini model is required")
	}
	return &GeminiVerifier{
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		log:     log,
	}, nil
}

// Verify returns nil when the key can read the configured model, an error
// wrapping ErrKeyRejected when the API refuses it, and any other error as is.
func (v *GeminiVerifier) Verify(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return ErrKeyRejected
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if v.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: v.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return fmt.Errorf("failed to create genai client: %w", err)
	}

	if _, err := client.Models.Get(ctx, v.model, nil); err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && isRejection(apiErr.Code) {
			v.log.Debug("gemini rejected key",
				slog.Int("code", apiErr.Code),
				slog.String("status", apiErr.Status),
			)
			return fmt.Errorf("%w: %s", ErrKeyRejected, apiErr.Message)
		}
		return fmt.Errorf("gemini model lookup failed: %w", err)
	}
	return nil
}

func isRejection(code int) bool {
	switch code {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return true
	default:
		return false
	}
}
