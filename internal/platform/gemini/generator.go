package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nativephrase/navigator-api/internal/config"
	"github.com/nativephrase/navigator-api/internal/generation"
)

// Generator implements the generation.Generator interface using Google's
// Gemini API for the correction and teaching calls.
type Generator struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
	model  string
}

// NewGenerator creates a new Gemini-backed Generator with the provided
// dependencies. Returns an error if the configuration is incomplete or
// the API client cannot be created.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger.With(slog.String("component", "gemini_generator")),
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Ensure Generator implements generation.Generator interface
var _ generation.Generator = (*Generator)(nil)

// Correct implements generation.Generator.Correct.
func (g *Generator) Correct(ctx context.Context, sentence string) (string, error) {
	if strings.TrimSpace(sentence) == "" {
		return "", fmt.Errorf("%w: sentence cannot be empty", generation.ErrGenerationFailed)
	}

	text, err := g.generateWithRetry(ctx, correctorInstruction, sentence)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// Teach implements generation.Generator.Teach.
// The raw model output is normalized before being returned: Markdown
// leftovers are stripped from the plain text and the <<...>> emphasis
// markers are converted into <strong> spans for the HTML rendition.
func (g *Generator) Teach(ctx context.Context, phrase, sentenceContext string) (*generation.LessonContent, error) {
	if strings.TrimSpace(sentenceContext) == "" {
		return nil, fmt.Errorf("%w: context cannot be empty", generation.ErrGenerationFailed)
	}

	prompt := fmt.Sprintf("Phrase: %s | Context: %s", phrase, sentenceContext)

	text, err := g.generateWithRetry(ctx, tutorInstruction, prompt)
	if err != nil {
		return nil, err
	}

	lessonText := sanitizeLessonText(text)
	return &generation.LessonContent{
		LessonText: lessonText,
		LessonHTML: renderLessonHTML(lessonText),
		PhraseHint: strings.TrimSpace(phrase),
	}, nil
}

// generateWithRetry makes a call to the Gemini API with exponential
// backoff retry logic. Transient errors are retried up to
// config.MaxRetries times with jittered backoff; permanent errors (such
// as content blocked by safety filters) are returned immediately.
func (g *Generator) generateWithRetry(ctx context.Context, systemInstruction, prompt string) (string, error) {
	maxRetries := g.config.MaxRetries
	baseDelaySeconds := g.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		g.logger.DebugContext(ctx, "making Gemini API call",
			"attempt", attempt+1,
			"max_attempts", maxRetries+1,
			"model", g.model)

		response, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
		if err == nil {
			text, extractErr := responseText(response)
			if extractErr == nil {
				return text, nil
			}
			err = extractErr
		}

		if !isRetryable(err) {
			return "", err
		}
		lastErr = err

		if attempt == maxRetries {
			break
		}

		// Exponential backoff with jitter.
		delay := time.Duration(float64(baseDelaySeconds)*math.Pow(2, float64(attempt))) * time.Second
		delay += time.Duration(rng.Int63n(int64(time.Second)))

		g.logger.WarnContext(ctx, "Gemini API call failed, retrying",
			"error", err.Error(),
			"attempt", attempt+1,
			"retry_delay", delay.String())

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, lastErr)
}

// responseText extracts the generated text from an API response,
// classifying empty and blocked responses.
func responseText(response *genai.GenerateContentResponse) (string, error) {
	if response == nil {
		return "", generation.ErrInvalidResponse
	}

	if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", generation.ErrContentBlocked,
			response.PromptFeedback.BlockReason)
	}

	text := response.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response text", generation.ErrInvalidResponse)
	}

	return text, nil
}

// isRetryable reports whether an error is worth retrying. Safety blocks
// and malformed responses are permanent; rate limits and server errors
// are not.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrInvalidResponse) {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		default:
			return false
		}
	}

	// Network-level failures come through as plain errors; retry them.
	return true
}
