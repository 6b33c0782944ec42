package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/logger"

	"golang.org/x/oauth2/clientcredentials"
)

const anthropicVersion = "2023-06-01"

// Config holds the settings of the HTTP generation client
type Config struct {
	APIURL            string
	APIKey            string
	Model             string
	MaxTokens         int
	Timeout           time.Duration
	OAuthClientID     string
	OAuthClientSecret string
	OAuthTokenURL     string
}

// HTTPClient calls a messages style completion API and returns the JSON object found in the reply
type HTTPClient struct {
	cfg        Config
	prompts    *PromptSet
	limiter    *RateLimiter
	httpClient *http.Client
}

// NewHTTPClient creates a new generation client.
// With OAuth settings the client fetches and refreshes bearer tokens through the client credentials flow,
// otherwise it sends the API key.
func NewHTTPClient(cfg Config, prompts *PromptSet, limiter *RateLimiter) (*HTTPClient, error) {
	if cfg.APIKey == "" && cfg.OAuthClientID == "" {
		return nil, apperrors.ErrLLMCredentialsNotSet
	}
	if prompts == nil {
		prompts = DefaultPrompts()
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.OAuthClientID != "" {
		cc := &clientcredentials.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			TokenURL:     cfg.OAuthTokenURL,
		}
		httpClient = cc.Client(context.Background())
		httpClient.Timeout = cfg.Timeout
	}

	return &HTTPClient{
		cfg:        cfg,
		prompts:    prompts,
		limiter:    limiter,
		httpClient: httpClient,
	}, nil
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system,omitempty"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Invoke renders the prompt for service, waits for the rate limiter and calls the API
func (c *HTTPClient) Invoke(ctx context.Context, service ServiceType, input map[string]interface{}) (json.RawMessage, error) {
	log := logger.WithContext(ctx).WithField("service", string(service))

	system, user, err := c.prompts.Render(service, input)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, string(service)); err != nil {
			recordInvocation(service, "rate_limited")
			return nil, err
		}
	}

	start := time.Now()
	text, err := c.callAPI(ctx, system, user)
	invocationDuration.WithLabelValues(string(service)).Observe(time.Since(start).Seconds())
	if err != nil {
		recordInvocation(service, "error")
		log.WithError(err).Warn("generation call failed")
		return nil, err
	}

	result, err := extractJSONObject(text)
	if err != nil {
		recordInvocation(service, "malformed")
		log.WithError(err).Warn("generation reply is not a JSON object")
		return nil, err
	}

	recordInvocation(service, "success")
	log.WithField("duration_ms", time.Since(start).Milliseconds()).Debug("generation call completed")
	return result, nil
}

func (c *HTTPClient) callAPI(ctx context.Context, system, user string) (string, error) {
	reqBody := apiRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		System:    system,
		Messages: []apiMessage{
			{Role: "user", Content: user},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("anthropic-version", anthropicVersion)
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("api error: %s", apiResp.Error.Message)
	}

	var sb strings.Builder
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response")
	}

	return sb.String(), nil
}

// extractJSONObject strips markdown fences and surrounding prose from a model reply
func extractJSONObject(text string) (json.RawMessage, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in reply: %q", truncate(text, 200))
	}

	candidate := []byte(text[start : end+1])
	if !json.Valid(candidate) {
		return nil, fmt.Errorf("invalid JSON object in reply: %q", truncate(text, 200))
	}
	return json.RawMessage(candidate), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

var _ Client = (*HTTPClient)(nil)
