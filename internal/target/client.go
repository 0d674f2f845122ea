package target

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"time"

	"github.com/povarna/generative-ai-agents/eval-service/internal/models"
	"github.com/rs/zerolog"
)

var (
	ErrTargetUnreachable = errors.New("target unreachable")
	ErrTargetTimeout     = errors.New("target timeout")
)

// agentUsedPattern extracts the routing agent from targets that embed
// it in the response text instead of a dedicated field.
var agentUsedPattern = regexp.MustCompile(`'AgentUsed':\s*'(\w+)'`)

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Response      string `json:"response"`
	Answer        string `json:"answer"`
	Agent         string `json:"agent"`
	AgentUsed     string `json:"AgentUsed"`
	RoutingReason string `json:"routing_reason"`
}

// Client sends questions to the agent endpoint under evaluation.
type Client struct {
	httpClient *http.Client
	maxRetries int
	logger     *zerolog.Logger
}

func NewClient(timeout time.Duration, maxRetries int, logger *zerolog.Logger) *Client {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Send posts the question to targetURL and returns the structured
// answer. Failures are classified as ErrTargetTimeout or
// ErrTargetUnreachable; transient failures are retried with backoff.
func (c *Client) Send(ctx context.Context, targetURL string, questionText string) (*models.ActualOutcome, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * 500 * time.Millisecond
			c.logger.Warn().
				Err(lastErr).
				Int("attempt", attempt+1).
				Dur("backoff", backoff).
				Msg("retrying target call")

			select {
			case <-ctx.Done():
				return nil, classify(ctx.Err())
			case <-time.After(backoff):
			}
		}

		outcome, err := c.send(ctx, targetURL, questionText)
		if err == nil {
			return outcome, nil
		}

		lastErr = err
		if !errors.Is(err, ErrTargetTimeout) && !errors.Is(err, ErrTargetUnreachable) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *Client) send(ctx context.Context, targetURL string, questionText string) (*models.ActualOutcome, error) {
	body, err := json.Marshal(chatRequest{Question: questionText})
	if err != nil {
		return nil, fmt.Errorf("failed to encode target request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build target request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d from %s", ErrTargetUnreachable, resp.StatusCode, targetURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}

	return parseOutcome(data), nil
}

// parseOutcome tolerates the two response shapes seen in the wild:
// a structured JSON body, or free text with the agent embedded as
// 'AgentUsed'.
func parseOutcome(data []byte) *models.ActualOutcome {
	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		text := string(data)
		return &models.ActualOutcome{
			Response: text,
			Agent:    extractAgent(text),
		}
	}

	response := parsed.Response
	if response == "" {
		response = parsed.Answer
	}
	agent := parsed.Agent
	if agent == "" {
		agent = parsed.AgentUsed
	}
	if agent == "" {
		agent = extractAgent(response)
	}

	return &models.ActualOutcome{
		Response:      response,
		Agent:         agent,
		RoutingReason: parsed.RoutingReason,
	}
}

func extractAgent(text string) string {
	match := agentUsedPattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1]
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTargetTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTargetTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrTargetUnreachable, err)
}
