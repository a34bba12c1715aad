package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
)

// Failure classes of the generation API call. The engine folds them
// all into one "content unavailable" outcome; the delivery layer uses
// them to pick a more specific user-facing message.
var (
	ErrUnreachable = errors.New("quiz API is unreachable")
	ErrTimeout     = errors.New("quiz API request timed out")
)

// QuizAPIClient fetches generated quizzes from the quiz API over HTTP.
type QuizAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewQuizAPIClient(baseURL string, timeout time.Duration) *QuizAPIClient {
	return &QuizAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
}

type generateResponse struct {
	Topic     string              `json:"topic"`
	Questions []entities.Question `json:"questions"`
}

// Generate requests count questions about topic from the quiz API.
func (c *QuizAPIClient) Generate(ctx context.Context, topic string, count int) ([]entities.Question, error) {
	body, err := json.Marshal(generateRequest{
		Topic:        topic,
		NumQuestions: count,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/quiz/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("quiz API returned status %d: %s", resp.StatusCode, snippet)
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode quiz API response: %w", err)
	}

	return payload.Questions, nil
}

func classifyTransportError(err error) error {
	var netErr interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}
