package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/config"
	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
)

const systemPrompt = "You are a quiz generator. Always respond with valid JSON only."

// ErrBadPayload means the model responded, but not with a usable quiz.
var ErrBadPayload = errors.New("unusable quiz payload from model")

// Service generates multiple-choice quizzes through an
// OpenAI-compatible chat completion endpoint.
type Service struct {
	client      *openai.Client
	logger      *zap.Logger
	model       string
	temperature float32
	maxTokens   int
}

// New creates a Service talking to the endpoint configured in cfg.AI.
func New(cfg config.AI, logger *zap.Logger) *Service {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Service{
		client:      openai.NewClientWithConfig(clientCfg),
		logger:      logger,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Generate asks the model for count questions about topic and returns
// them validated. Transport errors come back as-is; a response that
// cannot be turned into a well-formed quiz is reported as ErrBadPayload.
func (s *Service) Generate(ctx context.Context, topic string, count int) ([]entities.Question, error) {
	s.logger.Info("generating quiz",
		zap.String("topic", topic),
		zap.Int("questions", count),
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(topic, count)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", ErrBadPayload)
	}

	questions, err := parseQuizPayload(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	if err := validate(questions, count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return questions, nil
}

func buildPrompt(topic string, count int) string {
	return fmt.Sprintf(`Generate %d multiple choice questions about %s.

Return ONLY a valid JSON object with this exact structure:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": {
        "A": "Option A text",
        "B": "Option B text",
        "C": "Option C text",
        "D": "Option D text"
      },
      "correct_answer": "A"
    }
  ]
}

Rules:
- Each question must have exactly 4 options (A, B, C, D)
- correct_answer must be one of: A, B, C, or D
- Make questions educational and challenging
- Ensure only one correct answer per question
- Return ONLY the JSON, no additional text`, count, topic)
}

// parseQuizPayload decodes the model output into questions, tolerating
// a markdown code fence around the JSON.
func parseQuizPayload(content string) ([]entities.Question, error) {
	content = stripCodeFence(content)

	var payload struct {
		Questions []entities.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrBadPayload, err)
	}

	return payload.Questions, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if the
// model added one despite the prompt.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if end := strings.Index(s, "```"); end >= 0 {
		s = s[:end]
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "json")

	return strings.TrimSpace(s)
}

func validate(questions []entities.Question, count int) error {
	if len(questions) != count {
		return fmt.Errorf("expected %d questions, got %d", count, len(questions))
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
