package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/config"
	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
)

const validQuizJSON = `{
  "questions": [
    {
      "question": "What does CPU stand for?",
      "options": {"A": "Central Processing Unit", "B": "Computer Personal Unit", "C": "Central Program Utility", "D": "Core Processing Unit"},
      "correct_answer": "A"
    },
    {
      "question": "Which company created Go?",
      "options": {"A": "Microsoft", "B": "Google", "C": "Apple", "D": "Amazon"},
      "correct_answer": "B"
    },
    {
      "question": "What is the zero value of a pointer?",
      "options": {"A": "0", "B": "undefined", "C": "empty", "D": "nil"},
      "correct_answer": "D"
    }
  ]
}`

// newModelStub serves an OpenAI-style chat completion whose message
// content is the given string.
func newModelStub(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"choices": []map[string]any{
				{
					"index":   0,
					"message": map[string]any{"role": "assistant", "content": content},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestService(baseURL string) *Service {
	return New(config.AI{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Model:       "test-model",
		Temperature: 0.7,
		MaxTokens:   4096,
		Timeout:     5 * time.Second,
	}, zap.NewNop())
}

func TestGenerate_OK(t *testing.T) {
	srv := newModelStub(t, validQuizJSON)
	defer srv.Close()

	questions, err := newTestService(srv.URL).Generate(context.Background(), "computers", 3)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	if questions[0].CorrectLabel != entities.LabelA {
		t.Errorf("first correct label = %s, want A", questions[0].CorrectLabel)
	}
	if questions[2].Options[entities.LabelD] != "nil" {
		t.Errorf("option D of question 3 = %q, want %q", questions[2].Options[entities.LabelD], "nil")
	}
}

func TestGenerate_StripsMarkdownFence(t *testing.T) {
	srv := newModelStub(t, "```json\n"+validQuizJSON+"\n```")
	defer srv.Close()

	questions, err := newTestService(srv.URL).Generate(context.Background(), "computers", 3)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
}

func TestGenerate_BadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "Sorry, I can't do that."},
		{"wrong count", `{"questions": [{"question": "q", "options": {"A":"a","B":"b","C":"c","D":"d"}, "correct_answer": "A"}]}`},
		{"bad correct label", fmt.Sprintf(`{"questions": [%s, %s, %s]}`,
			`{"question": "q1", "options": {"A":"a","B":"b","C":"c","D":"d"}, "correct_answer": "E"}`,
			`{"question": "q2", "options": {"A":"a","B":"b","C":"c","D":"d"}, "correct_answer": "A"}`,
			`{"question": "q3", "options": {"A":"a","B":"b","C":"c","D":"d"}, "correct_answer": "A"}`)},
		{"missing option", fmt.Sprintf(`{"questions": [%s, %s, %s]}`,
			`{"question": "q1", "options": {"A":"a","B":"b","C":"c"}, "correct_answer": "A"}`,
			`{"question": "q2", "options": {"A":"a","B":"b","C":"c","D":"d"}, "correct_answer": "A"}`,
			`{"question": "q3", "options": {"A":"a","B":"b","C":"c","D":"d"}, "correct_answer": "A"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newModelStub(t, tt.content)
			defer srv.Close()

			_, err := newTestService(srv.URL).Generate(context.Background(), "computers", 3)
			if !errors.Is(err, ErrBadPayload) {
				t.Errorf("Generate() error = %v, want ErrBadPayload", err)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
