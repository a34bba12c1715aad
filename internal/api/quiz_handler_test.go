package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
	"github.com/davletovm/quizmaster-bot/internal/generator"
)

type stubGenerator struct {
	questions []entities.Question
	err       error
}

func (s *stubGenerator) Generate(context.Context, string, int) ([]entities.Question, error) {
	return s.questions, s.err
}

func newTestRouter(gen QuizGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewQuizHandler(gen, zap.NewNop())

	r := gin.New()
	r.GET("/health", h.Health)
	r.POST("/api/quiz/generate", h.GenerateQuiz)
	return r
}

func postGenerate(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateQuiz_OK(t *testing.T) {
	questions := []entities.Question{
		{
			Text: "Which company created Go?",
			Options: map[entities.Label]string{
				entities.LabelA: "Microsoft",
				entities.LabelB: "Google",
				entities.LabelC: "Apple",
				entities.LabelD: "Amazon",
			},
			CorrectLabel: entities.LabelB,
		},
	}
	r := newTestRouter(&stubGenerator{questions: questions})

	w := postGenerate(r, `{"topic": "Go", "num_questions": 3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Topic != "Go" {
		t.Errorf("topic = %q, want %q", resp.Topic, "Go")
	}
	if len(resp.Questions) != 1 || resp.Questions[0].CorrectLabel != entities.LabelB {
		t.Errorf("unexpected questions payload: %+v", resp.Questions)
	}
}

func TestGenerateQuiz_BindingValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing topic", `{"num_questions": 5}`},
		{"count below minimum", `{"topic": "Go", "num_questions": 2}`},
		{"count above maximum", `{"topic": "Go", "num_questions": 31}`},
		{"over-long topic", `{"topic": "` + strings.Repeat("x", 101) + `", "num_questions": 5}`},
		{"not json", `topic=Go`},
	}

	r := newTestRouter(&stubGenerator{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postGenerate(r, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestGenerateQuiz_BadPayloadFromModel(t *testing.T) {
	r := newTestRouter(&stubGenerator{err: generator.ErrBadPayload})

	if w := postGenerate(r, `{"topic": "Go", "num_questions": 3}`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGenerateQuiz_UpstreamFailure(t *testing.T) {
	r := newTestRouter(&stubGenerator{err: errors.New("connection refused")})

	if w := postGenerate(r, `{"topic": "Go", "num_questions": 3}`); w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
