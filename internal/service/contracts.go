package service

import (
	"context"

	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
)

// SessionStore holds at most one quiz session per owner.
type SessionStore interface {
	Create(owner int64, topic string, questions []entities.Question) entities.QuizSession
	Get(owner int64) (entities.QuizSession, bool)
	Mutate(owner int64, fn func(*entities.QuizSession)) bool
	RemoveCompleted(owner int64) (entities.QuizSession, bool)
}

// ContentProvider generates quiz questions for a topic. It must honor
// context cancellation: the call is network-bound and is the only
// blocking step of the quiz lifecycle.
type ContentProvider interface {
	Generate(ctx context.Context, topic string, count int) ([]entities.Question, error)
}

// QuestionView is what the presenter needs to render one question.
type QuestionView struct {
	Index    int // zero-based question index
	Total    int
	Topic    string
	Question entities.Question
}

// GradedView is what the presenter needs to render a graded answer.
// Exactly one option is correct; Chosen differs from it only when the
// answer was wrong.
type GradedView struct {
	Index     int
	Total     int
	Topic     string
	Question  entities.Question
	Chosen    entities.Label
	IsCorrect bool
}

// Presenter renders engine output for the user. It knows nothing
// about session state; formatting and transport framing live behind it.
type Presenter interface {
	ShowQuestion(ctx context.Context, owner int64, view QuestionView) error
	ShowGraded(ctx context.Context, owner int64, view GradedView) error
	ShowResult(ctx context.Context, owner int64, result entities.Result) error
}
