package telegram

import (
	"context"

	"github.com/davletovm/quizmaster-bot/internal/storage"
)

// QuizEngine drives quiz sessions; the handler only routes user
// actions into it and renders whatever the engine asks to show.
type QuizEngine interface {
	StartQuiz(ctx context.Context, owner int64, topic string, count int) error
	ShowCurrent(ctx context.Context, owner int64) error
	SubmitAnswer(ctx context.Context, owner int64, selected string) error
}

// MessageStore tracks, per owner, the chat and the message holding the
// currently displayed question.
type MessageStore interface {
	Store(owner int64, chatID int64, messageID int)
	Get(owner int64) (storage.ChatMessage, bool)
	Delete(owner int64)
}
