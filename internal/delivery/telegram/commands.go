package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/client"
	"github.com/davletovm/quizmaster-bot/internal/service"
)

// quizHandler processes "/quiz <topic> <number>": the last argument is
// the question count, everything before it is the topic, so multi-word
// topics work.
func (h *Handler) quizHandler(owner int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		fields := strings.Fields(args)
		if len(fields) < 2 {
			h.send(newMessage(chatID, msgInvalidQuizFormat))
			return nil
		}

		count, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil || count < service.MinQuestions || count > service.MaxQuestions {
			h.send(newMessage(chatID, msgInvalidCount))
			return nil
		}

		topic := strings.Join(fields[:len(fields)-1], " ")

		loading, err := h.bot.Send(newMessage(chatID, formatLoading(topic, count)))
		if err != nil {
			return fmt.Errorf("send loading message: %w", err)
		}

		// Register the chat so the presenter knows where this owner's
		// quiz lives before the first question goes out.
		prev, hadPrev := h.messages.Get(owner)
		h.messages.Store(owner, chatID, 0)

		if err := h.quiz.StartQuiz(ctx, owner, topic, count); err != nil {
			h.logger.Warn("quiz start failed",
				zap.Int64("owner", owner),
				zap.String("topic", topic),
				zap.Error(err),
			)
			h.send(tgbotapi.NewEditMessageText(chatID, loading.MessageID, startErrorText(err)))

			// No quiz came out of this attempt: put back the previous
			// registration (a quiz may still be running) or drop ours.
			if hadPrev {
				h.messages.Store(owner, prev.ChatID, prev.MessageID)
			} else {
				h.messages.Delete(owner)
			}
			return nil
		}

		// The first question is on screen; drop the loading message.
		h.send(tgbotapi.NewDeleteMessage(chatID, loading.MessageID))
		return nil
	}
}

// startErrorText maps a StartQuiz failure to a user-facing message.
func startErrorText(err error) string {
	switch {
	case errors.Is(err, client.ErrTimeout):
		return msgTimeoutError
	case errors.Is(err, client.ErrUnreachable):
		return msgConnectionError
	case errors.Is(err, service.ErrInvalidRequest):
		return msgInvalidTopic
	case errors.Is(err, service.ErrContentUnavailable):
		return msgGenerationError
	default:
		return msgInternalError
	}
}
