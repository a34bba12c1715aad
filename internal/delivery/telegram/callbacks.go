package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionAnswer:
		h.handleAnswerCallback(ctx, cb, data)
	case actionDisabled:
		// Graded options stay visible but dead.
		h.ackCallback(cb.ID, "")
	default:
	}
}

func (h *Handler) handleAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) != 2 {
		h.logger.Warn("invalid answer callback data", zap.String("data", cb.Data))
		h.ackCallback(cb.ID, "")
		return
	}

	label := data.Params[0]
	owner, err := strconv.ParseInt(data.Params[1], 10, 64)
	if err != nil {
		h.logger.Warn("invalid owner in callback data", zap.String("data", cb.Data))
		h.ackCallback(cb.ID, "")
		return
	}

	// Buttons stay in the chat: anyone could press them, but the quiz
	// belongs to whoever started it.
	if cb.From.ID != owner {
		h.alertCallback(cb.ID, msgNotYourQuiz)
		return
	}

	// Remove the user's "clock".
	h.ackCallback(cb.ID, "")

	// Grading edits the message the pressed button lives on.
	if cb.Message != nil {
		h.messages.Store(owner, cb.Message.Chat.ID, cb.Message.MessageID)
	}

	err = h.quiz.SubmitAnswer(ctx, owner, label)
	switch {
	case err == nil:

	case errors.Is(err, service.ErrNoActiveSession):
		if cb.Message != nil {
			h.send(tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, msgSessionExpired))
		}

	case errors.Is(err, service.ErrInvalidInput):
		h.logger.Warn("unparseable answer label",
			zap.Int64("owner", owner),
			zap.String("label", label),
		)
		if cb.Message != nil {
			h.send(newMessage(cb.Message.Chat.ID, msgInternalError))
		}

	default:
		h.logger.Error("failed to submit answer",
			zap.Int64("owner", owner),
			zap.String("label", label),
			zap.Error(err),
		)
	}
}

func (h *Handler) ackCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

func (h *Handler) alertCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallbackWithAlert(id, text)); err != nil {
		h.logger.Error("callback alert error", zap.Error(err))
	}
}
