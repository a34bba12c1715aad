// presenter.go renders quiz engine output into Telegram messages.
// Presenter implements service.Presenter so the engine never sees
// chat ids, keyboards or message formatting.

package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
	"github.com/davletovm/quizmaster-bot/internal/service"
)

type Presenter struct {
	bot      *tgbotapi.BotAPI
	logger   *zap.Logger
	messages MessageStore
}

func NewPresenter(bot *tgbotapi.BotAPI, logger *zap.Logger, messages MessageStore) *Presenter {
	return &Presenter{
		bot:      bot,
		logger:   logger,
		messages: messages,
	}
}

// ShowQuestion sends the current question with one button per option.
func (p *Presenter) ShowQuestion(_ context.Context, owner int64, view service.QuestionView) error {
	cm, ok := p.messages.Get(owner)
	if !ok {
		return fmt.Errorf("no chat registered for owner %d", owner)
	}

	msg := newMessage(cm.ChatID, formatQuestion(view))
	msg.ReplyMarkup = buildAnswerKeyboard(view.Question, owner)

	sent, err := p.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send question: %w", err)
	}

	p.messages.Store(owner, cm.ChatID, sent.MessageID)
	return nil
}

// ShowGraded rewrites the question message in place with the verdict
// and marked, disabled option buttons.
func (p *Presenter) ShowGraded(_ context.Context, owner int64, view service.GradedView) error {
	cm, ok := p.messages.Get(owner)
	if !ok || cm.MessageID == 0 {
		return fmt.Errorf("no question message tracked for owner %d", owner)
	}

	edit := tgbotapi.NewEditMessageText(cm.ChatID, cm.MessageID, formatGraded(view))
	kb := buildGradedKeyboard(view)
	edit.ReplyMarkup = &kb

	if _, err := p.bot.Send(edit); err != nil {
		return fmt.Errorf("edit graded question: %w", err)
	}
	return nil
}

// ShowResult reports the final score and forgets the owner's chat state.
func (p *Presenter) ShowResult(_ context.Context, owner int64, result entities.Result) error {
	cm, ok := p.messages.Get(owner)
	if !ok {
		return fmt.Errorf("no chat registered for owner %d", owner)
	}

	p.logger.Debug("showing quiz result",
		zap.Int64("owner", owner),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
	)

	if _, err := p.bot.Send(newMessage(cm.ChatID, formatResult(result))); err != nil {
		return fmt.Errorf("send result: %w", err)
	}

	p.messages.Delete(owner)
	return nil
}
