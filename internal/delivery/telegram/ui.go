package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
	"github.com/davletovm/quizmaster-bot/internal/service"
)

// buildAnswerKeyboard builds one button per option, in label order,
// with no hint of which one is correct.
func buildAnswerKeyboard(q entities.Question, owner int64) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, label := range entities.Labels {
		text := fmt.Sprintf("%s: %s", label, q.Options[label])
		button := tgbotapi.NewInlineKeyboardButtonData(text, buildAnswerCallback(string(label), owner))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildGradedKeyboard rebuilds the option buttons after grading:
// ✅ marks the correct option, ❌ marks a wrong pick, the rest stay
// neutral. All buttons become inert.
func buildGradedKeyboard(view service.GradedView) tgbotapi.InlineKeyboardMarkup {
	q := view.Question

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, label := range entities.Labels {
		var text string
		switch {
		case label == q.CorrectLabel:
			text = fmt.Sprintf("✅ %s: %s", label, q.Options[label])
		case label == view.Chosen && !view.IsCorrect:
			text = fmt.Sprintf("❌ %s: %s", label, q.Options[label])
		default:
			text = fmt.Sprintf("%s: %s", label, q.Options[label])
		}

		button := tgbotapi.NewInlineKeyboardButtonData(text, buildDisabledCallback(string(label)))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
