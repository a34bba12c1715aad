// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
	"github.com/davletovm/quizmaster-bot/internal/service"
)

const msgWelcome = `🎓 Welcome to AIQuizMasterBot! 🤖

I can generate AI-powered quizzes on any topic!

Commands:
/quiz <topic> <num> - Start a quiz
Example: /quiz React 5

/help - Show help message`

const msgHelp = `📚 How to use AIQuizMasterBot:

1️⃣ Use /quiz command:
   /quiz <topic> <number>

   Example: /quiz Python 5

2️⃣ Choose your answer:
   Click on A, B, C, or D buttons

3️⃣ Get instant feedback:
   ✅ Green = Correct
   ❌ Red = Wrong

📝 Rules:
- Number of questions: 3-30
- Topics: Any subject you want!`

// Error messages.
const (
	msgInvalidQuizFormat = "❌ Invalid format!\n\nUsage: /quiz <topic> <number>\nExample: /quiz React 5"
	msgInvalidCount      = "❌ Number of questions must be between 3 and 30!"
	msgInvalidTopic      = "❌ Topic must be between 1 and 100 characters!"
	msgConnectionError   = "❌ Cannot connect to the quiz server!\nPlease try again later."
	msgTimeoutError      = "❌ Request timeout!\nThe quiz server took too long to respond.\nPlease try again."
	msgGenerationError   = "❌ Couldn't generate a quiz on that topic.\nPlease try again later."
	msgSessionExpired    = "❌ Quiz session expired. Start a new quiz with /quiz"
	msgNotYourQuiz       = "❌ This is not your quiz!"
	msgInternalError     = "❌ Something went wrong. Please try again later."
	msgUnknownCommand    = "Unknown command. Available commands:\n\n/quiz <topic> <number> - start a quiz\n/help - show help"
)

// newMessage creates a plain text message.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

func formatLoading(topic string, count int) string {
	return fmt.Sprintf("🔄 Generating %d questions about %s...\nPlease wait...", count, topic)
}

func formatQuestionHeader(index, total int, topic string) string {
	return fmt.Sprintf("📝 Question %d/%d\nTopic: %s", index+1, total, topic)
}

func formatQuestion(view service.QuestionView) string {
	return fmt.Sprintf("%s\n\n%s",
		formatQuestionHeader(view.Index, view.Total, view.Topic),
		view.Question.Text,
	)
}

func formatGraded(view service.GradedView) string {
	var verdict string
	if view.IsCorrect {
		verdict = "✅ Correct!"
	} else {
		verdict = fmt.Sprintf("❌ Wrong! Correct answer: %s", view.Question.CorrectLabel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s",
		formatQuestionHeader(view.Index, view.Total, view.Topic),
		view.Question.Text,
		verdict,
	)
}

func formatResult(result entities.Result) string {
	var tierLine string
	switch result.Tier() {
	case entities.TierTop:
		tierLine = "🏆 Excellent!"
	case entities.TierMiddle:
		tierLine = "👍 Good job!"
	default:
		tierLine = "📚 Keep learning!"
	}

	var b strings.Builder
	b.WriteString("🎉 Quiz Completed! 🎉\n\n")
	b.WriteString("📊 Results:\n")
	fmt.Fprintf(&b, "✅ Correct: %d/%d\n", result.Score, result.Total)
	fmt.Fprintf(&b, "📈 Score: %.1f%%\n\n", result.Percentage())
	b.WriteString(tierLine)
	b.WriteString("\n\nStart a new quiz with /quiz <topic> <number>")

	return b.String()
}
