package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/domain/entities"
)

// Quiz request limits, matching the generate endpoint's contract.
const (
	MinQuestions   = 3
	MaxQuestions   = 30
	MaxTopicLength = 100
)

// QuizService drives a quiz session from creation to completion:
// it fetches content, advances questions, grades answers and computes
// the final score. It is safe for concurrent use across owners.
type QuizService struct {
	store     SessionStore
	provider  ContentProvider
	presenter Presenter
	logger    *zap.Logger
	nextDelay time.Duration
}

// NewQuizService creates a QuizService. nextDelay is a purely cosmetic
// pause before the next question is revealed after grading; zero
// disables it and the next question follows synchronously.
func NewQuizService(
	store SessionStore,
	provider ContentProvider,
	presenter Presenter,
	logger *zap.Logger,
	nextDelay time.Duration,
) *QuizService {
	return &QuizService{
		store:     store,
		provider:  provider,
		presenter: presenter,
		logger:    logger,
		nextDelay: nextDelay,
	}
}

// StartQuiz fetches count questions about topic and opens a new
// session for the owner, replacing any session already in progress.
// On a provider failure the previous session is left untouched.
func (s *QuizService) StartQuiz(ctx context.Context, owner int64, topic string, count int) error {
	topic = strings.TrimSpace(topic)
	if topic == "" || utf8.RuneCountInString(topic) > MaxTopicLength {
		return fmt.Errorf("%w: topic must be 1-%d characters", ErrInvalidRequest, MaxTopicLength)
	}
	if count < MinQuestions || count > MaxQuestions {
		return fmt.Errorf("%w: question count must be %d-%d", ErrInvalidRequest, MinQuestions, MaxQuestions)
	}

	questions, err := s.provider.Generate(ctx, topic, count)
	if err != nil {
		// Keep the provider's failure in the chain so the delivery
		// layer can tell a timeout from an unreachable backend.
		return fmt.Errorf("%w: %w", ErrContentUnavailable, err)
	}

	if err := validateQuestions(questions, count); err != nil {
		return fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}

	s.store.Create(owner, topic, questions)

	s.logger.Info("quiz started",
		zap.Int64("owner", owner),
		zap.String("topic", topic),
		zap.Int("questions", count),
	)

	return s.ShowCurrent(ctx, owner)
}

// ShowCurrent presents the owner's current question, or the final
// result when every question has been answered. Reporting the result
// removes the session; it happens exactly once even under concurrent
// calls.
func (s *QuizService) ShowCurrent(ctx context.Context, owner int64) error {
	session, ok := s.store.Get(owner)
	if !ok {
		return ErrNoActiveSession
	}

	if session.Completed() {
		removed, ok := s.store.RemoveCompleted(owner)
		if !ok {
			// Another call already reported the result, or a new quiz
			// replaced this one between Get and the removal.
			return nil
		}

		result := entities.Result{
			Topic: removed.Topic,
			Score: removed.Score,
			Total: removed.Total(),
		}

		s.logger.Info("quiz completed",
			zap.Int64("owner", owner),
			zap.Int("score", result.Score),
			zap.Int("total", result.Total),
		)

		return s.presenter.ShowResult(ctx, owner, result)
	}

	return s.presenter.ShowQuestion(ctx, owner, QuestionView{
		Index:    session.CurrentIndex,
		Total:    session.Total(),
		Topic:    session.Topic,
		Question: session.Current(),
	})
}

// SubmitAnswer grades the selected label against the current question,
// advances the session and presents the graded question. Label
// validation precedes the session lookup. Grading and advancing happen
// in one atomic store update, so two racing submissions can never
// leave a torn index/score pair.
func (s *QuizService) SubmitAnswer(ctx context.Context, owner int64, selected string) error {
	label, err := entities.ParseLabel(selected)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		graded GradedView
		stale  bool
	)
	ok := s.store.Mutate(owner, func(session *entities.QuizSession) {
		if session.Completed() {
			// Answer for a quiz whose last question is already graded
			// but whose result has not been reported yet.
			stale = true
			return
		}

		question := session.Current()
		isCorrect := label == question.CorrectLabel
		if isCorrect {
			session.Score++
		}

		graded = GradedView{
			Index:     session.CurrentIndex,
			Total:     session.Total(),
			Topic:     session.Topic,
			Question:  question,
			Chosen:    label,
			IsCorrect: isCorrect,
		}

		session.CurrentIndex++
	})
	if !ok || stale {
		return ErrNoActiveSession
	}

	s.logger.Debug("answer graded",
		zap.Int64("owner", owner),
		zap.Int("question", graded.Index+1),
		zap.Bool("correct", graded.IsCorrect),
	)

	if err := s.presenter.ShowGraded(ctx, owner, graded); err != nil {
		return err
	}

	if s.nextDelay <= 0 {
		return s.ShowCurrent(ctx, owner)
	}

	// Deferred continuation: only this owner's next question waits,
	// no shared lock is held across the pause.
	time.AfterFunc(s.nextDelay, func() {
		if err := s.ShowCurrent(context.Background(), owner); err != nil && !errors.Is(err, ErrNoActiveSession) {
			s.logger.Error("failed to show next question",
				zap.Int64("owner", owner),
				zap.Error(err),
			)
		}
	})

	return nil
}

// validateQuestions checks that the provider returned exactly the
// requested number of structurally valid questions.
func validateQuestions(questions []entities.Question, count int) error {
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
