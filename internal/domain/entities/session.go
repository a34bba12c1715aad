package entities

import "time"

// QuizSession represents one owner's in-progress quiz.
// It tracks the fixed question list, the position of the current
// question and the number of correct answers so far.
type QuizSession struct {
	Owner        int64      // stable user identity supplied by the chat transport
	Topic        string     // topic the quiz was requested for
	Questions    []Question // fixed question list, immutable after creation
	CurrentIndex int        // index of the current question; len(Questions) means the quiz is complete
	Score        int        // correct answers so far, never decreases
	StartedAt    time.Time  // timestamp when the quiz started
}

// NewQuizSession creates a fresh session positioned at the first question.
func NewQuizSession(owner int64, topic string, questions []Question) *QuizSession {
	return &QuizSession{
		Owner:     owner,
		Topic:     topic,
		Questions: questions,
		StartedAt: time.Now(),
	}
}

// Total returns the number of questions in the quiz.
func (s *QuizSession) Total() int {
	return len(s.Questions)
}

// Completed reports whether every question has been answered.
func (s *QuizSession) Completed() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// Current returns the question at the current index. It must not be
// called on a completed session.
func (s *QuizSession) Current() Question {
	return s.Questions[s.CurrentIndex]
}
