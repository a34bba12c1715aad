package storage

import "sync"

// ChatMessage points at a message the bot sent to an owner's chat.
type ChatMessage struct {
	ChatID    int64
	MessageID int
}

// MessageStore remembers, per owner, which chat the quiz runs in and
// which message currently shows the active question. The presenter
// needs both to edit questions in place after grading.
type MessageStore struct {
	mu       sync.RWMutex
	messages map[int64]ChatMessage
}

func NewMessageStore() *MessageStore {
	return &MessageStore{
		messages: make(map[int64]ChatMessage),
	}
}

func (s *MessageStore) Store(owner int64, chatID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[owner] = ChatMessage{
		ChatID:    chatID,
		MessageID: messageID,
	}
}

func (s *MessageStore) Get(owner int64) (ChatMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[owner]
	return msg, ok
}

func (s *MessageStore) Delete(owner int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, owner)
}
