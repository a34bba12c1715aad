package storage

import "testing"

func TestMessageStore(t *testing.T) {
	store := NewMessageStore()

	if _, ok := store.Get(1); ok {
		t.Error("Get() on empty store reported a message")
	}

	store.Store(1, 100, 7)

	msg, ok := store.Get(1)
	if !ok {
		t.Fatal("Get() not found after Store()")
	}
	if msg.ChatID != 100 || msg.MessageID != 7 {
		t.Errorf("got %+v, want chat 100 message 7", msg)
	}

	// Storing again replaces the tracked message.
	store.Store(1, 100, 9)
	msg, _ = store.Get(1)
	if msg.MessageID != 9 {
		t.Errorf("MessageID = %d, want 9", msg.MessageID)
	}

	store.Delete(1)
	if _, ok := store.Get(1); ok {
		t.Error("message still present after Delete()")
	}

	// Deleting an absent owner is a no-op.
	store.Delete(2)
}
