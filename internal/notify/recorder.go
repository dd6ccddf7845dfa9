package notify

import (
	"context"
	"sync"
)

// Recorder keeps sent messages in memory. Err, when set, fails every send.
type Recorder struct {
	mu       sync.Mutex
	Err      error
	messages []Message
}

// SendVerification records msg or returns r.Err.
func (r *Recorder) SendVerification(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	r.messages = append(r.messages, msg)

	return nil
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Message(nil), r.messages...)
}

// Last returns the most recent message.
func (r *Recorder) Last() (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.messages) == 0 {
		return Message{}, false
	}

	return r.messages[len(r.messages)-1], true
}

// Close does nothing.
func (*Recorder) Close() error { return nil }
