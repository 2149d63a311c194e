package sink

import (
	"strings"
	"sync"
)

// Recorder keeps the plain rendering of every message emitted while
// recording is on. Tests read it back to assert on output without caring
// about colors.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// NewRecorder returns an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Append adds one plain rendering
func (r *Recorder) Append(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns a copy of the recorded messages in emit order
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Len returns the number of recorded messages
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

// Find returns the first recorded message containing substr
func (r *Recorder) Find(substr string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range r.messages {
		if strings.Contains(msg, substr) {
			return msg, true
		}
	}
	return "", false
}

// Reset drops every recorded message
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}
