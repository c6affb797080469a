package tasks

import (
	"sync"
	"time"
)

// CommentSaver debounces music-comment writes. Each [CommentSaver.Set]
// restarts the countdown, so a burst of keystrokes produces a single save
// once the guest pauses for the configured delay.
type CommentSaver struct {
	delay time.Duration
	save  func(comment string) error

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	dirty   bool
	lastErr error
}

// NewCommentSaver builds a saver that calls save after delay of idle time.
func NewCommentSaver(delay time.Duration, save func(comment string) error) *CommentSaver {
	return &CommentSaver{delay: delay, save: save}
}

// Set records the latest comment text and restarts the idle countdown.
func (s *CommentSaver) Set(comment string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = comment
	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

func (s *CommentSaver) fire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
}

func (s *CommentSaver) flushLocked() {
	if !s.dirty {
		return
	}
	s.dirty = false
	s.lastErr = s.save(s.pending)
}

// Flush saves any pending comment immediately and reports the outcome of
// the most recent save attempt. Callers use it before logout or exit so a
// mid-countdown comment is not lost.
func (s *CommentSaver) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.flushLocked()
	return s.lastErr
}

// Stop cancels any pending save without writing it.
func (s *CommentSaver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.dirty = false
}
