package testutil

import (
	"sync"
)

// RecordingSetter records every image it is asked to apply.
type RecordingSetter struct {
	mu      sync.Mutex
	applied []string

	// Err, when set, is returned from Apply after recording.
	Err error

	// OnApply runs after each recorded Apply, e.g. to cancel a context.
	OnApply func(count int)
}

// Apply implements setter.Setter.
func (s *RecordingSetter) Apply(imagePath string) error {
	s.mu.Lock()
	s.applied = append(s.applied, imagePath)
	count := len(s.applied)
	s.mu.Unlock()

	if s.OnApply != nil {
		s.OnApply(count)
	}
	return s.Err
}

// Applied returns a copy of the recorded image paths.
func (s *RecordingSetter) Applied() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.applied...)
}
