package check

import "sync"

// Exit floors contributed by failed checks.
const (
	// ExitWarning is the floor raised by a failed check at warning severity.
	ExitWarning = 4
	// ExitError is the floor raised by a failed check at error or abend severity.
	ExitError = 8
)

// Status accumulates the process-wide exit floor. The floor is
// monotonically non-decreasing: raising it to a value at or below the
// current one is a no-op.
type Status struct {
	mu   sync.Mutex
	code int
}

// NewStatus returns a Status with floor zero.
func NewStatus() *Status {
	return &Status{}
}

// RaiseFloor raises the accumulated exit floor to at least n.
func (s *Status) RaiseFloor(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > s.code {
		s.code = n
	}
}

// Code returns the accumulated exit floor.
func (s *Status) Code() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}
