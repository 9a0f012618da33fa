package renderer

import "sync"

// RowScheduler hands out scanline indices to workers. Next reports false once
// every row has been claimed.
type RowScheduler interface {
	Next() (int, bool)
}

// rowCounter is a shared "next row" counter guarded by a mutex
type rowCounter struct {
	mu     sync.Mutex
	next   int
	height int
}

// NewRowCounter returns a scheduler that yields rows 0..height-1 exactly once
func NewRowCounter(height int) RowScheduler {
	return &rowCounter{height: height}
}

func (rc *rowCounter) Next() (int, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.next >= rc.height {
		return 0, false
	}
	row := rc.next
	rc.next++
	return row, true
}
