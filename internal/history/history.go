package history

import "sync"

// History is an ordered list of HistoryAction groups plus a cursor in
// [0, len(actions)]. Actions to the left of cursor are undoable; actions at
// and to the right are redoable.
type History struct {
	mu      sync.Mutex
	actions []HistoryAction
	cursor  int
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// RegisterEdit discards the redoable tail [cursor:], appends action, and
// advances the cursor past it.
func (h *History) RegisterEdit(action HistoryAction) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.actions = h.actions[:h.cursor]
	h.actions = append(h.actions, action)
	h.cursor++
}

// Back returns the action immediately before the cursor and decrements the
// cursor, or (nil, false) if the cursor is already at 0.
func (h *History) Back() (HistoryAction, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == 0 {
		return nil, false
	}
	h.cursor--
	return h.actions[h.cursor], true
}

// Forward returns the action at the cursor and advances it, or (nil, false)
// if the cursor is already at the end.
func (h *History) Forward() (HistoryAction, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor >= len(h.actions) {
		return nil, false
	}
	action := h.actions[h.cursor]
	h.cursor++
	return action, true
}

// Len returns the number of recorded HistoryAction groups.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.actions)
}

// Cursor returns the current cursor position, for tests and diagnostics.
func (h *History) Cursor() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}
