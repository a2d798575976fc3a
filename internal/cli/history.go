package cli

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/google/uuid"
)

// HistoryLimit is how many calculations a session remembers.
const HistoryLimit = 10

// Entry is one remembered calculation.
type Entry struct {
	ID     string
	Result domain.Result
	At     time.Time
}

// History keeps the most recent calculations of a session, newest first.
// It lives only in memory and is lost when the session ends.
type History struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
	now     func() time.Time
}

// NewHistory creates a history holding at most limit entries.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = HistoryLimit
	}
	return &History{limit: limit, now: time.Now}
}

// Record prepends res, dropping the oldest entry when full.
func (h *History) Record(res domain.Result) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := Entry{ID: uuid.NewString(), Result: res, At: h.now()}
	h.entries = append([]Entry{e}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
	return e
}

// Entries returns a copy of the entries, newest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear forgets every entry.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

// Markdown renders the history as a table.
func (h *History) Markdown() string {
	entries := h.Entries()
	if len(entries) == 0 {
		return "_No calculations yet._\n"
	}

	var b strings.Builder
	b.WriteString("| # | Input | Result | Time |\n")
	b.WriteString("|---|---|---|---|\n")
	for i, e := range entries {
		outcome := fmt.Sprintf("%d", e.Result.Value())
		if !e.Result.Success {
			outcome = "error: " + e.Result.Error
		}
		fmt.Fprintf(&b, "| %d | `%s` | %s | %s |\n",
			i+1, Escape(e.Result.Input), escapeCell(outcome), e.At.Format("15:04:05"))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
