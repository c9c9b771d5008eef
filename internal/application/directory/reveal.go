package directory

// Per-surface initial page sizes. The paginated grid reveals 8 cards at a
// time, the list view 10.
const (
	GridPageSize = 8
	ListPageSize = 10
)

// Reveal maintains the growing prefix of a filtered list exposed to the
// view. It owns a single counter; what makes it grow (a "load more" click
// or a viewport sentinel) is the caller's concern.
type Reveal struct {
	pageSize     int
	visibleCount int
	total        int
}

// NewReveal creates a reveal window with the given page size over a list
// of total records. A non-positive page size falls back to the grid size.
func NewReveal(pageSize, total int) *Reveal {
	if pageSize <= 0 {
		pageSize = GridPageSize
	}
	return &Reveal{pageSize: pageSize, visibleCount: pageSize, total: total}
}

// Reset shrinks the window back to one page. Called whenever the filter
// criteria change.
func (r *Reveal) Reset() {
	r.visibleCount = r.pageSize
}

// Retarget swaps the underlying list length after a filter change and
// resets the window.
func (r *Reveal) Retarget(total int) {
	r.total = total
	r.Reset()
}

// Expand grows the window by one page, clamped to the list length. A
// no-op once the window is complete.
func (r *Reveal) Expand() {
	if r.Complete() {
		return
	}
	r.visibleCount += r.pageSize
	if r.visibleCount > r.total {
		r.visibleCount = r.total
	}
}

// VisibleCount returns the current window length, never exceeding the
// list length.
func (r *Reveal) VisibleCount() int {
	if r.visibleCount > r.total {
		return r.total
	}
	return r.visibleCount
}

// Complete reports whether the whole list is exposed.
func (r *Reveal) Complete() bool {
	return r.visibleCount >= r.total
}

// Window returns records truncated to the visible prefix.
func Window[T any](records []T, r *Reveal) []T {
	n := r.VisibleCount()
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}
