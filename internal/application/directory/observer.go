package directory

import "sync"

// VisibilityObserver emits one event per visibility transition of a
// sentinel placed after the revealed records. It is edge-triggered: while
// the sentinel stays visible no further events fire, so a single
// transition can never double-expand the window.
type VisibilityObserver struct {
	mu      sync.Mutex
	visible bool
	events  chan struct{}
}

// NewVisibilityObserver creates an observer. Events is buffered so the
// producer never blocks on a slow consumer; an undelivered event is
// dropped rather than queued, matching the browser observer it mirrors.
func NewVisibilityObserver() *VisibilityObserver {
	return &VisibilityObserver{events: make(chan struct{}, 1)}
}

// Observe records the sentinel's current visibility and emits an event on
// the hidden-to-visible edge only.
func (o *VisibilityObserver) Observe(visible bool) {
	o.mu.Lock()
	wasVisible := o.visible
	o.visible = visible
	o.mu.Unlock()

	if visible && !wasVisible {
		select {
		case o.events <- struct{}{}:
		default:
		}
	}
}

// Events returns the channel of "became visible" notifications.
func (o *VisibilityObserver) Events() <-chan struct{} {
	return o.events
}

// BindReveal drains visibility events and expands the window once per
// event while it is incomplete. It returns when the events channel is
// closed or stop is closed.
func BindReveal(r *Reveal, events <-chan struct{}, stop <-chan struct{}) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
			if !r.Complete() {
				r.Expand()
			}
		case <-stop:
			return
		}
	}
}
