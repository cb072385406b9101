package store

import "sync"

// hub tracks active subscriptions. Publishing never blocks on a slow
// subscriber: each subscription keeps a pending counter and its pump
// goroutine performs one snapshot fetch per recorded write, so no change
// notification is ever dropped.
type hub struct {
	mu   sync.Mutex
	next int
	subs map[int]*subscription
}

type subscription struct {
	id   int
	path []string

	mu      sync.Mutex
	cond    *sync.Cond
	pending int
	closed  bool
}

func newHub() *hub {
	return &hub{subs: map[int]*subscription{}}
}

func (h *hub) add(path string) *subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	sub := &subscription{id: h.next, path: splitPath(path)}
	sub.cond = sync.NewCond(&sub.mu)
	h.subs[sub.id] = sub
	return sub
}

func (h *hub) remove(sub *subscription) {
	h.mu.Lock()
	delete(h.subs, sub.id)
	h.mu.Unlock()

	sub.mu.Lock()
	sub.closed = true
	sub.cond.Broadcast()
	sub.mu.Unlock()
}

// publish records a write at path against every overlapping subscription.
// A subscription at "courses" overlaps writes at "courses/x" and at "" alike:
// either path being an ancestor of the other means the subscribed snapshot
// may have changed.
func (h *hub) publish(path string) {
	segs := splitPath(path)

	h.mu.Lock()
	targets := make([]*subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		if overlaps(sub.path, segs) {
			targets = append(targets, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range targets {
		sub.notify()
	}
}

func (s *subscription) notify() {
	s.mu.Lock()
	if !s.closed {
		s.pending++
		s.cond.Signal()
	}
	s.mu.Unlock()
}

// wait blocks until a write is pending or the subscription is closed.
// It consumes one pending write and reports whether the caller should
// fetch another snapshot.
func (s *subscription) wait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.pending == 0 && !s.closed {
		s.cond.Wait()
	}
	if s.closed {
		return false
	}
	s.pending--
	return true
}

func overlaps(a, b []string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
