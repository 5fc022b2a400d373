// Package ui holds the presentation primitives every page shares: the
// auto-hiding toast and the in-memory pager.
package ui

import (
	"sync"
	"time"
)

// Toast is a transient banner. Success selects the styling only; both
// kinds auto-hide the same way.
type Toast struct {
	Message string
	Success bool
}

type toastEntry struct {
	toast Toast
	timer *time.Timer
}

// ToastCenter keeps at most one visible toast per session key. Showing
// a toast arms a single-shot timer that clears it after the configured
// duration; dismissing first cancels the pending timer, and showing
// again re-arms it. A fired timer only clears the entry it was armed
// for, so a toast shown after the race began is never swallowed.
type ToastCenter struct {
	mu       sync.Mutex
	duration time.Duration
	active   map[string]*toastEntry
}

func NewToastCenter(duration time.Duration) *ToastCenter {
	return &ToastCenter{
		duration: duration,
		active:   make(map[string]*toastEntry),
	}
}

func (tc *ToastCenter) Show(sid, message string, success bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if prev, ok := tc.active[sid]; ok {
		prev.timer.Stop()
	}
	entry := &toastEntry{toast: Toast{Message: message, Success: success}}
	entry.timer = time.AfterFunc(tc.duration, func() {
		tc.expire(sid, entry)
	})
	tc.active[sid] = entry
}

func (tc *ToastCenter) Dismiss(sid string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if entry, ok := tc.active[sid]; ok {
		entry.timer.Stop()
		delete(tc.active, sid)
	}
}

// Current returns the visible toast for the session, if any.
func (tc *ToastCenter) Current(sid string) (Toast, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	entry, ok := tc.active[sid]
	if !ok {
		return Toast{}, false
	}
	return entry.toast, true
}

func (tc *ToastCenter) expire(sid string, entry *toastEntry) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.active[sid] == entry {
		delete(tc.active, sid)
	}
}
