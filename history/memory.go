package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/logger"
	"golang.org/x/time/rate"
)

var _ LastNavigator = (*Memory)(nil)

// A Memory is a History kept in memory.
//
// Besides NavigateTo, a Memory can move Back and Forward through the locations it has visited,
// calling its callbacks for each move as a browser's popstate would.
//
// By default, NavigateTo delivers to callbacks before returning.
// A Memory constructed WithDeferred queues navigations instead,
// for Run or Drain to deliver in order.
// Deferring lets a callback request another navigation without re-entering itself.
type Memory struct {
	mu        sync.Mutex
	back      []waymark.URL
	callbacks []func(waymark.URL)
	current   waymark.URL
	deferred  bool
	forward   []waymark.URL
	l         logger.Logger
	last      *waymark.URL
	limiter   *rate.Limiter
	navID     string
	pending   []waymark.URL
	requested string
	wake      chan struct{}
}

// NewMemory constructs a *Memory starting at start.
func NewMemory(start waymark.URL, opts ...MemoryOption) *Memory {
	m := &Memory{
		current: start,
		l:       logger.NewDiscardLogger(),
		wake:    make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.navID == "" {
		m.navID = uuid.NewString()
	}

	return m
}

// CurrentLocation is the URL currently navigated to.
func (m *Memory) CurrentLocation() waymark.URL {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// LastNavigatedTo is the location current just before the most recent NavigateTo was applied.
func (m *Memory) LastNavigatedTo() (waymark.URL, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return waymark.URL{}, false
	}

	return *m.last, true
}

// RegisterForNavigatedCallback adds callback to those called with the URL of each navigation.
//
// RegisterForNavigatedCallback panics if callback is nil.
func (m *Memory) RegisterForNavigatedCallback(callback func(waymark.URL)) {
	if callback == nil {
		panic(fmt.Errorf("history: %w: nil callback", waymark.ErrMissingData))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// NavigateTo pushes u onto the history, making it the current location,
// and calls every callback with it.
//
// If m limits its rate and u exceeds it, the navigation is dropped.
// If m is deferred, the navigation is queued instead.
func (m *Memory) NavigateTo(u waymark.URL) {
	if m.limiter != nil && !m.limiter.Allow() {
		m.l.Warn("navigation rate exceeded, dropping navigation", &logger.LogContext{
			Caller:     logger.CurrentCaller(),
			Navigation: u.String(),
		})
		return
	}

	if !m.deferred {
		m.apply(u)
		return
	}

	m.mu.Lock()
	m.pending = append(m.pending, u)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// RaiseNavigateToForCurrentLocation calls every callback with the current location.
func (m *Memory) RaiseNavigateToForCurrentLocation() {
	m.raise(m.CurrentLocation())
}

// Back moves to the previous location, calling every callback with it.
// Back reports false, calling nothing, if there is no previous location.
func (m *Memory) Back() bool {
	m.mu.Lock()
	if len(m.back) == 0 {
		m.mu.Unlock()
		return false
	}

	m.forward = append(m.forward, m.current)
	m.current = m.back[len(m.back)-1]
	m.back = m.back[:len(m.back)-1]
	u := m.current
	m.mu.Unlock()

	m.raise(u)
	return true
}

// Forward moves to the location most recently left by Back, calling every callback with it.
// Forward reports false, calling nothing, if there is no such location.
func (m *Memory) Forward() bool {
	m.mu.Lock()
	if len(m.forward) == 0 {
		m.mu.Unlock()
		return false
	}

	m.back = append(m.back, m.current)
	m.current = m.forward[len(m.forward)-1]
	m.forward = m.forward[:len(m.forward)-1]
	u := m.current
	m.mu.Unlock()

	m.raise(u)
	return true
}

// Pending is the number of navigations queued but not yet delivered.
func (m *Memory) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Drain delivers every queued navigation, including those queued while draining,
// and returns how many were delivered.
//
// Drain must not be called while Run is running.
func (m *Memory) Drain() int {
	var n int
	for {
		u, ok := m.next()
		if !ok {
			return n
		}

		m.apply(u)
		n++
	}
}

// Run delivers queued navigations, in order, until ctx is done.
// Run returns the error of ctx.
func (m *Memory) Run(ctx context.Context) error {
	for {
		m.Drain()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.wake:
		}
	}
}

// next pops the oldest queued navigation.
func (m *Memory) next() (waymark.URL, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return waymark.URL{}, false
	}

	u := m.pending[0]
	m.pending = m.pending[1:]
	return u, true
}

// apply makes u the current location and raises it.
func (m *Memory) apply(u waymark.URL) {
	m.mu.Lock()
	last := m.current
	m.last = &last
	m.back = append(m.back, m.current)
	m.forward = nil
	m.current = u
	m.mu.Unlock()

	m.raise(u)
}

// raise calls every callback with u, outside of any lock,
// so a callback may itself navigate.
func (m *Memory) raise(u waymark.URL) {
	m.mu.Lock()
	callbacks := append([]func(waymark.URL){}, m.callbacks...)
	m.mu.Unlock()

	data := map[string]any{
		"callbacks":     len(callbacks),
		"navigation_id": m.navID,
		"step_id":       uuid.NewString(),
	}
	if m.requested != "" {
		data["requested"] = m.requested
	}

	m.l.Debug("navigated", &logger.LogContext{Data: data, Navigation: u.String()})

	for _, fn := range callbacks {
		fn(u)
	}
}
