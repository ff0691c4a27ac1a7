package dispatch

import "sync"

// A Kind discriminates one type of Action from another.
type Kind string

// An Action is what a matched route hands to a Dispatcher.
//
// Kind must be implemented with a value receiver and return the same Kind
// for every value of the type, including its zero value.
type Action interface {
	Kind() Kind
}

// A Dispatcher routes an Action to whatever listens for it.
// Dispatch returns once the Action has been handed off.
type Dispatcher interface {
	Dispatch(a Action)
}

// A DispatcherFunc adapts a func to a Dispatcher.
type DispatcherFunc func(a Action)

// Dispatch calls fn(a).
func (fn DispatcherFunc) Dispatch(a Action) { fn(a) }

// A Recorder is a Dispatcher keeping every Action dispatched to it
// and passing each one on to its listeners, in the order they registered.
//
// A Recorder is safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	actions   []Action
	listeners []func(Action)
}

// NewRecorder constructs an empty *Recorder.
func NewRecorder() *Recorder { return new(Recorder) }

// Dispatch records a and calls each listener with it.
// A listener's panic is not recovered.
func (r *Recorder) Dispatch(a Action) {
	r.mu.Lock()
	r.actions = append(r.actions, a)
	listeners := append([]func(Action){}, r.listeners...)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(a)
	}
}

// Register adds fn to the listeners called on every later Dispatch.
func (r *Recorder) Register(fn func(Action)) {
	if fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Actions returns every Action dispatched so far, oldest first.
func (r *Recorder) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Action(nil), r.actions...)
}

// Last returns the most recently dispatched Action.
func (r *Recorder) Last() (Action, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.actions) == 0 {
		return nil, false
	}

	return r.actions[len(r.actions)-1], true
}

// Reset forgets every recorded Action, keeping listeners.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = nil
}
