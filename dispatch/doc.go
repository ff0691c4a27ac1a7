// Package dispatch is the hand-off point between matched routes and the rest of an application.
//
// Routes dispatch an [Action] to a [Dispatcher]; a [Matcher] then decides what to show for it.
package dispatch
