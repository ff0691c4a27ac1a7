package dispatch

// A Matcher maps Actions to the E, e.g., a page or a component, that should be shown for them.
//
// Entries are tried in the order they were added; the first to match wins.
// A Matcher is immutable: AddFor and AddForWhen return new Matchers.
type Matcher[E any] struct {
	entries []entry[E]
}

type entry[E any] struct {
	kind  Kind
	match func(Action) (func() E, bool)
}

// AddFor returns a Matcher that additionally matches any Action of type T,
// generating its E with gen.
func AddFor[T Action, E any](m Matcher[E], gen func(T) E) Matcher[E] {
	return AddForWhen(m, func(T) bool { return true }, gen)
}

// AddForWhen is like AddFor but only matches an Action of type T if cond returns true for it.
func AddForWhen[T Action, E any](m Matcher[E], cond func(T) bool, gen func(T) E) Matcher[E] {
	if cond == nil || gen == nil {
		panic("dispatch: nil condition or generator")
	}

	e := entry[E]{
		kind: kindOf[T](),
		match: func(a Action) (func() E, bool) {
			t, ok := a.(T)
			if !ok || !cond(t) {
				return nil, false
			}

			return func() E { return gen(t) }, true
		},
	}

	entries := make([]entry[E], len(m.entries), len(m.entries)+1)
	copy(entries, m.entries)
	return Matcher[E]{entries: append(entries, e)}
}

// Match finds the first entry matching a and returns the func generating its E.
func (m Matcher[E]) Match(a Action) (func() E, bool) {
	if a == nil {
		return nil, false
	}

	kind := a.Kind()
	for _, e := range m.entries {
		if e.kind != "" && e.kind != kind {
			continue
		}

		if gen, ok := e.match(a); ok {
			return gen, true
		}
	}

	return nil, false
}

// Len is the number of entries in m.
func (m Matcher[E]) Len() int { return len(m.entries) }

// kindOf reads the Kind of T off its zero value.
// T whose zero value cannot report a Kind, e.g., a nil pointer, is left unkeyed
// and matched on its type alone.
func kindOf[T Action]() (k Kind) {
	defer func() {
		if recover() != nil {
			k = ""
		}
	}()

	var zero T
	return zero.Kind()
}
