package route

// T2 holds the values of 2 variable segments, in pattern order.
type T2[A, B any] struct {
	V1 A
	V2 B
}

// T3 holds the values of 3 variable segments, in pattern order.
type T3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// T4 holds the values of 4 variable segments, in pattern order.
type T4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// T5 holds the values of 5 variable segments, in pattern order.
type T5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// T6 holds the values of 6 variable segments, in pattern order.
type T6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// T7 holds the values of 7 variable segments, in pattern order.
type T7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

// T8 holds the values of 8 variable segments, in pattern order.
type T8[A, B, C, D, E, F, G, H any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}

// Tuple2 appends a variable segment parsed by parse,
// pairing its value with the single value accumulated so far.
func Tuple2[A, B any](b Vars[A], parse Parser[B]) Vars[T2[A, B]] {
	return Extend(b, func(p A, v B) T2[A, B] {
		return T2[A, B]{V1: p, V2: v}
	}, parse)
}

// Tuple3 appends a variable segment parsed by parse,
// growing the accumulated T2 into a T3.
func Tuple3[A, B, C any](b Vars[T2[A, B]], parse Parser[C]) Vars[T3[A, B, C]] {
	return Extend(b, func(p T2[A, B], v C) T3[A, B, C] {
		return T3[A, B, C]{V1: p.V1, V2: p.V2, V3: v}
	}, parse)
}

// Tuple4 appends a variable segment parsed by parse,
// growing the accumulated T3 into a T4.
func Tuple4[A, B, C, D any](b Vars[T3[A, B, C]], parse Parser[D]) Vars[T4[A, B, C, D]] {
	return Extend(b, func(p T3[A, B, C], v D) T4[A, B, C, D] {
		return T4[A, B, C, D]{V1: p.V1, V2: p.V2, V3: p.V3, V4: v}
	}, parse)
}

// Tuple5 appends a variable segment parsed by parse,
// growing the accumulated T4 into a T5.
func Tuple5[A, B, C, D, E any](b Vars[T4[A, B, C, D]], parse Parser[E]) Vars[T5[A, B, C, D, E]] {
	return Extend(b, func(p T4[A, B, C, D], v E) T5[A, B, C, D, E] {
		return T5[A, B, C, D, E]{V1: p.V1, V2: p.V2, V3: p.V3, V4: p.V4, V5: v}
	}, parse)
}

// Tuple6 appends a variable segment parsed by parse,
// growing the accumulated T5 into a T6.
func Tuple6[A, B, C, D, E, F any](b Vars[T5[A, B, C, D, E]], parse Parser[F]) Vars[T6[A, B, C, D, E, F]] {
	return Extend(b, func(p T5[A, B, C, D, E], v F) T6[A, B, C, D, E, F] {
		return T6[A, B, C, D, E, F]{V1: p.V1, V2: p.V2, V3: p.V3, V4: p.V4, V5: p.V5, V6: v}
	}, parse)
}

// Tuple7 appends a variable segment parsed by parse,
// growing the accumulated T6 into a T7.
func Tuple7[A, B, C, D, E, F, G any](b Vars[T6[A, B, C, D, E, F]], parse Parser[G]) Vars[T7[A, B, C, D, E, F, G]] {
	return Extend(b, func(p T6[A, B, C, D, E, F], v G) T7[A, B, C, D, E, F, G] {
		return T7[A, B, C, D, E, F, G]{V1: p.V1, V2: p.V2, V3: p.V3, V4: p.V4, V5: p.V5, V6: p.V6, V7: v}
	}, parse)
}

// Tuple8 appends a variable segment parsed by parse,
// growing the accumulated T7 into a T8.
func Tuple8[A, B, C, D, E, F, G, H any](b Vars[T7[A, B, C, D, E, F, G]], parse Parser[H]) Vars[T8[A, B, C, D, E, F, G, H]] {
	return Extend(b, func(p T7[A, B, C, D, E, F, G], v H) T8[A, B, C, D, E, F, G, H] {
		return T8[A, B, C, D, E, F, G, H]{V1: p.V1, V2: p.V2, V3: p.V3, V4: p.V4, V5: p.V5, V6: p.V6, V7: p.V7, V8: v}
	}, parse)
}
