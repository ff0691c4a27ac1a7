package route

func identity[T any](v T) T { return v }

// String appends a variable segment accepting any value.
func String(b Builder) Vars[string] { return Variable(b, identity[string], ParseString) }

// Int appends a variable segment accepting integers, as parsed by ParseInt.
func Int(b Builder) Vars[int] { return Variable(b, identity[int], ParseInt) }

// StringAs appends a variable segment accepting any value, projected into an R.
func StringAs[R any](b Builder, project func(string) R) Vars[R] {
	return Variable(b, project, ParseString)
}

// IntAs appends a variable segment accepting integers, projected into an R.
func IntAs[R any](b Builder, project func(int) R) Vars[R] {
	return Variable(b, project, ParseInt)
}

// ExtendString appends another variable segment accepting any value,
// folded with the value accumulated so far into an R.
func ExtendString[P, R any](b Vars[P], extend func(P, string) R) Vars[R] {
	return Extend(b, extend, ParseString)
}

// ExtendInt appends another variable segment accepting integers,
// folded with the value accumulated so far into an R.
func ExtendInt[P, R any](b Vars[P], extend func(P, int) R) Vars[R] {
	return Extend(b, extend, ParseInt)
}
