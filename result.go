package swagval

// Unit is the payload of a result that carries no value.
type Unit struct{}

// Result is either Passed with a value or Failed with a non-empty, ordered
// list of violations.
type Result[T any] struct {
	value T
	errs  Errors
}

// Pass wraps v as a successful result.
func Pass[T any](v T) Result[T] { return Result[T]{value: v} }

// OK is the successful unit result.
func OK() Result[Unit] { return Result[Unit]{} }

// Failed builds a failed result. It panics when errs is empty because a
// failure without violations cannot be represented.
func Failed[T any](errs ...ValidationError) Result[T] {
	if len(errs) == 0 {
		panic("swagval: Failed requires at least one error")
	}
	return Result[T]{errs: append(Errors(nil), errs...)}
}

// Fail builds a single-violation unit failure.
func Fail(path, code, msg string) Result[Unit] {
	return Failed[Unit](ValidationError{Path: path, Code: code, Message: msg})
}

// Passed reports whether r is a success.
func (r Result[T]) Passed() bool { return len(r.errs) == 0 }

// Value returns the carried value; it is the zero value for failures.
func (r Result[T]) Value() T { return r.value }

// Errors returns the accumulated violations (nil when passed).
func (r Result[T]) Errors() Errors { return r.errs }

// Err returns nil when passed, or the violations as an error.
func (r Result[T]) Err() error {
	if r.Passed() {
		return nil
	}
	return r.errs
}

// Bind sequences f after r. A failed r is returned unchanged and f is never
// evaluated.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.Passed() {
		return Result[U]{errs: r.errs}
	}
	return f(r.value)
}

// Both combines two independent results. Failures concatenate left then
// right; a single failure is returned unchanged.
func Both(a, b Result[Unit]) Result[Unit] {
	switch {
	case a.Passed():
		return b
	case b.Passed():
		return a
	}
	errs := make(Errors, 0, len(a.errs)+len(b.errs))
	errs = append(errs, a.errs...)
	errs = append(errs, b.errs...)
	return Result[Unit]{errs: errs}
}

// All folds rs with Both from left to right.
func All(rs ...Result[Unit]) Result[Unit] {
	out := OK()
	for _, r := range rs {
		out = Both(out, r)
	}
	return out
}

// Apply applies a wrapped function to a wrapped argument, accumulating the
// failures of both sides like Both.
func Apply[A, B any](rf Result[func(A) B], ra Result[A]) Result[B] {
	if rf.Passed() && ra.Passed() {
		return Pass(rf.value(ra.value))
	}
	errs := make(Errors, 0, len(rf.errs)+len(ra.errs))
	errs = append(errs, rf.errs...)
	errs = append(errs, ra.errs...)
	return Result[B]{errs: errs}
}

// OrElse returns a when it passed, otherwise the result of alt.
func OrElse[T any](a Result[T], alt func() Result[T]) Result[T] {
	if a.Passed() {
		return a
	}
	return alt()
}
