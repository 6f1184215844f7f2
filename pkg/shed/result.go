package shed

import "fmt"

// Result holds either a success value (Ok) or an error (Err). Like
// Option it is an immutable value type: the discriminant decides which
// of the two slots is populated, combinators always build fresh
// results, and == gives structural equality for comparable T and E.
//
// E is a free type parameter; error is the usual instantiation and the
// one the adapters in this package produce.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok builds a successful Result. E comes first so that it can be
// supplied alone while T is inferred from the argument: Ok[error](42).
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err builds a failed Result carrying err: Err[int](err).
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk returns true if the result is Ok.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsOkAnd returns true if the result is Ok and the value inside of it
// matches the predicate.
func (r Result[T, E]) IsOkAnd(f func(T) bool) bool {
	return r.ok && f(r.value)
}

// IsErr returns true if the result is Err.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsErrAnd returns true if the result is Err and the error inside of
// it matches the predicate.
func (r Result[T, E]) IsErrAnd(f func(E) bool) bool {
	return !r.ok && f(r.err)
}

// Ok converts the result into an Option of the success value,
// discarding the error if any.
func (r Result[T, E]) Ok() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return Some(r.value)
}

// Err converts the result into an Option of the error, discarding the
// success value if any.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// Get returns the value, the error and the discriminant in one shot,
// mirroring Go's (T, error) convention. Exactly one of the two payload
// slots is meaningful, as reported by ok.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

// Expect returns the contained Ok value or panics with msg followed by
// the error's representation.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.value
}

// Unwrap returns the contained Ok value.
//
// Unwrap panics on Err with the carried error in the message; callers
// that cannot rule Err out should prefer Get, UnwrapOr or
// UnwrapOrElse.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("called Unwrap on an Err value: %v", r.err))
	}
	return r.value
}

// ExpectErr returns the contained Err value or panics with msg
// followed by the success value's representation.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.value))
	}
	return r.err
}

// UnwrapErr returns the contained Err value, panicking on Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fmt.Sprintf("called UnwrapErr on an Ok value: %v", r.value))
	}
	return r.err
}

// UnwrapOr returns the contained Ok value or the provided default.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the contained Ok value or computes one from the
// error.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if !r.ok {
		return f(r.err)
	}
	return r.value
}

// Inspect calls f with the success value if Ok and returns the result
// unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the error if Err and returns the result
// unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

func (r Result[T, E]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// MapResult applies f to the success value of an Ok; an Err passes
// through and f is never called. MapResult and MapErr are duals:
// for any result exactly one of them is a no-op.
func MapResult[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[E](f(r.value))
}

// MapResultOr applies f to the success value of an Ok, or returns the
// provided default for an Err.
func MapResultOr[T, E, U any](r Result[T, E], def U, f func(T) U) U {
	if !r.ok {
		return def
	}
	return f(r.value)
}

// MapResultOrElse applies f to the success value of an Ok, or computes
// a default from the error for an Err.
func MapResultOrElse[T, E, U any](r Result[T, E], def func(E) U, f func(T) U) U {
	if !r.ok {
		return def(r.err)
	}
	return f(r.value)
}

// MapErr applies f to the error of an Err; an Ok passes through and f
// is never called.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[T](f(r.err))
}

// AndResult returns the error of r if it is Err, otherwise resb.
func AndResult[T, E, U any](r Result[T, E], resb Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return resb
}

// AndThenResult returns the error of r if it is Err, otherwise calls f
// with the success value and returns the result (monadic bind).
func AndThenResult[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return f(r.value)
}

// OrResult returns r if it is Ok, otherwise resb.
func OrResult[T, E, F any](r Result[T, E], resb Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return resb
}

// OrElseResult returns r if it is Ok, otherwise calls f with the error
// and returns the result.
func OrElseResult[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return f(r.err)
}

// FoldResult collapses the result by applying exactly one of the two
// handlers, selected by the discriminant.
func FoldResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if !r.ok {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// ResultContains returns true if the result is an Ok containing x.
func ResultContains[T comparable, E any](r Result[T, E], x T) bool {
	return r.ok && r.value == x
}

// ResultContainsErr returns true if the result is an Err containing e.
func ResultContainsErr[T any, E comparable](r Result[T, E], e E) bool {
	return !r.ok && r.err == e
}

// TransposeResult swaps a Result of an Option into an Option of a
// Result. Ok(None) maps to None, Ok(Some(v)) to Some(Ok(v)) and Err(e)
// to Some(Err(e)).
func TransposeResult[T, E any](r Result[Option[T], E]) Option[Result[T, E]] {
	if !r.ok {
		return Some(Err[T](r.err))
	}
	if !r.value.some {
		return None[Result[T, E]]()
	}
	return Some(Ok[E](r.value.value))
}
