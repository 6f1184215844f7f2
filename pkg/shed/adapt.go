package shed

import "errors"

// Adapters bridging ordinary fallible Go code into containers. Each
// adapter takes a kind set: the errors it is allowed to intercept,
// matched with errors.Is. An empty set intercepts every error; a
// non-empty set narrows the adapter to exactly those kinds, and
// anything outside the set is re-raised as a panic rather than
// silently swallowed.

func matchesKind(err error, kinds []error) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// ToResult converts an error-returning function into one returning a
// Result. A nil error yields Ok, an error in the kind set yields Err
// carrying it, and an undeclared error panics.
func ToResult[A, T any](fn func(A) (T, error), kinds ...error) func(A) Result[T, error] {
	return func(a A) Result[T, error] {
		v, err := fn(a)
		if err == nil {
			return Ok[error](v)
		}
		if matchesKind(err, kinds) {
			return Err[T](err)
		}
		panic(err)
	}
}

// ToOption converts an error-returning function into one returning an
// Option, discarding errors in the kind set. Undeclared errors panic.
func ToOption[A, T any](fn func(A) (T, error), kinds ...error) func(A) Option[T] {
	return func(a A) Option[T] {
		v, err := fn(a)
		if err == nil {
			return Some(v)
		}
		if matchesKind(err, kinds) {
			return None[T]()
		}
		panic(err)
	}
}

// CatchResult runs fn, capturing a panic whose value is an error in
// the kind set as an Err. Any other panic — a non-error value, an
// undeclared error kind, or an in-flight shortcut transfer — continues
// unwinding.
func CatchResult[T any](fn func() T, kinds ...error) (out Result[T, error]) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if err, ok := recoveredError(rec); ok && matchesKind(err, kinds) {
			out = Err[T](err)
			return
		}
		panic(rec)
	}()
	return Ok[error](fn())
}

// CatchOption runs fn, capturing a panic whose value is an error in
// the kind set as None.
func CatchOption[T any](fn func() T, kinds ...error) (out Option[T]) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if err, ok := recoveredError(rec); ok && matchesKind(err, kinds) {
			out = None[T]()
			return
		}
		panic(rec)
	}()
	return Some(fn())
}

// recoveredError reports whether a recovered panic value is a plain
// error the adapters may intercept. Shortcut signals implement error
// too but belong to their boundary, never to an adapter.
func recoveredError(rec any) (error, bool) {
	if _, ok := rec.(shortcutSignal); ok {
		return nil, false
	}
	err, ok := rec.(error)
	return err, ok
}
