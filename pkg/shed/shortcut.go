package shed

import "fmt"

// The shortcut protocol emulates early-return error propagation: inside
// a computation wrapped by ResultShortcut or OptionShortcut, Q on a
// negative container unwinds directly to the wrapper, which returns the
// container as the computation's result. The transfer is a panic with a
// private signal type carrying nothing beyond the propagated payload,
// so a boundary that is not responsible for it can always re-panic
// without losing information.

// shortcutSignal tags the signal types so other recover sites (the
// Catch adapters) can re-raise any in-flight transfer without knowing
// its boundary type.
type shortcutSignal interface {
	shortcutSignal()
}

type resultSignal[E any] struct {
	err E
}

func (resultSignal[E]) shortcutSignal() {}

func (s resultSignal[E]) Error() string {
	return fmt.Sprintf("Q on an Err value escaped its ResultShortcut boundary: %v", s.err)
}

type optionSignal struct{}

func (optionSignal) shortcutSignal() {}

func (optionSignal) Error() string {
	return "Q on a None value escaped its OptionShortcut boundary"
}

// Q returns the contained Ok value, or transfers control to the
// enclosing ResultShortcut boundary when the result is an Err. Calling
// Q outside any boundary is a programming error and crashes with the
// signal's diagnostic.
func (r Result[T, E]) Q() T {
	if !r.ok {
		panic(resultSignal[E]{err: r.err})
	}
	return r.value
}

// Q returns the contained Some value, or transfers control to the
// enclosing OptionShortcut boundary when the option is None.
func (o Option[T]) Q() T {
	if !o.some {
		panic(optionSignal{})
	}
	return o.value
}

// ResultShortcut marks fn as shortcut-aware: a Q taken on an Err inside
// it makes that Err the return value of the wrapped computation,
// skipping the rest of fn. The signal is matched on the boundary's
// error type, so it carries nil error payloads intact; a signal typed
// for an enclosing boundary is re-raised, as is any unrelated panic.
func ResultShortcut[T, E any](fn func() Result[T, E]) func() Result[T, E] {
	return func() (out Result[T, E]) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if sig, ok := rec.(resultSignal[E]); ok {
				out = Err[T](sig.err)
				return
			}
			panic(rec)
		}()
		return fn()
	}
}

// OptionShortcut marks fn as shortcut-aware: a Q taken on a None inside
// it makes None the return value of the wrapped computation.
func OptionShortcut[T any](fn func() Option[T]) func() Option[T] {
	return func() (out Option[T]) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if _, ok := rec.(optionSignal); ok {
				out = None[T]()
				return
			}
			panic(rec)
		}()
		return fn()
	}
}
