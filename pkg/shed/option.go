package shed

import "fmt"

// Option holds either a present value (Some) or nothing (None).
// The zero value is None. Options are immutable value types: every
// combinator builds a fresh Option and never touches its input, so
// they compare with == when T is comparable and can be shared freely.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from Go's comma-ok idiom (map lookups,
// type assertions, channel receives).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr treats a nil pointer as None and dereferences otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome returns true if the option is a Some value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsSomeAnd returns true if the option is a Some and the value inside
// of it matches the predicate.
func (o Option[T]) IsSomeAnd(f func(T) bool) bool {
	return o.some && f(o.value)
}

// IsNone returns true if the option is a None value.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and whether it is present, so an
// Option destructures the same way as a map lookup. Exactly one of
// the Some and None branches applies.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Expect returns the contained Some value or panics with msg.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.value
}

// Unwrap returns the contained Some value.
//
// Unwrap panics on None; callers that cannot rule None out should
// prefer Get, UnwrapOr or UnwrapOrElse.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("called Unwrap on a None value")
	}
	return o.value
}

// UnwrapOr returns the contained Some value or the provided default.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the contained Some value or computes one from f.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.value
}

// Filter returns the option unchanged when it is a Some whose value
// matches the predicate, None otherwise.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Inspect calls f with the contained value if Some and returns the
// option unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.some {
		f(o.value)
	}
	return o
}

// Or returns the option if it is Some, otherwise optb.
func (o Option[T]) Or(optb Option[T]) Option[T] {
	if o.some {
		return o
	}
	return optb
}

// OrElse returns the option if it is Some, otherwise calls f.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Xor returns whichever of the two options is Some when exactly one
// of them is, None otherwise.
func (o Option[T]) Xor(optb Option[T]) Option[T] {
	if o.some == optb.some {
		return None[T]()
	}
	if o.some {
		return o
	}
	return optb
}

// ToPtr returns a pointer to a copy of the contained value, nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	value := o.value
	return &value
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Pair carries the two values produced by ZipOption and consumed by
// UnzipOption.
type Pair[T, U any] struct {
	First  T
	Second U
}

// The type-changing combinators live at package level: a Go method
// cannot introduce new type parameters.

// MapOption applies f to the contained value of a Some; a None passes
// through and f is never called.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// MapOptionOr applies f to the contained value of a Some, or returns
// the provided default for a None.
func MapOptionOr[T, U any](o Option[T], def U, f func(T) U) U {
	if !o.some {
		return def
	}
	return f(o.value)
}

// MapOptionOrElse applies f to the contained value of a Some, or
// computes a default from def for a None.
func MapOptionOrElse[T, U any](o Option[T], def func() U, f func(T) U) U {
	if !o.some {
		return def()
	}
	return f(o.value)
}

// AndOption returns None if o is None, otherwise optb.
func AndOption[T, U any](o Option[T], optb Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return optb
}

// AndThenOption returns None if o is None, otherwise calls f with the
// contained value and returns the result (monadic bind).
func AndThenOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

// OkOr converts a Some into an Ok and a None into an Err carrying err.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if !o.some {
		return Err[T](err)
	}
	return Ok[E](o.value)
}

// OkOrElse converts a Some into an Ok and a None into an Err carrying
// the error computed by err.
func OkOrElse[T, E any](o Option[T], err func() E) Result[T, E] {
	if !o.some {
		return Err[T](err())
	}
	return Ok[E](o.value)
}

// ZipOption pairs the values of two Somes; None if either is None.
func ZipOption[T, U any](o Option[T], other Option[U]) Option[Pair[T, U]] {
	if !o.some || !other.some {
		return None[Pair[T, U]]()
	}
	return Some(Pair[T, U]{First: o.value, Second: other.value})
}

// ZipOptionWith combines the values of two Somes through f; None if
// either is None.
func ZipOptionWith[T, U, R any](o Option[T], other Option[U], f func(T, U) R) Option[R] {
	if !o.some || !other.some {
		return None[R]()
	}
	return Some(f(o.value, other.value))
}

// UnzipOption splits an Option of a Pair into two Options.
func UnzipOption[T, U any](o Option[Pair[T, U]]) (Option[T], Option[U]) {
	if !o.some {
		return None[T](), None[U]()
	}
	return Some(o.value.First), Some(o.value.Second)
}

// FlattenOption removes one level of nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}

// TransposeOption swaps an Option of a Result into a Result of an
// Option. None maps to Ok(None), Some(Ok(v)) to Ok(Some(v)) and
// Some(Err(e)) to Err(e).
func TransposeOption[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	if !o.some {
		return Ok[E](None[T]())
	}
	if !o.value.ok {
		return Err[Option[T]](o.value.err)
	}
	return Ok[E](Some(o.value.value))
}

// FoldOption collapses the option by applying exactly one of the two
// handlers, selected by the discriminant.
func FoldOption[T, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if !o.some {
		return onNone()
	}
	return onSome(o.value)
}

// OptionContains returns true if the option is a Some containing x.
func OptionContains[T comparable](o Option[T], x T) bool {
	return o.some && o.value == x
}
