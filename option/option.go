package option

// Option holds a value or nothing. It replaces nil pointers for results
// where absence is a valid outcome.
type Option[T any] struct {
	value  T
	isSome bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

// NonEmpty returns Some(values) when the slice holds at least one element
// and None otherwise.
func NonEmpty[T any](values []T) Option[[]T] {
	if len(values) == 0 {
		return None[[]T]()
	}
	return Some(values)
}

func (x Option[T]) IsSome() bool {
	return x.isSome
}

func (x Option[T]) IsNone() bool {
	return !x.isSome
}

func (x Option[T]) Get() T {
	if !x.isSome {
		panic("option is none")
	}
	return x.value
}
