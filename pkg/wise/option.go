package wise

import "fmt"

type Option[A any] struct {
	value  A
	isSome bool
}

// Some wraps a as present. No nil check is done; use option.Get for that.
func Some[A any](a A) Option[A] {
	return Option[A]{
		value:  a,
		isSome: true,
	}
}

func None[A any]() Option[A] {
	return Option[A]{}
}

func (o Option[A]) IsSome() bool {
	return o.isSome
}

func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// Get returns the held value and true for Some, the zero value and false for None.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.isSome
}

func (o Option[A]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
