package chain

import (
	"github.com/ib-77/eitherwise/pkg/wise"
	"github.com/ib-77/eitherwise/pkg/wise/either"
)

// Chain wraps a wise.Either to enable fluent chaining
type Chain[E, A any] struct {
	result wise.Either[E, A]
}

// Start creates a new chain from a wise.Either
func Start[E, A any](result wise.Either[E, A]) *Chain[E, A] {
	return &Chain[E, A]{
		result: result,
	}
}

// FromValue creates a new chain from a Right value
func FromValue[E, A any](value A) *Chain[E, A] {
	return &Chain[E, A]{
		result: wise.Right[E](value),
	}
}

// Either returns the underlying wise.Either
func (c *Chain[E, A]) Either() wise.Either[E, A] {
	return c.result
}

// Then chains a function that returns wise.Either[E, B]
func Then[E, A, B any](c *Chain[E, A], onRight func(a A) wise.Either[E, B]) *Chain[E, B] {
	return &Chain[E, B]{
		result: either.FlatMap(c.result, onRight),
	}
}

// ThenTry chains a function that returns (B, error)
func ThenTry[E, A, B any](c *Chain[E, A],
	tryOnRight func(a A) (B, error),
	onError func(err error) E) *Chain[E, B] {
	return &Chain[E, B]{
		result: either.FlatMap(c.result, func(a A) wise.Either[E, B] {
			return either.TryCatch(func() (B, error) {
				return tryOnRight(a)
			}, onError)
		}),
	}
}

// Map chains a pure transformation function
func Map[E, A, B any](c *Chain[E, A], onRight func(a A) B) *Chain[E, B] {
	return &Chain[E, B]{
		result: either.Map(c.result, onRight),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[E, A]) Ensure(onRight func(a A)) *Chain[E, A] {
	return &Chain[E, A]{
		result: either.Tee(c.result, onRight),
	}
}

// Finally collapses the chain into a final value using either.Fold
func Finally[E, A, B any](c *Chain[E, A], onLeft func(l E) B, onRight func(a A) B) B {
	return either.Fold(c.result, onLeft, onRight)
}
