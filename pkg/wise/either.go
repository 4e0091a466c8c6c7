package wise

import "fmt"

type Either[E, A any] struct {
	left    E
	right   A
	isRight bool
}

func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{
		left:    e,
		isRight: false,
	}
}

func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{
		right:   a,
		isRight: true,
	}
}

func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// Get returns the Right value and true, or the zero A and false for a Left.
func (e Either[E, A]) Get() (A, bool) {
	return e.right, e.isRight
}

// GetLeft returns the Left value and true, or the zero E and false for a Right.
func (e Either[E, A]) GetLeft() (E, bool) {
	return e.left, !e.isRight
}

func (e Either[E, A]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// LeftFrom re-types a Left to carry a different Right type, keeping its
// Left value. Calling it on a Right yields a zero Left.
func LeftFrom[E, A, B any](from Either[E, A]) Either[E, B] {
	return Either[E, B]{
		left:    from.left,
		isRight: false,
	}
}
