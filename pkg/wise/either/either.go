package either

import (
	"github.com/ib-77/eitherwise/pkg/wise"
	"github.com/ib-77/eitherwise/pkg/wise/option"
)

func IsLeft[E, A any](e wise.Either[E, A]) bool {
	return e.IsLeft()
}

func IsRight[E, A any](e wise.Either[E, A]) bool {
	return e.IsRight()
}

// Get returns Right(v), or Left(err) when v is nil.
func Get[E, A any](err E, v A) wise.Either[E, A] {
	if wise.IsNil(v) {
		return wise.Left[E, A](err)
	}
	return wise.Right[E](v)
}

// FromOption converts Some(a) to Right(a). onNone is only called for None.
func FromOption[E, A any](onNone func() E, o wise.Option[A]) wise.Either[E, A] {
	if a, ok := o.Get(); ok {
		return wise.Right[E](a)
	}
	return wise.Left[E, A](onNone())
}

func ToOption[E, A any](e wise.Either[E, A]) wise.Option[A] {
	return option.From[A](e)
}

func Map[E, A, B any](e wise.Either[E, A], f func(a A) B) wise.Either[E, B] {
	if a, ok := e.Get(); ok {
		return wise.Right[E](f(a))
	}
	return wise.LeftFrom[E, A, B](e)
}

func Map2[E, A, B, C any](e wise.Either[E, A],
	f1 func(a A) B,
	f2 func(b B) C) wise.Either[E, C] {
	return Map(Map(e, f1), f2)
}

func Map3[E, A, B, C, D any](e wise.Either[E, A],
	f1 func(a A) B,
	f2 func(b B) C,
	f3 func(c C) D) wise.Either[E, D] {
	return Map(Map2(e, f1, f2), f3)
}

func Map4[E, A, B, C, D, F any](e wise.Either[E, A],
	f1 func(a A) B,
	f2 func(b B) C,
	f3 func(c C) D,
	f4 func(d D) F) wise.Either[E, F] {
	return Map(Map3(e, f1, f2, f3), f4)
}

func Map5[E, A, B, C, D, F, G any](e wise.Either[E, A],
	f1 func(a A) B,
	f2 func(b B) C,
	f3 func(c C) D,
	f4 func(d D) F,
	f5 func(f F) G) wise.Either[E, G] {
	return Map(Map4(e, f1, f2, f3, f4), f5)
}

// MapAll pipes the Right value through fns left to right. A Left input is
// returned as is.
func MapAll[E, A any](e wise.Either[E, A], fns ...func(a A) A) wise.Either[E, A] {
	a, ok := e.Get()
	if !ok {
		return e
	}

	for _, f := range fns {
		a = f(a)
	}
	return wise.Right[E](a)
}

func FlatMap[E, A, B any](e wise.Either[E, A], f func(a A) wise.Either[E, B]) wise.Either[E, B] {
	if a, ok := e.Get(); ok {
		return f(a)
	}
	return wise.LeftFrom[E, A, B](e)
}

func FlatMap2[E, A, B, C any](e wise.Either[E, A],
	f1 func(a A) wise.Either[E, B],
	f2 func(b B) wise.Either[E, C]) wise.Either[E, C] {
	return FlatMap(FlatMap(e, f1), f2)
}

func FlatMap3[E, A, B, C, D any](e wise.Either[E, A],
	f1 func(a A) wise.Either[E, B],
	f2 func(b B) wise.Either[E, C],
	f3 func(c C) wise.Either[E, D]) wise.Either[E, D] {
	return FlatMap(FlatMap2(e, f1, f2), f3)
}

func FlatMap4[E, A, B, C, D, F any](e wise.Either[E, A],
	f1 func(a A) wise.Either[E, B],
	f2 func(b B) wise.Either[E, C],
	f3 func(c C) wise.Either[E, D],
	f4 func(d D) wise.Either[E, F]) wise.Either[E, F] {
	return FlatMap(FlatMap3(e, f1, f2, f3), f4)
}

func FlatMap5[E, A, B, C, D, F, G any](e wise.Either[E, A],
	f1 func(a A) wise.Either[E, B],
	f2 func(b B) wise.Either[E, C],
	f3 func(c C) wise.Either[E, D],
	f4 func(d D) wise.Either[E, F],
	f5 func(f F) wise.Either[E, G]) wise.Either[E, G] {
	return FlatMap(FlatMap4(e, f1, f2, f3, f4), f5)
}

// FlatMapAll runs fns in order and returns the first Left produced, or the
// last Right.
func FlatMapAll[E, A any](e wise.Either[E, A], fns ...func(a A) wise.Either[E, A]) wise.Either[E, A] {
	for _, f := range fns {
		a, ok := e.Get()
		if !ok {
			return e
		}
		e = f(a)
	}
	return e
}

func Fold[E, A, B any](e wise.Either[E, A], onLeft func(l E) B, onRight func(r A) B) B {
	if a, ok := e.Get(); ok {
		return onRight(a)
	}
	l, _ := e.GetLeft()
	return onLeft(l)
}

// GetOrElse returns the Right value or the result of f applied to the Left.
func GetOrElse[E, A any](e wise.Either[E, A], f func(l E) A) A {
	if a, ok := e.Get(); ok {
		return a
	}
	l, _ := e.GetLeft()
	return f(l)
}

// TryCatch calls f once. A returned error or a panic is handed to onError
// and its result becomes the Left; panics arrive as *wise.PanicError.
func TryCatch[E, A any](f func() (A, error), onError func(err error) E) wise.Either[E, A] {
	a, err := wise.Catch(f)
	if err != nil {
		return wise.Left[E, A](onError(err))
	}
	return wise.Right[E](a)
}

func MapLeft[E, A, F any](e wise.Either[E, A], f func(l E) F) wise.Either[F, A] {
	if a, ok := e.Get(); ok {
		return wise.Right[F](a)
	}
	l, _ := e.GetLeft()
	return wise.Left[F, A](f(l))
}

func Swap[E, A any](e wise.Either[E, A]) wise.Either[A, E] {
	if a, ok := e.Get(); ok {
		return wise.Left[A, E](a)
	}
	l, _ := e.GetLeft()
	return wise.Right[A](l)
}

// Or returns the first Right among e and alternatives. If there is none, e
// is returned.
func Or[E, A any](e wise.Either[E, A], alternatives ...wise.Either[E, A]) wise.Either[E, A] {
	if e.IsRight() {
		return e
	}
	for _, alt := range alternatives {
		if alt.IsRight() {
			return alt
		}
	}
	return e
}

func Tee[E, A any](e wise.Either[E, A], onRight func(r A)) wise.Either[E, A] {
	if a, ok := e.Get(); ok {
		onRight(a)
	}
	return e
}

func DoubleTee[E, A any](e wise.Either[E, A], onRight func(r A), onLeft func(l E)) wise.Either[E, A] {
	if a, ok := e.Get(); ok {
		onRight(a)
	} else {
		l, _ := e.GetLeft()
		onLeft(l)
	}
	return e
}
