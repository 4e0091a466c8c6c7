package async

import (
	"context"

	"github.com/ib-77/eitherwise/pkg/wise"
	"github.com/ib-77/eitherwise/pkg/wise/either"
)

type Deferred[E, A any] = Future[wise.Either[E, A]]

func Left[E, A any](e E) *Deferred[E, A] {
	return Resolved(wise.Left[E, A](e))
}

func Right[E, A any](a A) *Deferred[E, A] {
	return Resolved(wise.Right[E](a))
}

func FromEither[E, A any](e wise.Either[E, A]) *Deferred[E, A] {
	return Resolved(e)
}

// Get is the deferred form of either.Get.
func Get[E, A any](err E, v A) *Deferred[E, A] {
	return Resolved(either.Get(err, v))
}

func Map[E, A, B any](d *Deferred[E, A], f func(a A) B) *Deferred[E, B] {
	return Go(func() wise.Either[E, B] {
		return either.Map(d.Await(), f)
	})
}

func Map2[E, A, B, C any](d *Deferred[E, A],
	f1 func(a A) B,
	f2 func(b B) C) *Deferred[E, C] {
	return Go(func() wise.Either[E, C] {
		return either.Map2(d.Await(), f1, f2)
	})
}

func Map3[E, A, B, C, D any](d *Deferred[E, A],
	f1 func(a A) B,
	f2 func(b B) C,
	f3 func(c C) D) *Deferred[E, D] {
	return Go(func() wise.Either[E, D] {
		return either.Map3(d.Await(), f1, f2, f3)
	})
}

func Map4[E, A, B, C, D, F any](d *Deferred[E, A],
	f1 func(a A) B,
	f2 func(b B) C,
	f3 func(c C) D,
	f4 func(d D) F) *Deferred[E, F] {
	return Go(func() wise.Either[E, F] {
		return either.Map4(d.Await(), f1, f2, f3, f4)
	})
}

func Map5[E, A, B, C, D, F, G any](d *Deferred[E, A],
	f1 func(a A) B,
	f2 func(b B) C,
	f3 func(c C) D,
	f4 func(d D) F,
	f5 func(f F) G) *Deferred[E, G] {
	return Go(func() wise.Either[E, G] {
		return either.Map5(d.Await(), f1, f2, f3, f4, f5)
	})
}

func MapAll[E, A any](d *Deferred[E, A], fns ...func(a A) A) *Deferred[E, A] {
	return Go(func() wise.Either[E, A] {
		return either.MapAll(d.Await(), fns...)
	})
}

func awaiting[E, A, B any](f func(a A) *Deferred[E, B]) func(a A) wise.Either[E, B] {
	return func(a A) wise.Either[E, B] {
		return f(a).Await()
	}
}

// FlatMap awaits d and, for a Right, awaits f's result. A Left from either
// one settles the returned Deferred.
func FlatMap[E, A, B any](d *Deferred[E, A], f func(a A) *Deferred[E, B]) *Deferred[E, B] {
	return Go(func() wise.Either[E, B] {
		return either.FlatMap(d.Await(), awaiting(f))
	})
}

func FlatMap2[E, A, B, C any](d *Deferred[E, A],
	f1 func(a A) *Deferred[E, B],
	f2 func(b B) *Deferred[E, C]) *Deferred[E, C] {
	return Go(func() wise.Either[E, C] {
		return either.FlatMap2(d.Await(), awaiting(f1), awaiting(f2))
	})
}

func FlatMap3[E, A, B, C, D any](d *Deferred[E, A],
	f1 func(a A) *Deferred[E, B],
	f2 func(b B) *Deferred[E, C],
	f3 func(c C) *Deferred[E, D]) *Deferred[E, D] {
	return Go(func() wise.Either[E, D] {
		return either.FlatMap3(d.Await(), awaiting(f1), awaiting(f2), awaiting(f3))
	})
}

func FlatMap4[E, A, B, C, D, F any](d *Deferred[E, A],
	f1 func(a A) *Deferred[E, B],
	f2 func(b B) *Deferred[E, C],
	f3 func(c C) *Deferred[E, D],
	f4 func(d D) *Deferred[E, F]) *Deferred[E, F] {
	return Go(func() wise.Either[E, F] {
		return either.FlatMap4(d.Await(), awaiting(f1), awaiting(f2), awaiting(f3), awaiting(f4))
	})
}

func FlatMap5[E, A, B, C, D, F, G any](d *Deferred[E, A],
	f1 func(a A) *Deferred[E, B],
	f2 func(b B) *Deferred[E, C],
	f3 func(c C) *Deferred[E, D],
	f4 func(d D) *Deferred[E, F],
	f5 func(f F) *Deferred[E, G]) *Deferred[E, G] {
	return Go(func() wise.Either[E, G] {
		return either.FlatMap5(d.Await(),
			awaiting(f1), awaiting(f2), awaiting(f3), awaiting(f4), awaiting(f5))
	})
}

func FlatMapAll[E, A any](d *Deferred[E, A], fns ...func(a A) *Deferred[E, A]) *Deferred[E, A] {
	return Go(func() wise.Either[E, A] {
		steps := make([]func(a A) wise.Either[E, A], len(fns))
		for i, f := range fns {
			steps[i] = awaiting(f)
		}
		return either.FlatMapAll(d.Await(), steps...)
	})
}

func Fold[E, A, B any](d *Deferred[E, A], onLeft func(l E) B, onRight func(r A) B) *Future[B] {
	return Go(func() B {
		return either.Fold(d.Await(), onLeft, onRight)
	})
}

// TryCatch runs f(ctx) on a new goroutine. The result is never rejected by
// f: a returned error or a panic settles it to Left(onError(err)). ctx is
// only passed through to f.
func TryCatch[E, A any](ctx context.Context,
	f func(ctx context.Context) (A, error),
	onError func(err error) E) *Deferred[E, A] {
	return Go(func() wise.Either[E, A] {
		return either.TryCatch(func() (A, error) {
			return f(ctx)
		}, onError)
	})
}
