package option

import "github.com/ib-77/eitherwise/pkg/wise"

// Get returns None when v is nil (see wise.IsNil) and Some(v) otherwise.
func Get[A any](v A) wise.Option[A] {
	if wise.IsNil(v) {
		return wise.None[A]()
	}
	return wise.Some(v)
}

// FromPtr dereferences p into Some, or returns None for a nil pointer.
func FromPtr[A any](p *A) wise.Option[A] {
	if p == nil {
		return wise.None[A]()
	}
	return wise.Some(*p)
}

func From[A any](g wise.Getter[A]) wise.Option[A] {
	if v, ok := g.Get(); ok {
		return wise.Some(v)
	}
	return wise.None[A]()
}

func IsSome[A any](o wise.Option[A]) bool {
	return o.IsSome()
}

func Fold[A, B any](o wise.Option[A], onNone func() B, onSome func(a A) B) B {
	if a, ok := o.Get(); ok {
		return onSome(a)
	}
	return onNone()
}

func GetOrElse[A any](o wise.Option[A], def A) A {
	if a, ok := o.Get(); ok {
		return a
	}
	return def
}

// Map applies f to the held value. A nil result collapses to None.
func Map[A, B any](o wise.Option[A], f func(a A) B) wise.Option[B] {
	if a, ok := o.Get(); ok {
		return Get(f(a))
	}
	return wise.None[B]()
}

func Map2[A, B, C any](o wise.Option[A],
	f1 func(a A) B,
	f2 func(b B) C) wise.Option[C] {
	return Map(Map(o, f1), f2)
}

func Map3[A, B, C, D any](o wise.Option[A],
	f1 func(a A) B,
	f2 func(b B) C,
	f3 func(c C) D) wise.Option[D] {
	return Map(Map2(o, f1, f2), f3)
}

func Map4[A, B, C, D, F any](o wise.Option[A],
	f1 func(a A) B,
	f2 func(b B) C,
	f3 func(c C) D,
	f4 func(d D) F) wise.Option[F] {
	return Map(Map3(o, f1, f2, f3), f4)
}

func Map5[A, B, C, D, F, G any](o wise.Option[A],
	f1 func(a A) B,
	f2 func(b B) C,
	f3 func(c C) D,
	f4 func(d D) F,
	f5 func(f F) G) wise.Option[G] {
	return Map(Map4(o, f1, f2, f3, f4), f5)
}

// MapAll pipes the value through fns left to right and stops at the first
// nil result; the remaining functions are not called.
func MapAll[A any](o wise.Option[A], fns ...func(a A) A) wise.Option[A] {
	for _, f := range fns {
		if o.IsNone() {
			return o
		}
		o = Map(o, f)
	}
	return o
}

func FlatMap[A, B any](o wise.Option[A], f func(a A) wise.Option[B]) wise.Option[B] {
	if a, ok := o.Get(); ok {
		return f(a)
	}
	return wise.None[B]()
}

// Or returns the first Some among o and alternatives, or None.
func Or[A any](o wise.Option[A], alternatives ...wise.Option[A]) wise.Option[A] {
	if o.IsSome() {
		return o
	}
	for _, alt := range alternatives {
		if alt.IsSome() {
			return alt
		}
	}
	return o
}

func Tee[A any](o wise.Option[A], onSome func(a A)) wise.Option[A] {
	if a, ok := o.Get(); ok {
		onSome(a)
	}
	return o
}
