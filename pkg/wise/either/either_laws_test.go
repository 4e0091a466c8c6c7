package either

import (
	"strconv"
	"testing"

	"pgregory.net/rapid"

	"github.com/ib-77/eitherwise/pkg/wise"
)

func TestLaw_GetNonNilIsRight(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := rapid.String().Draw(t, "e")
		a := rapid.Int().Draw(t, "a")

		if got := Get(e, a); got != wise.Right[string](a) {
			t.Fatalf("expected Right(%d), got %v", a, got)
		}
		if got := Get[string, *int](e, nil); got != wise.Left[string, *int](e) {
			t.Fatalf("expected Left(%q), got %v", e, got)
		}
	})
}

func TestLaw_MapOnLeftIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.String().Draw(t, "msg")
		calls := 0

		in := wise.Left[string, int](msg)
		out := Map(in, func(a int) int { calls++; return a })

		if calls != 0 {
			t.Fatalf("f called %d times on Left", calls)
		}
		if out != in {
			t.Fatalf("expected %v, got %v", in, out)
		}
	})
}

func TestLaw_MapComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-1_000_000, 1_000_000).Draw(t, "n")
		k := rapid.IntRange(-100, 100).Draw(t, "k")

		f := func(a int) int { return a * k }
		g := strconv.Itoa
		in := wise.Right[string](n)

		if Map2(in, f, g) != Map(Map(in, f), g) {
			t.Fatalf("Map2 differs from nested Map for n=%d k=%d", n, k)
		}
	})
}

func TestLaw_FlatMapComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")
		in := wise.Right[string](n)

		if FlatMap2(in, half, half) != FlatMap(FlatMap(in, half), half) {
			t.Fatalf("FlatMap2 differs from nested FlatMap for n=%d", n)
		}
		if FlatMapAll(in, half, half, half) != FlatMap3(in, half, half, half) {
			t.Fatalf("FlatMapAll differs from FlatMap3 for n=%d", n)
		}
	})
}

func TestLaw_FlatMapOddIsLeft(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-1_000_000, 1_000_000).Draw(t, "n")*2 + 1

		if got := FlatMap(wise.Right[string](n), half); got != wise.Left[string, int]("Odd") {
			t.Fatalf("expected Left(Odd) for %d, got %v", n, got)
		}
	})
}

func TestLaw_FoldTotality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		isRight := rapid.Bool().Draw(t, "isRight")
		n := rapid.Int().Draw(t, "n")

		in := wise.Left[int, int](n)
		if isRight {
			in = wise.Right[int](n)
		}

		calls := 0
		Fold(in,
			func(int) struct{} { calls++; return struct{}{} },
			func(int) struct{} { calls++; return struct{}{} })

		if calls != 1 {
			t.Fatalf("expected exactly one branch call, got %d", calls)
		}
	})
}

func TestLaw_FromOptionRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")

		if got := ToOption(FromOption(func() string { return "none" }, wise.Some(n))); got != wise.Some(n) {
			t.Fatalf("expected Some(%d), got %v", n, got)
		}
	})
}
