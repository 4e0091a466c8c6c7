package option

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ib-77/eitherwise/pkg/wise"
)

func TestOptionLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Get of a non-nil value is Some of that value", prop.ForAll(
		func(n int) bool {
			v, ok := Get(n).Get()
			return ok && v == n
		},
		gen.Int(),
	))

	properties.Property("Get of a non-nil pointer keeps the pointer", prop.ForAll(
		func(s string) bool {
			p := &s
			v, ok := Get(p).Get()
			return ok && v == p
		},
		gen.AnyString(),
	))

	properties.Property("Map2 equals Map composed with Map", prop.ForAll(
		func(n int, k int) bool {
			f := func(a int) int { return a + k }
			g := strconv.Itoa
			return Map2(wise.Some(n), f, g) == Map(Map(wise.Some(n), f), g)
		},
		gen.Int(),
		gen.IntRange(-1000, 1000),
	))

	properties.Property("MapAll equals nested Map calls", prop.ForAll(
		func(n int) bool {
			inc := func(a int) int { return a + 1 }
			dbl := func(a int) int { return a * 2 }
			return MapAll(wise.Some(n), inc, dbl, inc) == Map(Map(Map(wise.Some(n), inc), dbl), inc)
		},
		gen.IntRange(-100000, 100000),
	))

	properties.Property("Map on None is None", prop.ForAll(
		func(n int) bool {
			return Map(wise.None[int](), func(a int) int { return a + n }).IsNone()
		},
		gen.Int(),
	))

	properties.Property("GetOrElse on Some ignores the default", prop.ForAll(
		func(n, d int) bool {
			return GetOrElse(wise.Some(n), d) == n && GetOrElse(wise.None[int](), d) == d
		},
		gen.Int(),
		gen.Int(),
	))

	properties.Property("FlatMap with Some is Map", prop.ForAll(
		func(n int) bool {
			f := func(a int) int { return a - 3 }
			return FlatMap(wise.Some(n), func(a int) wise.Option[int] { return wise.Some(f(a)) }) ==
				Map(wise.Some(n), f)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
