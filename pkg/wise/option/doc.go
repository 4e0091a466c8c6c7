// Package option contains the combinators over wise.Option[A].
//
// Highlights:
// - Get/FromPtr/From: safe constructors that never wrap nil in Some
// - IsSome: variant test
// - Fold: eliminate an Option into a single value
// - GetOrElse: read the value or fall back to a default value
// - Map/Map2..Map5/MapAll: pipe the value through functions, collapsing to
//   None as soon as a function returns nil
// - FlatMap: chain functions that return an Option
// - Or: pick the first present Option
// - Tee: side effect on Some without changing the Option
package option
