// Package either contains the synchronous combinators over
// wise.Either[E, A]. Right is the success channel; every combinator passes
// a Left through untouched and without calling the supplied functions.
//
// Highlights:
// - IsLeft/IsRight: variant tests
// - Get/FromOption: build an Either from a possibly-nil value or an Option
// - Map/Map2..Map5/MapAll: transform the Right value (no nil collapsing)
// - FlatMap/FlatMap2..FlatMap5/FlatMapAll: chain functions returning Either
// - Fold: reduce to a concrete value via left/right handlers
// - GetOrElse: read the Right value or derive one from the Left
// - TryCatch: call a function (A, error) and turn an error or panic into Left
// - MapLeft/Swap/ToOption/Or: reshape and select
// - Tee/DoubleTee: side-effect helpers
package either
