// Package async lifts the either combinators onto deferred values. A
// Future[T] is settled once by a goroutine and can then be awaited any
// number of times; Deferred[E, A] is a Future holding a wise.Either[E, A].
//
// Every combinator starts one goroutine that awaits its input and runs its
// steps strictly in order, left to right. Nothing runs in parallel and
// nothing is cancelled.
//
// Highlights:
// - Resolved/Go: settle a Future from a value or from a function
// - Left/Right/Get/FromEither: already settled Deferred values
// - Map/Map2..Map5/MapAll: transform the Right value after awaiting
// - FlatMap/FlatMap2..FlatMap5/FlatMapAll: await a sequence of deferred steps
// - Fold: reduce to a Future[B] via left/right handlers
// - TryCatch: run a fallible function and settle to Left on error or panic
//
// A panic inside a combinator's function rejects the returned Future;
// Await re-panics with the recovered *wise.PanicError. Only TryCatch turns
// failures into a Left.
package async
