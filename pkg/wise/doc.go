// Package wise defines the two value types the rest of the module is built
// on: Option[A] for a value that may be absent and Either[E, A] for an
// outcome that is either a failure (Left) or a success (Right).
//
// Highlights:
// - Some/None: construct Option[A] (the zero Option is None)
// - Left/Right: construct Either[E, A] (the zero Either is a zero Left)
// - Get/GetLeft: read a variant's payload together with a presence flag
// - IsNil: the nil check used by the safe constructors in option and either
// - PanicError: a recovered panic carried as an error value
//
// Combinators live in the sub-packages option, either, async and chain.
package wise
