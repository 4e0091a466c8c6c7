// Package chain provides a fluent wrapper around wise.Either[E, A] for
// building synchronous chains of any length with the either primitives.
//
// Go has no variadic generics, so the fixed-arity helpers in package either
// stop at five steps. Chain composes one step at a time instead, each step
// free to change the Right type.
//
// Key operations:
// - Start/FromValue: begin a chain from an Either or a Right value
// - Then: continue with a function returning Either[E, B]
// - ThenTry: call a function (B, error) and map its error to a Left
// - Map: transform the Right value (A -> B)
// - Ensure: run side effects on Right without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
