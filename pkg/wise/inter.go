package wise

// Getter is implemented by containers that may hold a success value.
// Option[A] and the Right side of Either[E, A] both satisfy it.
type Getter[A any] interface {
	// Get returns the value and true if present
	Get() (A, bool)
}
