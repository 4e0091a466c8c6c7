package async

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/eitherwise/pkg/wise"
)

type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	value     T
	rejection *wise.PanicError
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Resolved returns a Future already settled with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.value = v
	close(f.done)
	return f
}

// Go runs fn on a new goroutine and settles the returned Future with its
// result. A panic in fn rejects the Future.
func Go[T any](fn func() T) *Future[T] {
	f := newFuture[T]()
	go f.settle(fn)
	return f
}

func (f *Future[T]) settle(fn func() T) {
	defer close(f.done)
	defer func() {
		if r := recover(); r != nil {
			f.rejection = wise.Recovered(r)
		}
	}()

	f.value = fn()
}

// Await blocks until f is settled. A rejected Future panics with its
// *wise.PanicError.
func (f *Future[T]) Await() T {
	<-f.done
	if f.rejection != nil {
		panic(f.rejection)
	}
	return f.value
}

// Done is closed once f is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) IsSettled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Err returns the rejection of a settled Future, nil otherwise.
func (f *Future[T]) Err() error {
	if !f.IsSettled() || f.rejection == nil {
		return nil
	}
	return f.rejection
}

func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

// CreatedAt time creation (UTC)
func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}
