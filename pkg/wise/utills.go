package wise

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
)

// IsNil reports whether v is nil or a nil pointer, map, slice, chan, func
// or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// PanicError carries a recovered panic value and the stack at recovery.
type PanicError struct {
	Value any
	Stack []byte
}

func Recovered(v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		return pe
	}
	return &PanicError{
		Value: v,
		Stack: debug.Stack(),
	}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

func IsPanicError(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// Catch calls f and turns a panic into a *PanicError return.
func Catch[A any](f func() (A, error)) (a A, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Recovered(r)
		}
	}()

	return f()
}
