// Package result holds the success/failure container returned by every
// fallible gateway operation for expected business failures.
package result

// Result carries either a value or a failure message, never both.
//
// The zero value is a successful Result holding the zero T.
type Result[T any] struct {
	value  T
	err    string
	failed bool
}

// New builds a Result from optional parts. Passing both a value and a
// message is a programming error and panics.
func New[T any](value *T, message *string) Result[T] {
	if value != nil && message != nil {
		panic("result: cannot have both a value and an error")
	}
	if message != nil {
		return Failure[T](*message)
	}
	var v T
	if value != nil {
		v = *value
	}
	return Success(v)
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Failure[T any](message string) Result[T] {
	return Result[T]{err: message, failed: true}
}

// IsSuccess reports whether no error message is present.
func (r Result[T]) IsSuccess() bool {
	return !r.failed
}

// Value returns the success value, or the zero T on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Error returns the failure message, or "" on success.
func (r Result[T]) Error() string {
	return r.err
}

// Unwrap returns both arms; exactly one is meaningful.
func (r Result[T]) Unwrap() (T, string) {
	return r.value, r.err
}
