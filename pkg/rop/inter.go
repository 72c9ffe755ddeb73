package rop

// ValueProvider is the read side shared by Result and the chain wrappers.
type ValueProvider[T any] interface {
	// Get returns the value, or the zero value when absent
	Get() T
	// IsPresent returns true if a value is present
	IsPresent() bool
}

// Outcome extends ValueProvider with the error side of the tri-state
type Outcome[T any] interface {
	ValueProvider[T]
	// Error returns the captured error, if any
	Error() error
	// IsError returns true if an error was captured
	IsError() bool
	// IsEmpty returns true if no value is present, either way
	IsEmpty() bool
}

var _ Outcome[int] = Result[int]{}
