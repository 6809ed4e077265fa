package git

import "fmt"

// DecodeError indicates a malformed or unreadable object (commit, tree or
// blob). Every decode failure is fatal to the enclosing call; there are no
// partial results.
type DecodeError struct {
	Msg string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode: %s: %v", e.Msg, e.Err)
	}
	return "decode: " + e.Msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ArgumentError indicates an unparsable caller-supplied value, such as a
// cutoff id or timestamp string.
type ArgumentError struct {
	Msg string
	Err error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("argument: %s: %v", e.Msg, e.Err)
	}
	return "argument: " + e.Msg
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// NotFoundError indicates a missing repository, reference or object.
type NotFoundError struct {
	Msg string
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("not found: %s: %v", e.Msg, e.Err)
	}
	return "not found: " + e.Msg
}

func (e *NotFoundError) Unwrap() error { return e.Err }
