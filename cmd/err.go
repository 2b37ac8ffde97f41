package cmd

import (
	"fmt"
)

// Exit codes of the vineflower commands. Usage(r, 0) is --help.
const (
	ExitUsage  = 2
	ExitInput  = 3
	ExitFailed = 4
	ExitOutput = 5
)

// Error is a failure that ends the program with ExitCode.
type Error struct {
	Err      error
	ExitCode int
}

func Err(code int, err error) *Error {
	return &Error{Err: err, ExitCode: code}
}

func Errorf(code int, format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Errorf(format, args...), ExitCode: code}
}

// Usage builds the error printed for bad arguments (or for --help, with
// code 0 and no message).
func Usage(r Runnable, code int, formatAndArgs ...interface{}) *Error {
	var err error
	if len(formatAndArgs) > 0 {
		format := formatAndArgs[0].(string)
		msg := fmt.Sprintf(format, formatAndArgs[1:]...)
		err = fmt.Errorf("error: %v\n\n%v\n", msg, r.ShortUsage())
	} else {
		err = fmt.Errorf("%v\n\n%v\n", r.ShortUsage(), r.Usage())
	}
	return &Error{Err: err, ExitCode: code}
}

func (c *Error) Error() string {
	return c.Err.Error()
}

func (c *Error) String() string {
	return c.Err.Error()
}
