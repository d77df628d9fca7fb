// Package errors defines the failure kinds surfaced by the build and run
// pipeline: invalid options (caught before any engine process runs), engine
// failures (a docker subprocess exited non-zero), and parse failures (the
// engine's output could not be interpreted).
package errors

import "fmt"

const (
	CodeInvalidOptions = "INVALID_OPTIONS"
	CodeEngineFailure  = "ENGINE_FAILURE"
	CodeParseFailure   = "PARSE_FAILURE"
)

// Types ////////////////////////////////////////

type CodedError interface {
	Code() string
}

type codedError struct {
	code string
	msg  string
	err  error
}

func (e *codedError) Error() string {
	return e.msg
}

func (e *codedError) Code() string {
	return e.code
}

func (e *codedError) Unwrap() error {
	return e.err
}

// Error Creators ///////////////////////////////

// The supplied options can never produce a valid build or run.
func InvalidOptions(format string, v ...interface{}) error {
	return &codedError{
		code: CodeInvalidOptions,
		msg:  fmt.Sprintf(format, v...),
	}
}

// A docker subprocess exited non-zero. output is the captured combined
// stream, passed through verbatim so the user sees what docker saw.
func EngineFailure(err error, output string) error {
	msg := fmt.Sprintf("docker exited non-zero: %s", err)
	if output != "" {
		msg += "\n" + output
	}
	return &codedError{
		code: CodeEngineFailure,
		msg:  msg,
		err:  err,
	}
}

// Docker's output could not be parsed into the value we needed.
func ParseFailure(format string, v ...interface{}) error {
	return &codedError{
		code: CodeParseFailure,
		msg:  fmt.Sprintf(format, v...),
	}
}

// Helpers //////////////////////////////////////

func IsInvalidOptions(err error) bool {
	return Code(err) == CodeInvalidOptions
}

func IsEngineFailure(err error) bool {
	return Code(err) == CodeEngineFailure
}

func IsParseFailure(err error) bool {
	return Code(err) == CodeParseFailure
}

// Return the error code, or the empty string
func Code(err error) string {
	if cerr, ok := err.(CodedError); ok {
		return cerr.Code()
	}

	return ""
}
