// Package apps holds helpers shared by the runnable front-ends.
package apps

// ArgumentError signals bad command-line input; the shell prints usage
// instead of a stack trace when it sees one.
type ArgumentError struct {
	msg string
}

func NewArgumentError(msg string) *ArgumentError {
	return &ArgumentError{msg}
}

func (err *ArgumentError) Error() string {
	return err.msg
}
