package core

// Logger is the app-wide logging contract. Implementations live in
// services/logger; anything passed in args is rendered with %+v so wrapped
// errors keep their stack traces.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
