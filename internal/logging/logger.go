// Package logging decouples the converters and commands from the concrete logging
// framework. Everything takes a Logger; the CLI wires a logrus-backed one and tests
// use MockLogger.
package logging

// Logger is the structured logger used throughout o2y.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a child logger carrying err.
	WithError(err error) Logger
	// WithField returns a child logger carrying one extra field.
	WithField(key string, value interface{}) Logger
	// WithFields returns a child logger carrying the given fields.
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
