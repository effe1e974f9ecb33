package contracts

import "time"

// LogLevel represents the severity level for logging.
type LogLevel int

const (
	// DebugLevel logs every emitted MIDI message.
	DebugLevel LogLevel = iota + 1
	// InfoLevel logs the start and end of each note and device lifecycle events.
	InfoLevel
	// WarnLevel logs cleanup problems that did not abort the request.
	WarnLevel
	// ErrorLevel logs failed requests.
	ErrorLevel
	// FatalLevel logs and terminates the process.
	FatalLevel
)

// ParseLogLevel maps a level name ("debug", "info", "warn", "error", "fatal") to a LogLevel.
func ParseLogLevel(name string) (LogLevel, bool) {
	switch name {
	case "debug":
		return DebugLevel, true
	case "info", "":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "fatal":
		return FatalLevel, true
	}
	return 0, false
}

// LogDestination specifies where the log messages should be directed.
type LogDestination string

const (
	// ConsoleLog directs log messages to standard error.
	ConsoleLog LogDestination = "console"
	// FileLog directs log messages to a file.
	FileLog LogDestination = "file"
)

// Field is a typed key/value pair attached to a log entry.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Time(key string, val time.Time) Field
	Int64(key string, val int64) Field
	Error(key string, val error) Field
	Uint64(key string, val uint64) Field
	Uint8(key string, val uint8) Field
	Duration(key string, val time.Duration) Field
}

// Logger provides leveled, structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Field() Field

	SetLevel(level LogLevel)
	SetDestination(dest LogDestination, filePath ...string)
}
