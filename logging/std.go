package logging

import "sync/atomic"

var std atomic.Pointer[Logger]

func init() {
	l, _ := New(Config{})
	std.Store(l)
}

// Default returns the process-wide Logger used by the package-level functions.
func Default() *Logger { return std.Load() }

// SetDefault replaces the process-wide Logger. A nil Logger is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		std.Store(l)
	}
}

// SetLevel sets the threshold of the process-wide Logger.
func SetLevel(level Level) { Default().SetLevel(level) }

// GetLevel returns the threshold of the process-wide Logger.
func GetLevel() Level { return Default().Level() }

// SetDefaultTag stores a tag on the process-wide Logger.
func SetDefaultTag(tag string) { Default().SetDefaultTag(tag) }

// Out emits one entry through the process-wide Logger.
func Out(level Level, tag, message string, err error, args ...any) {
	Default().Out(level, tag, message, err, args...)
}

// Debug logs message at DEBUG through the process-wide Logger.
func Debug(tag, message string) { Default().Debug(tag, message) }

// DebugErr logs message at DEBUG with err attached through the process-wide Logger.
func DebugErr(tag, message string, err error) {
	Default().DebugErr(tag, message, err)
}

// Debugf logs a formatted message at DEBUG through the process-wide Logger.
func Debugf(tag, format string, args ...any) {
	Default().Debugf(tag, format, args...)
}

// DebugValue logs the default format of v at DEBUG through the process-wide Logger.
func DebugValue(v any) { Default().DebugValue(v) }

// Info logs message at INFO through the process-wide Logger.
func Info(tag, message string) { Default().Info(tag, message) }

// InfoErr logs message at INFO with err attached through the process-wide Logger.
func InfoErr(tag, message string, err error) {
	Default().InfoErr(tag, message, err)
}

// Infof logs a formatted message at INFO through the process-wide Logger.
func Infof(tag, format string, args ...any) {
	Default().Infof(tag, format, args...)
}

// InfoValue logs the default format of v at INFO through the process-wide Logger.
func InfoValue(v any) { Default().InfoValue(v) }

// Error logs message at ERROR through the process-wide Logger.
func Error(tag, message string) { Default().Error(tag, message) }

// ErrorErr logs message at ERROR with err attached through the process-wide Logger.
func ErrorErr(tag, message string, err error) {
	Default().ErrorErr(tag, message, err)
}

// Errorf logs a formatted message at ERROR through the process-wide Logger.
func Errorf(tag, format string, args ...any) {
	Default().Errorf(tag, format, args...)
}

// ErrorValue logs the default format of v at ERROR through the process-wide Logger.
func ErrorValue(v any) { Default().ErrorValue(v) }
