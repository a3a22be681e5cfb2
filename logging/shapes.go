package logging

import "fmt"

// Debug logs message at DEBUG.
func (l *Logger) Debug(tag, message string) {
	l.Out(LevelDebug, tag, message, nil)
}

// DebugErr logs message at DEBUG with err attached.
func (l *Logger) DebugErr(tag, message string, err error) {
	l.Out(LevelDebug, tag, message, err)
}

// Debugf logs a formatted message at DEBUG.
func (l *Logger) Debugf(tag, format string, args ...any) {
	l.Out(LevelDebug, tag, format, nil, args...)
}

// DebugValue logs the default format of v at DEBUG, untagged.
func (l *Logger) DebugValue(v any) {
	l.Out(LevelDebug, "", fmt.Sprint(v), nil)
}

// Info logs message at INFO.
func (l *Logger) Info(tag, message string) {
	l.Out(LevelInfo, tag, message, nil)
}

// InfoErr logs message at INFO with err attached.
func (l *Logger) InfoErr(tag, message string, err error) {
	l.Out(LevelInfo, tag, message, err)
}

// Infof logs a formatted message at INFO.
func (l *Logger) Infof(tag, format string, args ...any) {
	l.Out(LevelInfo, tag, format, nil, args...)
}

// InfoValue logs the default format of v at INFO, untagged.
func (l *Logger) InfoValue(v any) {
	l.Out(LevelInfo, "", fmt.Sprint(v), nil)
}

// Error logs message at ERROR.
func (l *Logger) Error(tag, message string) {
	l.Out(LevelError, tag, message, nil)
}

// ErrorErr logs message at ERROR with err attached.
func (l *Logger) ErrorErr(tag, message string, err error) {
	l.Out(LevelError, tag, message, err)
}

// Errorf logs a formatted message at ERROR.
func (l *Logger) Errorf(tag, format string, args ...any) {
	l.Out(LevelError, tag, format, nil, args...)
}

// ErrorValue logs the default format of v at ERROR, untagged.
func (l *Logger) ErrorValue(v any) {
	l.Out(LevelError, "", fmt.Sprint(v), nil)
}
