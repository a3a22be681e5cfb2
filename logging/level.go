package logging

import "strconv"

// Level is a message severity and, on a Logger, the minimum severity emitted.
type Level int

const (
	// LevelVerbose is named but never accepted by Out.
	LevelVerbose Level = iota
	LevelDebug
	LevelInfo
	LevelError
)

var levelNames = [...]string{
	LevelVerbose: "VERBOSE",
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelError:   "ERROR",
}

// String returns the console name of the level, e.g. "INFO".
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// emittable reports whether Out accepts the level.
func (l Level) emittable() bool {
	return l >= LevelDebug && l <= LevelError
}
