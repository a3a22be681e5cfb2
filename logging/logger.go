package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	sdk "github.com/enginebridge/sdk"
	"github.com/pkg/errors"
)

// Untagged replaces an empty tag on emission.
const Untagged = "Untagged"

// Config controls where a Logger sends entries.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used by the default backend.
	HostCall HostCall

	// Backend replaces the waPC host backend entirely.
	Backend Backend

	// Output receives console lines before the backend is ready.
	// Defaults to os.Stdout.
	Output io.Writer

	// ErrorOutput receives stack traces of attached errors before the
	// backend is ready. Defaults to os.Stderr.
	ErrorOutput io.Writer
}

// Logger owns a threshold, a default tag and the one-way switch from console
// output to the host backend. It is safe for concurrent use.
type Logger struct {
	backend Backend
	stdout  io.Writer
	stderr  io.Writer

	mu          sync.Mutex
	threshold   Level
	defaultTag  string
	initialized bool
	probing     bool
}

// New creates a Logger with an INFO threshold. With no Backend configured it
// talks to the host through waPC.
func New(cfg Config) (*Logger, error) {
	backend := cfg.Backend
	if backend == nil {
		backend = NewHostBackend(cfg.SDKConfig, cfg.HostCall)
	}

	stdout := cfg.Output
	if stdout == nil {
		stdout = os.Stdout
	}

	stderr := cfg.ErrorOutput
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Logger{
		backend:   backend,
		stdout:    stdout,
		stderr:    stderr,
		threshold: LevelInfo,
	}, nil
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// SetLevel changes the threshold. If the backend has just become ready, the
// new threshold is what gets copied to it; once copied, later changes stay local.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.threshold = level
	l.mu.Unlock()

	l.ready()
}

// DefaultTag returns the tag stored by SetDefaultTag.
func (l *Logger) DefaultTag() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.defaultTag
}

// SetDefaultTag stores a tag. Emission does not read it: empty tags still
// become Untagged.
func (l *Logger) SetDefaultTag(tag string) {
	l.mu.Lock()
	l.defaultTag = tag
	l.mu.Unlock()
}

// Out emits one entry at level. args, when present, are applied to message
// with fmt.Sprintf. err, when non-nil, is attached to the entry.
func (l *Logger) Out(level Level, tag, message string, err error, args ...any) {
	if level < l.Level() {
		return
	}

	if !level.emittable() {
		msg := "Invalid log level:" + strconv.Itoa(int(level))
		l.Out(LevelError, tag, msg, errors.New(msg))
		return
	}

	if tag == "" {
		tag = Untagged
	}

	message = format(message, args)

	if l.ready() {
		l.forward(level, tag, message, err)
		return
	}

	l.console(level, tag, message, err)
}

// ready runs the lazy switch to the backend and reports whether it happened.
// The backend is called without l.mu held, so a Backend may log through this
// Logger. Entries logged while a probe is in flight go to the console.
func (l *Logger) ready() bool {
	l.mu.Lock()
	if l.initialized {
		l.mu.Unlock()
		return true
	}
	if l.probing {
		l.mu.Unlock()
		return false
	}
	l.probing = true
	l.mu.Unlock()

	ok := l.backend.Ready()

	l.mu.Lock()
	l.probing = false
	if !ok || l.initialized {
		l.mu.Unlock()
		return ok
	}
	l.initialized = true
	threshold := l.threshold
	l.mu.Unlock()

	l.backend.SetLevel(threshold)
	return true
}

func (l *Logger) forward(level Level, tag, message string, err error) {
	switch level {
	case LevelDebug:
		l.backend.Debug(tag, message, err)
	case LevelInfo:
		l.backend.Info(tag, message, err)
	case LevelError:
		l.backend.Error(tag, message, err)
	}
}

func (l *Logger) console(level Level, tag, message string, err error) {
	fmt.Fprintf(l.stdout, "%s: %s\t%s\n", level, tag, message)
	if err != nil {
		fmt.Fprintf(l.stderr, "%+v\n", err)
	}
}
