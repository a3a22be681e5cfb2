package logging

import (
	"errors"
	"fmt"

	sdk "github.com/enginebridge/sdk"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	wapc "github.com/wapc/wapc-guest-tinygo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	capabilityName = "logging"
	fnReady        = "ready"
	fnLevel        = "level"
	fnDebug        = "debug"
	fnInfo         = "info"
	fnError        = "error"

	hostStatusOK = int32(200)
)

// Backend is the host logging sink a Logger forwards to once it is ready.
type Backend interface {
	// Ready reports whether the backend can accept entries. A Logger asks
	// until the first true answer and never again after it.
	Ready() bool

	// SetLevel sets the backend's own minimum severity. A Logger calls it
	// once, right after the first true Ready.
	SetLevel(level Level)

	// Debug, Info and Error emit one entry. err may be nil.
	Debug(tag, message string, err error)
	Info(tag, message string, err error)
	Error(tag, message string, err error)
}

// HostCall defines the waPC host function signature used by the host backend.
type HostCall func(string, string, string, []byte) ([]byte, error)

// HostBackend implements Backend over waPC host calls to the logging capability.
type HostBackend struct {
	runtime  sdk.RuntimeConfig
	hostCall HostCall
}

// Ensure HostBackend satisfies the Backend interface at compile time.
var _ Backend = (*HostBackend)(nil)

// NewHostBackend creates a host backend with namespace defaults and optional host-call override.
func NewHostBackend(runtime sdk.RuntimeConfig, hostCall HostCall) *HostBackend {
	if runtime.Namespace == "" {
		runtime.Namespace = sdk.DefaultNamespace
	}

	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &HostBackend{runtime: runtime, hostCall: hostCall}
}

// Probe asks the host whether its logging backend is up. It returns nil when
// the host answers with an OK status.
func (b *HostBackend) Probe() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(sdk.ErrHostCall, fmt.Errorf("host call panicked: %v", r))
		}
	}()

	resp, callErr := b.hostCall(b.runtime.Namespace, capabilityName, fnReady, nil)
	if callErr != nil {
		return errors.Join(sdk.ErrHostCall, callErr)
	}

	var status sdkproto.Status
	if unmarshalErr := status.UnmarshalVT(resp); unmarshalErr != nil {
		return errors.Join(sdk.ErrHostResponseInvalid, unmarshalErr)
	}

	if code := status.GetCode(); code != hostStatusOK {
		detail := fmt.Sprintf("host status %d", code)
		if msg := status.GetStatus(); msg != "" {
			detail = fmt.Sprintf("%s: %s", detail, msg)
		}
		return errors.Join(sdk.ErrHostError, errors.New(detail))
	}

	return nil
}

// Ready reports whether Probe succeeds.
func (b *HostBackend) Ready() bool { return b.Probe() == nil }

// SetLevel sends the threshold to the host as a best-effort call.
func (b *HostBackend) SetLevel(level Level) {
	b.send(fnLevel, map[string]any{
		"level": level.String(),
		"value": float64(level),
	})
}

// Debug sends a DEBUG entry to the host.
func (b *HostBackend) Debug(tag, message string, err error) {
	b.emit(fnDebug, tag, message, err)
}

// Info sends an INFO entry to the host.
func (b *HostBackend) Info(tag, message string, err error) {
	b.emit(fnInfo, tag, message, err)
}

// Error sends an ERROR entry to the host.
func (b *HostBackend) Error(tag, message string, err error) {
	b.emit(fnError, tag, message, err)
}

// emit sends one entry. The attached error travels with its stack trace and
// is rendered by the host.
func (b *HostBackend) emit(fn, tag, message string, err error) {
	fields := map[string]any{
		"tag":     tag,
		"message": message,
	}
	if err != nil {
		fields["error"] = fmt.Sprintf("%+v", err)
	}
	b.send(fn, fields)
}

func (b *HostBackend) send(fn string, fields map[string]any) {
	defer func() { _ = recover() }()

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return
	}

	payload, err := proto.Marshal(s)
	if err != nil {
		return
	}

	_, _ = b.hostCall(b.runtime.Namespace, capabilityName, fn, payload)
}
