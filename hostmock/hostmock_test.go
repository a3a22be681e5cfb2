package hostmock

import (
	"bytes"
	"errors"
	"testing"
)

var ErrMockError = errors.New("Mock error")

func TestHostMock(t *testing.T) {
	tt := []struct {
		name       string
		cfg        Config
		payload    []byte
		namespace  string
		capability string
		function   string
		want       []byte
		wantErr    error
	}{
		{
			name: "Matching call returns response",
			cfg: Config{
				ExpectedNamespace:  "engine",
				ExpectedCapability: "logging",
				ExpectedFunction:   "info",
				PayloadValidator:   func(_ []byte) error { return nil },
				Response:           func() []byte { return []byte("ok") },
			},
			namespace:  "engine",
			capability: "logging",
			function:   "info",
			payload:    []byte("hello"),
			want:       []byte("ok"),
		},
		{
			name: "Fail with custom error",
			cfg: Config{
				Error:    ErrMockError,
				Fail:     true,
				Response: func() []byte { return []byte("ok") },
			},
			namespace:  "engine",
			capability: "logging",
			function:   "info",
			wantErr:    ErrMockError,
		},
		{
			name:       "Default fail error",
			cfg:        Config{Fail: true},
			namespace:  "engine",
			capability: "logging",
			function:   "ready",
			wantErr:    ErrOperationFailed,
		},
		{
			name:       "Wildcards accept anything",
			cfg:        Config{},
			namespace:  "any",
			capability: "thing",
			function:   "goes",
		},
		{
			name: "Per function response wins",
			cfg: Config{
				Response: func() []byte { return []byte("default") },
				Responses: map[string]func() []byte{
					"ready": func() []byte { return []byte("ready") },
				},
			},
			namespace:  "engine",
			capability: "logging",
			function:   "ready",
			want:       []byte("ready"),
		},
		{
			name: "Invalid payload",
			cfg: Config{
				PayloadValidator: func(payload []byte) error {
					if string(payload) != "valid" {
						return ErrMockError
					}
					return nil
				},
				Response: func() []byte { return []byte("ok") },
			},
			namespace:  "engine",
			capability: "logging",
			function:   "error",
			payload:    []byte("invalid"),
			wantErr:    ErrMockError,
		},
		{
			name:       "Unexpected namespace",
			cfg:        Config{ExpectedNamespace: "expected"},
			namespace:  "engine",
			capability: "logging",
			function:   "info",
			wantErr:    ErrUnexpectedNamespace,
		},
		{
			name:       "Unexpected capability",
			cfg:        Config{ExpectedCapability: "logging"},
			namespace:  "engine",
			capability: "kv",
			function:   "info",
			wantErr:    ErrUnexpectedCapability,
		},
		{
			name:       "Unexpected function",
			cfg:        Config{ExpectedFunction: "debug"},
			namespace:  "engine",
			capability: "logging",
			function:   "info",
			wantErr:    ErrUnexpectedFunction,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("New Mock instance creation failed: %v", err)
			}

			got, err := mock.HostCall(tc.namespace, tc.capability, tc.function, tc.payload)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Mock call returned unexpected error: got %v, want %v", err, tc.wantErr)
			}

			if !bytes.Equal(got, tc.want) {
				t.Fatalf("Mock call returned unexpected response: got %v, want %v", got, tc.want)
			}

			if mock.CallCount("") != 1 {
				t.Fatalf("expected one recorded call, got %d", mock.CallCount(""))
			}
		})
	}
}

func TestCallLog(t *testing.T) {
	t.Parallel()

	mock, _ := New(Config{})

	payload := []byte("msg")
	_, _ = mock.HostCall("engine", "logging", "ready", nil)
	_, _ = mock.HostCall("engine", "logging", "info", payload)
	_, _ = mock.HostCall("engine", "logging", "info", []byte("again"))

	// Mutating the caller's slice must not alter the log.
	payload[0] = 'X'

	calls := mock.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	if string(calls[1].Payload) != "msg" {
		t.Fatalf("recorded payload changed: %q", calls[1].Payload)
	}
	if calls[0].Function != "ready" || calls[0].Capability != "logging" || calls[0].Namespace != "engine" {
		t.Fatalf("unexpected first call: %+v", calls[0])
	}

	if got := mock.CallCount("info"); got != 2 {
		t.Fatalf("expected 2 info calls, got %d", got)
	}
	if got := mock.CallCount("error"); got != 0 {
		t.Fatalf("expected 0 error calls, got %d", got)
	}

	mock.Reset()
	if got := mock.CallCount(""); got != 0 {
		t.Fatalf("expected empty log after Reset, got %d", got)
	}
}
