package sdk

import (
	"errors"
	"testing"

	"github.com/enginebridge/sdk/platform"
)

type testCase struct {
	name         string
	namespace    string
	platform     platform.Identifier
	handler      func(b []byte) ([]byte, error)
	wantErr      error
	wantNs       string
	wantPlatform platform.Type
}

func TestNew(t *testing.T) {
	testCases := []testCase{
		{
			name:         "Valid Config",
			namespace:    "valid",
			platform:     platform.NewAndroid(struct{}{}),
			handler:      func(b []byte) ([]byte, error) { return b, nil },
			wantNs:       "valid",
			wantPlatform: platform.Android,
		},
		{
			name:         "Empty Namespace",
			namespace:    "",
			platform:     platform.WebHost{},
			handler:      func(b []byte) ([]byte, error) { return b, nil },
			wantNs:       DefaultNamespace,
			wantPlatform: platform.Web,
		},
		{
			name:         "Default Platform",
			namespace:    "default",
			handler:      func(b []byte) ([]byte, error) { return b, nil },
			wantNs:       "default",
			wantPlatform: platform.Host(nil).PlatformType(),
		},
		{
			name:      "Nil Handler",
			namespace: "invalid",
			handler:   nil,
			wantErr:   ErrHandlerNil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sdk, err := New(Config{Namespace: tc.namespace, Handler: tc.handler, Platform: tc.platform})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err != nil {
				return
			}

			t.Run("Check Namespace", func(t *testing.T) {
				if sdk.Config().Namespace != tc.wantNs {
					t.Errorf("expected namespace %q, got %q", tc.wantNs, sdk.Config().Namespace)
				}
			})

			t.Run("Check Platform", func(t *testing.T) {
				if sdk.PlatformType() != tc.wantPlatform {
					t.Errorf("expected platform %v, got %v", tc.wantPlatform, sdk.PlatformType())
				}
			})
		})
	}
}

func TestSDK_Behavior(t *testing.T) {
	h1 := func(b []byte) ([]byte, error) { return b, nil }
	h2 := func(b []byte) ([]byte, error) { return nil, errors.New("boom") }

	s1, err := New(Config{Namespace: "one", Handler: h1})
	if err != nil {
		t.Fatalf("first New returned error: %v", err)
	}
	s2, err := New(Config{Namespace: "two", Handler: h2, Platform: platform.IOSHost{}})
	if err != nil {
		t.Fatalf("second New returned error: %v", err)
	}

	t.Run("Config_Immutability", func(t *testing.T) {
		got := s1.Config()
		got.Namespace = "mutated"
		got.Platform = platform.WebHost{}
		if s1.Config().Namespace != "one" {
			t.Fatalf("expected SDK namespace to remain 'one', got %q", s1.Config().Namespace)
		}
		if s1.PlatformType() != platform.Host(nil).PlatformType() {
			t.Fatalf("platform changed through a config snapshot: %v", s1.PlatformType())
		}
	})

	t.Run("InstancesIsolation", func(t *testing.T) {
		if s1.Config().Namespace != "one" || s2.Config().Namespace != "two" {
			t.Fatalf("expected namespaces 'one' and 'two', got %q and %q", s1.Config().Namespace, s2.Config().Namespace)
		}
		if s2.PlatformType() != platform.IOS {
			t.Fatalf("expected second instance on IOS, got %v", s2.PlatformType())
		}
	})
}
