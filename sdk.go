package sdk

import (
	"fmt"

	"github.com/enginebridge/sdk/platform"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "engine"

var (
	// ErrHandlerNil is returned when the provided function handler is nil.
	ErrHandlerNil = fmt.Errorf("function handler cannot be nil")
)

// Config provides configuration options for SDK initialization.
type Config struct {
	// Namespace controls the namespace used for host callbacks.
	// If empty, DefaultNamespace is used.
	Namespace string

	// Handler is the function registered as the guest entry point.
	Handler func([]byte) ([]byte, error)

	// Platform identifies the host environment. If nil, platform.Host(nil)
	// picks the variant for the build target.
	Platform platform.Identifier
}

// RuntimeConfig carries configuration shared by capability clients such as logging.
type RuntimeConfig struct {
	// Namespace is the namespace used to scope host interactions.
	Namespace string

	// Platform identifies the host environment the guest runs in.
	Platform platform.Identifier
}

// SDK represents the initialized runtime with a registered waPC handler.
type SDK struct {
	// runtime holds the current runtime configuration snapshot.
	runtime RuntimeConfig

	// handler is the function registered as the guest entry point.
	handler func([]byte) ([]byte, error)
}

// New initializes the SDK and registers the handler with waPC.
func New(config Config) (*SDK, error) {
	// Validate Handler is not empty
	if config.Handler == nil {
		return nil, ErrHandlerNil
	}

	// Create runtime configuration with defaults
	cfg := RuntimeConfig{Namespace: DefaultNamespace, Platform: config.Platform}

	// Override defaults with provided configuration
	if config.Namespace != "" {
		cfg.Namespace = config.Namespace
	}

	// Resolve the host platform from the build target when not provided
	if cfg.Platform == nil {
		cfg.Platform = platform.Host(nil)
	}

	// Create SDK instance
	sdk := &SDK{
		runtime: cfg,
		handler: config.Handler,
	}

	// Register the provided handler with waPC
	wapc.RegisterFunction("handler", sdk.handler)

	return sdk, nil
}

// Config returns the current runtime configuration snapshot.
func (s *SDK) Config() RuntimeConfig { return s.runtime }

// PlatformType reports the host environment the SDK was initialized for.
func (s *SDK) PlatformType() platform.Type {
	return s.runtime.Platform.PlatformType()
}
