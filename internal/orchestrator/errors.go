package orchestrator

import "errors"

var (
	// ErrNoAssetDir indicates a filesystem run without a configured asset directory.
	ErrNoAssetDir = errors.New("asset directory not configured")
	// ErrUnknownSink indicates an unsupported sink name.
	ErrUnknownSink = errors.New("unknown sink")
)
