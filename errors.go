package walker

import (
	"errors"
	"fmt"
)

// Startup failures. Every one of them is fatal: NewScene and Run return them
// wrapped with context, and callers test for them with errors.Is.
var (
	ErrWindowCreation = errors.New("walker: window creation failed")
	ErrContextInit    = errors.New("walker: graphics context initialization failed")
	ErrShaderCompile  = errors.New("walker: shader compile failed")
	ErrShaderLink     = errors.New("walker: shader link failed")
	ErrTextureDecode  = errors.New("walker: texture decode failed")

	// ErrUnsupportedChannels is returned for images that decode but whose
	// channel layout is not gray, RGB or RGBA. It wraps ErrTextureDecode.
	ErrUnsupportedChannels = fmt.Errorf("%w: unsupported channel layout", ErrTextureDecode)
)
