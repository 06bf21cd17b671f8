package core

import (
	"errors"
)

var (
	ErrInvalidConfig         = errors.New("invalid configuration")
	ErrInvalidTexture        = errors.New("renderer returned an invalid texture")
	ErrInvalidShader         = errors.New("renderer returned an invalid shader")
	ErrUnknownShader         = errors.New("unknown builtin shader")
	ErrUnknownBuiltinTexture = errors.New("unknown builtin texture")
	ErrTextureNotFound       = errors.New("texture not found")
	ErrTooManyLights         = errors.New("scene light limit reached")
	ErrSystemNotInitialized  = errors.New("system not initialized")
)
