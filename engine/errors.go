package engine

import "errors"

// ErrInvalidArgument is wrapped by registration errors caused by missing or malformed arguments
var ErrInvalidArgument = errors.New("invalid argument")

// ErrFrozen is wrapped by registration errors on an engine that already started processing
var ErrFrozen = errors.New("engine is frozen")
