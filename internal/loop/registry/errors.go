package registry

import "errors"

// ErrNilHandler is returned when a nil handler is registered.
var ErrNilHandler = errors.New("handler cannot be nil")
