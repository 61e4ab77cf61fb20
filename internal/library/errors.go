package library

import "errors"

// ErrNotFound indicates the requested entity doesn't exist on the server.
var ErrNotFound = errors.New("not found")
