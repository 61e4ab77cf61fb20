package plex

import "errors"

var (
	// ErrUnavailable indicates the server could not be reached or rejected the token.
	ErrUnavailable = errors.New("plex server unavailable")

	// ErrLibraryNotFound indicates a configured library name that the server does not have.
	ErrLibraryNotFound = errors.New("library not found")

	// ErrNoMedia indicates an item without any media file.
	ErrNoMedia = errors.New("no media file")

	// ErrUnsupportedType indicates an item type the server cannot edit.
	ErrUnsupportedType = errors.New("unsupported item type")
)
