package sink

import "errors"

var (
	// ErrPathTraversal indicates an asset path outside the asset root.
	ErrPathTraversal = errors.New("path escapes asset root")
	// ErrNoFolder indicates a target whose asset folder cannot be derived.
	ErrNoFolder = errors.New("cannot derive asset folder")
	// ErrNotInLibrary indicates a staged target handed to the remote sink.
	ErrNotInLibrary = errors.New("target is not in the library")
	// ErrFetch indicates a failed download of remote content.
	ErrFetch = errors.New("error fetching URL")
)
