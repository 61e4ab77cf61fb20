package artwork

import "errors"

var (
	// ErrUnknownKind indicates an artwork kind name that is not recognized.
	ErrUnknownKind = errors.New("unknown artwork kind")

	// ErrInvalidKind indicates an artwork kind that does not apply to the media.
	ErrInvalidKind = errors.New("artwork kind not valid for media")

	// ErrInvalidAddress indicates a malformed season/episode address.
	ErrInvalidAddress = errors.New("invalid season/episode address")

	// ErrMissingTitle indicates a record without a title.
	ErrMissingTitle = errors.New("record has no title")

	// ErrMissingLocator indicates a record with neither a URL nor a file path.
	ErrMissingLocator = errors.New("record has no content locator")

	// ErrMissingChecksum indicates a file record without a checksum.
	ErrMissingChecksum = errors.New("file record has no checksum")

	// ErrUnknownMedia indicates a record whose media type is not supported.
	ErrUnknownMedia = errors.New("unknown media type")
)
