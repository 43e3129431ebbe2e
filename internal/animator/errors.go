package animator

import "errors"

var (
	// ErrFramesRequired indicates saving was requested without a frame count,
	// which would render forever.
	ErrFramesRequired = errors.New("animator: need to set frames when saving")

	// ErrNoUpdate indicates a nil update callback.
	ErrNoUpdate = errors.New("animator: update function is required")

	// ErrUnknownFormat indicates an unsupported video format.
	ErrUnknownFormat = errors.New("animator: unknown video format")

	// ErrEncoderNotFound indicates the external video encoder is not installed.
	ErrEncoderNotFound = errors.New("animator: ffmpeg not found in PATH")
)
