package colormap

import "errors"

var (
	// ErrUnknownColormap indicates a name that is not a built-in colormap.
	ErrUnknownColormap = errors.New("colormap: unknown colormap")

	// ErrEmptyColormap indicates a listed colormap built from no colors.
	ErrEmptyColormap = errors.New("colormap: need at least one color")

	// ErrInvalidColor indicates a color string that could not be parsed.
	ErrInvalidColor = errors.New("colormap: invalid color")
)
