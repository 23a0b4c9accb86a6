package padconfig

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrUnknownFormat is returned for a file extension or format name
	// that is not YAML, TOML or JSON.
	ErrUnknownFormat = errors.New("unknown config format")

	// ErrInvalidPadChar is returned when pad_char is not a single ASCII character.
	ErrInvalidPadChar = errors.New("pad_char must be a single ASCII character")

	// ErrInvalidAlign is returned for an align value other than "left" or "right".
	ErrInvalidAlign = errors.New("align must be \"left\" or \"right\"")
)
