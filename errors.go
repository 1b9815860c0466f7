package randtok

import (
	"errors"
)

var (
	// ErrEmptyCharset is returned when a generator is constructed from a
	// charset with no usable symbols. Picking an index in [0, 0) is
	// meaningless, so construction fails fast instead.
	ErrEmptyCharset = errors.New("randtok: charset can not be empty")
)
