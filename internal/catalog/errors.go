package catalog

import (
	"errors"
	"fmt"
)

// ErrBadDescriptor is the BadDescriptor kind of: the catalog file is
// missing required fields, malformed, or names an unknown ctype.
var ErrBadDescriptor = errors.New("catalog: bad descriptor")

func wrapDescriptorErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadDescriptor, fmt.Sprintf(format, args...))
}
