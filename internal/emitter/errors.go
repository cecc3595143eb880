package emitter

import "errors"

// ErrHandlerMissing is CodegenHandlerMissing: a catalog entry is
// used in typed-data-segment mode but its descriptor has no Codegen.Handler
// template. Raised lazily at emission time, not at catalog-load time, since
// whether typed mode is in use isn't known until the emitter runs .
var ErrHandlerMissing = errors.New("emitter: container handler template missing")
