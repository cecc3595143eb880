package emitter

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/google/uuid"
)

// hash64 builds the wrapper's exported symbol name
// (getSize_<hash64(type_name)>) from the type name. FNV-1a is used rather
// than a third-party hash: nothing else at hand addresses a stable content
// hash of a string for a generated symbol name (uuid and otel solve
// different problems), so the standard library's own answer fits here.
func hash64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// newCookie generates the wrapper's header cookie from a random UUID
// truncated to 64 bits.
func newCookie() uint64 {
	id := uuid.New()
	return binary.BigEndian.Uint64(id[:8])
}

type topLevelWrapperData struct {
	Hash        uint64
	RootRef     string
	Cookie      uint64
	IncludeTime bool
	Typed       bool
}

func (e *Emitter) buildTopLevelWrapper(rootRef, rootTypeName string, cookie uint64) (string, error) {
	data := topLevelWrapperData{
		Hash:        hash64(rootTypeName),
		RootRef:     rootRef,
		Cookie:      cookie,
		IncludeTime: e.opts.IncludeTime,
		Typed:       e.opts.Mode == ModeTyped,
	}
	return emitterTemplates.Render(topLevelWrapperT, data)
}
