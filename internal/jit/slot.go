package jit

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/facebookexperimental/object-introspection-sub001/internal/wiretype"
)

// ErrInitializing is the "initializing, try later" response a concurrent
// caller gets while another goroutine is compiling.
var ErrInitializing = errors.New("jit: initializing, try later")

// IntrospectFunc is the published entry point: given a live value, it
// produces the raw wire bytes emitted getSize_<hash> wrapper
// would write. Modeled loosely (any, not a generic T) because the real
// per-type signature only exists once the emitted C++ is compiled, which
// is out of scope here (Non-goals).
type IntrospectFunc func(ctx context.Context, t any) ([]byte, error)

// Slot is one instantiation's process-wide handshake state: the atomic
// function pointer and descriptor pointer calls for, plus the
// critical flag that coordinates compilation. The zero value is ready to
// use.
type Slot struct {
	critical   atomic.Bool
	fn         atomic.Pointer[IntrospectFunc]
	descriptor atomic.Pointer[wiretype.Type]
}

// BeginCompile is the first-caller-wins false->true CAS ("the
// first caller flips it from false to true and begins compilation").
// "Compilation" in this repo means running the emitter (internal/emitter)
// to produce both the traversal artifact and the dy descriptor — invoking
// a real C++ compiler is out of scope. The winner must call
// Publish on success; concurrent callers that observe BeginCompile
// returning false should call Introspect, which reports ErrInitializing
// until publish completes.
func (s *Slot) BeginCompile() (won bool) {
	return s.critical.CompareAndSwap(false, true)
}

// Publish installs fn and descriptor with release semantics (atomic.Pointer
// already provides this on every supported Go platform), making them
// visible to any reader that subsequently Loads them.
func (s *Slot) Publish(fn IntrospectFunc, descriptor *wiretype.Type) {
	s.fn.Store(&fn)
	s.descriptor.Store(descriptor)
}

// Ready reports whether both slots have been published.
func (s *Slot) Ready() bool {
	return s.fn.Load() != nil && s.descriptor.Load() != nil
}

// Introspect acquires the published function and descriptor and invokes
// the function against t. It returns ErrInitializing if compilation is in
// flight but not yet published. Calling before BeginCompile was ever called
// is a programmer error, not a runtime condition a caller can legitimately
// observe and retry on, so it panics rather than returning an error.
func (s *Slot) Introspect(ctx context.Context, t any) ([]byte, *wiretype.Type, error) {
	fnPtr := s.fn.Load()
	descPtr := s.descriptor.Load()
	if fnPtr == nil || descPtr == nil {
		if s.critical.Load() {
			return nil, nil, ErrInitializing
		}
		panic("jit: Introspect called before BeginCompile")
	}
	data, err := (*fnPtr)(ctx, t)
	if err != nil {
		return nil, nil, err
	}
	return data, descPtr, nil
}
