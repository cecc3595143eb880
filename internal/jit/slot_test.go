package jit

import (
	"context"
	"sync"
	"testing"

	"github.com/facebookexperimental/object-introspection-sub001/internal/wiretype"
	"github.com/stretchr/testify/require"
)

func TestIntrospectBeforeBeginCompilePanics(t *testing.T) {
	var s Slot
	require.Panics(t, func() {
		_, _, _ = s.Introspect(context.Background(), struct{}{})
	})
}

func TestIntrospectWhileCompilingIsInitializing(t *testing.T) {
	var s Slot
	require.True(t, s.BeginCompile())

	_, _, err := s.Introspect(context.Background(), struct{}{})
	require.ErrorIs(t, err, ErrInitializing)
}

func TestOnlyFirstCallerWinsBeginCompile(t *testing.T) {
	var s Slot
	const n = 32
	var wins int
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if s.BeginCompile() {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, wins)
}

func TestPublishMakesIntrospectReady(t *testing.T) {
	var s Slot
	require.True(t, s.BeginCompile())
	require.False(t, s.Ready())

	want := []byte{1, 2, 3}
	desc := wiretype.VarIntType()
	s.Publish(func(ctx context.Context, t any) ([]byte, error) { return want, nil }, desc)
	require.True(t, s.Ready())

	data, gotDesc, err := s.Introspect(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, want, data)
	require.Same(t, desc, gotDesc)
}
