package physics

import (
	"fmt"
	"sync/atomic"
)

type Allocator int

const (
	// AllocatorTemp is for buffers that live within a single call.
	AllocatorTemp Allocator = iota
	// AllocatorPersistent is for buffers kept across frames.
	AllocatorPersistent
)

func (a Allocator) String() string {
	switch a {
	case AllocatorTemp:
		return "Temp"
	case AllocatorPersistent:
		return "Persistent"
	default:
		return fmt.Sprintf("Allocator(%d)", int(a))
	}
}

var liveArrays atomic.Int64

// LiveArrays returns how many NativeArrays have been allocated and not yet
// disposed.
func LiveArrays() int64 {
	return liveArrays.Load()
}

// NativeArray is a fixed-length buffer that must be released with Dispose.
// Jobs write disjoint indices concurrently; Dispose must run after the
// owning JobHandle completes.
type NativeArray[T any] struct {
	data      []T
	allocator Allocator
	disposed  atomic.Bool
}

func NewNativeArray[T any](length int, allocator Allocator) *NativeArray[T] {
	if length < 0 {
		length = 0
	}
	liveArrays.Add(1)
	return &NativeArray[T]{
		data:      make([]T, length),
		allocator: allocator,
	}
}

func (a *NativeArray[T]) Len() int {
	a.check()
	return len(a.data)
}

func (a *NativeArray[T]) At(i int) T {
	a.check()
	return a.data[i]
}

func (a *NativeArray[T]) Set(i int, v T) {
	a.check()
	a.data[i] = v
}

// Slice exposes the backing storage. It is invalid after Dispose.
func (a *NativeArray[T]) Slice() []T {
	a.check()
	return a.data
}

func (a *NativeArray[T]) Allocator() Allocator {
	return a.allocator
}

// IsCreated reports whether the array is still usable.
func (a *NativeArray[T]) IsCreated() bool {
	return a != nil && !a.disposed.Load()
}

// Dispose releases the buffer. Disposing twice is a no-op.
func (a *NativeArray[T]) Dispose() {
	if a == nil || !a.disposed.CompareAndSwap(false, true) {
		return
	}
	a.data = nil
	liveArrays.Add(-1)
}

func (a *NativeArray[T]) check() {
	if a.disposed.Load() {
		panic("physics: NativeArray used after Dispose")
	}
}
