package demo

import (
	"errors"
	"sync"
)

var (
	ErrBufferFull  = errors.New("buffer is full")
	ErrBufferEmpty = errors.New("buffer is empty")
)

// Buffer is a bounded FIFO shared by producers and consumers. It never
// blocks: callers retry on ErrBufferFull and ErrBufferEmpty.
type Buffer[T any] struct {
	mu       sync.Mutex
	items    []T
	capacity int
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

func (b *Buffer[T]) TryPut(v T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) >= b.capacity {
		return ErrBufferFull
	}
	b.items = append(b.items, v)
	return nil
}

func (b *Buffer[T]) TryTake() (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	if len(b.items) == 0 {
		return zero, ErrBufferEmpty
	}
	v := b.items[0]
	b.items[0] = zero
	b.items = b.items[1:]
	return v, nil
}

func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
