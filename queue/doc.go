// Package queue provides the fixed-capacity integer FIFO used by bfs.
//
// The queue is array backed with explicit front and rear indices. It is
// empty when rear == -1 and full when rear == capacity-1. Slots are not
// recycled while elements remain: once rear reaches the end, Enqueue fails
// until the queue has been drained, at which point both indices reset to -1.
//
// Errors are reported, never fatal:
//
//	ErrQueueFull   - Enqueue on a full queue; the value is dropped.
//	ErrQueueEmpty  - Dequeue on an empty queue; Empty (-1) is returned.
package queue
