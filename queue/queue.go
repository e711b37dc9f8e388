package queue

import (
	"errors"
	"fmt"
)

// Empty is the value Dequeue returns when there is nothing to dequeue.
const Empty = -1

var (
	// ErrQueueFull is returned by Enqueue when rear has reached the last slot.
	ErrQueueFull = errors.New("queue: full")

	// ErrQueueEmpty is returned by Dequeue on an empty queue.
	ErrQueueEmpty = errors.New("queue: empty")
)

// Queue is a fixed-capacity FIFO of ints.
type Queue struct {
	items []int
	front int
	rear  int
}

// New returns an empty queue holding at most capacity items.
// A capacity below 1 is treated as 1.
func New(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}

	return &Queue{items: make([]int, capacity), front: -1, rear: -1}
}

// Cap returns the fixed capacity.
func (q *Queue) Cap() int { return len(q.items) }

// IsEmpty reports whether rear == -1.
func (q *Queue) IsEmpty() bool { return q.rear == -1 }

// IsFull reports whether rear sits on the last slot.
func (q *Queue) IsFull() bool { return q.rear == len(q.items)-1 }

// Len returns the number of queued items.
func (q *Queue) Len() int {
	if q.IsEmpty() {
		return 0
	}

	return q.rear - q.front + 1
}

// Enqueue appends v. On a full queue v is dropped and ErrQueueFull is
// returned; the queue is left as it was.
func (q *Queue) Enqueue(v int) error {
	if q.IsFull() {
		return fmt.Errorf("%w: dropped %d (capacity %d)", ErrQueueFull, v, len(q.items))
	}
	if q.front == -1 {
		q.front = 0
	}
	q.rear++
	q.items[q.rear] = v

	return nil
}

// Dequeue removes and returns the front item. When the last item leaves,
// front and rear are both reset to -1.
func (q *Queue) Dequeue() (int, error) {
	if q.IsEmpty() {
		return Empty, ErrQueueEmpty
	}
	v := q.items[q.front]
	q.front++
	if q.front > q.rear {
		q.front, q.rear = -1, -1
	}

	return v, nil
}
