package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsearch/queue"
)

func TestQueue_NewIsEmpty(t *testing.T) {
	q := queue.New(3)
	assert.True(t, q.IsEmpty())
	assert.False(t, q.IsFull())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 3, q.Cap())
}

func TestQueue_EnqueueThenDequeue(t *testing.T) {
	q := queue.New(10)
	require.NoError(t, q.Enqueue(7))
	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, q.IsEmpty())
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := queue.New(5)
	for _, v := range []int{4, 1, 3} {
		require.NoError(t, q.Enqueue(v))
	}
	assert.Equal(t, 3, q.Len())
	var got []int
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{4, 1, 3}, got)
}

func TestQueue_DequeueEmptyReturnsSentinel(t *testing.T) {
	q := queue.New(2)
	v, err := q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrQueueEmpty)
	assert.Equal(t, queue.Empty, v)
	assert.Equal(t, -1, v)
	assert.True(t, q.IsEmpty())
}

func TestQueue_OverflowRejectedWithoutCorruption(t *testing.T) {
	const n = 4
	q := queue.New(n)
	for i := 0; i < n; i++ {
		require.NoError(t, q.Enqueue(i*10))
	}
	assert.True(t, q.IsFull())

	err := q.Enqueue(99)
	assert.ErrorIs(t, err, queue.ErrQueueFull)
	assert.Equal(t, n, q.Len())

	for i := 0; i < n; i++ {
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, i*10, v)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueue_SlotsFreeOnlyAfterDrain(t *testing.T) {
	q := queue.New(2)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	_, err := q.Dequeue()
	require.NoError(t, err)

	// rear still on the last slot
	assert.ErrorIs(t, q.Enqueue(3), queue.ErrQueueFull)

	_, err = q.Dequeue()
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(3), "indices reset once drained")
	v, _ := q.Dequeue()
	assert.Equal(t, 3, v)
}

func TestQueue_ClampsCapacity(t *testing.T) {
	q := queue.New(0)
	assert.Equal(t, 1, q.Cap())
	require.NoError(t, q.Enqueue(5))
	assert.ErrorIs(t, q.Enqueue(6), queue.ErrQueueFull)
}
