package core

import (
	"strconv"
	"strings"
)

// node is one link of an AdjacencyList.
type node struct {
	dest int
	next *node
}

// AdjacencyList is an ordered, singly linked sequence of neighbor ids.
// The zero value is an empty list ready to use.
type AdjacencyList struct {
	head *node
	size int
}

// PushFront inserts v at the head of the list.
// Complexity: O(1).
func (l *AdjacencyList) PushFront(v int) {
	l.head = &node{dest: v, next: l.head}
	l.size++
}

// Len reports the number of entries, counting duplicates.
func (l *AdjacencyList) Len() int { return l.size }

// Contains reports whether v appears anywhere in the list.
// Complexity: O(k).
func (l *AdjacencyList) Contains(v int) bool {
	for n := l.head; n != nil; n = n.next {
		if n.dest == v {
			return true
		}
	}

	return false
}

// Each calls fn for every entry from head to tail until fn returns false.
func (l *AdjacencyList) Each(fn func(v int) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.dest) {
			return
		}
	}
}

// Values returns a head-to-tail snapshot of the list.
func (l *AdjacencyList) Values() []int {
	out := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.dest)
	}

	return out
}

// Sort relinks the list into ascending order by insertion sort.
//
// Each node of the unsorted remainder is detached from its head and spliced
// into the sorted list, scanning the sorted list from its head. A node whose
// value is <= the sorted head goes in front of it. No nodes are allocated.
// Sorting an already sorted list leaves its order unchanged.
//
// Complexity: O(k²) time, O(1) extra space.
func (l *AdjacencyList) Sort() {
	var sorted *node
	cur := l.head
	for cur != nil {
		next := cur.next
		if sorted == nil || sorted.dest >= cur.dest {
			cur.next = sorted
			sorted = cur
		} else {
			at := sorted
			for at.next != nil && at.next.dest < cur.dest {
				at = at.next
			}
			cur.next = at.next
			at.next = cur
		}
		cur = next
	}
	l.head = sorted
}

// String renders the list as "head -> a-> b", the form used by Graph.WriteTo.
func (l *AdjacencyList) String() string {
	var sb strings.Builder
	sb.WriteString("head ")
	for n := l.head; n != nil; n = n.next {
		sb.WriteString("-> ")
		sb.WriteString(strconv.Itoa(n.dest))
	}

	return sb.String()
}
