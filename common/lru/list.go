// Copyright 2026 The hotcache Authors
// This file is part of the hotcache library.
//
// The hotcache library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The hotcache library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the hotcache library. If not, see <http://www.gnu.org/licenses/>.

package lru

// nilRef marks an absent link.
const nilRef = -1

// listElem is a list node stored in the arena of its list. Links are arena
// indices owned by the list, callers only ever hold the index.
type listElem[K any, V any] struct {
	key   K
	value V
	next  int
	prev  int
}

// list is a doubly-linked list ordered by recency, most recent at head.
// Nodes live in an arena and are addressed by stable indices, freed slots are
// recycled through a free stack.
// The zero value is not valid, use newList to create lists.
type list[K any, V any] struct {
	elems []listElem[K, V]
	free  []int
	head  int
	tail  int
	size  int
}

func newList[K any, V any](hint int) *list[K, V] {
	l := &list[K, V]{elems: make([]listElem[K, V], 0, hint)}
	l.init()
	return l
}

// init reinitializes the list, making it empty.
func (l *list[K, V]) init() {
	l.elems = l.elems[:0]
	l.free = l.free[:0]
	l.head, l.tail = nilRef, nilRef
	l.size = 0
}

// elem returns the node behind ref. The pointer is only valid until the
// next pushFront.
func (l *list[K, V]) elem(ref int) *listElem[K, V] {
	return &l.elems[ref]
}

// pushFront stores a new node at the head and returns its reference.
func (l *list[K, V]) pushFront(key K, value V) int {
	var ref int
	if n := len(l.free); n > 0 {
		ref = l.free[n-1]
		l.free = l.free[:n-1]
		l.elems[ref] = listElem[K, V]{key: key, value: value, next: nilRef, prev: nilRef}
	} else {
		ref = len(l.elems)
		l.elems = append(l.elems, listElem[K, V]{key: key, value: value, next: nilRef, prev: nilRef})
	}
	l.linkFront(ref)
	return ref
}

// linkFront links a detached node in as the new head.
func (l *list[K, V]) linkFront(ref int) {
	e := &l.elems[ref]
	e.prev = nilRef
	e.next = l.head
	if l.head != nilRef {
		l.elems[l.head].prev = ref
	} else {
		l.tail = ref
	}
	l.head = ref
	l.size++
}

// remove detaches the node from the list and clears its links. The slot is
// not recycled until release is called.
//
// The node must currently belong to l. Passing a detached node or one from
// another list is a contract violation and corrupts the list.
func (l *list[K, V]) remove(ref int) {
	e := &l.elems[ref]
	if e.prev != nilRef {
		l.elems[e.prev].next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nilRef {
		l.elems[e.next].prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.next, e.prev = nilRef, nilRef
	l.size--
}

// moveToFront makes ref the head. Same contract as remove.
func (l *list[K, V]) moveToFront(ref int) {
	if ref == l.head {
		return
	}
	l.remove(ref)
	l.linkFront(ref)
}

// removeLast detaches the tail and returns it, or nilRef if the list is empty.
func (l *list[K, V]) removeLast() int {
	ref := l.tail
	if ref == nilRef {
		return nilRef
	}
	l.remove(ref)
	return ref
}

// release hands a detached slot back to the arena.
func (l *list[K, V]) release(ref int) {
	l.elems[ref] = listElem[K, V]{next: nilRef, prev: nilRef}
	l.free = append(l.free, ref)
}

// appendTo appends all list keys to the given slice, head to tail.
func (l *list[K, V]) appendTo(keys []K) []K {
	for ref := l.head; ref != nilRef; ref = l.elems[ref].next {
		keys = append(keys, l.elems[ref].key)
	}
	return keys
}
