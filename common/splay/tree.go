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

// Package splay implements a self-adjusting binary search tree.
//
// Every successful lookup rotates the found node up to the root, so keys that
// are queried often stay close to the top. Operations cost amortized O(log n)
// over any sequence, a single operation may still be O(n).
package splay

import "cmp"

// nilRef marks an absent link.
const nilRef = -1

// node is a tree node stored in the arena of its tree.
type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	parent int
	left   int
	right  int
}

// Tree is a splay tree.
//
// Insert attaches new keys as leaves without restructuring, only Find splays.
// Equal keys are kept, each new one goes to the right of the existing ones.
//
// This type is not safe for concurrent use.
// The zero value is not valid, instances must be created using New.
type Tree[K cmp.Ordered, V any] struct {
	nodes []node[K, V]
	root  int
}

// New creates an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{root: nilRef}
}

// Len returns the number of stored entries, duplicates included.
func (t *Tree[K, V]) Len() int {
	return len(t.nodes)
}

// Root returns the key at the root.
func (t *Tree[K, V]) Root() (key K, ok bool) {
	if t.root == nilRef {
		return key, false
	}
	return t.nodes[t.root].key, true
}

// Insert adds an entry to the tree.
func (t *Tree[K, V]) Insert(key K, value V) {
	ref := len(t.nodes)
	t.nodes = append(t.nodes, node[K, V]{key: key, value: value, parent: nilRef, left: nilRef, right: nilRef})
	if t.root == nilRef {
		t.root = ref
		return
	}
	cur := t.root
	for {
		n := &t.nodes[cur]
		if key < n.key {
			if n.left == nilRef {
				n.left = ref
				break
			}
			cur = n.left
		} else {
			if n.right == nilRef {
				n.right = ref
				break
			}
			cur = n.right
		}
	}
	t.nodes[ref].parent = cur
}

// Find looks up key. On a hit the node is splayed to the root, on a miss the
// tree is left untouched.
func (t *Tree[K, V]) Find(key K) (value V, ok bool) {
	cur := t.root
	for cur != nilRef {
		n := &t.nodes[cur]
		switch {
		case key < n.key:
			cur = n.left
		case key > n.key:
			cur = n.right
		default:
			t.splay(cur)
			return t.nodes[cur].value, true
		}
	}
	return value, false
}

// splay rotates x up until it becomes the root.
func (t *Tree[K, V]) splay(x int) {
	for {
		p := t.nodes[x].parent
		if p == nilRef {
			return
		}
		g := t.nodes[p].parent
		xLeft := t.nodes[p].left == x

		switch {
		case g == nilRef:
			// zig
			if xLeft {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		case xLeft == (t.nodes[g].left == p):
			// zig-zig
			if xLeft {
				t.rotateRight(g)
				t.rotateRight(p)
			} else {
				t.rotateLeft(g)
				t.rotateLeft(p)
			}
		default:
			// zig-zag
			if xLeft {
				t.rotateRight(p)
				t.rotateLeft(g)
			} else {
				t.rotateLeft(p)
				t.rotateRight(g)
			}
		}
	}
}

// rotateRight lifts the left child of x into its place.
func (t *Tree[K, V]) rotateRight(x int) {
	l := t.nodes[x].left
	if l == nilRef {
		return
	}
	lr := t.nodes[l].right
	t.nodes[x].left = lr
	if lr != nilRef {
		t.nodes[lr].parent = x
	}
	t.replaceChild(t.nodes[x].parent, x, l)
	t.nodes[l].right = x
	t.nodes[x].parent = l
}

// rotateLeft lifts the right child of x into its place.
func (t *Tree[K, V]) rotateLeft(x int) {
	r := t.nodes[x].right
	if r == nilRef {
		return
	}
	rl := t.nodes[r].left
	t.nodes[x].right = rl
	if rl != nilRef {
		t.nodes[rl].parent = x
	}
	t.replaceChild(t.nodes[x].parent, x, r)
	t.nodes[r].left = x
	t.nodes[x].parent = r
}

// replaceChild hangs child where old used to be under parent, or makes it
// the root if old had no parent.
func (t *Tree[K, V]) replaceChild(parent, old, child int) {
	t.nodes[child].parent = parent
	switch {
	case parent == nilRef:
		t.root = child
	case t.nodes[parent].left == old:
		t.nodes[parent].left = child
	default:
		t.nodes[parent].right = child
	}
}
