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

package splay

// Walk calls fn for every entry in key order until fn returns false.
// It does not splay.
func (t *Tree[K, V]) Walk(fn func(key K, value V) bool) {
	var stack []int
	cur := t.root
	for cur != nilRef || len(stack) > 0 {
		for cur != nilRef {
			stack = append(stack, cur)
			cur = t.nodes[cur].left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(t.nodes[cur].key, t.nodes[cur].value) {
			return
		}
		cur = t.nodes[cur].right
	}
}

// Keys returns all keys in order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.nodes))
	t.Walk(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	if t.root == nilRef {
		return 0
	}
	type frame struct{ ref, depth int }
	var (
		height int
		stack  = []frame{{t.root, 1}}
	)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)

		n := &t.nodes[f.ref]
		if n.left != nilRef {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if n.right != nilRef {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}
	return height
}
