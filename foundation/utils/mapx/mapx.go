// File: mapx.go
// Title: Map Utilities
// Description: Generic helpers for iterating maps in a stable order and
//              copying them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Sorted keys and clone

// Package mapx provides generic map helpers.
package mapx

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of m in ascending order
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	if len(m) == 0 {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a shallow copy of m. A nil map yields an empty map.
func Clone[M ~map[K]V, K comparable, V any](m M) M {
	out := make(M, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
