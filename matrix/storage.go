// SPDX-License-Identifier: MIT

// Package matrix - cell storage backends.
//
// Purpose:
//   - Map a linear cell index (row*cols + col) to a value, with absent cells reading as zero.
//   - Keep the Matrix code independent of the layout: it only calls get/set.
//
// Backends:
//   - flatStore: contiguous []T of length rows*cols (cache-friendly, default).
//   - sparseStore: insertion-ordered map holding non-zero cells only.
//     Ordered traversal keeps clone/count deterministic (no Go map iteration).
//
// Keys are always produced by Matrix.indexOf, so both backends may assume
// 0 ≤ key < rows*cols.
package matrix

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// storage is the cell container owned by exactly one Matrix.
type storage[T Integer] interface {
	// get returns the value at key or zero when the key was never written.
	get(key int) T
	// set inserts or overwrites the value at key.
	set(key int, v T)
	// clone returns an independent deep copy.
	clone() storage[T]
	// nonZero counts cells holding a value other than zero.
	nonZero() int
}

// newStorage allocates an empty backend of the requested kind for size cells.
func newStorage[T Integer](kind StorageKind, size int) storage[T] {
	if kind == StorageSparse {
		return &sparseStore[T]{cells: orderedmap.New()}
	}

	// make() zero-fills deterministically; no explicit initialization needed.
	return &flatStore[T]{data: make([]T, size)}
}

// ---------- flat ----------

type flatStore[T Integer] struct {
	data []T // row-major, len == rows*cols
}

func (s *flatStore[T]) get(key int) T { return s.data[key] }

func (s *flatStore[T]) set(key int, v T) { s.data[key] = v }

func (s *flatStore[T]) clone() storage[T] {
	cp := make([]T, len(s.data))
	copy(cp, s.data)

	return &flatStore[T]{data: cp}
}

func (s *flatStore[T]) nonZero() int {
	n := 0
	for _, v := range s.data {
		if v != 0 {
			n++
		}
	}

	return n
}

// ---------- sparse ----------

type sparseStore[T Integer] struct {
	cells *orderedmap.OrderedMap // int -> T, non-zero cells only
}

func (s *sparseStore[T]) get(key int) T {
	v, ok := s.cells.Get(key)
	if !ok {
		return 0 // absent key is the zero cell
	}

	return v.(T)
}

// set drops the key when v is zero so the map holds non-zero cells only.
func (s *sparseStore[T]) set(key int, v T) {
	if v == 0 {
		s.cells.Delete(key)
		return
	}
	s.cells.Set(key, v)
}

func (s *sparseStore[T]) clone() storage[T] {
	cp := orderedmap.New()
	for p := s.cells.Oldest(); p != nil; p = p.Next() { // insertion order
		cp.Set(p.Key, p.Value)
	}

	return &sparseStore[T]{cells: cp}
}

func (s *sparseStore[T]) nonZero() int { return s.cells.Len() }
