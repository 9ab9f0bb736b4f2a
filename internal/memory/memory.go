/*
 * mips5 - Word-addressed memory store
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package memory implements the word-addressed store shared by
// instruction memory and data memory. Both have the same out-of-range
// policy: reads past the end return 0, writes past the end are ignored.
package memory

// DefaultWords is the store size used when a non-positive size is given.
const DefaultWords = 1024

// Store is a fixed-size sequence of 32-bit words indexed by byte address.
type Store struct {
	words []uint32
}

// New returns a Store sized to hold size words. size <= 0 yields
// DefaultWords.
func New(size int) *Store {
	if size <= 0 {
		size = DefaultWords
	}
	return &Store{words: make([]uint32, size)}
}

// index converts a byte address to a word index, truncating toward zero.
func (s *Store) index(byteAddr int32) (idx int, ok bool) {
	idx = int(byteAddr / 4)
	return idx, idx >= 0 && idx < len(s.words)
}

// ReadWord returns the word at byteAddr, or 0 if out of range.
func (s *Store) ReadWord(byteAddr int32) uint32 {
	idx, ok := s.index(byteAddr)
	if !ok {
		return 0
	}
	return s.words[idx]
}

// WriteWord stores value at byteAddr. Out-of-range addresses are ignored.
func (s *Store) WriteWord(byteAddr int32, value uint32) {
	idx, ok := s.index(byteAddr)
	if !ok {
		return
	}
	s.words[idx] = value
}

// LoadWords places words starting at startAddr, stopping silently once
// the store runs out of room.
func (s *Store) LoadWords(words []uint32, startAddr int32) {
	start, ok := s.index(startAddr)
	if !ok {
		return
	}
	for i, w := range words {
		if start+i >= len(s.words) {
			return
		}
		s.words[start+i] = w
	}
}

// Size returns the capacity of the store, in words.
func (s *Store) Size() int {
	return len(s.words)
}

// Snapshot returns a copy of the backing words for inspection.
func (s *Store) Snapshot() []uint32 {
	out := make([]uint32, len(s.words))
	copy(out, s.words)
	return out
}
