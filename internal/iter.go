// Package internal holds iterator helpers shared by the tool packages.
package internal

import (
	"iter"
)

// Concat2 concatenates dual-value iterators into a single iterator sequence.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// Zip pairs keys[n] with values[n], stopping at the shorter slice.
func Zip[K any, V any](keys []K, values []V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range min(len(keys), len(values)) {
			if !yield(keys[n], values[n]) {
				return
			}
		}
	}
}
