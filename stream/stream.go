// Package stream provides helpers for iter.Seq2 based response streams.
package stream

import (
	"iter"
)

// Just returns an iter.Seq2 that emits the provided values in order.
func Just[T any](values ...T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, v := range values {
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Error returns an iter.Seq2 that emits only the provided error.
func Error[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		yield(*new(T), err)
	}
}

// Map returns an iter.Seq2 that emits the results of applying mapper to each
// value of stream. The first error, from the stream or the mapper, is emitted
// and ends the sequence.
func Map[T, R any](stream iter.Seq2[T, error], mapper func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v, err := range stream {
			if err != nil {
				yield(*new(R), err)
				return
			}
			mapped, err := mapper(v)
			if err != nil {
				yield(*new(R), err)
				return
			}
			if !yield(mapped, nil) {
				return
			}
		}
	}
}

// Observe returns an iter.Seq2 that passes every value and error of stream
// through observer before emitting it. If observer returns an error, that
// error is emitted in place of the original and the sequence ends.
func Observe[T any](stream iter.Seq2[T, error], observer func(T, error) error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range stream {
			if oerr := observer(v, err); oerr != nil {
				yield(v, oerr)
				return
			}
			if !yield(v, err) {
				return
			}
		}
	}
}
