// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package param

// Decoder converts one raw query-parameter value into a typed value. A
// decoder is a pure function: it never panics, never performs I/O, and
// reports every failure as a returned error (conventionally a [*ParseError]).
//
// Decoders compose: [Map] transforms the success value, [Decoder.OrElse]
// tries alternatives in order, and [Succeed] / [Empty] are the constant
// success and constant failure decoders.
type Decoder[T any] func(RawValue) (T, error)

// Decode applies the decoder to a raw value. It is equivalent to calling
// the decoder directly and exists for symmetry with [Codec.Decode].
func (d Decoder[T]) Decode(raw RawValue) (T, error) {
	return d(raw)
}

// Succeed returns a decoder that ignores its input and always succeeds with
// the given value.
func Succeed[T any](v T) Decoder[T] {
	return func(RawValue) (T, error) {
		return v, nil
	}
}

// Empty returns a decoder that always fails. It is the identity for
// [Decoder.OrElse]: Empty().OrElse(d) and d.OrElse(Empty()) both behave
// like d on every input that d can decode.
func Empty[T any]() Decoder[T] {
	return func(raw RawValue) (T, error) {
		var zero T

		return zero, newParseError("none", raw, ErrNoDecoderMatched)
	}
}

// Map transforms the success value of a decoder with a pure function.
// Failures pass through untouched, so Map(d, f) fails exactly when d fails.
func Map[T, U any](d Decoder[T], f func(T) U) Decoder[U] {
	return func(raw RawValue) (U, error) {
		v, err := d(raw)
		if err != nil {
			var zero U

			return zero, err
		}

		return f(v), nil
	}
}

// OrElse returns a decoder that tries d first and falls back to alt when d
// fails. The first success wins; when both fail, the fallback's failure is
// returned. Failures are not accumulated across alternatives.
//
// OrElse is associative, and [Empty] is its identity on both sides.
func (d Decoder[T]) OrElse(alt Decoder[T]) Decoder[T] {
	return func(raw RawValue) (T, error) {
		v, err := d(raw)
		if err == nil {
			return v, nil
		}

		return alt(raw)
	}
}
