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

import "errors"

// Codec pairs a [Decoder] and an [Encoder] for the same type. A well-formed
// codec round-trips: Decode(Encode(v)) succeeds and yields v for every value
// v the codec's type can represent. All instances in this package uphold
// this; codecs built with [New] are expected to as well.
//
// Codec values are immutable and safe for concurrent use.
type Codec[T any] struct {
	decode Decoder[T]
	encode Encoder[T]
}

// New pairs a standalone decoder and encoder into a codec. The caller is
// responsible for the pair being round-trip compatible.
func New[T any](dec Decoder[T], enc Encoder[T]) Codec[T] {
	return Codec[T]{decode: dec, encode: enc}
}

// Decode converts one raw parameter value into a typed value.
func (c Codec[T]) Decode(raw RawValue) (T, error) {
	return c.decode(raw)
}

// Encode converts a typed value into its raw parameter text.
func (c Codec[T]) Encode(v T) RawValue {
	return c.encode(v)
}

// Decoder returns the decoding half of the codec.
func (c Codec[T]) Decoder() Decoder[T] {
	return c.decode
}

// Encoder returns the encoding half of the codec.
func (c Codec[T]) Encoder() Encoder[T] {
	return c.encode
}

// Transform derives a codec for U from an existing codec for T plus a
// parse/format pair. Parse errors are wrapped as [*ParseError] carrying the
// given type name and the offending raw text; errors that already are
// ParseError pass through unchanged. The format function must be total and
// must invert parse for the round-trip guarantee to carry over.
//
// A nil parse or format function is a configuration error: the returned
// codec fails every decode with the corresponding sentinel and encodes
// every value as the empty raw text.
func Transform[T, U any](c Codec[T], name string, parse func(T) (U, error), format func(U) T) Codec[U] {
	if parse == nil || format == nil {
		return misconfigured[U](name, parse == nil)
	}

	dec := func(raw RawValue) (U, error) {
		var zero U

		v, err := c.decode(raw)
		if err != nil {
			return zero, err
		}

		u, err := parse(v)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				return zero, err
			}

			return zero, newParseError(name, raw, err)
		}

		return u, nil
	}

	enc := func(v U) RawValue {
		return c.encode(format(v))
	}

	return New(dec, enc)
}

// FromString builds a codec for T from a parse/format pair over plain
// strings. It is [Transform] applied to the primitive [String] codec, and is
// how every scalar and temporal instance in this package is constructed.
func FromString[T any](name string, parse func(string) (T, error), format func(T) string) Codec[T] {
	return Transform(String, name, parse, format)
}

// misconfigured returns a codec that reports a construction-time
// configuration error on every decode instead of panicking per call.
func misconfigured[T any](name string, nilParse bool) Codec[T] {
	sentinel := ErrNilFormatFunc
	if nilParse {
		sentinel = ErrNilParseFunc
	}

	dec := func(raw RawValue) (T, error) {
		var zero T

		return zero, newParseError(name, raw, sentinel)
	}
	enc := func(T) RawValue {
		return Raw("")
	}

	return New(dec, enc)
}
