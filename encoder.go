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

// Encoder converts a typed value into its raw query-parameter text. An
// encoder is a total pure function: every value of T has a textual form, so
// there is no error channel. The produced text is not URL-escaped; escaping
// belongs to the layer that assembles the query string.
type Encoder[T any] func(T) RawValue

// Encode applies the encoder to a value. It is equivalent to calling the
// encoder directly and exists for symmetry with [Codec.Encode].
func (e Encoder[T]) Encode(v T) RawValue {
	return e(v)
}

// Contramap adapts an encoder to a new input type by transforming the input
// before encoding. Encoding after transforming the input is equivalent to
// transforming and then encoding, so Contramap(e, f)(v) == e(f(v)) for all v.
func Contramap[T, U any](e Encoder[T], f func(U) T) Encoder[U] {
	return func(v U) RawValue {
		return e(f(v))
	}
}
