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

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/proto"
)

// Structured codecs carry a whole value (a filter object, a cursor, a
// message) inside a single query parameter. They still honor the one
// raw value in, one raw value out contract; only the payload is richer.
//
// Encoders have no error channel, so a value that cannot be marshaled
// (an unsupported kind reached through T) encodes as the empty raw value.
// That is a programming error in the choice of T, not an input error, and
// should be caught by the round-trip tests any codec user keeps.

// JSONOf builds a codec that carries T as a JSON document in one parameter.
// The text is plain JSON; percent-escaping of braces and quotes is the query
// assembler's job, as with every encoder in this package.
func JSONOf[T any](name string) Codec[T] {
	dec := func(raw RawValue) (T, error) {
		var v T
		if err := json.Unmarshal([]byte(raw.String()), &v); err != nil {
			var zero T

			return zero, newParseError(name, raw, err)
		}

		return v, nil
	}

	enc := func(v T) RawValue {
		data, err := json.Marshal(v)
		if err != nil {
			return Raw("")
		}

		return Raw(string(data))
	}

	return New(dec, enc)
}

// MsgPackOf builds a codec that carries T as a MessagePack payload encoded
// with unpadded base64url, giving a compact URL-safe form for cursors and
// opaque continuation tokens.
func MsgPackOf[T any](name string) Codec[T] {
	dec := func(raw RawValue) (T, error) {
		var zero T

		data, err := base64.RawURLEncoding.DecodeString(raw.String())
		if err != nil {
			return zero, newParseError(name, raw, fmt.Errorf("invalid base64url: %w", err))
		}

		var v T
		if err := msgpack.Unmarshal(data, &v); err != nil {
			return zero, newParseError(name, raw, err)
		}

		return v, nil
	}

	enc := func(v T) RawValue {
		data, err := msgpack.Marshal(v)
		if err != nil {
			return Raw("")
		}

		return Raw(base64.RawURLEncoding.EncodeToString(data))
	}

	return New(dec, enc)
}

// ProtoOf builds a codec that carries a Protocol Buffers message as its
// binary wire form encoded with unpadded base64url. T must be a pointer to
// a generated message type.
func ProtoOf[T proto.Message](name string) Codec[T] {
	dec := func(raw RawValue) (T, error) {
		var zero T

		data, err := base64.RawURLEncoding.DecodeString(raw.String())
		if err != nil {
			return zero, newParseError(name, raw, fmt.Errorf("invalid base64url: %w", err))
		}

		// ProtoReflect on the zero (nil) pointer still carries the message
		// type, which is what lets us allocate a fresh T without reflection
		// on the Go type itself.
		msg := zero.ProtoReflect().New().Interface()
		if err := proto.Unmarshal(data, msg); err != nil {
			return zero, newParseError(name, raw, err)
		}

		v, ok := msg.(T)
		if !ok {
			return zero, newParseError(name, raw, fmt.Errorf("unexpected message type %T", msg))
		}

		return v, nil
	}

	enc := func(v T) RawValue {
		data, err := proto.Marshal(v)
		if err != nil {
			return Raw("")
		}

		return Raw(base64.RawURLEncoding.EncodeToString(data))
	}

	return New(dec, enc)
}
