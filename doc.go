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

// Package param provides typed codecs for individual query-string parameters.
//
// A [Codec] pairs a [Decoder] (raw parameter text to a typed value) with an
// [Encoder] (typed value back to raw text) for the same type. Codecs are the
// building blocks for typed query-parameter bindings: the framework extracts
// a single raw value from the URL, and the codec converts it.
//
// # Quick Start
//
// Use the ready-made instances for common types:
//
//	page, err := param.Int.Decode(param.Raw("2"))
//	raw := param.Int.Encode(42) // Raw("42")
//
//	when, err := param.Instant.Decode(param.Raw("1970-01-01T00:00:00Z"))
//
// Look values up directly from url.Values:
//
//	limit, err := param.Lookup(r.URL.Query(), "limit", param.Int)
//
// # Building Codecs
//
// Derive codecs from existing ones with a parse/format pair:
//
//	type UserID int64
//
//	userID := param.Transform(param.Int64, "UserID",
//	    func(n int64) (UserID, error) { return UserID(n), nil },
//	    func(id UserID) int64 { return int64(id) },
//	)
//
// Or build straight from string parsing with [FromString]:
//
//	level := param.FromString("level",
//	    parseLevel,
//	    Level.String,
//	)
//
// # Composition
//
// Decoders compose through [Map] (transform the success value) and
// [Decoder.OrElse] (first decoder that succeeds wins). Encoders compose
// through [Contramap] (transform the input before encoding). All of these
// preserve the behavior of the underlying codec on failure.
//
// # Round-Trip Guarantee
//
// Every instance in this package satisfies decode(encode(v)) == v for all
// values v representable by the instance's type. The textual forms are part
// of the public contract: integers and floats use locale-independent strconv
// forms, [Instant] uses the RFC 3339 instant form in UTC, [Date] uses the
// ISO local date form, and [DateTimeZoned] uses the RFC 3339 form with a
// bracketed zone region suffix (for example
// "2007-12-03T10:15:30+01:00[Europe/Paris]").
//
// # Error Handling
//
// Decode failures are always returned as data, never panics. Failures are
// reported as [*ParseError] values carrying the target type, a sanitized
// snippet of the offending input, and the underlying cause. Aggregate
// several per-field failures with [Fields] when decoding a whole form, or
// fail fast on the first error; the choice is the caller's.
//
// URL escaping and query-string assembly are out of scope: decoders receive
// a single already-unescaped segment, and encoders produce text that the
// caller is responsible for escaping on reinsertion.
package param
