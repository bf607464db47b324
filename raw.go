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

// RawValue is a single query-parameter value as extracted from a URL,
// already percent-decoded but otherwise non-normalized. It is the unit of
// exchange between the URL layer and a [Codec]: decoders consume exactly one
// RawValue, encoders produce exactly one.
//
// The wrapper is deliberately opaque so raw parameter text does not mix
// silently with ordinary strings in signatures.
type RawValue struct {
	value string
}

// Raw wraps a percent-decoded query-parameter segment as a [RawValue].
func Raw(s string) RawValue {
	return RawValue{value: s}
}

// String returns the underlying parameter text.
func (r RawValue) String() string {
	return r.value
}
