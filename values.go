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
	"errors"
	"net/url"
)

// Lookup decodes the named parameter from already-parsed query values.
// A key that is present with an empty value decodes the empty raw value;
// a key that is absent fails with [ErrMissingParam]. Failures carry the
// parameter name for diagnostics.
//
// Only the first value for the key is considered, matching url.Values.Get.
func Lookup[T any](values url.Values, key string, c Codec[T]) (T, error) {
	var zero T

	if !values.Has(key) {
		return zero, &ParseError{
			Field: key,
			Type:  "missing",
			Err:   ErrMissingParam,
		}
	}

	v, err := c.Decode(Raw(values.Get(key)))
	if err != nil {
		return zero, withField(err, key)
	}

	return v, nil
}

// LookupOr decodes the named parameter, substituting def when the parameter
// is absent. Present-but-malformed values still fail; absence is the only
// condition the default covers.
func LookupOr[T any](values url.Values, key string, c Codec[T], def T) (T, error) {
	if !values.Has(key) {
		return def, nil
	}

	return Lookup(values, key, c)
}

// Apply encodes a value into the query values under the given key, replacing
// any existing values. The text is stored unescaped; url.Values.Encode
// performs the percent-escaping when the query string is assembled.
func Apply[T any](values url.Values, key string, c Codec[T], v T) {
	values.Set(key, c.Encode(v).String())
}

// withField annotates a decode failure with the parameter name. ParseError
// values are copied rather than mutated since decoders may return shared
// errors.
func withField(err error, key string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		annotated := *pe
		annotated.Field = key

		return &annotated
	}

	return &ParseError{Field: key, Type: "unknown", Err: err}
}
