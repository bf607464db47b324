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
	"fmt"
	"strconv"
	"strings"
)

// Primitive codec instances. Each parses with locale-independent strconv
// rules and formats in the canonical form that its own decoder accepts, so
// every instance round-trips exactly.
var (
	// String is the identity codec: raw text in, raw text out. All other
	// instances are derived from it via [Transform].
	String = New(
		func(raw RawValue) (string, error) { return raw.String(), nil },
		func(s string) RawValue { return Raw(s) },
	)

	// Bool accepts the forms strconv.ParseBool accepts (true/false, t/f,
	// 1/0, case variants) and encodes canonically as "true"/"false". See
	// [LenientBool] for the generous web forms (yes/no, on/off).
	Bool = FromString("bool", strconv.ParseBool, strconv.FormatBool)

	// Int handles the platform-sized int in base 10.
	Int = FromString("int", strconv.Atoi, strconv.Itoa)

	Int16 = intCodec[int16]("int16", 16)
	Int32 = intCodec[int32]("int32", 32)
	Int64 = FromString("int64",
		func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
		func(n int64) string { return strconv.FormatInt(n, 10) },
	)

	Float32 = floatCodec[float32]("float32", 32)
	Float64 = floatCodec[float64]("float64", 64)
)

// intCodec builds a sized signed integer codec. ParseInt enforces the bit
// size, so out-of-range text fails instead of wrapping.
func intCodec[T int16 | int32](name string, bits int) Codec[T] {
	return FromString(name,
		func(s string) (T, error) {
			n, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return 0, err
			}

			return T(n), nil
		},
		func(n T) string { return strconv.FormatInt(int64(n), 10) },
	)
}

// floatCodec builds a float codec. Formatting uses the shortest decimal
// form that parses back to the exact same bits, which is what makes the
// round-trip exact rather than approximate.
func floatCodec[T float32 | float64](name string, bits int) Codec[T] {
	return FromString(name,
		func(s string) (T, error) {
			f, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return 0, err
			}

			return T(f), nil
		},
		func(f T) string { return strconv.FormatFloat(float64(f), 'g', -1, bits) },
	)
}

// LenientBool decodes the boolean spellings commonly seen in query strings:
// true/false, 1/0, yes/no, on/off, t/f, y/n, case-insensitively, with the
// empty string treated as false. Encoding is canonical "true"/"false", so
// the lenient forms are decode-only.
var LenientBool = FromString("bool", parseBoolLenient, strconv.FormatBool)

// parseBoolLenient parses the generous boolean string representations.
func parseBoolLenient(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, nil
	case "false", "0", "no", "off", "f", "n", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidBooleanValue, s)
	}
}

// Enum builds a codec for a string-kinded type restricted to a fixed set of
// allowed values. Decoding matches case-insensitively and returns the
// canonical casing from the allowed set; encoding emits the value as-is.
//
// Calling Enum with no allowed values is a configuration error: the
// returned codec fails every decode with [ErrNoAllowedValues].
func Enum[T ~string](name string, allowed ...T) Codec[T] {
	enc := func(v T) RawValue { return Raw(string(v)) }

	if len(allowed) == 0 {
		return New(func(raw RawValue) (T, error) {
			return T(""), newParseError(name, raw, ErrNoAllowedValues)
		}, enc)
	}

	canonical := make(map[string]T, len(allowed))
	for _, v := range allowed {
		canonical[strings.ToLower(string(v))] = v
	}

	allowedList := make([]string, 0, len(allowed))
	for _, v := range allowed {
		allowedList = append(allowedList, string(v))
	}
	oneOf := strings.Join(allowedList, ", ")

	dec := func(raw RawValue) (T, error) {
		if v, ok := canonical[strings.ToLower(raw.String())]; ok {
			return v, nil
		}

		return T(""), newParseError(name, raw,
			fmt.Errorf("%w (must be one of: %s)", ErrValueNotAllowed, oneOf))
	}

	return New(dec, enc)
}
