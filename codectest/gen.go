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

package codectest

import (
	"math/rand/v2"
	"time"

	"github.com/google/go-cmp/cmp"
)

// Gen produces one random value of T per call. Stock generators for the
// built-in codec types are provided as package functions with this exact
// signature (for example [String], [Int64], [Instant]); custom codec
// authors supply their own.
type Gen[T any] func(*rand.Rand) T

// Eq reports whether two decoded values are equal for testing purposes.
type Eq[T any] func(a, b T) bool

// DefaultEq builds an equality from go-cmp. Types with an Equal method
// (time.Time among them) are compared with it; everything else compares
// structurally.
func DefaultEq[T any]() Eq[T] {
	return func(a, b T) bool {
		return cmp.Equal(a, b)
	}
}

// EqualTimes compares time values as instants, ignoring location.
var EqualTimes Eq[time.Time] = time.Time.Equal

// rawAlphabet skews toward text that stresses decoders: digits, signs,
// separators, and letters, so numeric and temporal parsers see both
// near-misses and plain garbage.
const rawAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFXYZ0123456789 .,:+-/TZ[]_%"

// String generates raw parameter text of length 0 through 23.
func String(r *rand.Rand) string {
	n := r.IntN(24)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = rawAlphabet[r.IntN(len(rawAlphabet))]
	}

	return string(buf)
}

// Bool generates a random boolean.
func Bool(r *rand.Rand) bool {
	return r.IntN(2) == 0
}

// Int generates a random int across the full range.
func Int(r *rand.Rand) int {
	return int(r.Uint64())
}

// Int16 generates a random int16 across the full range.
func Int16(r *rand.Rand) int16 {
	return int16(r.Uint64())
}

// Int32 generates a random int32 across the full range.
func Int32(r *rand.Rand) int32 {
	return int32(r.Uint64())
}

// Int64 generates a random int64 across the full range.
func Int64(r *rand.Rand) int64 {
	return int64(r.Uint64())
}

// Float32 generates finite float32 values, mixing uniform [0,1) samples
// with scaled magnitudes.
func Float32(r *rand.Rand) float32 {
	return float32(scaleFloat(r))
}

// Float64 generates finite float64 values, mixing uniform [0,1) samples
// with scaled magnitudes.
func Float64(r *rand.Rand) float64 {
	return scaleFloat(r)
}

func scaleFloat(r *rand.Rand) float64 {
	f := r.Float64()
	switch r.IntN(4) {
	case 0:
		return f
	case 1:
		return -f
	case 2:
		return f * 1e9
	default:
		return -f * 1e-9
	}
}

// Instant generates times within roughly ±140 years of the epoch with
// nanosecond precision, in UTC.
func Instant(r *rand.Rand) time.Time {
	sec := int64(r.Uint64()>>32) - (1 << 31) // ±~68 years of seconds, doubled below
	sec *= 2

	return time.Unix(sec, int64(r.IntN(1_000_000_000))).UTC()
}

// Date generates midnight-UTC dates between years 1 and 9999, the range the
// ISO local date form can represent.
func Date(r *rand.Rand) time.Time {
	year := 1 + r.IntN(9999)
	month := time.Month(1 + r.IntN(12))
	day := 1 + r.IntN(28)

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// zoneRegions is a spread of IANA zone ids with distinct offsets and DST
// rules for exercising the zoned date-time form, including a slash-free id.
var zoneRegions = []string{
	"UTC",
	"CET",
	"Europe/Paris",
	"America/New_York",
	"Asia/Tokyo",
	"Australia/Sydney",
	"America/Sao_Paulo",
}

// Zoned generates instants placed in a random IANA zone region.
func Zoned(r *rand.Rand) time.Time {
	loc, err := time.LoadLocation(zoneRegions[r.IntN(len(zoneRegions))])
	if err != nil {
		loc = time.UTC
	}

	return Instant(r).In(loc)
}

// Duration generates durations from nanoseconds up to hundreds of hours.
func Duration(r *rand.Rand) time.Duration {
	return time.Duration(int64(r.Uint64()) % int64(1000*time.Hour))
}
