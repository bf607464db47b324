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
	"strings"
	"time"
)

// Temporal codec instances. The textual forms are fixed and part of the
// public contract; interoperating systems must match them exactly.
//
// The year forms are four digits, so representable values span years 1
// through 9999; times outside that range encode to text the decoders
// reject.
var (
	// Instant is an absolute point in time in the RFC 3339 / ISO-8601
	// instant form, canonically in UTC: "1970-01-01T00:00:00Z". Fractional
	// seconds up to nanosecond precision are preserved. Decoding accepts
	// any RFC 3339 offset and normalizes to UTC.
	Instant = FromString("instant", parseInstant, formatInstant)

	// Date is an ISO local date, "2006-01-02". Decoded values are midnight
	// UTC; encoding uses only the year, month, and day of the value.
	Date = FromString("date",
		func(s string) (time.Time, error) { return time.Parse(time.DateOnly, s) },
		func(t time.Time) string { return t.Format(time.DateOnly) },
	)

	// DateTimeZoned is an ISO zoned date-time carrying the zone id in
	// brackets: "2007-12-03T10:15:30+01:00[Europe/Paris]". Every named
	// location is carried, slash-free ids ("CET", "Japan") included; the
	// name must be a loadable IANA id for the text to decode again. Times
	// in a fixed-offset location encode without the bracket suffix.
	// Decoding a bracketed form loads the named zone, so the result keeps
	// both the instant and the zone.
	DateTimeZoned = FromString("zoned date-time", parseZoned, formatZoned)

	// Duration uses Go duration syntax ("1h30m", "500ms"), encoding in the
	// canonical time.Duration form.
	Duration = FromString("duration", time.ParseDuration, time.Duration.String)
)

func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}

	return t.UTC(), nil
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseZoned parses an RFC 3339 date-time with an optional bracketed zone
// region suffix. When the suffix is present, the named location is loaded
// and the result is expressed in it; the offset inside the date-time still
// determines the instant.
func parseZoned(s string) (time.Time, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return time.Parse(time.RFC3339Nano, s)
	}
	if !strings.HasSuffix(s, "]") {
		return time.Time{}, fmt.Errorf("malformed zone suffix in %q", s)
	}

	region := s[open+1 : len(s)-1]
	if region == "" {
		return time.Time{}, fmt.Errorf("empty zone region in %q", s)
	}

	t, err := time.Parse(time.RFC3339Nano, s[:open])
	if err != nil {
		return time.Time{}, err
	}

	loc, err := time.LoadLocation(region)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown zone region %q: %w", region, err)
	}

	return t.In(loc), nil
}

func formatZoned(t time.Time) string {
	base := t.Format(time.RFC3339Nano)
	if name := t.Location().String(); isZoneRegion(name) {
		return base + "[" + name + "]"
	}

	return base
}

// isZoneRegion reports whether a location name is a zone id worth carrying
// on the wire. Any named location qualifies, including slash-free ids such
// as "CET" or "Japan". Fixed-offset locations render as an empty name or a
// pure offset form ("+01:00", "-0700"), and the process-local zone renders
// as "Local"; all of those are identified by offset alone.
func isZoneRegion(name string) bool {
	switch name {
	case "", "Local":
		return false
	}
	if name[0] == '+' || name[0] == '-' {
		return false
	}

	return true
}
