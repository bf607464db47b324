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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Static errors for codec operations.
var (
	ErrNoDecoderMatched    = errors.New("no decoder matched")
	ErrMissingParam        = errors.New("missing query parameter")
	ErrInvalidBooleanValue = errors.New("invalid boolean value")
	ErrValueNotAllowed     = errors.New("value not in allowed set")
	ErrNoAllowedValues     = errors.New("no allowed values provided")
	ErrNilParseFunc        = errors.New("parse function is nil")
	ErrNilFormatFunc       = errors.New("format function is nil")
)

// maxValueSnippet caps how much of the offending input is echoed back in
// error messages. Query parameters are attacker-controlled, so the snippet
// is truncated and stripped of control characters before it is surfaced.
const maxValueSnippet = 64

// sanitizeValue prepares raw parameter text for inclusion in an error
// message: control characters are replaced and overly long values are
// truncated with a marker. Truncation backs up to a rune boundary so the
// snippet never ends in a mangled partial character.
func sanitizeValue(s string) string {
	if len(s) > maxValueSnippet {
		cut := maxValueSnippet
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "...(truncated)"
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '�'
		}

		return r
	}, s)
}

// ParseError reports a single failed parameter conversion. It carries the
// target type, a sanitized snippet of the offending input, and the
// underlying cause. Decode never panics; every failure surfaces as data
// through this type.
//
// Use [errors.As] to check for ParseError:
//
//	var parseErr *param.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("param %s: cannot parse as %s\n", parseErr.Field, parseErr.Type)
//	}
type ParseError struct {
	Field  string // Parameter name, when known (set by Lookup)
	Type   string // Target type name (e.g. "int64", "instant")
	Value  string // Sanitized snippet of the offending input
	Reason string // Human-readable reason, when the cause is not an error
	Err    error  // Underlying error
}

// newParseError builds a ParseError for raw input that failed to convert to
// the named target type. The raw text is sanitized before storage.
func newParseError(typeName string, raw RawValue, err error) *ParseError {
	return &ParseError{
		Type:  typeName,
		Value: sanitizeValue(raw.String()),
		Err:   err,
	}
}

// Error returns a formatted message naming the failed conversion.
func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Field != "" {
		fmt.Fprintf(&b, "parameter %q: ", e.Field)
	}
	fmt.Fprintf(&b, "cannot parse %q as %s", e.Value, e.Type)

	switch {
	case e.Reason != "":
		b.WriteString(": " + e.Reason)
	case e.Err != nil:
		b.WriteString(": " + e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (e *ParseError) HTTPStatus() int {
	return 400 // Bad Request
}

// Code implements rivaas.dev/errors.ErrorCode.
func (e *ParseError) Code() string {
	return "parameter_parse_error"
}

// ParseErrors aggregates parse failures from multiple parameters, preserving
// the order in which they were added. A ParseErrors value returned from this
// package is never empty: helpers return nil instead of an empty aggregate.
//
// Use [errors.As] to check for ParseErrors:
//
//	var errs *param.ParseErrors
//	if errors.As(err, &errs) {
//	    for _, e := range errs.Errors {
//	        // Handle each failure
//	    }
//	}
type ParseErrors struct {
	Errors []*ParseError
}

// Error returns a formatted error message.
func (m *ParseErrors) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}

	return fmt.Sprintf("%d parameter parse errors occurred", len(m.Errors))
}

// Unwrap returns all errors for errors.Is/As compatibility.
func (m *ParseErrors) Unwrap() []error {
	errs := make([]error, 0, len(m.Errors))
	for _, e := range m.Errors {
		errs = append(errs, e)
	}

	return errs
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (m *ParseErrors) HTTPStatus() int {
	return 400 // Bad Request
}

// Details implements rivaas.dev/errors.ErrorDetails.
func (m *ParseErrors) Details() any {
	return m.Errors
}

// Code implements rivaas.dev/errors.ErrorCode.
func (m *ParseErrors) Code() string {
	return "parameter_parse_errors"
}

// Add appends a failure to the aggregate.
func (m *ParseErrors) Add(err *ParseError) {
	m.Errors = append(m.Errors, err)
}

// HasErrors returns true if there are any errors.
func (m *ParseErrors) HasErrors() bool {
	return len(m.Errors) > 0
}

// ErrorOrNil returns nil if there are no errors, otherwise the aggregate.
func (m *ParseErrors) ErrorOrNil() error {
	if !m.HasErrors() {
		return nil
	}

	return m
}

// Fields collects the non-nil errors from decoding several parameters into a
// single *ParseErrors. Errors that are not *ParseError are wrapped so the
// aggregate stays uniform. Fields returns nil when every error is nil,
// making it convenient as a final combined check:
//
//	limit, errLimit := param.Lookup(q, "limit", param.Int)
//	since, errSince := param.Lookup(q, "since", param.Instant)
//	if err := param.Fields(errLimit, errSince); err != nil {
//	    return err
//	}
func Fields(errs ...error) error {
	var m ParseErrors
	for _, err := range errs {
		if err == nil {
			continue
		}

		// Splice nested aggregates so Fields(Fields(a, b), c) stays flat.
		var nested *ParseErrors
		if errors.As(err, &nested) {
			m.Errors = append(m.Errors, nested.Errors...)
			continue
		}

		var pe *ParseError
		if errors.As(err, &pe) {
			m.Add(pe)
			continue
		}

		m.Add(&ParseError{Type: "unknown", Err: err})
	}

	return m.ErrorOrNil()
}
