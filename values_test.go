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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLookup covers presence semantics: present-empty decodes, absent fails.
func TestLookup(t *testing.T) {
	t.Parallel()

	values, err := url.ParseQuery("page=3&q=&bad=x")
	require.NoError(t, err)

	t.Run("present value decodes", func(t *testing.T) {
		t.Parallel()

		page, err := Lookup(values, "page", Int)
		require.NoError(t, err)
		assert.Equal(t, 3, page)
	})

	t.Run("present empty value decodes the empty raw", func(t *testing.T) {
		t.Parallel()

		q, err := Lookup(values, "q", String)
		require.NoError(t, err)
		assert.Equal(t, "", q)
	})

	t.Run("absent key fails with ErrMissingParam", func(t *testing.T) {
		t.Parallel()

		_, err := Lookup(values, "limit", Int)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingParam)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "limit", pe.Field)
	})

	t.Run("decode failure carries the parameter name", func(t *testing.T) {
		t.Parallel()

		_, err := Lookup(values, "bad", Int)
		require.Error(t, err)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "bad", pe.Field)
		assert.Equal(t, "int", pe.Type)
		assert.Equal(t, "x", pe.Value)
	})
}

// TestLookupOr substitutes the default only for absence, never for
// malformed input.
func TestLookupOr(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set("limit", "oops")

	v, err := LookupOr(values, "page", Int, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "absent key takes the default")

	_, err = LookupOr(values, "limit", Int, 50)
	require.Error(t, err, "malformed value must fail even with a default")
}

// TestApply encodes into url.Values; url.Values.Encode does the escaping.
func TestApply(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	Apply(values, "page", Int, 7)
	Apply(values, "q", String, "a b")

	assert.Equal(t, "7", values.Get("page"))
	assert.Equal(t, "a b", values.Get("q"), "stored unescaped")
	assert.Contains(t, values.Encode(), "q=a+b", "escaping happens at assembly")

	// Apply replaces existing values.
	Apply(values, "page", Int, 8)
	assert.Equal(t, []string{"8"}, values["page"])
}

// TestFields aggregates per-parameter failures in order.
func TestFields(t *testing.T) {
	t.Parallel()

	values, err := url.ParseQuery("page=x&active=maybe&q=ok")
	require.NoError(t, err)

	_, errPage := Lookup(values, "page", Int)
	_, errActive := Lookup(values, "active", Bool)
	q, errQ := Lookup(values, "q", String)

	require.NoError(t, errQ)
	assert.Equal(t, "ok", q)

	combined := Fields(errPage, errActive, errQ)
	require.Error(t, combined)

	var errs *ParseErrors
	require.ErrorAs(t, combined, &errs)
	require.Len(t, errs.Errors, 2)
	assert.Equal(t, "page", errs.Errors[0].Field, "order of addition is preserved")
	assert.Equal(t, "active", errs.Errors[1].Field)

	t.Run("all nil yields nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, Fields(nil, nil))
	})

	t.Run("nested aggregates are flattened", func(t *testing.T) {
		t.Parallel()

		flat := Fields(Fields(errPage, errActive), errQ)
		require.Error(t, flat)

		var inner *ParseErrors
		require.ErrorAs(t, flat, &inner)
		assert.Len(t, inner.Errors, 2)
	})
}
