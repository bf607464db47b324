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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSucceed verifies the constant decoder ignores its input entirely.
func TestSucceed(t *testing.T) {
	t.Parallel()

	d := Succeed(42)

	inputs := []string{"", "42", "garbage", "true", strings.Repeat("x", 1000)}
	for _, in := range inputs {
		v, err := d.Decode(Raw(in))
		require.NoError(t, err, "Succeed must not fail on input %q", in)
		assert.Equal(t, 42, v)
	}
}

// TestEmpty verifies the identity decoder fails on every input.
func TestEmpty(t *testing.T) {
	t.Parallel()

	d := Empty[string]()

	for _, in := range []string{"", "anything", "true"} {
		_, err := d.Decode(Raw(in))
		require.Error(t, err, "Empty must fail on input %q", in)
		assert.ErrorIs(t, err, ErrNoDecoderMatched)
	}
}

// TestMap tests success transformation and failure passthrough.
func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("transforms success value", func(t *testing.T) {
		t.Parallel()

		doubled := Map(Int.Decoder(), func(n int) int { return n * 2 })

		v, err := doubled.Decode(Raw("21"))
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("changes result type", func(t *testing.T) {
		t.Parallel()

		asLen := Map(String.Decoder(), func(s string) int { return len(s) })

		v, err := asLen.Decode(Raw("hello"))
		require.NoError(t, err)
		assert.Equal(t, 5, v)
	})

	t.Run("preserves failure untouched", func(t *testing.T) {
		t.Parallel()

		doubled := Map(Int.Decoder(), func(n int) int { return n * 2 })

		_, err := doubled.Decode(Raw("not-a-number"))
		require.Error(t, err)

		var pe *ParseError
		require.ErrorAs(t, err, &pe, "mapped decoder must surface the original ParseError")
		assert.Equal(t, "int", pe.Type)
		assert.Equal(t, "not-a-number", pe.Value)
	})
}

// TestOrElse tests the or-else combination semantics: first success wins,
// and when every alternative fails the last failure is kept.
func TestOrElse(t *testing.T) {
	t.Parallel()

	errFirst := errors.New("first failed")
	errSecond := errors.New("second failed")

	fail := func(cause error) Decoder[int] {
		return func(raw RawValue) (int, error) {
			return 0, newParseError("int", raw, cause)
		}
	}

	tests := []struct {
		name    string
		first   Decoder[int]
		second  Decoder[int]
		want    int
		wantErr error
	}{
		{
			name:   "first succeeds, second ignored",
			first:  Succeed(1),
			second: Succeed(2),
			want:   1,
		},
		{
			name:   "first fails, second wins",
			first:  fail(errFirst),
			second: Succeed(2),
			want:   2,
		},
		{
			name:    "both fail, last failure kept",
			first:   fail(errFirst),
			second:  fail(errSecond),
			wantErr: errSecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := tt.first.OrElse(tt.second).Decode(Raw("input"))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, errFirst, "first failure must be discarded")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

// TestOrElse_DecoderChain exercises a realistic fallback chain: an id is
// either numeric or one of a few aliases.
func TestOrElse_DecoderChain(t *testing.T) {
	t.Parallel()

	aliases := Map(Enum[string]("alias", "first", "last").Decoder(), func(s string) int {
		if s == "first" {
			return 0
		}

		return -1
	})
	d := Int.Decoder().OrElse(aliases)

	v, err := d.Decode(Raw("17"))
	require.NoError(t, err)
	assert.Equal(t, 17, v)

	v, err = d.Decode(Raw("LAST"))
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	_, err = d.Decode(Raw("middle"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValueNotAllowed, "last failure in the chain is the one reported")
}
