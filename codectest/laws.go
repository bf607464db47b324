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
	"testing"

	"rivaas.dev/param"
)

// Samples is how many random inputs each check draws. Two decoders or
// encoders that agree on this many samples are treated as equal.
const Samples = 100

// newRand returns the fixed-seed stream every check samples from, keeping
// failures reproducible across runs.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(2026, 0x9e3779b97f4a7c15))
}

// RoundTrip checks that c.Decode(c.Encode(v)) succeeds and yields a value
// equal to v for generated values.
func RoundTrip[T any](t *testing.T, c param.Codec[T], gen Gen[T], eq Eq[T]) {
	t.Helper()

	r := newRand()
	for i := 0; i < Samples; i++ {
		v := gen(r)
		raw := c.Encode(v)

		got, err := c.Decode(raw)
		if err != nil {
			t.Fatalf("round-trip: decode(encode(%v)) failed on raw %q: %v", v, raw.String(), err)
		}
		if !eq(got, v) {
			t.Fatalf("round-trip: decode(encode(%v)) = %v via raw %q, values differ", v, got, raw.String())
		}
	}
}

// AlwaysSucceeds checks that the decoder returns want for every generated
// raw input. param.Succeed instances must pass this for any input stream.
func AlwaysSucceeds[T any](t *testing.T, d param.Decoder[T], want T, genRaw Gen[string], eq Eq[T]) {
	t.Helper()

	r := newRand()
	for i := 0; i < Samples; i++ {
		raw := param.Raw(genRaw(r))

		got, err := d.Decode(raw)
		if err != nil {
			t.Fatalf("decoder failed on %q: %v, want constant success", raw.String(), err)
		}
		if !eq(got, want) {
			t.Fatalf("decoder returned %v on %q, want constant %v", got, raw.String(), want)
		}
	}
}

// DecodersEquivalent checks that two decoders agree on generated raw
// inputs: both fail, or both succeed with equal values. Failure contents
// are deliberately not compared.
func DecodersEquivalent[T any](t *testing.T, a, b param.Decoder[T], genRaw Gen[string], eq Eq[T]) {
	t.Helper()
	decodersAgree(t, "decoders", a, b, genRaw, eq)
}

// EncodersEquivalent checks that two encoders produce identical raw text
// for generated typed inputs.
func EncodersEquivalent[T any](t *testing.T, a, b param.Encoder[T], gen Gen[T]) {
	t.Helper()
	encodersAgree(t, "encoders", a, b, gen)
}

// DecoderFunctorLaws checks the functor laws for Map over a decoder:
// mapping the identity changes nothing, and mapping a composition equals
// composing two maps. f and g must be pure.
func DecoderFunctorLaws[T, U, V any](
	t *testing.T,
	d param.Decoder[T],
	f func(T) U,
	g func(U) V,
	genRaw Gen[string],
	eqT Eq[T],
	eqV Eq[V],
) {
	t.Helper()

	identity := param.Map(d, func(v T) T { return v })
	decodersAgree(t, "functor identity", identity, d, genRaw, eqT)

	composed := param.Map(d, func(v T) V { return g(f(v)) })
	chained := param.Map(param.Map(d, f), g)
	decodersAgree(t, "functor composition", composed, chained, genRaw, eqV)
}

// DecoderOrElseLaws checks that OrElse forms a monoid over decoders:
// param.Empty is an identity on both sides and combination is associative.
func DecoderOrElseLaws[T any](t *testing.T, x, y, z param.Decoder[T], genRaw Gen[string], eq Eq[T]) {
	t.Helper()

	empty := param.Empty[T]()
	decodersAgree(t, "or-else left identity", empty.OrElse(x), x, genRaw, eq)
	decodersAgree(t, "or-else right identity", x.OrElse(empty), x, genRaw, eq)

	left := x.OrElse(y).OrElse(z)
	right := x.OrElse(y.OrElse(z))
	decodersAgree(t, "or-else associativity", left, right, genRaw, eq)
}

// EncoderContravariantLaws checks the contravariant functor laws for
// Contramap over an encoder: pre-composing the identity changes nothing,
// and pre-composing f∘g equals chaining Contramap by f then by g. f and g
// must be pure.
func EncoderContravariantLaws[T, U, V any](
	t *testing.T,
	e param.Encoder[T],
	f func(U) T,
	g func(V) U,
	genT Gen[T],
	genV Gen[V],
) {
	t.Helper()

	identity := param.Contramap(e, func(v T) T { return v })
	encodersAgree(t, "contravariant identity", identity, e, genT)

	composed := param.Contramap(e, func(v V) T { return f(g(v)) })
	chained := param.Contramap(param.Contramap(e, f), g)
	encodersAgree(t, "contravariant composition", composed, chained, genV)
}

// decodersAgree samples raw inputs and reports the first input on which the
// two decoders disagree. Agreement on a failing input requires only that
// both fail.
func decodersAgree[T any](t *testing.T, law string, a, b param.Decoder[T], genRaw Gen[string], eq Eq[T]) {
	t.Helper()

	r := newRand()
	for i := 0; i < Samples; i++ {
		raw := param.Raw(genRaw(r))

		va, errA := a.Decode(raw)
		vb, errB := b.Decode(raw)

		if (errA == nil) != (errB == nil) {
			t.Errorf("%s: decoders disagree on %q: %v vs %v", law, raw.String(), errA, errB)

			return
		}
		if errA == nil && !eq(va, vb) {
			t.Errorf("%s: decoders disagree on %q: %v vs %v", law, raw.String(), va, vb)

			return
		}
	}
}

// encodersAgree samples typed inputs and reports the first value the two
// encoders render differently.
func encodersAgree[T any](t *testing.T, law string, a, b param.Encoder[T], gen Gen[T]) {
	t.Helper()

	r := newRand()
	for i := 0; i < Samples; i++ {
		v := gen(r)

		ra := a.Encode(v)
		rb := b.Encode(v)

		if ra != rb {
			t.Errorf("%s: encoders disagree on %v: %q vs %q", law, v, ra.String(), rb.String())

			return
		}
	}
}
