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

// Package codectest checks algebraic laws and round-trip behavior of
// rivaas.dev/param codecs against randomly sampled inputs.
//
// Every check is parameterized by a generator ([Gen]) producing random
// values and, where typed values are compared, an equality ([Eq]). Custom
// codec authors plug in generators and equality for their own types:
//
//	func TestUserIDCodec(t *testing.T) {
//	    codectest.RoundTrip(t, userIDCodec,
//	        func(r *rand.Rand) UserID { return UserID(r.Int64()) },
//	        codectest.DefaultEq[UserID](),
//	    )
//	}
//
// # Equality Is Sampled, Not Proven
//
// Two decoders are treated as equal when they agree on [Samples]
// independently generated raw inputs; two encoders when they agree on
// [Samples] generated typed inputs. Decoders agree on an input when both
// fail, or both succeed with equal values; failure contents are not
// compared. This is an approximation adequate for catching law violations,
// not a proof of equivalence.
//
// Sampling is deterministic: every check runs on the same fixed-seed
// stream, so a failure reproduces on the next run.
package codectest
