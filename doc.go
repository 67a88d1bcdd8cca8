/*
Package lemac implements the LeMac family of AES-based message authentication
codes, as described in "Fast AES-Based Universal Hash Functions and MACs"
(ToSC) and its corrigendum.

LeMac is a keyed, nonce-taking 128-bit MAC built entirely from the AES round
function. It comes in three degrees that differ only in how many AES lanes
they process per round — LeMac (1 lane), LeMac-X2 (2 lanes), and LeMac-X4 (4
lanes) — so that a wide-SIMD AES implementation can saturate its pipeline.
The three degrees are independent MAC families: the same key, nonce, and
message produce unrelated tags under each degree.

Basic Usage:

	key := make([]byte, lemac.KeySize)
	// Fill key with random bytes...

	ctx, err := lemac.New1(key) // or New2, New4, or New(lemac.Degree2, key)
	if err != nil {
		panic(err)
	}

	nonce := make([]byte, lemac.NonceSize)
	tag, err := ctx.MAC([]byte("a message"), nonce)
	if err != nil {
		panic(err)
	}

	// Verifying a tag received from elsewhere must use a constant-time
	// comparison:
	want, _ := ctx.MAC([]byte("a message"), nonce)
	if !lemac.Equal(tag, want) {
		panic("authentication failed")
	}

A Context is built once per key with New and is immutable afterward: it may
be shared across goroutines and reused for any number of MAC calls without
locking. LeMac has no streaming/incremental API, no tag truncation, and no
variable-length keys or tags — every MAC call is a single, self-contained
pass over the whole message.
*/
package lemac
