package lemac

// aesModified implements the "modified AES" transform used in finalization:
// an XOR with window[0], nine full AES rounds (SubBytes+ShiftRows+
// MixColumns+AddRoundKey) under window[1..9], and one further full round
// whose round key is all-zero. That last round is deliberately not the
// standard AES final round: it keeps MixColumns. window must have exactly
// 10 elements.
func aesModified(window []wideBlock, x wideBlock) wideBlock {
	y := x.xor(window[0])
	for i := 1; i < 10; i++ {
		y = y.aesRound(window[i])
	}
	return y.aesRound(zeroWide(x.d))
}

// finalize collapses the post-absorption state S into the 16-byte tag: fold
// the 9 state blocks through overlapping 10-wide subkey windows, XOR-fold
// lanes down to 128 bits, mix in the nonce, and encrypt once more under
// finalizeKey.
func finalize(ctx *Context, S [9]wideBlock, nonce [16]byte) [16]byte {
	T := aesModified(ctx.subkeys[0:10], S[0])
	for i := 1; i <= 8; i++ {
		T = T.xor(aesModified(ctx.subkeys[i:i+10], S[i]))
	}

	t128 := T.foldLanes()

	var nonceEnc lane
	ctx.nonceKey.Encrypt(nonceEnc[:], nonce[:])

	t128 = xorLane(t128, nonce)
	t128 = xorLane(t128, nonceEnc)

	var tag [16]byte
	ctx.finalizeKey.Encrypt(tag[:], t128[:])
	return tag
}
