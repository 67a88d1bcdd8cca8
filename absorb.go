package lemac

// round runs one absorption step over the 9-block state S and the rolling
// register (rr, r0, r1, r2), consuming a 64*D-byte message superblock split
// into four wide blocks M0..M3.
//
// Every right-hand side below reads the value each variable held BEFORE this
// call; S[0]'s update in particular depends on the pre-round S[8], not the
// S[8] this same call just wrote. snapshotting every input first (rather
// than mutating S/the register in place) is what makes that ordering safe
// regardless of call-site optimizations.
func round(S *[9]wideBlock, rr, r0, r1, r2 *wideBlock, M0, M1, M2, M3 wideBlock) {
	old := *S
	oldRR, oldR0, oldR1, oldR2 := *rr, *r0, *r1, *r2

	S[8] = old[7].aesRound(M3)
	S[7] = old[6].aesRound(M1)
	S[6] = old[5].aesRound(M1)
	S[5] = old[4].aesRound(M0)
	S[4] = old[3].aesRound(M0)
	S[3] = old[2].aesRound(oldR1.xor(oldR2))
	S[2] = old[1].aesRound(M3)
	S[1] = old[0].aesRound(M3)
	S[0] = old[0].xor(old[8]).xor(M2)

	*r2 = oldR1
	*r1 = oldR0
	*r0 = oldRR.xor(M1)
	*rr = M2
}

// absorb runs the full absorption procedure over msg and returns the
// resulting 9-block state. It starts from ctx.initState and never mutates
// ctx.
func absorb(ctx *Context, msg []byte) [9]wideBlock {
	d := ctx.degree
	S := ctx.initState
	rr, r0, r1, r2 := zeroWide(d), zeroWide(d), zeroWide(d), zeroWide(d)

	superblockSize := 64 * d
	quarter := 16 * d

	for len(msg) >= superblockSize {
		M0 := wideFromBytes(msg[0*quarter:1*quarter], d)
		M1 := wideFromBytes(msg[1*quarter:2*quarter], d)
		M2 := wideFromBytes(msg[2*quarter:3*quarter], d)
		M3 := wideFromBytes(msg[3*quarter:4*quarter], d)
		round(&S, &rr, &r0, &r1, &r2, M0, M1, M2, M3)
		msg = msg[superblockSize:]
	}

	// Padded terminal superblock: len(msg) < superblockSize <= 256 always
	// holds here, so buf[len(msg)] = 0x01 always lands inside the buffer.
	var buf [64 * maxLanes]byte
	copy(buf[:], msg)
	buf[len(msg)] = 0x01
	padded := buf[:superblockSize]

	M0 := wideFromBytes(padded[0*quarter:1*quarter], d)
	M1 := wideFromBytes(padded[1*quarter:2*quarter], d)
	M2 := wideFromBytes(padded[2*quarter:3*quarter], d)
	M3 := wideFromBytes(padded[3*quarter:4*quarter], d)
	round(&S, &rr, &r0, &r1, &r2, M0, M1, M2, M3)

	zero := zeroWide(d)
	for i := 0; i < 4; i++ {
		round(&S, &rr, &r0, &r1, &r2, zero, zero, zero, zero)
	}

	return S
}
