package lemac

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// domainInput builds the 16-byte, little-endian domain-separated input block
// that the key schedule encrypts under the master cipher: bytes[0:8] =
// little-endian position, bytes[8:14] = 0, byte[14] = lane, byte[15] =
// dField. For the init-state and subkey positions, lane and dField carry
// the real lane index and D-1; for the auxiliary constants (27, 28) both
// are forced to zero regardless of degree, see DESIGN.md.
func domainInput(position uint64, laneIdx, dField byte) lane {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], position)
	b[14] = laneIdx
	b[15] = dField
	return b
}

func encryptLane(c cipher.Block, in lane) lane {
	var out lane
	c.Encrypt(out[:], in[:])
	return out
}

// deriveWide encrypts the d per-lane domain-separated inputs for a logical
// position and packs the results into one wide block, lane 0 first.
func deriveWide(c cipher.Block, position uint64, d int) wideBlock {
	w := wideBlock{d: d}
	for ln := 0; ln < d; ln++ {
		w.lanes[ln] = encryptLane(c, domainInput(position, byte(ln), byte(d-1)))
	}
	return w
}

// newContext builds the immutable Context for degree d and a 16-byte key:
// the 9-block init_state, the 18 absorption subkeys, and the nonce/finalize
// auxiliary AES-128 keys. It is pure and side-effect free.
func newContext(d int, key []byte) (*Context, error) {
	masterCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	ctx := &Context{degree: d}

	for i := 0; i < len(ctx.initState); i++ {
		ctx.initState[i] = deriveWide(masterCipher, uint64(i), d)
	}
	for i := 0; i < len(ctx.subkeys); i++ {
		ctx.subkeys[i] = deriveWide(masterCipher, uint64(i+len(ctx.initState)), d)
	}

	auxK2 := encryptLane(masterCipher, domainInput(27, 0, 0))
	auxK3 := encryptLane(masterCipher, domainInput(28, 0, 0))

	nonceKey, err := aes.NewCipher(auxK2[:])
	if err != nil {
		return nil, err
	}
	finalizeKey, err := aes.NewCipher(auxK3[:])
	if err != nil {
		return nil, err
	}

	ctx.nonceKey = nonceKey
	ctx.finalizeKey = finalizeKey
	return ctx, nil
}
