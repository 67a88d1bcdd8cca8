package lemac

import (
	"crypto/cipher"
	"crypto/subtle"
	"errors"
)

// Fixed sizes of every LeMac variant.
const (
	KeySize   = 16
	NonceSize = 16
	TagSize   = 16
)

// Degree selects the SIMD lane width of a LeMac variant: LeMac (1 lane),
// LeMac-X2 (2 lanes), or LeMac-X4 (4 lanes). Degree also doubles as the
// construction's "parallelism" constant.
type Degree int

const (
	Degree1 Degree = 1
	Degree2 Degree = 2
	Degree4 Degree = 4
)

// String names the variant the way the paper does.
func (d Degree) String() string {
	switch d {
	case Degree1:
		return "LeMac"
	case Degree2:
		return "LeMac-X2"
	case Degree4:
		return "LeMac-X4"
	default:
		return "LeMac-invalid"
	}
}

// BlockSize returns the informational absorption granularity, in bytes, for
// this degree: 64 bytes per lane.
func (d Degree) BlockSize() int { return 64 * int(d) }

var (
	// ErrInvalidKeySize is returned by New when key is not KeySize bytes.
	ErrInvalidKeySize = errors.New("lemac: invalid key size")
	// ErrInvalidNonceSize is returned by MAC when nonce is not NonceSize bytes.
	ErrInvalidNonceSize = errors.New("lemac: invalid nonce size")
	// ErrInvalidDegree is returned by New for any degree other than 1, 2, or 4.
	ErrInvalidDegree = errors.New("lemac: invalid degree")
)

// Context is an immutable, reusable LeMac key schedule. Build one with New
// (or New1/New2/New4) and call MAC on it as many times as needed; a single
// Context may be shared across goroutines without synchronization, since
// MAC only ever reads Context and writes its own local state.
type Context struct {
	degree      int
	initState   [9]wideBlock
	subkeys     [18]wideBlock
	nonceKey    cipher.Block
	finalizeKey cipher.Block
}

// New builds a Context for the given degree and a 16-byte key.
func New(degree Degree, key []byte) (*Context, error) {
	switch degree {
	case Degree1, Degree2, Degree4:
	default:
		return nil, ErrInvalidDegree
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return newContext(int(degree), key)
}

// New1 builds a Context for plain LeMac (parallelism 1).
func New1(key []byte) (*Context, error) { return New(Degree1, key) }

// New2 builds a Context for LeMac-X2 (parallelism 2).
func New2(key []byte) (*Context, error) { return New(Degree2, key) }

// New4 builds a Context for LeMac-X4 (parallelism 4).
func New4(key []byte) (*Context, error) { return New(Degree4, key) }

// Degree reports the lane width c was constructed with.
func (c *Context) Degree() Degree { return Degree(c.degree) }

// BlockSize returns the informational absorption granularity, in bytes.
func (c *Context) BlockSize() int { return 64 * c.degree }

// MAC computes the 16-byte LeMac tag of msg under nonce. It never mutates c
// and is deterministic: equal (c, msg, nonce) always yield equal tags.
func (c *Context) MAC(msg, nonce []byte) ([16]byte, error) {
	if len(nonce) != NonceSize {
		return [16]byte{}, ErrInvalidNonceSize
	}
	var n [16]byte
	copy(n[:], nonce)

	S := absorb(c, msg)
	return finalize(c, S, n), nil
}

// Equal reports whether two tags are equal, comparing in constant time.
// Tag verification is a caller responsibility — LeMac only produces tags —
// so verifiers must use Equal (or an equivalent constant-time comparison)
// rather than == or bytes.Equal.
func Equal(a, b [16]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
