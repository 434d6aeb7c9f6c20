// Package aes implements the Advanced Encryption Standard (FIPS 197)
// with a constant-time software core and a second, table-driven core
// that NewAuto selects when the CPU reports AES instructions. The
// second core is portable Go; it does not issue AES instructions.
package aes

import "github.com/blockciphers/corecipher/internal/cpufeature"

// Key and block sizes, in bytes.
const (
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
	BlockSize  = 16
)

// blockCore is the single-block primitive both backends implement. A
// Cipher holds one as an interface value: the concrete type stored in
// it *is* the tagged-union discriminator, so selecting hardware vs soft
// costs one interface dispatch and no extra field or branch.
type blockCore interface {
	encryptBlock(dst, src []byte)
	decryptBlock(dst, src []byte)
}

// Cipher is an AES instance for a fixed key. It is immutable after
// construction and safe for concurrent use by multiple goroutines.
type Cipher struct {
	core blockCore
}

// New constructs an AES cipher that always uses the constant-time
// software core, regardless of what the CPU supports.
func New(key []byte) (*Cipher, error) {
	core, err := newSoftCipher(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{core: core}, nil
}

// NewAuto constructs an AES cipher that uses the table-driven hwCipher
// core (see hw.go; portable Go, no AES instructions) when the
// process-wide feature token reports hardware AES support, and the
// software core otherwise. The token is resolved at
// most once per process; every call after the first reads the cached
// result.
func NewAuto(key []byte) (*Cipher, error) {
	if cpufeature.Detect().HasHardwareAES() {
		core, err := newHWCipher(key)
		if err != nil {
			return nil, err
		}
		return &Cipher{core: core}, nil
	}
	return New(key)
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the block in src into dst. src and dst may alias the
// same underlying array (in-place encryption).
func (c *Cipher) Encrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	c.core.encryptBlock(dst[:BlockSize], src[:BlockSize])
	return nil
}

// Decrypt decrypts the block in src into dst. src and dst may alias the
// same underlying array (in-place decryption).
func (c *Cipher) Decrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	c.core.decryptBlock(dst[:BlockSize], src[:BlockSize])
	return nil
}

// EncryptBlocks encrypts every block in blocks in order, in place.
// pre, when non-nil, runs on a block immediately before it is
// encrypted; post, when non-nil, runs immediately after. This is the
// scalar (N=1) form of the batched pre/post hook contract: modes use it
// to fold feedback-register XORs into the per-block loop without a
// second pass over the slice.
func (c *Cipher) EncryptBlocks(blocks [][]byte, pre, post func(i int, block []byte)) error {
	for i, b := range blocks {
		if len(b) != BlockSize {
			return ErrBufferMismatch
		}
		if pre != nil {
			pre(i, b)
		}
		c.core.encryptBlock(b, b)
		if post != nil {
			post(i, b)
		}
	}
	return nil
}

// DecryptBlocks is the decrypting counterpart of EncryptBlocks.
func (c *Cipher) DecryptBlocks(blocks [][]byte, pre, post func(i int, block []byte)) error {
	for i, b := range blocks {
		if len(b) != BlockSize {
			return ErrBufferMismatch
		}
		if pre != nil {
			pre(i, b)
		}
		c.core.decryptBlock(b, b)
		if post != nil {
			post(i, b)
		}
	}
	return nil
}
