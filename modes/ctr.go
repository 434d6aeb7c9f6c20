package modes

import (
	"encoding/binary"
	"math"
)

// CTR128 结构体实现了面向 128 位块密码（AES）的计数器(CTR)模式：
// 8 字节大端 nonce 与 8 字节大端计数器拼成一个块，每次迭代加密该块、
// 计数器加一，取结果的前 s 字节与数据异或。计数器不会环绕：当它已到达
// 最大值时返回 ErrCounterOverflow。
type CTR128 struct {
	cipher BlockCipher
	nonce  uint64
	ctr    uint64
	s      int
}

// NewCTR128 创建一个 CTR128 封装器。nonce 必须恰好 8 字节，s 是每次
// 异或使用的输出字节数（默认等于块大小）。
func NewCTR128(cipher BlockCipher, nonce []byte, s int) (*CTR128, error) {
	if cipher.BlockSize() != 16 {
		return nil, ErrInvalidBlockSize
	}
	if len(nonce) != 8 {
		return nil, ErrInvalidIVLength
	}
	if s <= 0 || s > 16 {
		return nil, ErrInvalidBlockSize
	}
	return &CTR128{
		cipher: cipher,
		nonce:  binary.BigEndian.Uint64(nonce),
		ctr:    0,
		s:      s,
	}, nil
}

func (c *CTR128) xorBlock(dst, src []byte) error {
	if c.ctr == math.MaxUint64 {
		return ErrCounterOverflow
	}
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], c.nonce)
	binary.BigEndian.PutUint64(b[8:16], c.ctr)
	if err := c.cipher.Encrypt(b[:], b[:]); err != nil {
		return err
	}
	c.ctr++

	n := len(src)
	if n > c.s {
		n = c.s
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] ^ b[i]
	}
	return nil
}

// Encrypt 使用 CTR 模式加密数据，数据长度不要求是块大小的整数倍。
func (c *CTR128) Encrypt(dst, plaintext []byte) error {
	if len(dst) < len(plaintext) {
		return ErrBufferMismatch
	}
	for i := 0; i < len(plaintext); i += c.s {
		n := c.s
		if i+n > len(plaintext) {
			n = len(plaintext) - i
		}
		if err := c.xorBlock(dst[i:i+n], plaintext[i:i+n]); err != nil {
			return err
		}
	}
	return nil
}

// Decrypt 使用 CTR 模式解密数据（CTR 模式中加解密操作相同）。
func (c *CTR128) Decrypt(dst, ciphertext []byte) error {
	return c.Encrypt(dst, ciphertext)
}

// BlockSize 返回块大小
func (c *CTR128) BlockSize() int { return 16 }

// GetBlockPos 返回当前计数器值。
func (c *CTR128) GetBlockPos() uint64 { return c.ctr }

// SetBlockPos 将计数器定位到给定的块位置，实现随机定位。
func (c *CTR128) SetBlockPos(pos uint64) { c.ctr = pos }

// RemainingBlocks 返回计数器溢出前还可产生的密钥流块数。
func (c *CTR128) RemainingBlocks() uint64 { return math.MaxUint64 - c.ctr }

// CTR64 结构体实现了面向 64 位块密码（DES/3DES）的计数器(CTR)模式：
// 4 字节大端 nonce 与 4 字节大端计数器拼成一个块。
type CTR64 struct {
	cipher BlockCipher
	nonce  uint32
	ctr    uint32
	s      int
}

// NewCTR64 创建一个 CTR64 封装器。nonce 必须恰好 4 字节。
func NewCTR64(cipher BlockCipher, nonce []byte, s int) (*CTR64, error) {
	if cipher.BlockSize() != 8 {
		return nil, ErrInvalidBlockSize
	}
	if len(nonce) != 4 {
		return nil, ErrInvalidIVLength
	}
	if s <= 0 || s > 8 {
		return nil, ErrInvalidBlockSize
	}
	return &CTR64{
		cipher: cipher,
		nonce:  binary.BigEndian.Uint32(nonce),
		ctr:    0,
		s:      s,
	}, nil
}

func (c *CTR64) xorBlock(dst, src []byte) error {
	if c.ctr == math.MaxUint32 {
		return ErrCounterOverflow
	}
	var b [8]byte
	binary.BigEndian.PutUint32(b[0:4], c.nonce)
	binary.BigEndian.PutUint32(b[4:8], c.ctr)
	if err := c.cipher.Encrypt(b[:], b[:]); err != nil {
		return err
	}
	c.ctr++

	n := len(src)
	if n > c.s {
		n = c.s
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] ^ b[i]
	}
	return nil
}

// Encrypt 使用 CTR 模式加密数据。
func (c *CTR64) Encrypt(dst, plaintext []byte) error {
	if len(dst) < len(plaintext) {
		return ErrBufferMismatch
	}
	for i := 0; i < len(plaintext); i += c.s {
		n := c.s
		if i+n > len(plaintext) {
			n = len(plaintext) - i
		}
		if err := c.xorBlock(dst[i:i+n], plaintext[i:i+n]); err != nil {
			return err
		}
	}
	return nil
}

// Decrypt 使用 CTR 模式解密数据（CTR 模式中加解密操作相同）。
func (c *CTR64) Decrypt(dst, ciphertext []byte) error {
	return c.Encrypt(dst, ciphertext)
}

// BlockSize 返回块大小
func (c *CTR64) BlockSize() int { return 8 }

// GetBlockPos 返回当前计数器值。
func (c *CTR64) GetBlockPos() uint64 { return uint64(c.ctr) }

// SetBlockPos 将计数器定位到给定的块位置。
func (c *CTR64) SetBlockPos(pos uint64) { c.ctr = uint32(pos) }

// RemainingBlocks 返回计数器溢出前还可产生的密钥流块数。
func (c *CTR64) RemainingBlocks() uint64 { return uint64(math.MaxUint32 - c.ctr) }
