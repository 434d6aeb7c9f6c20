package modes

import (
	"github.com/blockciphers/corecipher/modes/internal"
)

// CFB 结构体实现了 GOST R 34.13-2015 广义密码反馈(CFB)模式：一个
// m 字节的移位寄存器，每次迭代加密寄存器的前 blockSize 字节，取其前
// s 字节与数据异或，然后将寄存器左移 s 字节并把本次产生的密文追加
// 到末尾。m=blockSize, s=blockSize 时与教科书 CFB 完全等价。
type CFB struct {
	cipher      BlockCipher
	register    []byte
	segmentSize int // s：每次异或使用的输出字节数
}

// NewCFB 创建一个新的 CFB 模式封装器（全块反馈，段大小等于块大小）。
func NewCFB(cipher BlockCipher, iv []byte) (*CFB, error) {
	blockSize := cipher.BlockSize()
	return NewGOSTCFB(cipher, iv, blockSize, blockSize)
}

// NewGOSTCFB 创建一个广义 CFB 模式封装器。m 是移位寄存器的字节数
// （要求 m >= blockSize），s 是每次异或使用的输出字节数（要求
// 0 < s <= blockSize）。
func NewGOSTCFB(cipher BlockCipher, iv []byte, m, s int) (*CFB, error) {
	blockSize := cipher.BlockSize()
	if m < blockSize {
		return nil, ErrInvalidIVLength
	}
	if s <= 0 || s > blockSize {
		return nil, ErrInvalidBlockSize
	}
	if len(iv) != m {
		return nil, ErrInvalidIVLength
	}

	register := make([]byte, m)
	copy(register, iv)

	return &CFB{
		cipher:      cipher,
		register:    register,
		segmentSize: s,
	}, nil
}

// WithSegmentSize 在标准（m=blockSize）构造之后调整段大小 s。
func (c *CFB) WithSegmentSize(segmentSize int) (*CFB, error) {
	if segmentSize <= 0 || segmentSize > c.cipher.BlockSize() {
		return nil, ErrInvalidBlockSize
	}
	c.segmentSize = segmentSize
	return c, nil
}

// Encrypt 使用 CFB 模式加密数据，数据长度不要求是块大小的整数倍。
func (c *CFB) Encrypt(dst, plaintext []byte) error {
	if len(dst) < len(plaintext) {
		return ErrBufferMismatch
	}
	blockSize := c.cipher.BlockSize()
	encrypted := make([]byte, blockSize)

	for i := 0; i < len(plaintext); i += c.segmentSize {
		if err := c.cipher.Encrypt(encrypted, c.register[:blockSize]); err != nil {
			return err
		}

		n := c.segmentSize
		if i+n > len(plaintext) {
			n = len(plaintext) - i
		}

		internal.XORBytes(dst[i:i+n], plaintext[i:i+n], encrypted[:n])
		c.shiftRegister(dst[i : i+n])
	}

	return nil
}

// Decrypt 使用 CFB 模式解密数据。
func (c *CFB) Decrypt(dst, ciphertext []byte) error {
	if len(dst) < len(ciphertext) {
		return ErrBufferMismatch
	}
	blockSize := c.cipher.BlockSize()
	encrypted := make([]byte, blockSize)
	produced := make([]byte, c.segmentSize)

	for i := 0; i < len(ciphertext); i += c.segmentSize {
		if err := c.cipher.Encrypt(encrypted, c.register[:blockSize]); err != nil {
			return err
		}

		n := c.segmentSize
		if i+n > len(ciphertext) {
			n = len(ciphertext) - i
		}

		copy(produced[:n], ciphertext[i:i+n]) // ciphertext may alias dst
		internal.XORBytes(dst[i:i+n], ciphertext[i:i+n], encrypted[:n])
		c.shiftRegister(produced[:n])
	}

	return nil
}

// shiftRegister 将寄存器左移 len(fed) 字节，并把 fed 追加到末尾。
func (c *CFB) shiftRegister(fed []byte) {
	n := len(fed)
	copy(c.register, c.register[n:])
	copy(c.register[len(c.register)-n:], fed)
}

// BlockSize 返回块大小
func (c *CFB) BlockSize() int {
	return c.cipher.BlockSize()
}
