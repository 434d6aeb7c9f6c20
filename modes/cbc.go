package modes

import (
	"github.com/blockciphers/corecipher/modes/internal"
)

// CBC 结构体实现了 GOST R 34.13-2015 广义密码块链接(CBC)模式：一个
// z 个块组成的状态环，按位置轮转参与异或。z=1 时与教科书 CBC
// 完全等价。
type CBC struct {
	cipher BlockCipher
	state  [][]byte
	pos    int
}

// NewCBC 创建一个标准的（z=1）CBC 模式封装器。
func NewCBC(cipher BlockCipher, iv []byte) (*CBC, error) {
	return NewGOSTCBC(cipher, iv, 1)
}

// NewGOSTCBC 创建一个 z 块状态环的广义 CBC 模式封装器。iv 的长度必须
// 恰好是 z 倍的块大小，每个块依次填入状态环。
func NewGOSTCBC(cipher BlockCipher, iv []byte, z int) (*CBC, error) {
	if z <= 0 {
		return nil, ErrInvalidBlockSize
	}
	blockSize := cipher.BlockSize()
	if len(iv) != z*blockSize {
		return nil, ErrInvalidIVLength
	}

	state := make([][]byte, z)
	for i := 0; i < z; i++ {
		block := make([]byte, blockSize)
		copy(block, iv[i*blockSize:(i+1)*blockSize])
		state[i] = block
	}

	return &CBC{
		cipher: cipher,
		state:  state,
		pos:    0,
	}, nil
}

// Encrypt 使用 CBC 模式加密数据（不含填充，要求输入长度为块大小的整数倍）
func (c *CBC) Encrypt(dst, plaintext []byte) error {
	blockSize := c.cipher.BlockSize()

	if len(plaintext)%blockSize != 0 {
		return ErrInvalidDataSize
	}
	if len(dst) < len(plaintext) {
		return ErrBufferMismatch
	}

	block := make([]byte, blockSize)
	for i := 0; i < len(plaintext); i += blockSize {
		sb := c.state[c.pos]

		internal.XORBytes(block, plaintext[i:i+blockSize], sb)
		if err := c.cipher.Encrypt(block, block); err != nil {
			return err
		}

		copy(sb, block)
		copy(dst[i:i+blockSize], block)

		c.pos = (c.pos + 1) % len(c.state)
	}

	return nil
}

// Decrypt 使用 CBC 模式解密数据（不移除填充，要求输入长度为块大小的整数倍）
func (c *CBC) Decrypt(dst, ciphertext []byte) error {
	blockSize := c.cipher.BlockSize()

	if len(ciphertext)%blockSize != 0 {
		return ErrInvalidDataSize
	}
	if len(dst) < len(ciphertext) {
		return ErrBufferMismatch
	}

	decrypted := make([]byte, blockSize)
	curCopy := make([]byte, blockSize)
	for i := 0; i < len(ciphertext); i += blockSize {
		sb := c.state[c.pos]
		cur := ciphertext[i : i+blockSize]
		copy(curCopy, cur) // cur may alias dst[i:i+blockSize] for in-place decryption

		if err := c.cipher.Decrypt(decrypted, cur); err != nil {
			return err
		}
		internal.XORBytes(dst[i:i+blockSize], decrypted, sb)

		copy(sb, curCopy)
		c.pos = (c.pos + 1) % len(c.state)
	}

	return nil
}

// BlockSize 返回块大小
func (c *CBC) BlockSize() int {
	return c.cipher.BlockSize()
}
