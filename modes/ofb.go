package modes

import "github.com/blockciphers/corecipher/modes/internal"

// OFB 结构体实现了 GOST R 34.13-2015 广义输出反馈(OFB)模式：一个
// z 个块组成的密钥流状态环，每次迭代加密环上当前位置的块、推进位置、
// 取结果的前 s 字节与数据异或。z=1, s=blockSize 时与教科书 OFB
// 完全等价。
type OFB struct {
	cipher BlockCipher
	state  [][]byte
	pos    int
	s      int
}

// NewOFB 创建一个新的（z=1）OFB 模式封装器。
func NewOFB(cipher BlockCipher, iv []byte) (*OFB, error) {
	return NewGOSTOFB(cipher, iv, 1, cipher.BlockSize())
}

// NewGOSTOFB 创建一个 z 块状态环、s 字节输出宽度的广义 OFB 模式封装器。
func NewGOSTOFB(cipher BlockCipher, iv []byte, z, s int) (*OFB, error) {
	if z <= 0 {
		return nil, ErrInvalidBlockSize
	}
	blockSize := cipher.BlockSize()
	if s <= 0 || s > blockSize {
		return nil, ErrInvalidBlockSize
	}
	if len(iv) != z*blockSize {
		return nil, ErrInvalidIVLength
	}

	state := make([][]byte, z)
	for i := 0; i < z; i++ {
		block := make([]byte, blockSize)
		copy(block, iv[i*blockSize:(i+1)*blockSize])
		state[i] = block
	}

	return &OFB{
		cipher: cipher,
		state:  state,
		pos:    0,
		s:      s,
	}, nil
}

// Encrypt 使用 OFB 模式加密数据，数据长度不要求是块大小的整数倍。
func (o *OFB) Encrypt(dst, plaintext []byte) error {
	if len(dst) < len(plaintext) {
		return ErrBufferMismatch
	}

	for i := 0; i < len(plaintext); i += o.s {
		stateBlock := o.state[o.pos]
		if err := o.cipher.Encrypt(stateBlock, stateBlock); err != nil {
			return err
		}
		o.pos = (o.pos + 1) % len(o.state)

		n := o.s
		if i+n > len(plaintext) {
			n = len(plaintext) - i
		}
		internal.XORBytes(dst[i:i+n], plaintext[i:i+n], stateBlock[:n])
	}

	return nil
}

// Decrypt 使用 OFB 模式解密数据（OFB 模式中加解密操作相同）。
func (o *OFB) Decrypt(dst, ciphertext []byte) error {
	return o.Encrypt(dst, ciphertext)
}

// ExportState 导出内部密钥流状态环，按环上顺序从当前位置起拼接，
// 可用于暂停后用 NewGOSTOFB 恢复。
func (o *OFB) ExportState() []byte {
	blockSize := o.cipher.BlockSize()
	out := make([]byte, blockSize*len(o.state))
	for i := range o.state {
		n := (o.pos + i) % len(o.state)
		copy(out[blockSize*i:blockSize*(i+1)], o.state[n])
	}
	return out
}

// BlockSize 返回块大小
func (o *OFB) BlockSize() int {
	return o.cipher.BlockSize()
}
