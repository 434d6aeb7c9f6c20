package modes

import "github.com/blockciphers/corecipher/modes/internal"

// StreamCipher 把一个流式模式（CFB/OFB/CTR）包装成单一方法
// ApplyKeystream，供调用方在不区分具体模式的情况下按任意长度处理
// 数据，输入输出可以别名。
type StreamCipher struct {
	mode BlockMode
}

// NewStreamCipher 包装一个流式模式。
func NewStreamCipher(mode BlockMode) *StreamCipher {
	return &StreamCipher{mode: mode}
}

// ApplyKeystream 将密钥流与 src 异或写入 dst；对 CFB/OFB/CTR 而言
// 加密与应用密钥流是同一操作。
func (s *StreamCipher) ApplyKeystream(dst, src []byte) error {
	return s.mode.Encrypt(dst, src)
}

// Padding 是块模式收尾时使用的填充方案协作者，由 padding 包的具体
// 方案实现。
type Padding interface {
	// Pad 返回在 data 末尾追加填充、长度补齐到 blockSize 整数倍后的
	// 完整数据。
	Pad(data []byte, blockSize int) []byte
	// Unpad 从已解密的末尾去除填充，返回去除后的长度。
	Unpad(data []byte) (int, error)
}

// BlockCipherMode 把一个分组链接模式（CBC）与一个填充方案组合起来，
// 提供处理任意长度明文/密文的 EncryptPadded/DecryptPadded。
type BlockCipherMode struct {
	mode    BlockMode
	padding Padding
}

// NewBlockCipherMode 包装一个分组模式与填充方案。
func NewBlockCipherMode(mode BlockMode, padding Padding) *BlockCipherMode {
	return &BlockCipherMode{mode: mode, padding: padding}
}

// EncryptPadded 对明文施加填充后整体加密，返回长度是块大小整数倍的
// 密文。
func (b *BlockCipherMode) EncryptPadded(plaintext []byte) ([]byte, error) {
	blockSize := b.mode.BlockSize()
	padded := b.padding.Pad(internal.DuplicateSlice(plaintext), blockSize)

	ciphertext := make([]byte, len(padded))
	if err := b.mode.Encrypt(ciphertext, padded); err != nil {
		return nil, err
	}
	return ciphertext, nil
}

// DecryptPadded 整体解密后去除填充，返回原始明文；填充无效时返回
// ErrBadPadding。
func (b *BlockCipherMode) DecryptPadded(ciphertext []byte) ([]byte, error) {
	blockSize := b.mode.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, ErrInvalidDataSize
	}

	plaintext := make([]byte, len(ciphertext))
	if err := b.mode.Decrypt(plaintext, ciphertext); err != nil {
		return nil, err
	}

	n, err := b.padding.Unpad(plaintext)
	if err != nil {
		return nil, ErrBadPadding
	}
	return plaintext[:n], nil
}

// SeekableStreamCipher 在 StreamCipher 之上为支持随机定位的模式
// （CTR128/CTR64）添加按字节偏移量定位的 Seek。
type SeekableStreamCipher struct {
	*StreamCipher
	seek Seekable
}

// NewSeekableStreamCipher 包装一个既是 BlockMode 又是 Seekable 的模式。
func NewSeekableStreamCipher(mode BlockMode, seek Seekable) *SeekableStreamCipher {
	return &SeekableStreamCipher{StreamCipher: NewStreamCipher(mode), seek: seek}
}

// Seek 把一个字节偏移量换算为块位置，定位计数器到该块；调用方需要
// 自行丢弃结果密钥流中块内的前置字节以对齐到 byteOffset。
func (s *SeekableStreamCipher) Seek(byteOffset uint64, blockSize int) error {
	blockPos := byteOffset / uint64(blockSize)
	s.seek.SetBlockPos(blockPos)
	return nil
}
