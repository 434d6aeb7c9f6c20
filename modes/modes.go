// Package modes 实现分组密码的工作模式：CBC、CFB、OFB、CTR，以及
// GOST R 34.13-2015 定义的广义版本。
package modes

import "errors"

// 常见错误
var (
	ErrInvalidBlockSize = errors.New("modes: 无效的块大小")
	ErrInvalidDataSize  = errors.New("modes: 数据长度必须是块大小的整数倍")
	ErrInvalidKeyLength = errors.New("modes: 无效的密钥长度")
	ErrInvalidIVLength  = errors.New("modes: 初始化向量长度与底层分组密码不匹配")
	ErrCounterOverflow  = errors.New("modes: 计数器已到达其可表示的最大值")
	ErrBadPadding       = errors.New("modes: 填充无效")
	ErrBufferMismatch   = errors.New("modes: 输出缓冲区短于输入")
)

// BlockCipher 是本包工作模式所封装的分组密码必须实现的接口，形状与
// aes.Cipher / des.Cipher 一致：定长块、可别名的输入输出缓冲区。
type BlockCipher interface {
	Encrypt(dst, src []byte) error
	Decrypt(dst, src []byte) error
	BlockSize() int
}

// BlockMode 是所有工作模式共有的接口。
type BlockMode interface {
	Encrypt(dst, src []byte) error
	Decrypt(dst, src []byte) error
	BlockSize() int
}

// Seekable 由支持随机定位的流式模式（CTR）实现。
type Seekable interface {
	GetBlockPos() uint64
	SetBlockPos(pos uint64)
	RemainingBlocks() uint64
}

// StateExporter 由可以导出内部状态以便暂停/恢复的模式（OFB）实现。
type StateExporter interface {
	ExportState() []byte
}
