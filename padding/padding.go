// 填充算法实现
package padding

import (
	"errors"
)

var (
	// ErrInvalidPadding 表示填充无效
	ErrInvalidPadding = errors.New("padding: 无效的填充")
)

// Scheme 是一种填充方案，与 modes.Padding 形状一致，可直接传给
// modes.NewBlockCipherMode。
type Scheme interface {
	Pad(data []byte, blockSize int) []byte
	Unpad(data []byte) (int, error)
}

// PKCS7 是对 PKCS7Padding/PKCS7Unpadding 的 Scheme 封装，零值可用。
type PKCS7 struct{}

func (PKCS7) Pad(data []byte, blockSize int) []byte { return PKCS7Padding(data, blockSize) }

func (PKCS7) Unpad(data []byte) (int, error) {
	out, err := PKCS7Unpadding(data)
	if err != nil {
		return 0, err
	}
	return len(out), nil
}

// Zero 是对 ZeroPadding/ZeroUnpadding 的 Scheme 封装，零值可用。
// ZeroUnpadding 永不失败，因为零填充无法区分末尾为零的数据本身。
type Zero struct{}

func (Zero) Pad(data []byte, blockSize int) []byte { return ZeroPadding(data, blockSize) }

func (Zero) Unpad(data []byte) (int, error) {
	return len(ZeroUnpadding(data)), nil
}

// ISO7816 是对 ISO7816Padding/ISO7816Unpadding 的 Scheme 封装，零值可用。
type ISO7816 struct{}

func (ISO7816) Pad(data []byte, blockSize int) []byte { return ISO7816Padding(data, blockSize) }

func (ISO7816) Unpad(data []byte) (int, error) {
	out, err := ISO7816Unpadding(data)
	if err != nil {
		return 0, err
	}
	return len(out), nil
}
