package padding

// ISO7816Padding 使用 ISO/IEC 7816-4（GOST 方法 2）对数据进行填充：
// 追加一个 0x80 字节，随后补零到块大小的整数倍。
func ISO7816Padding(data []byte, blockSize int) []byte {
	padding := blockSize - (len(data) % blockSize)

	padtext := make([]byte, padding)
	padtext[0] = 0x80

	return append(data, padtext...)
}

// ISO7816Unpadding 移除 ISO/IEC 7816-4 填充：从末尾跳过零字节，期望
// 遇到的第一个非零字节是 0x80。
func ISO7816Unpadding(data []byte) ([]byte, error) {
	length := len(data)
	if length == 0 {
		return nil, ErrInvalidPadding
	}

	i := length - 1
	for i >= 0 && data[i] == 0x00 {
		i--
	}
	if i < 0 || data[i] != 0x80 {
		return nil, ErrInvalidPadding
	}

	return data[:i], nil
}
