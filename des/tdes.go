package des

// Triple-DES: three (or two, reused) DES keys composed via an
// encrypt-decrypt-encrypt or encrypt-encrypt-encrypt chain. The chain
// orders below follow the standard 3DES construction.

const (
	TripleKeySize2 = 2 * KeySize // two independent DES keys (EDE2/EEE2)
	TripleKeySize3 = 3 * KeySize // three independent DES keys (EDE3/EEE3)
)

// TdesEde3 is 3DES in encrypt-decrypt-encrypt mode with three
// independent keys: the common "3DES" construction.
type TdesEde3 struct {
	d1, d2, d3 *Cipher
}

// NewTdesEde3 builds a TdesEde3 cipher from a 24-byte key (three
// concatenated 8-byte DES keys).
func NewTdesEde3(key []byte) (*TdesEde3, error) {
	if len(key) != TripleKeySize3 {
		return nil, ErrInvalidKeyLength
	}
	d1, _ := New(key[0:8])
	d2, _ := New(key[8:16])
	d3, _ := New(key[16:24])
	return &TdesEde3{d1: d1, d2: d2, d3: d3}, nil
}

func (c *TdesEde3) BlockSize() int { return BlockSize }

func (c *TdesEde3) Encrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	var buf [BlockSize]byte
	c.d1.Encrypt(buf[:], src)
	c.d2.Decrypt(buf[:], buf[:])
	c.d3.Encrypt(dst, buf[:])
	return nil
}

func (c *TdesEde3) Decrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	var buf [BlockSize]byte
	c.d3.Decrypt(buf[:], src)
	c.d2.Encrypt(buf[:], buf[:])
	c.d1.Decrypt(dst, buf[:])
	return nil
}

// TdesEee3 is 3DES in encrypt-encrypt-encrypt mode with three
// independent keys.
type TdesEee3 struct {
	d1, d2, d3 *Cipher
}

func NewTdesEee3(key []byte) (*TdesEee3, error) {
	if len(key) != TripleKeySize3 {
		return nil, ErrInvalidKeyLength
	}
	d1, _ := New(key[0:8])
	d2, _ := New(key[8:16])
	d3, _ := New(key[16:24])
	return &TdesEee3{d1: d1, d2: d2, d3: d3}, nil
}

func (c *TdesEee3) BlockSize() int { return BlockSize }

func (c *TdesEee3) Encrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	var buf [BlockSize]byte
	c.d1.Encrypt(buf[:], src)
	c.d2.Encrypt(buf[:], buf[:])
	c.d3.Encrypt(dst, buf[:])
	return nil
}

func (c *TdesEee3) Decrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	var buf [BlockSize]byte
	c.d3.Decrypt(buf[:], src)
	c.d2.Decrypt(buf[:], buf[:])
	c.d1.Decrypt(dst, buf[:])
	return nil
}

// TdesEde2 is 3DES in encrypt-decrypt-encrypt mode with two
// independent keys, the first reused as the third.
type TdesEde2 struct {
	d1, d2 *Cipher
}

func NewTdesEde2(key []byte) (*TdesEde2, error) {
	if len(key) != TripleKeySize2 {
		return nil, ErrInvalidKeyLength
	}
	d1, _ := New(key[0:8])
	d2, _ := New(key[8:16])
	return &TdesEde2{d1: d1, d2: d2}, nil
}

func (c *TdesEde2) BlockSize() int { return BlockSize }

func (c *TdesEde2) Encrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	var buf [BlockSize]byte
	c.d1.Encrypt(buf[:], src)
	c.d2.Decrypt(buf[:], buf[:])
	c.d1.Encrypt(dst, buf[:])
	return nil
}

func (c *TdesEde2) Decrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	var buf [BlockSize]byte
	c.d1.Decrypt(buf[:], src)
	c.d2.Encrypt(buf[:], buf[:])
	c.d1.Decrypt(dst, buf[:])
	return nil
}

// TdesEee2 is 3DES in encrypt-encrypt-encrypt mode with two
// independent keys, the first reused as the third.
type TdesEee2 struct {
	d1, d2 *Cipher
}

func NewTdesEee2(key []byte) (*TdesEee2, error) {
	if len(key) != TripleKeySize2 {
		return nil, ErrInvalidKeyLength
	}
	d1, _ := New(key[0:8])
	d2, _ := New(key[8:16])
	return &TdesEee2{d1: d1, d2: d2}, nil
}

func (c *TdesEee2) BlockSize() int { return BlockSize }

func (c *TdesEee2) Encrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	var buf [BlockSize]byte
	c.d1.Encrypt(buf[:], src)
	c.d2.Encrypt(buf[:], buf[:])
	c.d1.Encrypt(dst, buf[:])
	return nil
}

func (c *TdesEee2) Decrypt(dst, src []byte) error {
	if len(src) < BlockSize || len(dst) < BlockSize {
		return ErrBufferMismatch
	}
	var buf [BlockSize]byte
	c.d1.Decrypt(buf[:], src)
	c.d2.Decrypt(buf[:], buf[:])
	c.d1.Decrypt(dst, buf[:])
	return nil
}
