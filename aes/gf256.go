package aes

// Constant-time GF(2^8) arithmetic used by the software core's SubBytes
// and MixColumns steps: no lookup tables, no branch whose outcome
// depends on the secret byte being processed.

// xtime multiplies a by the polynomial x (i.e. by 2) modulo the AES
// reduction polynomial, branch-free: the conditional reduction is
// folded into a mask derived from the carry bit instead of an if.
func xtime(a byte) byte {
	carry := byte(0) - (a >> 7)
	return (a << 1) ^ (carry & 0x1b)
}

func mul2(a byte) byte { return xtime(a) }
func mul3(a byte) byte { return xtime(a) ^ a }

func mul9(a byte) byte {
	x8 := xtime(xtime(xtime(a)))
	return x8 ^ a
}

func mul11(a byte) byte {
	x2 := xtime(a)
	x4 := xtime(x2)
	x8 := xtime(x4)
	return x8 ^ x2 ^ a
}

func mul13(a byte) byte {
	x2 := xtime(a)
	x4 := xtime(x2)
	x8 := xtime(x4)
	return x8 ^ x4 ^ a
}

func mul14(a byte) byte {
	x2 := xtime(a)
	x4 := xtime(x2)
	x8 := xtime(x4)
	return x8 ^ x4 ^ x2
}

// gmul is full GF(2^8) multiplication, branch-free in both operands:
// the per-bit conditional add/reduce is expressed as a mask, not an if.
func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		p ^= a & (byte(0) - (b & 1))
		carry := byte(0) - (a >> 7)
		a <<= 1
		a ^= carry & 0x1b
		b >>= 1
	}
	return p
}

// ginv computes the multiplicative inverse of a in GF(2^8) (and maps 0
// to 0, the AES convention) via square-and-multiply to the fixed public
// exponent 254. Every branch below depends only on the loop index and
// the constant exponent, never on a, so timing and the instruction
// sequence executed are independent of the secret byte.
func ginv(a byte) byte {
	const exp = 254
	result := byte(1)
	base := a
	for i := 0; i < 8; i++ {
		if exp&(1<<uint(i)) != 0 {
			result = gmul(result, base)
		}
		base = gmul(base, base)
	}
	return result
}

func rotl8(x byte, n uint) byte {
	return x<<n | x>>(8-n)
}

// affine is the AES S-box's linear step: b_i = x_i ^ x_(i+4) ^ x_(i+5)
// ^ x_(i+6) ^ x_(i+7) (mod 8) ^ 0x63, expressed as XORs of rotations.
func affine(x byte) byte {
	return x ^ rotl8(x, 1) ^ rotl8(x, 2) ^ rotl8(x, 3) ^ rotl8(x, 4) ^ 0x63
}

// invAffine is affine's inverse: b_i = x_(i+2) ^ x_(i+5) ^ x_(i+7) (mod
// 8) ^ 0x05.
func invAffine(x byte) byte {
	return rotl8(x, 1) ^ rotl8(x, 3) ^ rotl8(x, 6) ^ 0x05
}

// ctSbox and ctInvSbox are the constant-time AES S-box and its inverse:
// GF(2^8) inversion composed with the (inverse) affine map, with no
// table anywhere in the computation.
func ctSbox(x byte) byte    { return affine(ginv(x)) }
func ctInvSbox(x byte) byte { return ginv(invAffine(x)) }
