package cryptography

// gfPoly is the AES reduction polynomial x^8 + x^4 + x^3 + x + 1 with the x^8 term dropped.
const gfPoly = 0x1b

// sbox and invSbox are the FIPS-197 substitution tables. They are derived once
// at init from GF(2^8) inversion followed by the affine transform.
var (
	sbox    [256]byte
	invSbox [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		s := affine(gfInverse(byte(i)))
		sbox[i] = s
		invSbox[s] = byte(i)
	}
}

// xtime multiplies b by x (i.e. 0x02) in GF(2^8).
func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ gfPoly
	}
	return b << 1
}

// gmul multiplies a and b in GF(2^8).
func gmul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

// gfInverse returns the multiplicative inverse of b as b^254. Zero maps to zero.
func gfInverse(b byte) byte {
	result, base := byte(1), b
	for e := 254; e > 0; e >>= 1 {
		if e&1 != 0 {
			result = gmul(result, base)
		}
		base = gmul(base, base)
	}
	return result
}

func affine(b byte) byte {
	return b ^ rotl8(b, 1) ^ rotl8(b, 2) ^ rotl8(b, 3) ^ rotl8(b, 4) ^ 0x63
}

func rotl8(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}
