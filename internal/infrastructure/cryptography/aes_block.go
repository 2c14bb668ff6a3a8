package cryptography

// state is the 4x4 AES state in column-major order: state[r+4*c] is row r of column c,
// which matches the byte order of a 16-byte block.
type state [16]byte

func (s *state) addRoundKey(roundKey []uint32) {
	for c := 0; c < 4; c++ {
		k := roundKey[c]
		s[4*c] ^= byte(k >> 24)
		s[4*c+1] ^= byte(k >> 16)
		s[4*c+2] ^= byte(k >> 8)
		s[4*c+3] ^= byte(k)
	}
}

func (s *state) subBytes() {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func (s *state) invSubBytes() {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	t := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r+4*c] = t[r+4*((c+r)%4)]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	t := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r+4*((c+r)%4)] = t[r+4*c]
		}
	}
}

func (s *state) mixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		s[4*c+1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		s[4*c+2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		s[4*c+3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}
}

func (s *state) invMixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gmul(a0, 0x0e) ^ gmul(a1, 0x0b) ^ gmul(a2, 0x0d) ^ gmul(a3, 0x09)
		s[4*c+1] = gmul(a0, 0x09) ^ gmul(a1, 0x0e) ^ gmul(a2, 0x0b) ^ gmul(a3, 0x0d)
		s[4*c+2] = gmul(a0, 0x0d) ^ gmul(a1, 0x09) ^ gmul(a2, 0x0e) ^ gmul(a3, 0x0b)
		s[4*c+3] = gmul(a0, 0x0b) ^ gmul(a1, 0x0d) ^ gmul(a2, 0x09) ^ gmul(a3, 0x0e)
	}
}

// encryptBlock encrypts one block from src into dst using the expanded key xk.
// dst and src may overlap entirely.
func encryptBlock(xk []uint32, dst, src []byte) {
	var s state
	copy(s[:], src[:16])

	rounds := len(xk)/4 - 1

	// First round just XORs input with key.
	s.addRoundKey(xk[0:4])

	for r := 1; r < rounds; r++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(xk[4*r : 4*r+4])
	}

	// Last round omits the column mix.
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(xk[4*rounds : 4*rounds+4])

	copy(dst[:16], s[:])
}

// decryptBlock decrypts one block from src into dst, consuming round keys in reverse.
func decryptBlock(xk []uint32, dst, src []byte) {
	var s state
	copy(s[:], src[:16])

	rounds := len(xk)/4 - 1

	s.addRoundKey(xk[4*rounds : 4*rounds+4])

	for r := rounds - 1; r > 0; r-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(xk[4*r : 4*r+4])
		s.invMixColumns()
	}

	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(xk[0:4])

	copy(dst[:16], s[:])
}
