package cryptography

import (
	"encoding/binary"

	cryptoDomain "github.com/MGTheTrain/packed-aes/internal/domain/crypto"
)

// expandKey derives the round key schedule of 4*(rounds+1) big-endian words.
// See FIPS-197, section 5.2.
func expandKey(key []byte) ([]uint32, error) {
	rounds := cryptoDomain.Rounds(len(key))
	if rounds == 0 {
		return nil, cryptoDomain.KeySizeError(len(key))
	}

	nk := len(key) / 4
	w := make([]uint32, 4*(rounds+1))
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	rcon := byte(1)
	for i := nk; i < len(w); i++ {
		t := w[i-1]
		if i%nk == 0 {
			t = subWord(rotWord(t)) ^ uint32(rcon)<<24
			rcon = xtime(rcon)
		} else if nk > 6 && i%nk == 4 {
			t = subWord(t)
		}
		w[i] = w[i-nk] ^ t
	}
	return w, nil
}

func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

func rotWord(w uint32) uint32 { return w<<8 | w>>24 }
