package rijndael

// The state is the 16-byte block itself, read column-major:
// S[r][c] = block[4*c+r].

func at(r, c int) int {
	return 4*c + r
}

func subBytes(s *[BlockSize]byte) {
	for i, b := range s {
		s[i] = sbox[b]
	}
}

func invSubBytes(s *[BlockSize]byte) {
	for i, b := range s {
		s[i] = invSbox[b]
	}
}

// shiftRows rotates row r left by r positions.
func shiftRows(s *[BlockSize]byte) {
	var row [4]byte
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			row[c] = s[at(r, (c+r)%4)]
		}
		for c := 0; c < 4; c++ {
			s[at(r, c)] = row[c]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func invShiftRows(s *[BlockSize]byte) {
	var row [4]byte
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			row[(c+r)%4] = s[at(r, c)]
		}
		for c := 0; c < 4; c++ {
			s[at(r, c)] = row[c]
		}
	}
}

func mixColumns(s *[BlockSize]byte) {
	multiplyColumns(s, &mixMatrix)
}

func invMixColumns(s *[BlockSize]byte) {
	multiplyColumns(s, &invMixMatrix)
}

// multiplyColumns replaces every column of s with m·column over GF(2^8).
func multiplyColumns(s *[BlockSize]byte, m *[4][4]byte) {
	var col [4]byte
	for c := 0; c < 4; c++ {
		copy(col[:], s[4*c:4*c+4])
		for r := 0; r < 4; r++ {
			var v byte
			for k := 0; k < 4; k++ {
				v ^= gmul(m[r][k], col[k])
			}
			s[at(r, c)] = v
		}
	}
}

// addRoundKey XORs a 16-byte round key into the state. Round key word c
// is column c, so the flat XOR preserves the column-major mapping.
func addRoundKey(s *[BlockSize]byte, roundKey []byte) {
	_ = roundKey[BlockSize-1]
	for i := range s {
		s[i] ^= roundKey[i]
	}
}
