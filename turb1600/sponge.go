package turb1600

import "encoding/binary"

// absorbBlock XORs a full rate-sized block into the rate lanes of the
// state, interpreting each 8-byte group as a little-endian word. Capacity
// lanes are untouched.
func absorbBlock(s *[stateLanes]uint64, block *[RateBytes]byte) {
	for i := 0; i < rateLanes; i++ {
		s[i] ^= binary.LittleEndian.Uint64(block[i*8 : i*8+8])
	}
}

// initializeState seeds a fresh state from the domain tag: one absorption
// followed by roundsInit warm-up permutations. The result is a fixed
// constant independent of any later input; its round indices (0..7) are not
// counted against Hash's own round counter, which restarts at 0.
func initializeState() [stateLanes]uint64 {
	var s, scratch [stateLanes]uint64
	var block [RateBytes]byte

	copy(block[:len(domainTag)], domainTag)
	block[len(domainTag)] = 0x01
	block[RateBytes-1] |= 0x80

	absorbBlock(&s, &block)
	for r := 0; r < roundsInit; r++ {
		permute(&s, &scratch, r)
	}
	return s
}

// Hash computes the turb1600 digest of message. It is total: any byte
// sequence of any length, including the empty string, produces a
// well-defined 128-byte digest.
func Hash(message []byte) [OutputBytes]byte {
	s := initializeState()
	var scratch [stateLanes]uint64
	round := 0

	pos := 0
	for pos+RateBytes <= len(message) {
		var block [RateBytes]byte
		copy(block[:], message[pos:pos+RateBytes])
		absorbBlock(&s, &block)
		for i := 0; i < roundsMain; i++ {
			permute(&s, &scratch, round)
			round++
		}
		pos += RateBytes
	}

	// Final block: zero-padded tail, then the 10*1 sponge terminator. When
	// rem == RateBytes-1 the 0x01 and 0x80 markers land on the same byte,
	// yielding 0x81; when rem == 0 they land on distinct bytes.
	rem := len(message) - pos
	var last [RateBytes]byte
	copy(last[:rem], message[pos:])
	last[rem] |= 0x01
	last[RateBytes-1] |= 0x80
	absorbBlock(&s, &last)
	for i := 0; i < roundsMain+roundsFinal; i++ {
		permute(&s, &scratch, round)
		round++
	}

	var out [OutputBytes]byte
	produced := 0
	for produced < OutputBytes {
		// Flip every bit of the last capacity lane: domain separation
		// between successive squeeze blocks.
		s[stateLanes-1] ^= ^uint64(0)

		for i := 0; i < rateLanes && produced < OutputBytes; i++ {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], s[i])
			produced += copy(out[produced:], buf[:])
		}

		permute(&s, &scratch, round)
		round++
	}
	return out
}
