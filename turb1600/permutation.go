package turb1600

// permute applies one round of the turb1600 permutation (theta, rho+pi,
// chi, iota) to state s, using scratch as working storage for rho+pi.
// scratch's contents are never meaningful outside this call.
func permute(s, scratch *[stateLanes]uint64, round int) {
	theta(s)
	rhoPi(s, scratch, round)
	chi(s)
	iotaStage(s, round)
}

// theta XORs each lane with the parity of the two neighboring columns,
// rotated by one bit.
func theta(s *[stateLanes]uint64) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = s[x] ^ s[x+5] ^ s[x+10] ^ s[x+15] ^ s[x+20]
	}

	var d [5]uint64
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ rol64(c[(x+1)%5], 1)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			s[x+5*y] ^= d[x]
		}
	}
}

// rhoPi rotates each lane by its round-twisted offset and relocates it to
// its destination lane per the pi table, using scratch as the destination
// buffer before copying it back into s.
func rhoPi(s, scratch *[stateLanes]uint64, round int) {
	for i := 0; i < stateLanes; i++ {
		scratch[pi[i]] = rol64(s[i], rotOffset(round, rho[i]))
	}
	*s = *scratch
}

// chi applies the nonlinear row transformation. Each of the five lanes in a
// row is XORed using a snapshot of the row taken before any write in that
// row, so later assignments never read a partially updated lane.
func chi(s *[stateLanes]uint64) {
	for y := 0; y < 5; y++ {
		base := 5 * y
		a, b, c, d, e := s[base], s[base+1], s[base+2], s[base+3], s[base+4]
		s[base+0] ^= (^b) & c
		s[base+1] ^= (^c) & d
		s[base+2] ^= (^d) & e
		s[base+3] ^= (^e) & a
		s[base+4] ^= (^a) & b
	}
}

// iotaStage XORs the round constant into a round-dependent lane, rather
// than always lane 0 as in standard Keccak.
func iotaStage(s *[stateLanes]uint64, round int) {
	s[(round*7)%stateLanes] ^= roundConstant(round)
}
