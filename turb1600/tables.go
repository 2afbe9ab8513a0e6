package turb1600

// Fixed sizing parameters. The state is 25 lanes of 64 bits (1600 bits);
// lanes 0..16 (17 lanes, 136 bytes) are the rate, lanes 17..24 the capacity.
const (
	stateLanes = 25
	rateLanes  = 17

	// RateBytes is the number of message bytes absorbed, and output bytes
	// squeezed, per permutation.
	RateBytes = 136

	// OutputBytes is the fixed digest length turb1600 produces.
	OutputBytes = 128

	roundsMain  = 36
	roundsFinal = 6
	roundsInit  = 8
)

// rho holds the per-lane rotation base, indexed by linear lane index
// x + 5y. rotOffset twists this base by the round index before use.
var rho = [stateLanes]uint{
	0, 1, 62, 28, 27, 36, 44, 6, 55, 20, 3, 10, 43, 25, 39,
	41, 45, 15, 21, 8, 18, 2, 61, 56, 14,
}

// pi holds the destination lane for each source lane during rho+pi.
var pi = [stateLanes]int{
	0, 7, 14, 21, 3, 10, 17, 24, 6, 13, 20, 2, 9, 16, 23,
	5, 12, 19, 1, 8, 15, 22, 4, 11, 18,
}

// domainTag seeds the state at the start of every Hash call, distinguishing
// turb1600 from any other sponge instance that might share its parameters.
var domainTag = []byte("turb1600|sponge|1600|1088|512|1024|release")
