// Package turb1600 implements the turb1600 sponge hash function: a
// Keccak-family permutation over a 1600-bit (25-lane) state, with a
// round-dependent rotation schedule, a custom round-constant mixer, and a
// non-standard squeeze that perturbs the capacity lane between extractions.
//
// turb1600 is a sponge construction. A sponge builds a function from a
// fixed-width permutation by dividing its state into a "rate" (touched by
// input and output) and a "capacity" (never directly touched):
//
//	up to "rate" bytes xored in
//	\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/
//	======================================----------------
//	|  rate (136 B)                      | capacity (64 B)|
//	======================================----------------
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	::::::::::::::::::: turb1600 permutation :::::::::::::
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	======================================----------------
//	|  rate (136 B)                      | capacity (64 B)|
//	======================================----------------
//	/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\\/\/\/\/
//	up to "rate" bytes copied out
//
// turb1600 is not a standard cryptographic primitive. It makes no claim of
// security and is not wire-compatible with SHA-3/Keccak. It provides one
// operation, Hash, which is total over any byte sequence and always returns
// exactly 128 bytes.
package turb1600
