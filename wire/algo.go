// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"strings"
)

// PowAlgo identifies one of the proof-of-work algorithms a smileycoin block
// may be mined with.
type PowAlgo int

// These constants enumerate the supported proof-of-work algorithms.  The
// numeric values are consensus-critical since the multi-algorithm retarget
// walks the chain per algorithm, so they must not be reordered.
const (
	AlgoSHA256D PowAlgo = iota
	AlgoScrypt
	AlgoGroestl
	AlgoSkein
	AlgoQubit

	// NumAlgos is the number of supported proof-of-work algorithms.
	NumAlgos = 5
)

// Block version constants.  The low bits of a block's version field select
// the proof-of-work algorithm the block was mined with.
const (
	// BlockVersionAlgo is the bitmask that isolates the algorithm selector
	// from a block's version field.
	BlockVersionAlgo int32 = 0xf

	// BlockVersionSHA256D through BlockVersionQubit are the per-algorithm
	// selector values.  Value 1 is the legacy pre-fork block version and
	// maps to scrypt, the original algorithm.
	BlockVersionSHA256D int32 = 2
	BlockVersionScrypt  int32 = 3
	BlockVersionGroestl int32 = 4
	BlockVersionSkein   int32 = 5
	BlockVersionQubit   int32 = 6
)

// AlgoFromVersion returns the proof-of-work algorithm encoded in the low bits
// of the provided block version.  The legacy version value 1 and any
// unrecognized selector map to scrypt, which is the original algorithm of the
// chain.
func AlgoFromVersion(version int32) PowAlgo {
	switch version & BlockVersionAlgo {
	case 1:
		return AlgoScrypt
	case BlockVersionScrypt:
		return AlgoScrypt
	case BlockVersionSHA256D:
		return AlgoSHA256D
	case BlockVersionGroestl:
		return AlgoGroestl
	case BlockVersionSkein:
		return AlgoSkein
	case BlockVersionQubit:
		return AlgoQubit
	}
	return AlgoScrypt
}

// Algo returns the proof-of-work algorithm the block header was mined with.
func (h *BlockHeader) Algo() PowAlgo {
	return AlgoFromVersion(h.Version)
}

// AlgoName returns the canonical lowercase name of the provided proof-of-work
// algorithm, or "unknown" for values outside the supported set.
func AlgoName(algo PowAlgo) string {
	switch algo {
	case AlgoSHA256D:
		return "sha256d"
	case AlgoScrypt:
		return "scrypt"
	case AlgoGroestl:
		return "groestl"
	case AlgoSkein:
		return "skein"
	case AlgoQubit:
		return "qubit"
	}
	return "unknown"
}

// AlgoByName returns the proof-of-work algorithm matching the provided name.
// The match is case-insensitive and accepts the common short forms "sha" and
// "sha256" for sha256d.  Unrecognized names return the supplied fallback so
// configuration handling degrades gracefully.
func AlgoByName(name string, fallback PowAlgo) PowAlgo {
	switch strings.ToLower(name) {
	case "sha", "sha256", "sha256d":
		return AlgoSHA256D
	case "scrypt":
		return AlgoScrypt
	case "groestl":
		return AlgoGroestl
	case "skein":
		return AlgoSkein
	case "qubit":
		return AlgoQubit
	}
	return fallback
}

// String returns the canonical name of the algorithm.  It implements the
// fmt.Stringer interface.
func (algo PowAlgo) String() string {
	return AlgoName(algo)
}
