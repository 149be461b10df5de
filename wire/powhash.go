// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/scrypt"
)

// PowHashFunc computes the proof-of-work hash of a serialized 80-byte block
// header for one specific algorithm.
type PowHashFunc func(header []byte) chainhash.Hash

// powHashFuncs holds the registered proof-of-work hash function for each
// algorithm.  sha256d and scrypt are built in below; the remaining algorithms
// are implemented by external packages (typically the miner) and registered
// at init time via RegisterPowHashFunc.
var powHashFuncs = make(map[PowAlgo]PowHashFunc)

func init() {
	powHashFuncs[AlgoSHA256D] = chainhash.DoubleHashH
	powHashFuncs[AlgoScrypt] = scryptPowHash
}

// scryptPowHash computes the scrypt^2(1024,1,1) hash used by the original
// chain, with the serialized header acting as both the password and the salt.
func scryptPowHash(header []byte) chainhash.Hash {
	// The only error scrypt.Key can return is for invalid cost parameters,
	// which are constants here.
	digest, _ := scrypt.Key(header, header, 1024, 1, 1, chainhash.HashSize)

	var hash chainhash.Hash
	copy(hash[:], digest)
	return hash
}

// RegisterPowHashFunc registers the hash function for the provided algorithm.
// It is intended to be called from the init function of packages implementing
// the groestl, skein, and qubit primitives so that header hashing for those
// algorithms becomes available.  It is an error to replace an existing
// registration.
func RegisterPowHashFunc(algo PowAlgo, fn PowHashFunc) error {
	if _, ok := powHashFuncs[algo]; ok {
		return fmt.Errorf("pow hash function for %v is already registered",
			algo)
	}
	powHashFuncs[algo] = fn
	return nil
}

// PowHash computes the proof-of-work hash of the block header using the
// algorithm encoded in its version field.  For sha256d this is the same value
// as BlockHash.  An error is returned when no hash function has been
// registered for the header's algorithm.
func (h *BlockHeader) PowHash() (chainhash.Hash, error) {
	algo := h.Algo()
	fn, ok := powHashFuncs[algo]
	if !ok {
		return chainhash.Hash{}, fmt.Errorf("no pow hash function "+
			"registered for algorithm %v", algo)
	}

	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, 0, h)
	return fn(buf.Bytes()), nil
}
