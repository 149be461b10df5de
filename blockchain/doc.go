// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blockchain implements smileycoin proof-of-work consensus rules.

The smileycoin chain started out as a straight litecoin-style scrypt chain and
later hard forked to interleave five proof-of-work algorithms (sha256d,
scrypt, groestl, skein, and qubit), each with its own difficulty.  This
package provides the difficulty retarget rules for both eras along with proof
of work validation:

  - CalcNextRequiredDifficulty selects the correct retarget rule for a
    candidate block based on chain height and returns the required compact
    difficulty bits.  Below the multi-algorithm fork height it applies the
    original single-algorithm retarget, afterwards the interleaved
    multi-algorithm retarget with its per-algorithm local correction.
  - CheckProofOfWork verifies a block's proof-of-work hash against its
    claimed compact target and the network proof-of-work limit.
  - CompactToBig, BigToCompact, HashToBig, and CalcWork provide the compact
    target arithmetic shared by the above.

All functions in this package are pure and operate on read-only views of the
chain supplied through the HeaderCtx interface, so they are safe for
concurrent access provided the underlying chain index keeps ancestor pointers
stable for the duration of a call.

Several historical quirks of the reference implementation are reproduced
deliberately since changing them would change which chain a node accepts.
They are called out with comments where they occur.
*/
package blockchain
