// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the smileycoin wire protocol primitives needed by the
proof-of-work subsystem.

This package provides the block header structure along with its serialized
form, the mapping between a header's version field and the proof-of-work
algorithm it was mined with, and the per-algorithm proof-of-work hash
dispatch.  The serialized header layout and the compact difficulty encoding
referenced by the Bits field are identical to the legacy bitcoin wire format
so headers produced here hash bit-for-bit the same as those produced by other
smileycoin implementations.
*/
package wire
