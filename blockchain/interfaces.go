// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// HeaderCtx is an interface that describes information about a block's
// position in the best-known chain.  It is used so that the chain index can
// provide its own context (the header's parent, bits, etc.) when attempting
// to contextually validate a header.  Implementations are expected to be
// read-only views; this package never mutates them and never retains them
// beyond a call.
type HeaderCtx interface {
	// Height returns the header's height.  Genesis is height 0.
	Height() int32

	// Bits returns the header's compact difficulty bits.
	Bits() uint32

	// Version returns the header's version field, which encodes the
	// proof-of-work algorithm in its low bits.
	Version() int32

	// Timestamp returns the header's timestamp as a unix time.
	Timestamp() int64

	// MedianTimePast returns the median timestamp of the blocks prior to
	// and including this one over the past medianTimeBlocks window.  See
	// CalcPastMedianTime for a reference implementation.
	MedianTimePast() int64

	// Parent returns the header's parent, or nil when the header is the
	// genesis block.
	Parent() HeaderCtx

	// RelativeAncestorCtx returns the header's ancestor that is distance
	// blocks before it in the chain, or nil when no such ancestor exists.
	RelativeAncestorCtx(distance int32) HeaderCtx
}
