// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain_test

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/gstefans/smileyCoinDev/blockchain"
)

// fakeNode is a minimal chain index node for testing the retarget rules.  It
// implements the blockchain.HeaderCtx interface.
type fakeNode struct {
	parent    *fakeNode
	height    int32
	version   int32
	bits      uint32
	timestamp int64
}

// Ensure fakeNode implements the HeaderCtx interface.
var _ blockchain.HeaderCtx = (*fakeNode)(nil)

func (n *fakeNode) Height() int32 {
	return n.height
}

func (n *fakeNode) Bits() uint32 {
	return n.bits
}

func (n *fakeNode) Version() int32 {
	return n.version
}

func (n *fakeNode) Timestamp() int64 {
	return n.timestamp
}

func (n *fakeNode) MedianTimePast() int64 {
	return blockchain.CalcPastMedianTime(n)
}

func (n *fakeNode) Parent() blockchain.HeaderCtx {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) RelativeAncestorCtx(distance int32) blockchain.HeaderCtx {
	node := n
	for ; distance > 0 && node != nil; distance-- {
		node = node.parent
	}
	if node == nil {
		return nil
	}
	return node
}

// chainBuilder incrementally constructs a fake chain for the retarget tests.
type chainBuilder struct {
	tip *fakeNode
}

// newChainBuilder returns a builder whose genesis block has the provided
// height, version, difficulty bits, and timestamp.  A non-zero genesis height
// simulates a deep chain without materializing every ancestor; walks past the
// builder's first node simply run out of parents.
func newChainBuilder(height, version int32, bits uint32, timestamp int64) *chainBuilder {
	return &chainBuilder{tip: &fakeNode{
		height:    height,
		version:   version,
		bits:      bits,
		timestamp: timestamp,
	}}
}

// extend appends a block to the chain with a timestamp the provided number of
// seconds after the current tip.
func (b *chainBuilder) extend(version int32, bits uint32, spacing int64) *fakeNode {
	node := &fakeNode{
		parent:    b.tip,
		height:    b.tip.height + 1,
		version:   version,
		bits:      bits,
		timestamp: b.tip.timestamp + spacing,
	}
	b.tip = node
	return node
}

// extendBy appends count blocks with uniform spacing, version, and bits.
func (b *chainBuilder) extendBy(count int, version int32, bits uint32, spacing int64) *fakeNode {
	for i := 0; i < count; i++ {
		b.extend(version, bits, spacing)
	}
	return b.tip
}

// bigToHash converts a big.Int into the little-endian chainhash.Hash that
// would compare equal to it via HashToBig.
func bigToHash(n *big.Int) chainhash.Hash {
	var hash chainhash.Hash
	nBytes := n.Bytes()
	for i, b := range nBytes {
		hash[len(nBytes)-1-i] = b
	}
	return hash
}
