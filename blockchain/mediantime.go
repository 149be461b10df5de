// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sort"
)

// medianTimeBlocks is the number of previous blocks which should be used to
// calculate the median time used to validate block timestamps.
const medianTimeBlocks = 11

// CalcPastMedianTime calculates the median time of the previous few blocks
// prior to, and including, the passed block node.  Chain index
// implementations may use it to satisfy the MedianTimePast requirement of
// HeaderCtx.
func CalcPastMedianTime(node HeaderCtx) int64 {
	// Create a slice of the previous few block timestamps used to calculate
	// the median per the number defined by the constant medianTimeBlocks.
	timestamps := make([]int64, medianTimeBlocks)
	numNodes := 0
	iterNode := node
	for i := 0; i < medianTimeBlocks && iterNode != nil; i++ {
		timestamps[numNodes] = iterNode.Timestamp()
		numNodes++

		iterNode = iterNode.Parent()
	}

	// Prune the slice to the actual number of available timestamps which
	// will be fewer than desired near the beginning of the block chain and
	// sort them.
	timestamps = timestamps[:numNodes]
	sort.Sort(timeSorter(timestamps))

	// NOTE: The consensus rules incorporated from the reference
	// implementation selected the middle of the sorted timestamps even for
	// an even number of them, which is not a true median.  This is
	// equivalent for an odd number of timestamps, which is typically the
	// case, but the same selection is used regardless to mirror the
	// reference behavior.
	return timestamps[numNodes/2]
}
