// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"time"

	"github.com/gstefans/smileyCoinDev/chaincfg"
	"github.com/gstefans/smileyCoinDev/wire"
)

// brokenSmoothingHeight is the height at which the reference implementation
// started reading the averaging target timespan before assigning it when
// smoothing the actual timespan.  See calcMultiAlgoRequiredDifficulty for the
// details.  The height is shared across all networks because the reference
// client hardcodes it rather than carrying it in the consensus parameters.
const brokenSmoothingHeight = 222524

// multiAlgoTargetSpacing returns the desired number of seconds between two
// blocks of the same algorithm at the provided height of the previous block.
// The per-block timespan was shortened at MultiAlgoTimespanForkHeight.
func multiAlgoTargetSpacing(lastHeight int32, params *chaincfg.Params) int64 {
	timespan := int64(params.MultiAlgoTimespan / time.Second)
	if lastHeight >= params.MultiAlgoTimespanForkHeight {
		timespan = int64(params.MultiAlgoTimespanV2 / time.Second)
	}
	return wire.NumAlgos * timespan
}

// LastBlockIndexForAlgo returns the most recent ancestor of node, including
// node itself, that was mined with the provided algorithm, or nil when the
// chain contains no such block.  On networks that allow minimum-difficulty
// blocks, blocks whose timestamp exceeds their parent's by more than twice
// the per-algorithm target spacing are skipped since their difficulty carries
// no retarget information.
func LastBlockIndexForAlgo(node HeaderCtx, params *chaincfg.Params,
	algo wire.PowAlgo, targetSpacing int64) HeaderCtx {

	for ; node != nil; node = node.Parent() {
		if wire.AlgoFromVersion(node.Version()) != algo {
			continue
		}

		// Ignore special min-difficulty blocks.
		if params.ReduceMinDifficulty && node.Parent() != nil &&
			node.Timestamp() > node.Parent().Timestamp()+targetSpacing*2 {

			continue
		}

		return node
	}
	return nil
}

// calcMultiAlgoRequiredDifficulty implements the interleaved multi-algorithm
// difficulty retarget rules in effect from the multi-algorithm fork height
// onward.  lastNode is the block prior to the one the difficulty is being
// calculated for and algo is the algorithm the candidate block is to be mined
// with.
//
// The calculation is a litecoin-style global retarget over a windowed median
// timespan followed by a per-algorithm local correction that compensates for
// algorithms which were not mined every block.  Several of its constants are
// versioned by hard fork heights, see chaincfg.Params.
func calcMultiAlgoRequiredDifficulty(lastNode HeaderCtx, algo wire.PowAlgo,
	params *chaincfg.Params) (uint32, error) {

	diffChange := lastNode.Height() >= params.DifficultyChangeForkHeight
	powLimitBits := params.PowLimitBits

	averagingInterval := params.MultiAlgoAveragingInterval
	if diffChange {
		averagingInterval = params.MultiAlgoAveragingIntervalV2
	}

	// Find the first block in the averaging interval by going back what is
	// meant to be averagingInterval blocks per algorithm.
	firstNode := lastNode
	for i := int64(0); firstNode != nil && i < wire.NumAlgos*averagingInterval; i++ {
		firstNode = firstNode.Parent()
	}

	targetSpacing := multiAlgoTargetSpacing(lastNode.Height(), params)

	prevAlgoNode := LastBlockIndexForAlgo(lastNode, params, algo, targetSpacing)
	if prevAlgoNode == nil || firstNode == nil {
		// The chain is too short to retarget, so fall back to the
		// proof of work limit.
		log.Debugf("Multi-algo retarget at height %d for %v has "+
			"insufficient history, using proof of work limit",
			lastNode.Height()+1, algo)
		return powLimitBits, nil
	}

	// Limit the adjustment step, using medians to prevent time-warp
	// attacks, and smooth the measured timespan a quarter of the way
	// toward the averaging target.
	//
	// NOTE: For heights in [brokenSmoothingHeight, DifficultyChangeForkHeight)
	// the reference implementation read nMultiAlgoAveragingTargetTimespan
	// before assigning it, so the smoothing there degenerated to a plain
	// division of the measured timespan by four.  Go zero-initializes the
	// variable, which reproduces the reference arithmetic deterministically.
	// Reordering these statements to the obviously intended form would
	// change the difficulty of historical blocks and split from the chain,
	// so the original ordering is kept for each regime.
	actualTimespan := lastNode.MedianTimePast() - firstNode.MedianTimePast()
	var averagingTargetTimespan int64
	switch {
	case lastNode.Height() >= params.DifficultyChangeForkHeight:
		averagingTargetTimespan = params.MultiAlgoAveragingIntervalV2 * targetSpacing
		actualTimespan = averagingTargetTimespan +
			(actualTimespan-averagingTargetTimespan)/4

	case lastNode.Height() >= brokenSmoothingHeight:
		actualTimespan = averagingTargetTimespan +
			(actualTimespan-averagingTargetTimespan)/4
		averagingTargetTimespan = params.MultiAlgoAveragingInterval * targetSpacing

	default:
		averagingTargetTimespan = params.MultiAlgoAveragingInterval * targetSpacing
		actualTimespan = averagingTargetTimespan +
			(actualTimespan-averagingTargetTimespan)/4
	}

	maxAdjustUp := params.MultiAlgoMaxAdjustUp
	maxAdjustDown := params.MultiAlgoMaxAdjustDown
	if diffChange {
		maxAdjustUp = params.MultiAlgoMaxAdjustUpV2
		maxAdjustDown = params.MultiAlgoMaxAdjustDownV2
	}

	minActualTimespan := averagingTargetTimespan * (100 - maxAdjustUp) / 100
	maxActualTimespan := averagingTargetTimespan * (100 + maxAdjustDown) / 100
	if actualTimespan < minActualTimespan {
		actualTimespan = minActualTimespan
	}
	if actualTimespan > maxActualTimespan {
		actualTimespan = maxActualTimespan
	}

	// Global retarget from the previous block of the same algorithm.
	//
	// The intermediate product of a near-limit target and the timespan can
	// exceed 256 bits, so shift a too-wide target right by one bit first
	// and restore it afterwards.  The bottom bit is lost deterministically
	// which matches the reference behavior.
	newTarget, _, _ := decodeCompact(prevAlgoNode.Bits())
	shifted := newTarget.BitLen() > params.PowLimit.BitLen()-1
	if shifted {
		newTarget.Rsh(newTarget, 1)
	}
	newTarget.Mul(newTarget, big.NewInt(actualTimespan))
	truncate256(newTarget)
	newTarget.Div(newTarget, big.NewInt(averagingTargetTimespan))

	// Per-algorithm local correction.  Each block the algorithm fell
	// behind (or ran ahead of) its interleaved slot tightens (or eases)
	// the target by the local adjustment percentage.
	adjustments := int64(prevAlgoNode.Height()) + wire.NumAlgos - 1 -
		int64(lastNode.Height())
	hundred := big.NewInt(100)
	localAdjust := big.NewInt(100 + params.MultiAlgoLocalTargetAdjustment)
	if adjustments > 0 {
		for i := int64(0); i < adjustments; i++ {
			newTarget.Mul(newTarget, hundred)
			truncate256(newTarget)
			newTarget.Div(newTarget, localAdjust)
		}
	} else if adjustments < 0 {
		// Make it easier.
		for i := int64(0); i < -adjustments; i++ {
			newTarget.Mul(newTarget, localAdjust)
			truncate256(newTarget)
			newTarget.Div(newTarget, hundred)
		}
	}

	if shifted {
		newTarget.Lsh(newTarget, 1)
		truncate256(newTarget)
	}

	// Limit new value to the proof of work limit.
	if newTarget.Cmp(params.PowLimit) > 0 {
		newTarget.Set(params.PowLimit)
	}

	newTargetBits := BigToCompact(newTarget)
	log.Debugf("Multi-algo retarget at block height %d for %v", lastNode.Height()+1, algo)
	log.Debugf("Old target %08x, new target %08x (%064x)", prevAlgoNode.Bits(),
		newTargetBits, CompactToBig(newTargetBits))
	log.Debugf("Actual timespan %v, averaging target timespan %v, local adjustments %d",
		time.Duration(actualTimespan)*time.Second,
		time.Duration(averagingTargetTimespan)*time.Second, adjustments)

	return newTargetBits, nil
}
