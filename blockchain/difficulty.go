// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/gstefans/smileyCoinDev/chaincfg"
	"github.com/gstefans/smileyCoinDev/wire"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits.  It is defined here to avoid
	// the overhead of creating it multiple times.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)

	// maxUint256 is the maximum value representable by the fixed-width
	// 256-bit arithmetic the reference implementation performs retarget
	// calculations with.
	maxUint256 = new(big.Int).Sub(oneLsh256, bigOne)
)

// truncate256 reduces n modulo 2^256.  The reference implementation performs
// all retarget arithmetic on fixed-width 256-bit unsigned integers which
// silently truncate on overflow, so intermediate products here must do the
// same to stay bit-for-bit compatible.
func truncate256(n *big.Int) *big.Int {
	return n.And(n, maxUint256)
}

// HashToBig converts a chainhash.Hash into a big.Int that can be used to
// perform math comparisons.
func HashToBig(hash *chainhash.Hash) *big.Int {
	// A Hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}

// decodeCompact unpacks a compact representation into the unsigned magnitude
// it encodes along with whether the sign bit is set and whether the encoded
// value overflows a 256-bit integer.  See CompactToBig for details of the
// encoding.
func decodeCompact(compact uint32) (*big.Int, bool, bool) {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & 0x007fffff
	isNegative := mantissa != 0 && compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number.  So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly.  This is equivalent to:
	// N = mantissa * 256^(exponent-3)
	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	// The encoding overflows the width of a 256-bit integer when the
	// mantissa would be shifted past the most significant byte.
	isOverflow := mantissa != 0 && (exponent > 34 ||
		(mantissa > 0xff && exponent > 33) ||
		(mantissa > 0xffff && exponent > 32))

	return bn, isNegative, isOverflow
}

// CompactToBig converts a compact representation of a whole number N to an
// unsigned 32-bit number.  The representation is similar to IEEE754 floating
// point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa.  They are broken out as follows:
//
// - the most significant 8 bits represent the unsigned base 256 exponent
// - bit 23 (the 24th bit) represents the sign bit
// - the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// This compact form is only used in smileycoin to encode unsigned 256-bit
// numbers which represent difficulty targets, thus there really is not a need
// for a sign bit, but it is implemented here to stay consistent with the
// reference implementation.
func CompactToBig(compact uint32) *big.Int {
	bn, isNegative, _ := decodeCompact(compact)

	// Make it negative if the sign bit is set.
	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// BigToCompact converts a whole number N to a compact representation using an
// unsigned 32-bit number.  The compact representation only provides 23 bits
// of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number.  See CompactToBig for details.
func BigToCompact(n *big.Int) uint32 {
	// No need to do any work if it's zero.
	if n.Sign() == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes.  So, shift the number right or left
	// accordingly.  This is equivalent to:
	// mantissa = mantissa / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		// Use a copy to avoid modifying the caller's original number.
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent, sign bit, and mantissa into an unsigned 32-bit
	// int and return it.
	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// CalcWork calculates a work value from difficulty bits.  Smileycoin
// increases the difficulty for generating a block by decreasing the value
// which the generated hash must be less than.  This difficulty target is
// stored in each block header using a compact representation as described in
// the documentation for CompactToBig.  The main chain is selected by choosing
// the chain that has the most proof of work (highest difficulty).  Since a
// lower target difficulty value equates to higher actual difficulty, the work
// value which will be accumulated must be the inverse of the difficulty.
// Also, in order to avoid potential division by zero and really small
// floating point numbers, the result adds 1 to the denominator and multiplies
// the numerator by 2^256.
func CalcWork(bits uint32) *big.Int {
	// Return a work value of zero if the passed difficulty bits represent
	// a negative number. Note this should not happen in practice with
	// valid blocks, but an invalid block could trigger it.
	difficultyNum := CompactToBig(bits)
	if difficultyNum.Sign() <= 0 {
		return big.NewInt(0)
	}

	// (1 << 256) / (difficultyNum + 1)
	denominator := new(big.Int).Add(difficultyNum, bigOne)
	return new(big.Int).Div(oneLsh256, denominator)
}

// CheckProofOfWork returns whether the provided proof-of-work hash satisfies
// the target difficulty encoded by the provided compact bits for the given
// network.  Malformed bits values (negative, zero, overflowing, or easier
// than the network proof-of-work limit) are a validation failure, never a
// fatal error.
func CheckProofOfWork(powHash *chainhash.Hash, bits uint32, params *chaincfg.Params) bool {
	// The target difficulty must be larger than zero and must fit both the
	// width of a 256-bit integer and the network proof-of-work limit.
	target, isNegative, isOverflow := decodeCompact(bits)
	if isNegative || isOverflow || target.Sign() == 0 ||
		target.Cmp(params.PowLimit) > 0 {

		return false
	}

	// The proof-of-work hash must be less than or equal to the claimed
	// target.
	return HashToBig(powHash).Cmp(target) <= 0
}

// legacyRetargetInterval returns the number of blocks between difficulty
// retargets for the single-algorithm era at the provided block height.  The
// retarget timespan was shortened at FirstTimespanChangeHeight, which changes
// the interval along with it.
func legacyRetargetInterval(blockHeight int32, params *chaincfg.Params) int64 {
	targetSpacing := int64(params.TargetSpacing / time.Second)
	if blockHeight < params.FirstTimespanChangeHeight {
		return int64(params.OriginalTargetTimespan/time.Second) / targetSpacing
	}
	return int64(params.TargetTimespan/time.Second) / targetSpacing
}

// calcLegacyRequiredDifficulty implements the single-algorithm difficulty
// retarget rules that applied before the multi-algorithm fork.  lastNode is
// the block prior to the one the difficulty is being calculated for and
// newBlockTime is the candidate block's timestamp.
func calcLegacyRequiredDifficulty(lastNode HeaderCtx, newBlockTime time.Time,
	params *chaincfg.Params) (uint32, error) {

	powLimitBits := params.PowLimitBits

	// Only change once per difficulty adjustment interval.
	interval := legacyRetargetInterval(lastNode.Height()+1, params)
	if (int64(lastNode.Height())+1)%interval != 0 {
		// For networks that support it, allow special reduction of the
		// required difficulty once too much time has elapsed without
		// mining a block.
		if params.ReduceMinDifficulty {
			// Return minimum difficulty when more than twice the
			// target spacing has elapsed without mining a block.
			reductionTime := int64(params.TargetSpacing/time.Second) * 2
			if newBlockTime.Unix() > lastNode.Timestamp()+reductionTime {
				return powLimitBits, nil
			}

			// The block was mined within the desired timeframe, so
			// return the difficulty for the last block which did
			// not have the special minimum difficulty rule applied.
			iterNode := lastNode
			for iterNode.Parent() != nil &&
				int64(iterNode.Height())%interval != 0 &&
				iterNode.Bits() == powLimitBits {

				iterNode = iterNode.Parent()
			}
			return iterNode.Bits(), nil
		}

		// For the main network (or any unrecognized networks), simply
		// return the previous block's difficulty requirements.
		return lastNode.Bits(), nil
	}

	// Go back the full interval worth of blocks to find the reference
	// timestamp unless this is the very first retarget after genesis, in
	// which case the window is one block shorter.  Going back the full
	// period otherwise closes a difficulty manipulation window inherited
	// from litecoin.
	blocksToGoBack := interval - 1
	if int64(lastNode.Height())+1 != interval {
		blocksToGoBack = interval
	}

	firstNode := lastNode.RelativeAncestorCtx(int32(blocksToGoBack))
	if firstNode == nil {
		return 0, AssertError("unable to obtain previous retarget block")
	}

	return CalculateNextWorkRequired(lastNode, firstNode.Timestamp(), params), nil
}

// CalculateNextWorkRequired computes the compact difficulty required for the
// block after lastNode from the timespan between lastNode and the
// retarget-window reference timestamp firstBlockTime.  The actual timespan is
// clamped to [targetTimespan/4, targetTimespan*4] before use and the result
// never exceeds the network proof-of-work limit.
func CalculateNextWorkRequired(lastNode HeaderCtx, firstBlockTime int64,
	params *chaincfg.Params) uint32 {

	// Emulate the behavior of the reference client that for regression
	// test networks there is no difficulty retargeting.
	if params.PowNoRetargeting {
		return lastNode.Bits()
	}

	// The retarget timespan was shortened at FirstTimespanChangeHeight.
	// Note this check is against the height of lastNode itself, unlike the
	// interval selection which is against the candidate block's height.
	// The asymmetry is inherited from the reference implementation and is
	// consensus-critical.
	targetTimespan := int64(params.TargetTimespan / time.Second)
	if lastNode.Height() < params.FirstTimespanChangeHeight {
		targetTimespan = int64(params.OriginalTargetTimespan / time.Second)
	}

	// Limit the amount of adjustment that can occur to the previous
	// difficulty.
	actualTimespan := lastNode.Timestamp() - firstBlockTime
	adjustedTimespan := actualTimespan
	if actualTimespan < targetTimespan/4 {
		adjustedTimespan = targetTimespan / 4
	} else if actualTimespan > targetTimespan*4 {
		adjustedTimespan = targetTimespan * 4
	}

	// Calculate new target difficulty as:
	//  currentDifficulty * (adjustedTimespan / targetTimespan)
	// The result uses integer division which means it will be slightly
	// rounded down, exactly as the reference implementation rounds.
	//
	// The intermediate product of a near-limit target and the timespan can
	// exceed 256 bits, so shift a too-wide target right by one bit first
	// and restore it afterwards.  The bottom bit is lost deterministically
	// which matches the reference behavior.
	oldTarget := CompactToBig(lastNode.Bits())
	newTarget := new(big.Int).Set(oldTarget)
	shifted := newTarget.BitLen() > params.PowLimit.BitLen()-1
	if shifted {
		newTarget.Rsh(newTarget, 1)
	}
	newTarget.Mul(newTarget, big.NewInt(adjustedTimespan))
	truncate256(newTarget)
	newTarget.Div(newTarget, big.NewInt(targetTimespan))
	if shifted {
		newTarget.Lsh(newTarget, 1)
		truncate256(newTarget)
	}

	// Limit new value to the proof of work limit.
	if newTarget.Cmp(params.PowLimit) > 0 {
		newTarget.Set(params.PowLimit)
	}

	// Log new target difficulty and return it.  The new target logging is
	// intentionally converting the bits back to a number instead of using
	// newTarget since conversion to the compact representation loses
	// precision.
	newTargetBits := BigToCompact(newTarget)
	log.Debugf("Difficulty retarget at block height %d", lastNode.Height()+1)
	log.Debugf("Old target %08x (%064x)", lastNode.Bits(), oldTarget)
	log.Debugf("New target %08x (%064x)", newTargetBits,
		CompactToBig(newTargetBits))
	log.Debugf("Actual timespan %v, adjusted timespan %v, target timespan %v",
		time.Duration(actualTimespan)*time.Second,
		time.Duration(adjustedTimespan)*time.Second,
		time.Duration(targetTimespan)*time.Second)

	return newTargetBits
}

// CalcNextRequiredDifficulty calculates the required difficulty for the block
// after the passed previous block node based on the difficulty retarget
// rules.  The rules that apply depend on the candidate block's height: below
// the multi-algorithm fork height the original single-algorithm retarget is
// used, from the fork onward the interleaved multi-algorithm retarget takes
// over and the candidate header's version selects which algorithm is being
// retargeted.
//
// Passing a nil lastNode requests the difficulty of the genesis block, which
// is the network proof-of-work limit.
//
// This function is safe for concurrent access.
func CalcNextRequiredDifficulty(lastNode HeaderCtx, header *wire.BlockHeader,
	params *chaincfg.Params) (uint32, error) {

	// Genesis block.
	if lastNode == nil {
		return params.PowLimitBits, nil
	}

	if lastNode.Height()+1 < params.MultiAlgoForkHeight {
		return calcLegacyRequiredDifficulty(lastNode, header.Timestamp,
			params)
	}

	return calcMultiAlgoRequiredDifficulty(lastNode, header.Algo(), params)
}
