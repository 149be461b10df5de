// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/gstefans/smileyCoinDev/blockchain"
	"github.com/gstefans/smileyCoinDev/chaincfg"
	"github.com/gstefans/smileyCoinDev/wire"
)

// TestBigToCompact ensures BigToCompact converts big integers to the expected
// compact representation.
func TestBigToCompact(t *testing.T) {
	tests := []struct {
		in  *big.Int
		out uint32
	}{
		{big.NewInt(0), 0},
		{big.NewInt(-1), 0x01810000},
		{big.NewInt(0x1234), 0x02123400},
		{new(big.Int).Lsh(big.NewInt(0x0404cb), 192), 0x1b0404cb},
		{new(big.Int).Lsh(big.NewInt(0xffff), 208), 0x1d00ffff},
		{chaincfg.MainNetParams.PowLimit, 0x1e0fffff},
	}

	for x, test := range tests {
		r := blockchain.BigToCompact(test.in)
		if r != test.out {
			t.Errorf("TestBigToCompact test #%d failed: got 0x%08x "+
				"want 0x%08x\n", x, r, test.out)
			return
		}
	}
}

// TestCompactToBig ensures CompactToBig converts compact representations to
// the expected big integers.
func TestCompactToBig(t *testing.T) {
	tests := []struct {
		in  uint32
		out *big.Int
	}{
		{0, big.NewInt(0)},
		{0x00123456, big.NewInt(0)},
		{0x01003456, big.NewInt(0)},
		{0x01123456, big.NewInt(0x12)},
		{0x02123456, big.NewInt(0x1234)},
		{0x03123456, big.NewInt(0x123456)},
		{0x04123456, big.NewInt(0x12345600)},
		{0x04923456, big.NewInt(-0x12345600)},
		{0x1b0404cb, new(big.Int).Lsh(big.NewInt(0x0404cb), 192)},
		{0x1d00ffff, new(big.Int).Lsh(big.NewInt(0xffff), 208)},
		{0x1e0fffff, new(big.Int).Lsh(big.NewInt(0x0fffff), 216)},
	}

	for x, test := range tests {
		n := blockchain.CompactToBig(test.in)
		if n.Cmp(test.out) != 0 {
			t.Errorf("TestCompactToBig test #%d failed: got %x want %x\n",
				x, n, test.out)
			return
		}
	}
}

// TestCompactRoundTrip ensures that encoding the decoded form of canonical
// compact values reproduces them exactly.
func TestCompactRoundTrip(t *testing.T) {
	// A handful of notable canonical values.
	tests := []uint32{
		0x1d00ffff, // original bitcoin powLimit
		0x1e0fffff, // scrypt-chain powLimit
		0x207fffff, // regtest powLimit
		0x1b0404cb,
		0x03123456,
	}
	for _, want := range tests {
		got := blockchain.BigToCompact(blockchain.CompactToBig(want))
		if got != want {
			t.Errorf("round trip failed: got 0x%08x want 0x%08x",
				got, want)
		}
	}

	// Exhaust the canonical mantissa/exponent grid for a few mantissas.
	// Canonical here means the mantissa has a non-zero top byte and no
	// sign bit so no precision is lost by the decode.
	for _, mantissa := range []uint32{0x010000, 0x0abcde, 0x7fffff} {
		for exponent := uint32(3); exponent <= 32; exponent++ {
			want := exponent<<24 | mantissa
			got := blockchain.BigToCompact(blockchain.CompactToBig(want))
			if got != want {
				t.Errorf("round trip failed: got 0x%08x want 0x%08x",
					got, want)
				return
			}
		}
	}
}

// TestCalcWork ensures CalcWork computes the expected work values from
// compact difficulty bits.
func TestCalcWork(t *testing.T) {
	tests := []struct {
		in  uint32
		out *big.Int
	}{
		// Negative and zero targets represent no work.
		{0x00000000, big.NewInt(0)},
		{0x01810000, big.NewInt(0)},

		// 2^256 / (0xffff*2^208 + 1).
		{0x1d00ffff, big.NewInt(0x100010001)},
	}

	for x, test := range tests {
		r := blockchain.CalcWork(test.in)
		if r.Cmp(test.out) != 0 {
			t.Errorf("TestCalcWork test #%d failed: got %v want %v\n",
				x, r, test.out)
			return
		}
	}
}

// TestCheckProofOfWork ensures the proof of work validation accepts exactly
// the hashes that are less than or equal to the decoded target and rejects
// malformed targets outright.
func TestCheckProofOfWork(t *testing.T) {
	params := &chaincfg.MainNetParams
	target := blockchain.CompactToBig(0x1d00ffff)

	tests := []struct {
		name string
		hash *big.Int
		bits uint32
		want bool
	}{
		{
			name: "hash below target",
			hash: new(big.Int).Sub(target, big.NewInt(1)),
			bits: 0x1d00ffff,
			want: true,
		},
		{
			name: "hash equal to target",
			hash: new(big.Int).Set(target),
			bits: 0x1d00ffff,
			want: true,
		},
		{
			name: "hash above target",
			hash: new(big.Int).Add(target, big.NewInt(1)),
			bits: 0x1d00ffff,
			want: false,
		},
		{
			name: "zero target",
			hash: big.NewInt(0),
			bits: 0x00000000,
			want: false,
		},
		{
			name: "negative target",
			hash: big.NewInt(0),
			bits: 0x1d80ffff,
			want: false,
		},
		{
			name: "overflowing target",
			hash: big.NewInt(0),
			bits: 0x23123456,
			want: false,
		},
		{
			name: "target easier than pow limit",
			hash: big.NewInt(0),
			bits: 0x1e100000,
			want: false,
		},
	}

	for _, test := range tests {
		hash := bigToHash(test.hash)
		got := blockchain.CheckProofOfWork(&hash, test.bits, params)
		if got != test.want {
			t.Errorf("%s: got %v want %v", test.name, got, test.want)
		}
	}
}

// TestCalcNextRequiredDifficultyGenesis ensures a nil previous node yields the
// proof of work limit for the network.
func TestCalcNextRequiredDifficultyGenesis(t *testing.T) {
	params := &chaincfg.MainNetParams
	header := &wire.BlockHeader{Version: 1, Timestamp: time.Unix(1000000, 0)}

	bits, err := blockchain.CalcNextRequiredDifficulty(nil, header, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bits != params.PowLimitBits {
		t.Fatalf("got 0x%08x want 0x%08x", bits, params.PowLimitBits)
	}
}

// TestCalcNextRequiredDifficultyNonBoundary ensures the difficulty is carried
// over unchanged between retarget boundaries on the main network.
func TestCalcNextRequiredDifficultyNonBoundary(t *testing.T) {
	params := &chaincfg.MainNetParams
	const startBits = 0x1c0ffff0

	builder := newChainBuilder(0, 1, startBits, 1000000)
	tip := builder.extendBy(10, 1, startBits, 150)
	header := &wire.BlockHeader{
		Version:   1,
		Timestamp: time.Unix(tip.timestamp+150, 0),
	}

	bits, err := blockchain.CalcNextRequiredDifficulty(tip, header, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bits != startBits {
		t.Fatalf("got 0x%08x want 0x%08x", bits, startBits)
	}
}

// TestCalcNextRequiredDifficultyRetarget exercises the first retarget
// boundary after genesis with blocks arriving at twice the target spacing and
// ensures the target is eased by the same factor.
func TestCalcNextRequiredDifficultyRetarget(t *testing.T) {
	params := &chaincfg.MainNetParams
	const startBits = 0x1c0ffff0

	// 2016 blocks (genesis inclusive) mined at twice the 150s target
	// spacing.
	builder := newChainBuilder(0, 1, startBits, 1000000)
	tip := builder.extendBy(2015, 1, startBits, 300)
	header := &wire.BlockHeader{
		Version:   1,
		Timestamp: time.Unix(tip.timestamp+300, 0),
	}

	bits, err := blockchain.CalcNextRequiredDifficulty(tip, header, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The retarget window is interval-1 blocks for the very first
	// retarget, so the measured timespan is 2015 doubled spacings against
	// the original target timespan.
	actualTimespan := int64(2015 * 300)
	targetTimespan := int64(chaincfg.MainNetParams.OriginalTargetTimespan / time.Second)
	want := new(big.Int).Mul(blockchain.CompactToBig(startBits),
		big.NewInt(actualTimespan))
	want.Div(want, big.NewInt(targetTimespan))
	wantBits := blockchain.BigToCompact(want)

	if bits != wantBits {
		t.Fatalf("got 0x%08x want 0x%08x", bits, wantBits)
	}
	if blockchain.CompactToBig(bits).Cmp(blockchain.CompactToBig(startBits)) <= 0 {
		t.Fatalf("retarget did not ease the target: 0x%08x", bits)
	}
}

// TestCalcNextRequiredDifficultyClamp ensures the measured timespan is
// clamped to a quarter of and four times the target timespan before use.
func TestCalcNextRequiredDifficultyClamp(t *testing.T) {
	params := &chaincfg.MainNetParams
	const startBits = 0x1c0ffff0
	targetTimespan := int64(params.OriginalTargetTimespan / time.Second)

	tests := []struct {
		name    string
		spacing int64
		factor  *big.Rat
	}{
		// Ten times the target spacing clamps to 4x, a tenth clamps to
		// a quarter.
		{"too slow clamps to 4x", 1500, big.NewRat(4, 1)},
		{"too fast clamps to 1/4", 15, big.NewRat(1, 4)},
	}

	for _, test := range tests {
		builder := newChainBuilder(0, 1, startBits, 1000000)
		tip := builder.extendBy(2015, 1, startBits, test.spacing)
		header := &wire.BlockHeader{
			Version:   1,
			Timestamp: time.Unix(tip.timestamp+test.spacing, 0),
		}

		bits, err := blockchain.CalcNextRequiredDifficulty(tip, header, params)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}

		clamped := new(big.Int).Mul(big.NewInt(targetTimespan),
			test.factor.Num())
		clamped.Div(clamped, test.factor.Denom())
		want := new(big.Int).Mul(blockchain.CompactToBig(startBits), clamped)
		want.Div(want, big.NewInt(targetTimespan))
		if want.Cmp(params.PowLimit) > 0 {
			want.Set(params.PowLimit)
		}
		wantBits := blockchain.BigToCompact(want)

		if bits != wantBits {
			t.Errorf("%s: got 0x%08x want 0x%08x", test.name, bits,
				wantBits)
		}
	}
}

// TestCalcNextRequiredDifficultyShiftedTarget exercises a retarget whose
// previous target is wide enough for the intermediate product to overflow
// 256 bits, requiring the deterministic one-bit shift before scaling.
func TestCalcNextRequiredDifficultyShiftedTarget(t *testing.T) {
	params := &chaincfg.MainNetParams

	// The proof of work limit bits decode to a 236-bit target, which
	// exceeds PowLimit.BitLen()-1 and forces the shift.
	startBits := params.PowLimitBits

	// Blocks arriving at half the target spacing so the retarget tightens
	// the target below the limit rather than clamping back onto it.
	builder := newChainBuilder(0, 1, startBits, 1000000)
	tip := builder.extendBy(2015, 1, startBits, 75)
	header := &wire.BlockHeader{
		Version:   1,
		Timestamp: time.Unix(tip.timestamp+75, 0),
	}

	bits, err := blockchain.CalcNextRequiredDifficulty(tip, header, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	actualTimespan := int64(2015 * 75)
	targetTimespan := int64(params.OriginalTargetTimespan / time.Second)
	want := blockchain.CompactToBig(startBits)
	want.Rsh(want, 1)
	want.Mul(want, big.NewInt(actualTimespan))
	want.Div(want, big.NewInt(targetTimespan))
	want.Lsh(want, 1)
	wantBits := blockchain.BigToCompact(want)

	if bits != wantBits {
		t.Fatalf("got 0x%08x want 0x%08x", bits, wantBits)
	}
	if blockchain.CompactToBig(bits).Cmp(params.PowLimit) >= 0 {
		t.Fatal("retarget did not tighten the target below the limit")
	}
}

// TestCalcNextRequiredDifficultyReduceMin exercises the test network special
// minimum difficulty rules for non-boundary blocks.
func TestCalcNextRequiredDifficultyReduceMin(t *testing.T) {
	params := &chaincfg.TestNetParams
	powLimitBits := params.PowLimitBits
	const realBits = 0x1c0ffff0

	// A block arriving more than twice the target spacing after the
	// previous one may claim the proof of work limit.
	builder := newChainBuilder(0, 1, realBits, 1000000)
	tip := builder.extendBy(4, 1, realBits, 150)
	header := &wire.BlockHeader{
		Version:   1,
		Timestamp: time.Unix(tip.timestamp+301, 0),
	}
	bits, err := blockchain.CalcNextRequiredDifficulty(tip, header, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bits != powLimitBits {
		t.Fatalf("late block: got 0x%08x want 0x%08x", bits, powLimitBits)
	}

	// A block arriving in time inherits the difficulty of the most recent
	// ancestor that did not use the special rule.
	builder = newChainBuilder(0, 1, realBits, 1000000)
	builder.extend(1, realBits, 150)
	builder.extendBy(3, 1, powLimitBits, 150)
	tip = builder.tip
	header = &wire.BlockHeader{
		Version:   1,
		Timestamp: time.Unix(tip.timestamp+150, 0),
	}
	bits, err = blockchain.CalcNextRequiredDifficulty(tip, header, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bits != realBits {
		t.Fatalf("walkback: got 0x%08x want 0x%08x", bits, realBits)
	}
}

// TestCalcNextRequiredDifficultyMissingAncestor ensures a retarget boundary
// with an unreachable retarget window reports a corrupted chain index.
func TestCalcNextRequiredDifficultyMissingAncestor(t *testing.T) {
	params := &chaincfg.MainNetParams

	// A lone node claiming to sit one block before a retarget boundary.
	tip := newChainBuilder(2015, 1, 0x1c0ffff0, 1000000).tip
	header := &wire.BlockHeader{
		Version:   1,
		Timestamp: time.Unix(tip.timestamp+150, 0),
	}

	_, err := blockchain.CalcNextRequiredDifficulty(tip, header, params)
	if err == nil {
		t.Fatal("expected an assertion error for the missing ancestor")
	}
	if _, ok := err.(blockchain.AssertError); !ok {
		t.Fatalf("wrong error type: %T (%v)", err, err)
	}
}

// TestCalculateNextWorkRequiredNoRetargeting ensures networks with
// retargeting disabled carry the previous difficulty forward.
func TestCalculateNextWorkRequiredNoRetargeting(t *testing.T) {
	params := &chaincfg.RegressionNetParams
	const startBits = 0x207fffff

	builder := newChainBuilder(0, 1, startBits, 1000000)
	tip := builder.extendBy(10, 1, startBits, 10000)

	bits := blockchain.CalculateNextWorkRequired(tip, int64(1000000), params)
	if bits != startBits {
		t.Fatalf("got 0x%08x want 0x%08x", bits, startBits)
	}
}
