// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/gstefans/smileyCoinDev/wire"
)

// These variables are the chain proof-of-work limit parameters for each
// default network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a smileycoin block
	// can have for the main network.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is the highest proof of work value a smileycoin
	// block can have for the regression test network.  It is the value
	// 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// simNetPowLimit is the highest proof of work value a smileycoin block
	// can have for the simulation test network.  It is the value 2^255 - 1.
	simNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// Params defines a smileycoin network by its parameters.  These parameters may
// be used by smileycoin applications to differentiate networks as well as
// addresses and keys for one network from those intended for use on another
// network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.SmileyNet

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetSpacing is the desired amount of time to generate each block
	// during the single-algorithm era.
	TargetSpacing time.Duration

	// OriginalTargetTimespan is the desired amount of time that should
	// elapse before the block difficulty requirement is examined to
	// determine how it should be changed in order to maintain the desired
	// block generation rate.  It applies below FirstTimespanChangeHeight.
	OriginalTargetTimespan time.Duration

	// TargetTimespan is the retarget timespan in effect from
	// FirstTimespanChangeHeight until the multi-algorithm fork.
	TargetTimespan time.Duration

	// FirstTimespanChangeHeight is the height at which the retarget
	// timespan switches from OriginalTargetTimespan to TargetTimespan.
	FirstTimespanChangeHeight int32

	// MultiAlgoForkHeight is the height at which the chain switches from
	// the single-algorithm scrypt retarget to the interleaved
	// multi-algorithm retarget.
	MultiAlgoForkHeight int32

	// MultiAlgoTimespanForkHeight is the height at which the per-block
	// multi-algorithm timespan switches from MultiAlgoTimespan to
	// MultiAlgoTimespanV2.
	MultiAlgoTimespanForkHeight int32

	// DifficultyChangeForkHeight is the height at which the
	// multi-algorithm averaging interval, the adjustment percentage
	// limits, and the timespan smoothing behavior all switch to their V2
	// values.
	DifficultyChangeForkHeight int32

	// MultiAlgoTimespan is the desired amount of time to generate each
	// block across all algorithms combined once the multi-algorithm fork
	// activates.  The per-algorithm spacing is this value multiplied by
	// the number of algorithms.
	MultiAlgoTimespan time.Duration

	// MultiAlgoTimespanV2 replaces MultiAlgoTimespan from
	// MultiAlgoTimespanForkHeight onward.
	MultiAlgoTimespanV2 time.Duration

	// MultiAlgoAveragingInterval is the number of per-algorithm blocks
	// averaged by the multi-algorithm retarget.
	MultiAlgoAveragingInterval int64

	// MultiAlgoAveragingIntervalV2 replaces MultiAlgoAveragingInterval
	// from DifficultyChangeForkHeight onward.
	MultiAlgoAveragingIntervalV2 int64

	// MultiAlgoMaxAdjustUp is the maximum difficulty increase expressed as
	// a percentage of the averaging target timespan.
	MultiAlgoMaxAdjustUp int64

	// MultiAlgoMaxAdjustDown is the maximum difficulty decrease expressed
	// as a percentage of the averaging target timespan.
	MultiAlgoMaxAdjustDown int64

	// MultiAlgoMaxAdjustUpV2 and MultiAlgoMaxAdjustDownV2 replace the
	// above from DifficultyChangeForkHeight onward.
	MultiAlgoMaxAdjustUpV2   int64
	MultiAlgoMaxAdjustDownV2 int64

	// MultiAlgoLocalTargetAdjustment is the per-missed-slot percentage
	// applied by the per-algorithm local correction of the multi-algorithm
	// retarget.
	MultiAlgoLocalTargetAdjustment int64

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block.  This is really only useful for test
	// networks.
	ReduceMinDifficulty bool

	// PowNoRetargeting defines whether the network has difficulty
	// retargeting enabled or not.  This is really only useful for the
	// regression test network.
	PowNoRetargeting bool

	// GenerateSupported specifies whether or not CPU mining is allowed.
	GenerateSupported bool
}

// MainNetParams defines the network parameters for the main smileycoin
// network.
var MainNetParams = Params{
	Name: "mainnet",
	Net:  wire.MainNet,

	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,

	TargetSpacing:             time.Second * 150,
	OriginalTargetTimespan:    time.Hour * 24 * 7 / 2, // 3.5 days
	TargetTimespan:            time.Hour * 15,
	FirstTimespanChangeHeight: 97050,

	MultiAlgoForkHeight:         218000,
	MultiAlgoTimespanForkHeight: 225000,
	DifficultyChangeForkHeight:  237000,

	MultiAlgoTimespan:            time.Second * 180,
	MultiAlgoTimespanV2:          time.Second * 36,
	MultiAlgoAveragingInterval:   60,
	MultiAlgoAveragingIntervalV2: 2,

	MultiAlgoMaxAdjustUp:     8,
	MultiAlgoMaxAdjustDown:   16,
	MultiAlgoMaxAdjustUpV2:   16,
	MultiAlgoMaxAdjustDownV2: 32,

	MultiAlgoLocalTargetAdjustment: 4,

	ReduceMinDifficulty: false,
	PowNoRetargeting:    false,
	GenerateSupported:   false,
}

// TestNetParams defines the network parameters for the test smileycoin
// network.
var TestNetParams = Params{
	Name: "testnet",
	Net:  wire.TestNet,

	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,

	TargetSpacing:             time.Second * 150,
	OriginalTargetTimespan:    time.Hour * 24 * 7 / 2, // 3.5 days
	TargetTimespan:            time.Hour * 15,
	FirstTimespanChangeHeight: 2016,

	MultiAlgoForkHeight:         4032,
	MultiAlgoTimespanForkHeight: 4500,
	DifficultyChangeForkHeight:  5000,

	MultiAlgoTimespan:            time.Second * 180,
	MultiAlgoTimespanV2:          time.Second * 36,
	MultiAlgoAveragingInterval:   60,
	MultiAlgoAveragingIntervalV2: 2,

	MultiAlgoMaxAdjustUp:     8,
	MultiAlgoMaxAdjustDown:   16,
	MultiAlgoMaxAdjustUpV2:   16,
	MultiAlgoMaxAdjustDownV2: 32,

	MultiAlgoLocalTargetAdjustment: 4,

	ReduceMinDifficulty: true,
	PowNoRetargeting:    false,
	GenerateSupported:   true,
}

// RegressionNetParams defines the network parameters for the regression test
// smileycoin network.  Not to be confused with the test network, this network
// is sometimes simply called "testnet".
var RegressionNetParams = Params{
	Name: "regtest",
	Net:  wire.RegTestNet,

	PowLimit:     regressionPowLimit,
	PowLimitBits: 0x207fffff,

	TargetSpacing:             time.Second * 150,
	OriginalTargetTimespan:    time.Hour * 24 * 7 / 2, // 3.5 days
	TargetTimespan:            time.Hour * 15,
	FirstTimespanChangeHeight: 0,

	MultiAlgoForkHeight:         144,
	MultiAlgoTimespanForkHeight: 288,
	DifficultyChangeForkHeight:  432,

	MultiAlgoTimespan:            time.Second * 180,
	MultiAlgoTimespanV2:          time.Second * 36,
	MultiAlgoAveragingInterval:   60,
	MultiAlgoAveragingIntervalV2: 2,

	MultiAlgoMaxAdjustUp:     8,
	MultiAlgoMaxAdjustDown:   16,
	MultiAlgoMaxAdjustUpV2:   16,
	MultiAlgoMaxAdjustDownV2: 32,

	MultiAlgoLocalTargetAdjustment: 4,

	ReduceMinDifficulty: true,
	PowNoRetargeting:    true,
	GenerateSupported:   true,
}

// SimNetParams defines the network parameters for the simulation test
// smileycoin network.  This network is similar to the normal test network
// except it is intended for private use within a group of individuals doing
// simulation testing.
var SimNetParams = Params{
	Name: "simnet",
	Net:  wire.SimNet,

	PowLimit:     simNetPowLimit,
	PowLimitBits: 0x207fffff,

	TargetSpacing:             time.Second * 150,
	OriginalTargetTimespan:    time.Hour * 24 * 7 / 2, // 3.5 days
	TargetTimespan:            time.Hour * 15,
	FirstTimespanChangeHeight: 0,

	MultiAlgoForkHeight:         144,
	MultiAlgoTimespanForkHeight: 288,
	DifficultyChangeForkHeight:  432,

	MultiAlgoTimespan:            time.Second * 180,
	MultiAlgoTimespanV2:          time.Second * 36,
	MultiAlgoAveragingInterval:   60,
	MultiAlgoAveragingIntervalV2: 2,

	MultiAlgoMaxAdjustUp:     8,
	MultiAlgoMaxAdjustDown:   16,
	MultiAlgoMaxAdjustUpV2:   16,
	MultiAlgoMaxAdjustDownV2: 32,

	MultiAlgoLocalTargetAdjustment: 4,

	ReduceMinDifficulty: true,
	PowNoRetargeting:    false,
	GenerateSupported:   true,
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// smileycoin network could not be set due to the network already being
	// a standard network or previously-registered via this package.
	ErrDuplicateNet = errors.New("duplicate smileycoin network")

	// ErrUnknownNet describes an error where no parameters are registered
	// under the requested network name.
	ErrUnknownNet = errors.New("unknown smileycoin network")
)

// registeredNets tracks the parameter sets registered with this package keyed
// by their lowercase network name.
var registeredNets = make(map[string]*Params)

// Register registers the network parameters for a smileycoin network.  This
// may error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	name := strings.ToLower(params.Name)
	if _, ok := registeredNets[name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[name] = params
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ParamsForName returns the network parameters registered under the provided
// network name.  The match is case-insensitive.  ErrUnknownNet is returned
// when no such network has been registered.
func ParamsForName(name string) (*Params, error) {
	params, ok := registeredNets[strings.ToLower(name)]
	if !ok {
		return nil, ErrUnknownNet
	}
	return params, nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
	mustRegister(&SimNetParams)
}
