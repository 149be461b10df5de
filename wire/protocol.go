// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// SmileyNet represents which smileycoin network a message belongs to.
type SmileyNet uint32

// Constants used to indicate the message smileycoin network.  They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main smileycoin network.
	MainNet SmileyNet = 0xbf9cbedf

	// TestNet represents the test network.
	TestNet SmileyNet = 0x0b110917

	// RegTestNet represents the regression test network.
	RegTestNet SmileyNet = 0xdab5bffa

	// SimNet represents the simulation test network.
	SimNet SmileyNet = 0x12141c16
)

// smileyNetStrings is a map of smileycoin networks back to their constant
// names for pretty printing.
var smileyNetStrings = map[SmileyNet]string{
	MainNet:    "MainNet",
	TestNet:    "TestNet",
	RegTestNet: "RegTestNet",
	SimNet:     "SimNet",
}

// String returns the SmileyNet in human-readable form.
func (n SmileyNet) String() string {
	if s, ok := smileyNetStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown SmileyNet (%d)", uint32(n))
}
