// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// AssertError identifies an error that indicates an internal code consistency
// issue and should be treated as a critical and unrecoverable error.  In the
// context of this package it means the chain index handed to a retarget
// calculation is corrupted, for example an ancestor that is structurally
// guaranteed to exist could not be found.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}
