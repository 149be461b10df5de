// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"
)

// TestAlgoFromVersion ensures the algorithm selector is extracted from block
// versions correctly, including the legacy and unrecognized cases.
func TestAlgoFromVersion(t *testing.T) {
	tests := []struct {
		name    string
		version int32
		want    PowAlgo
	}{
		{"legacy version 1", 1, AlgoScrypt},
		{"sha256d", BlockVersionSHA256D, AlgoSHA256D},
		{"scrypt", BlockVersionScrypt, AlgoScrypt},
		{"groestl", BlockVersionGroestl, AlgoGroestl},
		{"skein", BlockVersionSkein, AlgoSkein},
		{"qubit", BlockVersionQubit, AlgoQubit},
		{"selector with upper version bits", BlockVersionSkein | 0x20000000, AlgoSkein},
		{"unrecognized selector", 0xf, AlgoScrypt},
		{"zero version", 0, AlgoScrypt},
	}

	for _, test := range tests {
		if got := AlgoFromVersion(test.version); got != test.want {
			t.Errorf("%s: got %v want %v", test.name, got, test.want)
		}
	}

	// The header method must agree with the package-level function.
	hdr := BlockHeader{Version: BlockVersionGroestl}
	if hdr.Algo() != AlgoGroestl {
		t.Errorf("header Algo: got %v want %v", hdr.Algo(), AlgoGroestl)
	}
}

// TestAlgoName ensures both directions of the name mapping behave, including
// the case-insensitive lookup and the fallback for unknown names.
func TestAlgoName(t *testing.T) {
	nameTests := []struct {
		algo PowAlgo
		want string
	}{
		{AlgoSHA256D, "sha256d"},
		{AlgoScrypt, "scrypt"},
		{AlgoGroestl, "groestl"},
		{AlgoSkein, "skein"},
		{AlgoQubit, "qubit"},
		{PowAlgo(42), "unknown"},
	}
	for _, test := range nameTests {
		if got := AlgoName(test.algo); got != test.want {
			t.Errorf("AlgoName(%d): got %q want %q", test.algo, got,
				test.want)
		}
		if got := test.algo.String(); got != test.want {
			t.Errorf("String(%d): got %q want %q", test.algo, got,
				test.want)
		}
	}

	byNameTests := []struct {
		name     string
		fallback PowAlgo
		want     PowAlgo
	}{
		{"SHA256D", AlgoScrypt, AlgoSHA256D},
		{"sha", AlgoScrypt, AlgoSHA256D},
		{"Sha256", AlgoScrypt, AlgoSHA256D},
		{"scrypt", AlgoQubit, AlgoScrypt},
		{"GROESTL", AlgoScrypt, AlgoGroestl},
		{"Skein", AlgoScrypt, AlgoSkein},
		{"qubit", AlgoScrypt, AlgoQubit},
		{"bogus", AlgoScrypt, AlgoScrypt},
		{"", AlgoSkein, AlgoSkein},
	}
	for _, test := range byNameTests {
		if got := AlgoByName(test.name, test.fallback); got != test.want {
			t.Errorf("AlgoByName(%q): got %v want %v", test.name, got,
				test.want)
		}
	}
}
