// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021-2024 The smileycoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// nbits decodes compact difficulty targets from the command line.  It is a
// small debugging aid for inspecting the nBits field of block headers.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"

	flags "github.com/jessevdk/go-flags"

	"github.com/gstefans/smileyCoinDev/blockchain"
	"github.com/gstefans/smileyCoinDev/chaincfg"
)

type config struct {
	Network string `short:"n" long:"network" description:"Network whose proof-of-work limit to check against" default:"mainnet"`
	Args    struct {
		Bits []string `positional-arg-name:"nbits" required:"1" description:"Compact target value(s), e.g. 0x1e0fffff"`
	} `positional-args:"yes"`
}

func realMain() error {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok &&
			flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return err
	}

	params, err := chaincfg.ParamsForName(cfg.Network)
	if err != nil {
		return fmt.Errorf("network %q: %w", cfg.Network, err)
	}

	limit := new(big.Float).SetInt(blockchain.CompactToBig(params.PowLimitBits))
	for _, arg := range cfg.Args.Bits {
		bits64, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid nbits %q: %w", arg, err)
		}
		bits := uint32(bits64)

		target := blockchain.CompactToBig(bits)
		fmt.Printf("nbits:      0x%08x\n", bits)
		fmt.Printf("target:     %064x\n", target)
		fmt.Printf("canonical:  0x%08x\n", blockchain.BigToCompact(target))
		fmt.Printf("work:       %v\n", blockchain.CalcWork(bits))

		switch {
		case target.Sign() <= 0:
			fmt.Printf("difficulty: n/a (non-positive target)\n")
		default:
			difficulty := new(big.Float).Quo(limit,
				new(big.Float).SetInt(target))
			fmt.Printf("difficulty: %s\n", difficulty.Text('f', 8))
		}

		if target.Sign() <= 0 || target.Cmp(params.PowLimit) > 0 {
			fmt.Printf("valid:      false (outside %s proof-of-work limit)\n",
				params.Name)
		} else {
			fmt.Printf("valid:      true\n")
		}
		fmt.Println()
	}
	return nil
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
