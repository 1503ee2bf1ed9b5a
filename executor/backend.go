// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/message"
)

// Backend holds the dependencies shared by every call.
type Backend struct {
	Log logging.Logger
	// HRP is the human readable part of native addresses.
	HRP           string
	AddressOracle evm.AddressOracle
	RoleOracle    evm.RoleOracle
}

// Env describes the call being executed.
type Env struct {
	// Sender is the native address that signed the call.
	Sender string
	// Contract is the native address of the launchpad.
	Contract string
	// Time is the block time in unix seconds.
	Time  uint64
	Funds []message.Coin
}
