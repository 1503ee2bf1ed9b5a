// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// AddressOracle resolves the association between native and EVM addresses.
type AddressOracle interface {
	// EVMAddress returns the EVM address associated with [native]. The
	// boolean is false if no association exists.
	EVMAddress(native string) (common.Address, bool, error)
	// NativeAddress returns the native address associated with [addr]. The
	// boolean is false if no association exists.
	NativeAddress(addr common.Address) (string, bool, error)
}

// RoleOracle reports AccessControl roles held on EVM contracts.
type RoleOracle interface {
	HasRole(contract, account common.Address, role common.Hash) (bool, error)
}

var _ RoleOracle = (*CallerRoleOracle)(nil)

// ContractCaller is the read-only subset of an EVM client.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// CallerRoleOracle answers role queries by calling hasRole on the contract
// at the latest block.
type CallerRoleOracle struct {
	Caller  ContractCaller
	Timeout time.Duration
}

func (o *CallerRoleOracle) HasRole(contract, account common.Address, role common.Hash) (bool, error) {
	data, err := HasRoleCalldata(role, account)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.Timeout)
	defer cancel()

	output, err := o.Caller.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return false, err
	}
	return UnpackHasRole(output)
}
