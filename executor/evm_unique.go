// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

// evmUnique collections are already deployed ERC721 contracts on the EVM
// side-chain. The launchpad must hold their minter role.
type evmUnique struct{}

func (evmUnique) verifyRegistration(tx *txs.RegisterCollection) error {
	if _, err := evm.ParseHex(tx.ContractAddress); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChainConfig, err)
	}
	return nil
}

func (evmUnique) register(e *Executor, _ *state.Config, tx *txs.RegisterCollection, c *state.Collection) error {
	contract, err := evm.ParseHex(tx.ContractAddress)
	if err != nil {
		return err
	}

	c.Address = evm.Lower(contract)
	exists, err := state.HasCollection(e.State, c.Address)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrCollectionExists, c.Address)
	}

	sender, err := e.evmAddress(e.Env.Sender)
	if err != nil {
		return err
	}
	isAdmin, err := e.RoleOracle.HasRole(contract, sender, evm.DefaultAdminRole)
	if err != nil {
		return err
	}
	if !isAdmin {
		return fmt.Errorf("%w: %s isn't an admin of %s", ErrUnauthorized, sender, c.Address)
	}

	launchpad, err := evm.Bech32ToHex(e.Env.Contract)
	if err != nil {
		return err
	}
	isMinter, err := e.RoleOracle.HasRole(contract, launchpad, evm.MinterRole)
	if err != nil {
		return err
	}
	if !isMinter {
		return fmt.Errorf("%w: %s", ErrNotMinter, c.Address)
	}

	if err := state.SetCollection(e.State, c.Address, c); err != nil {
		return err
	}
	e.Response.AddAttribute("collection", c.Address)
	return nil
}

func (evmUnique) exceedsSupply(c *state.Collection, _ *state.MintGroup, amount uint64) bool {
	return uniqueExceedsSupply(c, amount)
}

func (evmUnique) mint(e *Executor, c *state.Collection, a *admission, amount uint64) error {
	recipient, err := e.evmAddress(e.Env.Sender)
	if err != nil {
		return err
	}

	for i := uint64(0); i < amount; i++ {
		data, err := evm.MintCalldata(recipient, c.NextToken+i)
		if err != nil {
			return err
		}
		e.emit(&message.EVMCall{
			To:   c.Address,
			Data: data,
		})
	}
	e.Response.AddAttribute("evm_recipient", evm.Lower(recipient))
	return recordUniqueMints(e, c, a, amount)
}

func (evmUnique) updateMetadata(*state.Collection) (message.Message, error) {
	return nil, nil
}

func (evmUnique) unfreeze(c *state.Collection) (message.Message, error) {
	data, err := evm.UnfreezeCalldata()
	if err != nil {
		return nil, err
	}
	return &message.EVMCall{
		To:   c.Address,
		Data: data,
	}, nil
}

func (evmUnique) reveal(c *state.Collection) (message.Message, error) {
	data, err := evm.RevealCalldata()
	if err != nil {
		return nil, err
	}
	return &message.EVMCall{
		To:   c.Address,
		Data: data,
	}, nil
}

// updateContractAdmin hands the minter role of the contract to [admin],
// which is either a native address with an EVM association or a 0x address.
func (evmUnique) updateContractAdmin(e *Executor, c *state.Collection, admin string) (message.Message, error) {
	var (
		minter ethcommon.Address
		err    error
	)
	if evm.IsBech32(e.HRP, admin) {
		minter, err = e.evmAddress(admin)
	} else {
		minter, err = evm.ParseHex(admin)
	}
	if err != nil {
		return nil, err
	}

	data, err := evm.UpdateMinterCalldata(minter)
	if err != nil {
		return nil, err
	}
	e.Response.AddAttribute("new_minter", evm.Lower(minter))
	return &message.EVMCall{
		To:   c.Address,
		Data: data,
	}, nil
}

func (evmUnique) transferOwnership(*Executor, *state.Collection, string) (message.Message, error) {
	return nil, ErrNotAvailableForEVM
}
