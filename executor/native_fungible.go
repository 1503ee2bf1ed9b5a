// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"
	"strconv"

	"github.com/ava-labs/avalanchego/utils/math"

	cjson "github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

const nativeFungibleLabel = "lighthouse fungible collection"

// nativeFungible collections mint fixed batches of a fungible-batch token on
// this chain.
type nativeFungible struct{}

func (nativeFungible) verifyRegistration(tx *txs.RegisterCollection) error {
	switch {
	case tx.CodeID == 0:
		return fmt.Errorf("%w: code id is required", ErrInvalidChainConfig)
	case tx.StartOrder != nil:
		return fmt.Errorf("%w: start order isn't supported by fungible collections", ErrInvalidChainConfig)
	case tx.Fungible == nil:
		return fmt.Errorf("%w: fungible info is required", ErrInvalidChainConfig)
	default:
		return nil
	}
}

func (nativeFungible) register(e *Executor, config *state.Config, tx *txs.RegisterCollection, c *state.Collection) error {
	whitelist := c.Metadata.FrozenWhitelist
	if whitelist == nil {
		whitelist = []string{}
	}

	initMsg := &message.FungibleInstantiate{
		Name:          c.Name,
		Symbol:        c.Symbol,
		Decimals:      c.Fungible.Decimals,
		IsImmutable:   tx.IsImmutable,
		BaseURI:       c.Metadata.TokenURI,
		BaseURISuffix: c.Metadata.URISuffix,
		MaxEdition:    c.Metadata.MaxEdition,
		TokensPerNFT:  cjson.Uint64(c.Fungible.TokensPerNFT),
		Mint: message.Minter{
			Minter: e.Env.Contract,
			Cap:    cjson.Uint64(c.Fungible.MaxSupply),
		},
		FrozenData: message.FrozenData{
			Frozen:       c.Frozen,
			UnfreezeTime: c.UnfreezeTime,
			Whitelisted:  whitelist,
		},
		Admin:                 e.Env.Sender,
		RoyaltyPercentage:     c.Metadata.RoyaltyPercent,
		RoyaltyPaymentAddress: c.Metadata.RoyaltyWallet,
	}
	if marketing := c.Fungible.Marketing; marketing != (state.Marketing{}) {
		initMsg.Marketing = &message.MarketingMsg{
			Project:     marketing.Project,
			Description: marketing.Description,
			Marketing:   e.Env.Sender,
		}
		if marketing.Logo != "" {
			initMsg.Marketing.Logo = &message.Logo{URL: marketing.Logo}
		}
	}
	return e.instantiate(config, c, tx.CodeID, initMsg, nativeFungibleLabel)
}

func (nativeFungible) exceedsSupply(c *state.Collection, g *state.MintGroup, amount uint64) bool {
	units, err := math.Mul64(amount, g.BatchSize)
	if err != nil {
		return true
	}
	total, err := math.Add64(c.NextToken, units)
	return err != nil || total > c.Supply
}

func (nativeFungible) mint(e *Executor, c *state.Collection, a *admission, amount uint64) error {
	batch := a.group.BatchSize
	msg, err := message.NewWasmExecute(c.Address, &message.FungibleExecute{
		Mint: &message.FungibleMint{
			Recipient: e.Env.Sender,
			Amount:    cjson.Uint64(batch),
		},
	})
	if err != nil {
		return err
	}

	for i := uint64(0); i < amount; i++ {
		e.emit(msg)

		order := a.minted + i
		if err := state.SetOrderMinter(e.State, c.Address, a.group.Name, order, e.Env.Sender); err != nil {
			return err
		}
		a.mintInfo.Mints = append(a.mintInfo.Mints, batch)
	}

	minted, err := math.Add64(a.minted, amount)
	if err != nil {
		return err
	}
	a.minted = minted

	// Bounded by the supply check during admission.
	units := amount * batch
	c.NextToken += units

	e.Response.AddAttribute("amount", strconv.FormatUint(units, 10))
	return nil
}

func (nativeFungible) updateMetadata(c *state.Collection) (message.Message, error) {
	return message.NewWasmExecute(c.Address, &message.FungibleExecute{
		Update404Data: &message.Update404Data{
			BaseURI:               c.Metadata.TokenURI,
			BaseURISuffix:         c.Metadata.URISuffix,
			MaxEdition:            c.Metadata.MaxEdition,
			RoyaltyPercentage:     c.Metadata.RoyaltyPercent,
			RoyaltyPaymentAddress: c.Metadata.RoyaltyWallet,
			FrozenWhitelist:       c.Metadata.FrozenWhitelist,
		},
	})
}

func (nativeFungible) unfreeze(c *state.Collection) (message.Message, error) {
	return message.NewWasmExecute(c.Address, &message.FungibleExecute{
		Unfreeze: &message.Empty{},
	})
}

func (nativeFungible) reveal(c *state.Collection) (message.Message, error) {
	return nativeReveal(c)
}

func (nativeFungible) updateContractAdmin(e *Executor, c *state.Collection, admin string) (message.Message, error) {
	return nativeUpdateAdmin(e, c, admin)
}

func (nativeFungible) transferOwnership(e *Executor, c *state.Collection, owner string) (message.Message, error) {
	if err := e.verifyAddress(owner); err != nil {
		return nil, err
	}
	return message.NewWasmExecute(c.Address, &message.FungibleExecute{
		TransferOwnership: &message.FungibleTransferOwnership{
			NewAdmin: owner,
		},
	})
}
