// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

// Mint admits the mint, settles its payments and dispatches it to the token
// contract.
func (e *Executor) Mint(tx *txs.Mint) error {
	if tx.Amount == 0 {
		return ErrInvalidMintAmount
	}

	config, err := e.config()
	if err != nil {
		return err
	}
	c, err := e.collection(tx.Collection)
	if err != nil {
		return err
	}
	s, err := strategyFor(c.Chain, c.Standard)
	if err != nil {
		return err
	}

	a, err := e.admit(config, c, s, tx)
	if err != nil {
		return err
	}
	if err := e.distribute(config, c, a.group, tx.Amount); err != nil {
		return err
	}
	if err := s.mint(e, c, a, tx.Amount); err != nil {
		return err
	}

	if err := state.SetMintInfo(e.State, e.Env.Sender, c.Address, a.group.Name, a.mintInfo); err != nil {
		return err
	}
	if err := state.SetGlobalMintCount(e.State, c.Address, a.group.Name, a.minted); err != nil {
		return err
	}
	if err := state.SetCollection(e.State, c.Address, c); err != nil {
		return err
	}

	e.Response.AddAttribute("action", "mint")
	e.Response.AddAttribute("collection", c.Address)
	e.Response.AddAttribute("group", a.group.Name)
	e.Response.AddAttribute("minted", strconv.FormatUint(tx.Amount, 10))
	e.debug("minted",
		zap.String("collection", c.Address),
		zap.String("group", a.group.Name),
		zap.Uint64("amount", tx.Amount),
		zap.Uint64("nextToken", c.NextToken),
	)
	return nil
}
