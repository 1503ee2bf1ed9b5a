// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"
	"strconv"

	"github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

var (
	_ strategy = nativeUnique{}
	_ strategy = nativeFungible{}
	_ strategy = evmUnique{}
)

// strategy implements everything that depends on where a collection's token
// contract lives and which standard it follows.
type strategy interface {
	// verifyRegistration checks the chain specific fields of [tx].
	verifyRegistration(tx *txs.RegisterCollection) error
	// register either records [c] as pending instantiation or registers it
	// directly.
	register(e *Executor, config *state.Config, tx *txs.RegisterCollection, c *state.Collection) error
	// exceedsSupply returns true if minting [amount] units from [g] would
	// issue more than the collection's supply.
	exceedsSupply(c *state.Collection, g *state.MintGroup, amount uint64) bool
	// mint emits the mint instructions of an admitted mint and records the
	// minted units.
	mint(e *Executor, c *state.Collection, a *admission, amount uint64) error
	// updateMetadata returns the message pushing the metadata of [c] to its
	// token contract, or nil if the contract manages its own metadata.
	updateMetadata(c *state.Collection) (message.Message, error)
	unfreeze(c *state.Collection) (message.Message, error)
	reveal(c *state.Collection) (message.Message, error)
	updateContractAdmin(e *Executor, c *state.Collection, admin string) (message.Message, error)
	transferOwnership(e *Executor, c *state.Collection, owner string) (message.Message, error)
}

func strategyFor(chain state.Chain, standard state.Standard) (strategy, error) {
	switch {
	case chain == state.ChainNative && standard == state.StandardUnique:
		return nativeUnique{}, nil
	case chain == state.ChainNative && standard == state.StandardFungible:
		return nativeFungible{}, nil
	case chain == state.ChainEVM && standard == state.StandardUnique:
		return evmUnique{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported chain %q with standard %q",
			ErrInvalidChainConfig, chain, standard)
	}
}

// instantiate records [c] as pending and emits the instantiation of its
// token contract, tagged with a freshly issued reply id.
func (e *Executor) instantiate(
	config *state.Config,
	c *state.Collection,
	codeID uint64,
	initMsg interface{},
	label string,
) error {
	replyID := config.NextReplyID
	nextReplyID, err := math.Add64(replyID, 1)
	if err != nil {
		return err
	}

	msg, err := message.NewWasmInstantiate(codeID, initMsg, e.Env.Sender, label, replyID)
	if err != nil {
		return err
	}
	if err := state.SetPendingCollection(e.State, replyID, c); err != nil {
		return err
	}

	config.NextReplyID = nextReplyID
	if err := state.SetConfig(e.State, config); err != nil {
		return err
	}

	e.emit(msg)
	e.Response.AddAttribute("reply_id", strconv.FormatUint(replyID, 10))
	return nil
}

// nativeUpdateAdmin changes the migration admin of a native token contract.
func nativeUpdateAdmin(e *Executor, c *state.Collection, admin string) (message.Message, error) {
	if err := e.verifyAddress(admin); err != nil {
		return nil, err
	}
	e.Response.AddAttribute("new_admin", admin)
	return &message.WasmUpdateAdmin{
		Contract: c.Address,
		Admin:    admin,
	}, nil
}

// recordUniqueMints assigns [amount] sequential token ids to the sender.
func recordUniqueMints(e *Executor, c *state.Collection, a *admission, amount uint64) error {
	tokenIDs := make([]string, 0, amount)
	for i := uint64(0); i < amount; i++ {
		tokenID := c.NextToken + i
		if err := state.SetTokenMinter(e.State, c.Address, tokenID, e.Env.Sender); err != nil {
			return err
		}
		a.mintInfo.Mints = append(a.mintInfo.Mints, tokenID)
		tokenIDs = append(tokenIDs, strconv.FormatUint(tokenID, 10))
	}

	minted, err := math.Add64(a.minted, amount)
	if err != nil {
		return err
	}
	a.minted = minted
	c.NextToken += amount

	for _, tokenID := range tokenIDs {
		e.Response.AddAttribute("token_id", tokenID)
	}
	return nil
}

func uniqueExceedsSupply(c *state.Collection, amount uint64) bool {
	minted, err := math.Add64(c.Minted(), amount)
	return err != nil || minted > c.Supply
}
