// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"
	"strconv"

	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

const nativeUniqueLabel = "lighthouse nft collection"

// nativeUnique collections are unique-token contracts on this chain.
type nativeUnique struct{}

func (nativeUnique) verifyRegistration(tx *txs.RegisterCollection) error {
	if tx.CodeID == 0 {
		return fmt.Errorf("%w: code id is required", ErrInvalidChainConfig)
	}
	return nil
}

func (nativeUnique) register(e *Executor, config *state.Config, tx *txs.RegisterCollection, c *state.Collection) error {
	initMsg := &message.NFTInstantiate{
		Name:                  c.Name,
		Symbol:                c.Symbol,
		Minter:                e.Env.Contract,
		IsImmutable:           tx.IsImmutable,
		Frozen:                c.Frozen,
		UnfreezeTime:          c.UnfreezeTime,
		HiddenMetadata:        c.HiddenMetadata,
		PlaceholderTokenURI:   c.Metadata.PlaceholderTokenURI,
		BaseURI:               c.Metadata.TokenURI,
		FixedURI:              c.Metadata.FixedURI,
		BaseURISuffix:         c.Metadata.URISuffix,
		RoyaltyPercentage:     c.Metadata.RoyaltyPercent,
		RoyaltyPaymentAddress: c.Metadata.RoyaltyWallet,
	}
	return e.instantiate(config, c, tx.CodeID, initMsg, nativeUniqueLabel)
}

func (nativeUnique) exceedsSupply(c *state.Collection, _ *state.MintGroup, amount uint64) bool {
	return uniqueExceedsSupply(c, amount)
}

func (nativeUnique) mint(e *Executor, c *state.Collection, a *admission, amount uint64) error {
	for i := uint64(0); i < amount; i++ {
		msg, err := message.NewWasmExecute(c.Address, &message.NFTExecute{
			Mint: &message.NFTMint{
				TokenID: strconv.FormatUint(c.NextToken+i, 10),
				Owner:   e.Env.Sender,
			},
		})
		if err != nil {
			return err
		}
		e.emit(msg)
	}
	return recordUniqueMints(e, c, a, amount)
}

func (nativeUnique) updateMetadata(c *state.Collection) (message.Message, error) {
	return message.NewWasmExecute(c.Address, &message.NFTExecute{
		Extension: &message.NFTExtension{
			Msg: message.NFTExtensionMsg{
				UpdateLighthouseData: &message.UpdateLighthouseData{
					PlaceholderTokenURI:          c.Metadata.PlaceholderTokenURI,
					BaseURI:                      c.Metadata.TokenURI,
					FixedURI:                     c.Metadata.FixedURI,
					BaseURISuffix:                c.Metadata.URISuffix,
					DefaultRoyaltyPercentage:     c.Metadata.RoyaltyPercent,
					DefaultRoyaltyPaymentAddress: c.Metadata.RoyaltyWallet,
				},
			},
		},
	})
}

func (nativeUnique) unfreeze(c *state.Collection) (message.Message, error) {
	return message.NewWasmExecute(c.Address, &message.NFTExecute{
		Extension: &message.NFTExtension{
			Msg: message.NFTExtensionMsg{
				Unfreeze: &message.Empty{},
			},
		},
	})
}

func (nativeUnique) reveal(c *state.Collection) (message.Message, error) {
	return nativeReveal(c)
}

func (nativeUnique) updateContractAdmin(e *Executor, c *state.Collection, admin string) (message.Message, error) {
	return nativeUpdateAdmin(e, c, admin)
}

func (nativeUnique) transferOwnership(e *Executor, c *state.Collection, owner string) (message.Message, error) {
	if err := e.verifyAddress(owner); err != nil {
		return nil, err
	}
	return message.NewWasmExecute(c.Address, &message.NFTExecute{
		UpdateOwnership: &message.UpdateOwnership{
			TransferOwnership: &message.TransferOwnership{
				NewOwner: owner,
			},
		},
	})
}

// nativeReveal is understood by every native token contract the launchpad
// instantiates.
func nativeReveal(c *state.Collection) (message.Message, error) {
	return message.NewWasmExecute(c.Address, &message.NFTExecute{
		Extension: &message.NFTExtension{
			Msg: message.NFTExtensionMsg{
				Reveal: &message.Empty{},
			},
		},
	})
}
