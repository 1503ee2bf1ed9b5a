// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/lighthouse/merkle"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

func (e *Executor) RegisterCollection(tx *txs.RegisterCollection) error {
	config, err := e.config()
	if err != nil {
		return err
	}
	if !config.RegistrationOpen {
		return ErrRegistrationClosed
	}

	s, err := strategyFor(tx.Chain, tx.Standard)
	if err != nil {
		return err
	}
	if err := s.verifyRegistration(tx); err != nil {
		return err
	}
	if err := e.verifyMintGroups(tx.Standard, tx.MintGroups); err != nil {
		return err
	}
	if tx.Partner != "" {
		exists, err := state.HasPartner(e.State, tx.Partner)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %q", ErrPartnerNotFound, tx.Partner)
		}
	}

	c := &state.Collection{
		Admin:          e.Env.Sender,
		Chain:          tx.Chain,
		Standard:       tx.Standard,
		Name:           tx.Name,
		Symbol:         tx.Symbol,
		Supply:         tx.Supply,
		MintGroups:     tx.MintGroups,
		Frozen:         tx.Frozen,
		UnfreezeTime:   tx.UnfreezeTime,
		HiddenMetadata: tx.HiddenMetadata,
		Partner:        tx.Partner,
		Metadata:       tx.Metadata,
	}
	if tx.StartOrder != nil {
		c.StartOrder = *tx.StartOrder
		c.NextToken = *tx.StartOrder
	}
	if tx.Fungible != nil {
		c.Fungible = *tx.Fungible
	}

	if err := s.register(e, config, tx, c); err != nil {
		return err
	}

	e.Response.AddAttribute("action", "register_collection")
	e.Response.AddAttribute("chain", string(c.Chain))
	e.Response.AddAttribute("standard", string(c.Standard))
	e.debug("registered collection",
		zap.String("name", c.Name),
		zap.String("chain", string(c.Chain)),
		zap.String("standard", string(c.Standard)),
	)
	return nil
}

func (e *Executor) UpdateCollection(tx *txs.UpdateCollection) error {
	c, err := e.adminCollection(tx.Collection)
	if err != nil {
		return err
	}
	s, err := strategyFor(c.Chain, c.Standard)
	if err != nil {
		return err
	}

	if minted := c.Minted(); tx.Supply < minted {
		return fmt.Errorf("%w: supply %d with %d already minted",
			ErrSupplyLowerThanMinted, tx.Supply, minted)
	}
	if err := e.verifyMintGroups(c.Standard, tx.MintGroups); err != nil {
		return err
	}

	if tx.StartOrder != nil {
		if c.Standard == state.StandardFungible {
			return fmt.Errorf("%w: start order isn't supported by fungible collections", ErrInvalidChainConfig)
		}
		// Only moving the offset to the next token is accepted.
		if *tx.StartOrder == c.NextToken {
			c.StartOrder = *tx.StartOrder
		}
	}

	metadataChanged := !c.Metadata.Equal(&tx.Metadata)
	if metadataChanged && c.Standard == state.StandardFungible && tx.Metadata.MaxEdition == 0 {
		return fmt.Errorf("%w: max edition is required", ErrInvalidChainConfig)
	}

	c.Supply = tx.Supply
	c.MintGroups = tx.MintGroups
	c.Metadata = tx.Metadata
	if metadataChanged {
		msg, err := s.updateMetadata(c)
		if err != nil {
			return err
		}
		if msg != nil {
			e.emit(msg)
		}
	}

	if err := state.SetCollection(e.State, c.Address, c); err != nil {
		return err
	}

	e.Response.AddAttribute("action", "update_collection")
	e.Response.AddAttribute("collection", c.Address)
	e.Response.AddAttribute("metadata_updated", strconv.FormatBool(metadataChanged))
	return nil
}

func (e *Executor) UpdateAdmin(tx *txs.UpdateAdmin) error {
	c, err := e.adminCollection(tx.Collection)
	if err != nil {
		return err
	}
	if err := e.verifyAddress(tx.Admin); err != nil {
		return err
	}

	c.Admin = tx.Admin
	if err := state.SetCollection(e.State, c.Address, c); err != nil {
		return err
	}

	e.Response.AddAttribute("action", "update_admin")
	e.Response.AddAttribute("collection", c.Address)
	e.Response.AddAttribute("admin", tx.Admin)
	return nil
}

func (e *Executor) UnfreezeCollection(tx *txs.UnfreezeCollection) error {
	c, err := e.adminCollection(tx.Collection)
	if err != nil {
		return err
	}
	s, err := strategyFor(c.Chain, c.Standard)
	if err != nil {
		return err
	}

	msg, err := s.unfreeze(c)
	if err != nil {
		return err
	}
	c.Frozen = false
	if err := state.SetCollection(e.State, c.Address, c); err != nil {
		return err
	}

	e.emit(msg)
	e.Response.AddAttribute("action", "unfreeze_collection")
	e.Response.AddAttribute("collection", c.Address)
	return nil
}

func (e *Executor) RevealCollectionMetadata(tx *txs.RevealCollectionMetadata) error {
	c, err := e.adminCollection(tx.Collection)
	if err != nil {
		return err
	}
	s, err := strategyFor(c.Chain, c.Standard)
	if err != nil {
		return err
	}

	msg, err := s.reveal(c)
	if err != nil {
		return err
	}
	c.HiddenMetadata = false
	if err := state.SetCollection(e.State, c.Address, c); err != nil {
		return err
	}

	e.emit(msg)
	e.Response.AddAttribute("action", "reveal_collection_metadata")
	e.Response.AddAttribute("collection", c.Address)
	return nil
}

func (e *Executor) UpdateNFTContractAdmin(tx *txs.UpdateNFTContractAdmin) error {
	c, err := e.adminCollection(tx.Collection)
	if err != nil {
		return err
	}
	s, err := strategyFor(c.Chain, c.Standard)
	if err != nil {
		return err
	}

	msg, err := s.updateContractAdmin(e, c, tx.Admin)
	if err != nil {
		return err
	}

	e.emit(msg)
	e.Response.AddAttribute("action", "update_nft_contract_admin")
	e.Response.AddAttribute("collection", c.Address)
	return nil
}

func (e *Executor) UpdateNFTContractOwnership(tx *txs.UpdateNFTContractOwnership) error {
	c, err := e.adminCollection(tx.Collection)
	if err != nil {
		return err
	}
	s, err := strategyFor(c.Chain, c.Standard)
	if err != nil {
		return err
	}

	msg, err := s.transferOwnership(e, c, tx.Owner)
	if err != nil {
		return err
	}

	e.emit(msg)
	e.Response.AddAttribute("action", "update_nft_contract_ownership")
	e.Response.AddAttribute("collection", c.Address)
	e.Response.AddAttribute("owner", tx.Owner)
	return nil
}

// verifyMintGroups checks the mint groups of a collection following
// [standard].
func (e *Executor) verifyMintGroups(standard state.Standard, groups []state.MintGroup) error {
	names := set.NewSet[string](len(groups))
	for i := range groups {
		group := &groups[i]
		switch {
		case group.Name == "":
			return fmt.Errorf("%w: group %d is unnamed", ErrInvalidMintGroup, i)
		case names.Contains(group.Name):
			return fmt.Errorf("%w: duplicate group %q", ErrInvalidMintGroup, group.Name)
		case !group.Public() && merkle.ValidateRoot(group.MerkleRoot) != nil:
			return fmt.Errorf("%w: malformed merkle root in %q", ErrInvalidMintGroup, group.Name)
		case standard == state.StandardFungible && group.BatchSize == 0:
			return fmt.Errorf("%w: %q is missing a batch size", ErrInvalidMintGroup, group.Name)
		case group.EndTime != 0 && group.EndTime <= group.StartTime:
			return fmt.Errorf("%w: %q ends before it starts", ErrInvalidMintGroup, group.Name)
		}
		names.Add(group.Name)

		for j := range group.Payments {
			if err := e.verifyPayment(&group.Payments[j]); err != nil {
				return fmt.Errorf("%w: leg %d of %q", err, j, group.Name)
			}
		}
	}
	return nil
}

func (e *Executor) verifyPayment(payment *state.Payment) error {
	if payment.Amount == 0 {
		return fmt.Errorf("%w: zero amount", ErrInvalidPayment)
	}

	var expectedArgs int
	switch payment.Kind {
	case state.PaymentNative, state.PaymentTokenBurn:
		expectedArgs = 1
	case state.PaymentToken:
		expectedArgs = 2
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrInvalidPayment, payment.Kind)
	}
	if len(payment.Args) != expectedArgs {
		return fmt.Errorf("%w: %s payments take %d args but got %d",
			ErrInvalidPayment, payment.Kind, expectedArgs, len(payment.Args))
	}
	for _, arg := range payment.Args {
		if err := e.verifyAddress(arg); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayment, err)
		}
	}
	return nil
}
