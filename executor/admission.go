// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/merkle"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

// admission is the accounting loaded while admitting a mint. It is updated
// by the dispatch strategy and persisted once the mint succeeds.
type admission struct {
	group *state.MintGroup
	// mintInfo holds the sender's previous mints from [group].
	mintInfo *state.MintInfo
	// minted is the number of units issued by [group].
	minted uint64
}

// admit runs the admission checks of a mint in order. The first failing
// check rejects the mint.
func (e *Executor) admit(
	config *state.Config,
	c *state.Collection,
	s strategy,
	tx *txs.Mint,
) (*admission, error) {
	group, ok := c.Group(tx.Group)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMintGroup, tx.Group)
	}

	if s.exceedsSupply(c, group, tx.Amount) {
		return nil, fmt.Errorf("%w: %d units requested with %d of %d issued",
			ErrSoldOut, tx.Amount, c.Minted(), c.Supply)
	}

	if !group.Open(e.Env.Time) {
		return nil, fmt.Errorf("%w: %q is open during [%d, %d) but now is %d",
			ErrGroupNotOpenToMint, group.Name, group.StartTime, group.EndTime, e.Env.Time)
	}

	mintInfo, err := state.GetMintInfo(e.State, e.Env.Sender, c.Address, group.Name)
	if err != nil {
		return nil, err
	}
	if group.MaxTokens != 0 {
		count, err := math.Add64(uint64(len(mintInfo.Mints)), tx.Amount)
		if err != nil || count > group.MaxTokens {
			return nil, fmt.Errorf("%w: %d already minted from %q with a limit of %d",
				ErrMaxTokensMinted, len(mintInfo.Mints), group.Name, group.MaxTokens)
		}
	}

	minted, err := state.GetGlobalMintCount(e.State, c.Address, group.Name)
	if err != nil {
		return nil, err
	}
	if group.ReservedSupply != 0 {
		count, err := math.Add64(minted, tx.Amount)
		if err != nil || count > group.ReservedSupply {
			return nil, fmt.Errorf("%w: %d of %d reserved units issued by %q",
				ErrReservedSupplyRanOut, minted, group.ReservedSupply, group.Name)
		}
	}

	if err := e.verifyProof(group, tx); err != nil {
		return nil, err
	}

	if err := e.verifyFunds(config, group, tx.Amount); err != nil {
		return nil, err
	}

	return &admission{
		group:    group,
		mintInfo: mintInfo,
		minted:   minted,
	}, nil
}

// verifyProof checks the sender's allowlist membership in non-public groups.
func (e *Executor) verifyProof(group *state.MintGroup, tx *txs.Mint) error {
	if group.Public() {
		return nil
	}
	// An empty, but present, proof is valid for single address allowlists.
	if tx.Proof == nil {
		return fmt.Errorf("%w: proof required by %q", ErrInvalidMerkleProof, group.Name)
	}

	leaf := e.Env.Sender
	switch tx.ProofAddressType {
	case "":
	case txs.ProofAddressHex:
		addr, err := e.evmAddress(e.Env.Sender)
		if err != nil {
			return err
		}
		leaf = evm.Lower(addr)
	default:
		return fmt.Errorf("%w: unknown address type %q", ErrInvalidMerkleProof, tx.ProofAddressType)
	}

	if !merkle.VerifyAddress(group.MerkleRoot, leaf, tx.Siblings()) {
		return fmt.Errorf("%w: %s isn't allowed to mint from %q", ErrInvalidMerkleProof, leaf, group.Name)
	}
	return nil
}

// verifyFunds requires the attached funds to be exactly the native cost of
// the mint. Groups without native payment legs skip the check.
func (e *Executor) verifyFunds(config *state.Config, group *state.MintGroup, amount uint64) error {
	expected, err := expectedFunds(config, group, amount)
	if err != nil || expected == 0 {
		return err
	}

	funds := e.Env.Funds
	if len(funds) != 1 || funds[0].Denom != config.Denom || funds[0].Amount != expected {
		return fmt.Errorf("%w: expected %d%s but got %v", ErrInvalidFunds, expected, config.Denom, funds)
	}
	return nil
}

// expectedFunds returns the native amount a mint of [amount] units from
// [group] costs: the native payment legs and the platform fee. It is zero
// when the group has no native payment legs.
func expectedFunds(config *state.Config, group *state.MintGroup, amount uint64) (uint64, error) {
	var native uint64
	for _, payment := range group.Payments {
		if payment.Kind != state.PaymentNative {
			continue
		}
		var err error
		native, err = math.Add64(native, payment.Amount)
		if err != nil {
			return 0, err
		}
	}
	if native == 0 {
		return 0, nil
	}

	perUnit, err := math.Add64(native, config.Fee)
	if err != nil {
		return 0, err
	}
	return math.Mul64(perUnit, amount)
}
