// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

// MaxPartnerFeePercent is the largest share of the platform fee a partner
// can receive.
const MaxPartnerFeePercent = 99

var _ txs.Visitor = (*Executor)(nil)

// Executor applies a single call to the launchpad state. Any error leaves
// [State] and [Response] partially modified, so the caller must discard both.
type Executor struct {
	// inputs, to be filled before visitor methods are called
	*Backend
	State database.KeyValueReaderWriterDeleter
	Env   Env

	// outputs populated by this struct's methods
	Response message.Response
}

func (e *Executor) Instantiate(tx *txs.Instantiate) error {
	initialized, err := state.IsInitialized(e.State)
	if err != nil {
		return err
	}
	if initialized {
		return ErrAlreadyInitialized
	}
	if err := e.verifyAddress(e.Env.Sender); err != nil {
		return err
	}

	config := &state.Config{
		Admin:            e.Env.Sender,
		Fee:              tx.Fee,
		Denom:            tx.Denom,
		RegistrationOpen: tx.RegistrationOpen,
	}
	if err := state.SetConfig(e.State, config); err != nil {
		return err
	}
	if err := state.SetInitialized(e.State); err != nil {
		return err
	}

	e.Response.AddAttribute("action", "instantiate")
	e.Response.AddAttribute("admin", config.Admin)
	return nil
}

func (e *Executor) UpdateConfig(tx *txs.UpdateConfig) error {
	config, err := e.config()
	if err != nil {
		return err
	}
	if config.Admin != e.Env.Sender {
		return ErrUnauthorized
	}

	config.Fee = tx.Fee
	config.RegistrationOpen = tx.RegistrationOpen
	if err := state.SetConfig(e.State, config); err != nil {
		return err
	}

	e.Response.AddAttribute("action", "update_config")
	e.Response.AddAttribute("fee", strconv.FormatUint(tx.Fee, 10))
	e.Response.AddAttribute("registration_open", strconv.FormatBool(tx.RegistrationOpen))
	return nil
}

func (e *Executor) AddPartner(tx *txs.AddPartner) error {
	config, err := e.config()
	if err != nil {
		return err
	}
	if config.Admin != e.Env.Sender {
		return ErrUnauthorized
	}
	if tx.FeePercent > MaxPartnerFeePercent {
		return fmt.Errorf("%w: partner fee %d%% exceeds %d%%",
			ErrInvalidShares, tx.FeePercent, MaxPartnerFeePercent)
	}
	if err := e.verifyAddress(tx.Address); err != nil {
		return err
	}

	err = state.SetPartner(e.State, &state.Partner{
		Address:    tx.Address,
		FeePercent: tx.FeePercent,
	})
	if err != nil {
		return err
	}

	e.Response.AddAttribute("action", "add_partner")
	e.Response.AddAttribute("address", tx.Address)
	e.Response.AddAttribute("percent", strconv.FormatUint(tx.FeePercent, 10))
	return nil
}

func (e *Executor) config() (*state.Config, error) {
	config, err := state.GetConfig(e.State)
	if err == database.ErrNotFound {
		return nil, ErrNotInitialized
	}
	return config, err
}

// collection loads the collection at [address]. EVM addresses are looked up
// in their lower-case form.
func (e *Executor) collection(address string) (*state.Collection, error) {
	if contract, err := evm.ParseHex(address); err == nil {
		address = evm.Lower(contract)
	}
	collection, err := state.GetCollection(e.State, address)
	if err == database.ErrNotFound {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, address)
	}
	return collection, err
}

// adminCollection loads the collection at [address] and verifies that the
// sender administers it.
func (e *Executor) adminCollection(address string) (*state.Collection, error) {
	collection, err := e.collection(address)
	if err != nil {
		return nil, err
	}
	if collection.Admin != e.Env.Sender {
		return nil, ErrUnauthorized
	}
	return collection, nil
}

func (e *Executor) verifyAddress(address string) error {
	_, err := evm.ParseBech32(e.HRP, address)
	return err
}

// evmAddress returns the EVM address associated with the native [address].
func (e *Executor) evmAddress(address string) (ethcommon.Address, error) {
	addr, associated, err := e.AddressOracle.EVMAddress(address)
	if err != nil {
		return ethcommon.Address{}, err
	}
	if !associated {
		return ethcommon.Address{}, fmt.Errorf("%w: %q", ErrNotAssociatedAddress, address)
	}
	return addr, nil
}

func (e *Executor) emit(msg message.Message) {
	e.Response.AddMessage(msg)
}

func (e *Executor) debug(msg string, fields ...zap.Field) {
	e.Log.Debug(msg, append(fields, zap.String("sender", e.Env.Sender))...)
}
