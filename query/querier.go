// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package query implements the read-only views of the launchpad state.
package query

import (
	"errors"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/state"
)

const DefaultCollectionsPageSize = 10

var (
	ErrNotInitialized       = errors.New("launchpad not initialized")
	ErrCollectionNotFound   = errors.New("collection not found")
	ErrMinterNotFound       = errors.New("minter not found")
	ErrInvalidPageSize      = errors.New("invalid page size")
	ErrAddressNotAssociated = errors.New("address not associated")
)

// DB is the subset of the state database the queries read.
type DB interface {
	database.KeyValueReader
	database.Iteratee
}

type Querier struct {
	DB            DB
	AddressOracle evm.AddressOracle
}

func (q *Querier) GetConfig() (*state.Config, error) {
	config, err := state.GetConfig(q.DB)
	if err == database.ErrNotFound {
		return nil, ErrNotInitialized
	}
	return config, err
}

// collectionKey returns the form [address] is registered under. EVM
// collections are keyed by their lower-case address.
func collectionKey(address string) string {
	if contract, err := evm.ParseHex(address); err == nil {
		return evm.Lower(contract)
	}
	return address
}

func (q *Querier) GetCollection(address string) (*state.Collection, error) {
	address = collectionKey(address)
	c, err := state.GetCollection(q.DB, address)
	if err == database.ErrNotFound {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, address)
	}
	return c, err
}

// GetCollections returns up to [limit] collections ordered by address,
// starting after [startAfter]. A zero [limit] returns a default sized page.
func (q *Querier) GetCollections(startAfter string, limit int) ([]*state.Collection, error) {
	switch {
	case limit == 0:
		limit = DefaultCollectionsPageSize
	case limit < 0 || limit > state.MaxCollectionsPageSize:
		return nil, fmt.Errorf("%w: %d isn't in [1, %d]", ErrInvalidPageSize, limit, state.MaxCollectionsPageSize)
	}
	return state.GetCollections(q.DB, startAfter, limit)
}

// MintsOf returns everything [wallet] minted from [collection], in group
// order.
func (q *Querier) MintsOf(wallet, collection string) (*state.MintInfo, error) {
	c, err := q.GetCollection(collection)
	if err != nil {
		return nil, err
	}

	mints := &state.MintInfo{
		Mints: []uint64{},
	}
	for _, group := range c.MintGroups {
		info, err := state.GetMintInfo(q.DB, wallet, c.Address, group.Name)
		if err != nil {
			return nil, err
		}
		mints.Mints = append(mints.Mints, info.Mints...)
	}
	return mints, nil
}

// GetMinterOf returns the wallet that minted [tokenID] of [collection]. For
// fungible-batch collections, [group] must be set and [tokenID] is the
// order of the batch within the group.
func (q *Querier) GetMinterOf(collection, group string, tokenID uint64) (string, error) {
	var (
		minter string
		err    error
	)
	collection = collectionKey(collection)
	if group == "" {
		minter, err = state.GetTokenMinter(q.DB, collection, tokenID)
	} else {
		minter, err = state.GetOrderMinter(q.DB, collection, group, tokenID)
	}
	if err == database.ErrNotFound {
		return "", fmt.Errorf("%w: token %d of %s", ErrMinterNotFound, tokenID, collection)
	}
	return minter, err
}

func (q *Querier) GetGlobalMintInfo(collection, group string) (uint64, error) {
	return state.GetGlobalMintCount(q.DB, collectionKey(collection), group)
}

func (q *Querier) GetEVMAddress(native string) (ethcommon.Address, error) {
	addr, associated, err := q.AddressOracle.EVMAddress(native)
	if err != nil {
		return ethcommon.Address{}, err
	}
	if !associated {
		return ethcommon.Address{}, fmt.Errorf("%w: %s", ErrAddressNotAssociated, native)
	}
	return addr, nil
}

func (q *Querier) GetNativeAddress(addr ethcommon.Address) (string, error) {
	native, associated, err := q.AddressOracle.NativeAddress(addr)
	if err != nil {
		return "", err
	}
	if !associated {
		return "", fmt.Errorf("%w: %s", ErrAddressNotAssociated, evm.Lower(addr))
	}
	return native, nil
}
