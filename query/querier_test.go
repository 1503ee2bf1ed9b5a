// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package query

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/stretchr/testify/require"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/avalanchego/database/memdb"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/state"
)

const (
	wallet     = "sei1wallet"
	collection = "sei1collection"
)

func newQuerier(t *testing.T) (*Querier, *memdb.Database, *evm.MockAddressOracle) {
	ctrl := gomock.NewController(t)
	oracle := evm.NewMockAddressOracle(ctrl)
	db := memdb.New()
	return &Querier{
		DB:            db,
		AddressOracle: oracle,
	}, db, oracle
}

func TestGetConfig(t *testing.T) {
	require := require.New(t)
	q, db, _ := newQuerier(t)

	_, err := q.GetConfig()
	require.ErrorIs(err, ErrNotInitialized)

	require.NoError(state.SetConfig(db, &state.Config{
		Admin: wallet,
		Fee:   3,
	}))
	config, err := q.GetConfig()
	require.NoError(err)
	require.Equal(wallet, config.Admin)
	require.Equal(uint64(3), config.Fee)
}

func TestGetCollection(t *testing.T) {
	require := require.New(t)
	q, db, _ := newQuerier(t)

	contract := "0xabcdef0123456789abcdef0123456789abcdef01"
	require.NoError(state.SetCollection(db, contract, &state.Collection{
		Address: contract,
		Chain:   state.ChainEVM,
	}))

	c, err := q.GetCollection("0xAbCdEf0123456789AbCdEf0123456789AbCdEf01")
	require.NoError(err)
	require.Equal(contract, c.Address)

	_, err = q.GetCollection(collection)
	require.ErrorIs(err, ErrCollectionNotFound)
}

func TestGetCollectionsPageSize(t *testing.T) {
	q, db, _ := newQuerier(t)
	for i := 0; i < 40; i++ {
		address := fmt.Sprintf("sei1c%02d", i)
		require.NoError(t, state.SetCollection(db, address, &state.Collection{
			Address: address,
		}))
	}

	tests := []struct {
		name          string
		startAfter    string
		limit         int
		expectedLen   int
		expectedFirst string
		expectedErr   error
	}{
		{
			name:          "default page",
			expectedLen:   DefaultCollectionsPageSize,
			expectedFirst: "sei1c00",
		},
		{
			name:          "max page",
			limit:         state.MaxCollectionsPageSize,
			expectedLen:   state.MaxCollectionsPageSize,
			expectedFirst: "sei1c00",
		},
		{
			name:          "start after",
			startAfter:    "sei1c35",
			limit:         10,
			expectedLen:   4,
			expectedFirst: "sei1c36",
		},
		{
			name:        "negative",
			limit:       -1,
			expectedErr: ErrInvalidPageSize,
		},
		{
			name:        "too large",
			limit:       state.MaxCollectionsPageSize + 1,
			expectedErr: ErrInvalidPageSize,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			collections, err := q.GetCollections(test.startAfter, test.limit)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.Len(collections, test.expectedLen)
			require.Equal(test.expectedFirst, collections[0].Address)
		})
	}
}

func TestMintsOf(t *testing.T) {
	require := require.New(t)
	q, db, _ := newQuerier(t)

	_, err := q.MintsOf(wallet, collection)
	require.ErrorIs(err, ErrCollectionNotFound)

	require.NoError(state.SetCollection(db, collection, &state.Collection{
		Address: collection,
		MintGroups: []state.MintGroup{
			{Name: "allowlist"},
			{Name: "public"},
			{Name: "empty"},
		},
	}))

	mints, err := q.MintsOf(wallet, collection)
	require.NoError(err)
	require.Empty(mints.Mints)

	require.NoError(state.SetMintInfo(db, wallet, collection, "public", &state.MintInfo{
		Mints: []uint64{4, 5},
	}))
	require.NoError(state.SetMintInfo(db, wallet, collection, "allowlist", &state.MintInfo{
		Mints: []uint64{0},
	}))

	mints, err = q.MintsOf(wallet, collection)
	require.NoError(err)
	require.Equal([]uint64{0, 4, 5}, mints.Mints)
}

func TestGetMinterOf(t *testing.T) {
	require := require.New(t)
	q, db, _ := newQuerier(t)

	require.NoError(state.SetTokenMinter(db, collection, 7, wallet))
	require.NoError(state.SetOrderMinter(db, collection, "public", 2, wallet))

	minter, err := q.GetMinterOf(collection, "", 7)
	require.NoError(err)
	require.Equal(wallet, minter)

	minter, err = q.GetMinterOf(collection, "public", 2)
	require.NoError(err)
	require.Equal(wallet, minter)

	_, err = q.GetMinterOf(collection, "", 2)
	require.ErrorIs(err, ErrMinterNotFound)

	_, err = q.GetMinterOf(collection, "public", 7)
	require.ErrorIs(err, ErrMinterNotFound)
}

func TestGetGlobalMintInfo(t *testing.T) {
	require := require.New(t)
	q, db, _ := newQuerier(t)

	count, err := q.GetGlobalMintInfo(collection, "public")
	require.NoError(err)
	require.Zero(count)

	require.NoError(state.SetGlobalMintCount(db, collection, "public", 12))
	count, err = q.GetGlobalMintInfo(collection, "public")
	require.NoError(err)
	require.Equal(uint64(12), count)
}

func TestMintLookupsNormalizeEVMAddresses(t *testing.T) {
	require := require.New(t)
	q, db, _ := newQuerier(t)

	contract := "0xabcdef0123456789abcdef0123456789abcdef01"
	mixedCase := "0xAbCdEf0123456789AbCdEf0123456789AbCdEf01"
	require.NoError(state.SetTokenMinter(db, contract, 3, wallet))
	require.NoError(state.SetGlobalMintCount(db, contract, "public", 4))

	minter, err := q.GetMinterOf(mixedCase, "", 3)
	require.NoError(err)
	require.Equal(wallet, minter)

	count, err := q.GetGlobalMintInfo(mixedCase, "public")
	require.NoError(err)
	require.Equal(uint64(4), count)
}

func TestAddressLookups(t *testing.T) {
	require := require.New(t)
	q, _, oracle := newQuerier(t)

	addr := ethcommon.HexToAddress("0x0000000000000000000000000000000000000a11")
	gomock.InOrder(
		oracle.EXPECT().EVMAddress(wallet).Return(ethcommon.Address{}, false, nil),
		oracle.EXPECT().EVMAddress(wallet).Return(addr, true, nil),
	)
	oracle.EXPECT().NativeAddress(addr).Return(wallet, true, nil)

	_, err := q.GetEVMAddress(wallet)
	require.ErrorIs(err, ErrAddressNotAssociated)

	evmAddr, err := q.GetEVMAddress(wallet)
	require.NoError(err)
	require.Equal(addr, evmAddr)

	native, err := q.GetNativeAddress(addr)
	require.NoError(err)
	require.Equal(wallet, native)
}
