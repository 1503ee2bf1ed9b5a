// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
)

func testCollection(address string) *Collection {
	return &Collection{
		Admin:     "sei1admin",
		Chain:     ChainNative,
		Standard:  StandardUnique,
		Address:   address,
		Name:      "lighthouse",
		Symbol:    "LH",
		Supply:    100,
		NextToken: 3,
		MintGroups: []MintGroup{
			{
				Name:       "public",
				MaxTokens:  2,
				StartTime:  10,
				EndTime:    20,
				MerkleRoot: []byte{1, 2, 3},
				Payments: []Payment{
					{
						Kind:   PaymentNative,
						Amount: 5,
						Args:   []string{"sei1creator"},
					},
				},
			},
		},
		Metadata: Metadata{
			TokenURI:        "ipfs://base/",
			FrozenWhitelist: []string{"sei1friend"},
		},
	}
}

func TestInitialized(t *testing.T) {
	require := require.New(t)
	db := memdb.New()

	initialized, err := IsInitialized(db)
	require.NoError(err)
	require.False(initialized)

	require.NoError(SetInitialized(db))

	initialized, err = IsInitialized(db)
	require.NoError(err)
	require.True(initialized)
}

func TestConfig(t *testing.T) {
	require := require.New(t)
	db := memdb.New()

	_, err := GetConfig(db)
	require.ErrorIs(err, database.ErrNotFound)

	config := &Config{
		Admin:            "sei1admin",
		Fee:              10,
		Denom:            "usei",
		RegistrationOpen: true,
		NextReplyID:      7,
	}
	require.NoError(SetConfig(db, config))

	got, err := GetConfig(db)
	require.NoError(err)
	require.Equal(config, got)
}

func TestCollection(t *testing.T) {
	require := require.New(t)
	db := memdb.New()

	has, err := HasCollection(db, "sei1nft")
	require.NoError(err)
	require.False(has)

	collection := testCollection("sei1nft")
	require.NoError(SetCollection(db, "sei1nft", collection))

	has, err = HasCollection(db, "sei1nft")
	require.NoError(err)
	require.True(has)

	got, err := GetCollection(db, "sei1nft")
	require.NoError(err)
	require.Equal(collection.Name, got.Name)
	require.Equal(collection.NextToken, got.NextToken)
	require.Equal(collection.MintGroups[0].Payments, got.MintGroups[0].Payments)
	require.Equal(collection.MintGroups[0].MerkleRoot, got.MintGroups[0].MerkleRoot)
	require.True(collection.Metadata.Equal(&got.Metadata))

	group, ok := got.Group("public")
	require.True(ok)
	require.False(group.Public())

	_, ok = got.Group("missing")
	require.False(ok)
}

func TestGetCollections(t *testing.T) {
	require := require.New(t)
	db := memdb.New()

	for _, addr := range []string{"sei1c", "sei1a", "sei1b"} {
		require.NoError(SetCollection(db, addr, testCollection(addr)))
	}
	// Pending collections must not be listed.
	require.NoError(SetPendingCollection(db, 0, testCollection("")))

	collections, err := GetCollections(db, "", 0)
	require.NoError(err)
	require.Len(collections, 3)
	require.Equal("sei1a", collections[0].Address)
	require.Equal("sei1b", collections[1].Address)
	require.Equal("sei1c", collections[2].Address)

	collections, err = GetCollections(db, "sei1a", 1)
	require.NoError(err)
	require.Len(collections, 1)
	require.Equal("sei1b", collections[0].Address)

	collections, err = GetCollections(db, "sei1c", 10)
	require.NoError(err)
	require.Empty(collections)
}

func TestPendingCollection(t *testing.T) {
	require := require.New(t)
	db := memdb.New()

	_, err := GetPendingCollection(db, 4)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(SetPendingCollection(db, 4, testCollection("")))

	got, err := GetPendingCollection(db, 4)
	require.NoError(err)
	require.Empty(got.Address)

	require.NoError(DeletePendingCollection(db, 4))

	_, err = GetPendingCollection(db, 4)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestPartner(t *testing.T) {
	require := require.New(t)
	db := memdb.New()

	has, err := HasPartner(db, "sei1partner")
	require.NoError(err)
	require.False(has)

	partner := &Partner{
		Address:    "sei1partner",
		FeePercent: 25,
	}
	require.NoError(SetPartner(db, partner))

	got, err := GetPartner(db, "sei1partner")
	require.NoError(err)
	require.Equal(partner, got)
}

func TestMintAccounting(t *testing.T) {
	require := require.New(t)
	db := memdb.New()

	info, err := GetMintInfo(db, "sei1wallet", "sei1nft", "public")
	require.NoError(err)
	require.Empty(info.Mints)

	require.NoError(SetMintInfo(db, "sei1wallet", "sei1nft", "public", &MintInfo{
		Mints: []uint64{0, 1},
	}))

	info, err = GetMintInfo(db, "sei1wallet", "sei1nft", "public")
	require.NoError(err)
	require.Equal([]uint64{0, 1}, info.Mints)

	// Other groups are unaffected.
	info, err = GetMintInfo(db, "sei1wallet", "sei1nft", "og")
	require.NoError(err)
	require.Empty(info.Mints)

	count, err := GetGlobalMintCount(db, "sei1nft", "public")
	require.NoError(err)
	require.Zero(count)

	require.NoError(SetGlobalMintCount(db, "sei1nft", "public", 2))

	count, err = GetGlobalMintCount(db, "sei1nft", "public")
	require.NoError(err)
	require.Equal(uint64(2), count)
}

func TestLargeMintInfo(t *testing.T) {
	require := require.New(t)
	db := memdb.New()

	mints := make([]uint64, 40_000)
	for i := range mints {
		mints[i] = uint64(i)
	}
	require.NoError(SetMintInfo(db, "sei1wallet", "sei1nft", "public", &MintInfo{
		Mints: mints,
	}))

	info, err := GetMintInfo(db, "sei1wallet", "sei1nft", "public")
	require.NoError(err)
	require.Equal(mints, info.Mints)
}

func TestCompositeKeysDoNotCollide(t *testing.T) {
	require := require.New(t)

	a, err := mintInfoKey("a_b", "c", "d")
	require.NoError(err)
	b, err := mintInfoKey("a", "b_c", "d")
	require.NoError(err)
	require.NotEqual(a, b)
}

func TestMintLog(t *testing.T) {
	require := require.New(t)
	db := memdb.New()

	_, err := GetTokenMinter(db, "sei1nft", 5)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(SetTokenMinter(db, "sei1nft", 5, "sei1wallet"))
	minter, err := GetTokenMinter(db, "sei1nft", 5)
	require.NoError(err)
	require.Equal("sei1wallet", minter)

	require.NoError(SetOrderMinter(db, "sei1nft", "public", 5, "sei1other"))
	minter, err = GetOrderMinter(db, "sei1nft", "public", 5)
	require.NoError(err)
	require.Equal("sei1other", minter)

	minter, err = GetTokenMinter(db, "sei1nft", 5)
	require.NoError(err)
	require.Equal("sei1wallet", minter)
}
