// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"
)

// MaxCollectionsPageSize bounds the number of collections returned by a
// single GetCollections call.
const MaxCollectionsPageSize = 30

var errUnexpectedKey = errors.New("unexpected key")

/*
 * LaunchpadDB
 * |-- initializedKey -> nil
 * |-- configKey -> config
 * |-. collections
 * | '-- address -> collection
 * |-. pending
 * | '-- replyID -> collection
 * |-. partners
 * | '-- address -> partner
 * |-. mintInfo
 * | '-- wallet + collection + group -> mint info
 * |-. globalMints
 * | '-- collection + group -> count
 * '-. mintLog
 *   |-- collection + tokenID -> minter
 *   '-- collection + group + order -> minter
 */

// Launchpad state

func IsInitialized(db database.KeyValueReader) (bool, error) {
	return db.Has(initializedKey)
}

func SetInitialized(db database.KeyValueWriter) error {
	return db.Put(initializedKey, nil)
}

func GetConfig(db database.KeyValueReader) (*Config, error) {
	bytes, err := db.Get(configKey)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	return config, unmarshal(bytes, config)
}

func SetConfig(db database.KeyValueWriter, config *Config) error {
	bytes, err := marshal(config)
	if err != nil {
		return err
	}
	return db.Put(configKey, bytes)
}

// Collection state

func HasCollection(db database.KeyValueReader, address string) (bool, error) {
	return db.Has(collectionKey(address))
}

func GetCollection(db database.KeyValueReader, address string) (*Collection, error) {
	return getCollection(db, collectionKey(address))
}

func SetCollection(db database.KeyValueWriter, address string, collection *Collection) error {
	return setCollection(db, collectionKey(address), collection)
}

// GetCollections returns up to [limit] collections ordered by address,
// starting strictly after [startAfter].
func GetCollections(db database.Iteratee, startAfter string, limit int) ([]*Collection, error) {
	if limit <= 0 || limit > MaxCollectionsPageSize {
		limit = MaxCollectionsPageSize
	}

	it := db.NewIteratorWithStartAndPrefix(collectionKey(startAfter), collectionPrefix)
	defer it.Release()

	collections := make([]*Collection, 0, limit)
	for len(collections) < limit && it.Next() {
		key := it.Key()
		if len(key) < len(collectionPrefix) {
			return nil, errUnexpectedKey
		}
		if startAfter != "" && string(key[len(collectionPrefix):]) == startAfter {
			continue
		}

		collection := &Collection{}
		if err := unmarshal(it.Value(), collection); err != nil {
			return nil, err
		}
		collections = append(collections, collection)
	}
	return collections, it.Error()
}

// Pending instantiation state

func GetPendingCollection(db database.KeyValueReader, replyID uint64) (*Collection, error) {
	return getCollection(db, pendingKey(replyID))
}

func SetPendingCollection(db database.KeyValueWriter, replyID uint64, collection *Collection) error {
	return setCollection(db, pendingKey(replyID), collection)
}

func DeletePendingCollection(db database.KeyValueDeleter, replyID uint64) error {
	return db.Delete(pendingKey(replyID))
}

// Partner state

func HasPartner(db database.KeyValueReader, address string) (bool, error) {
	return db.Has(partnerKey(address))
}

func GetPartner(db database.KeyValueReader, address string) (*Partner, error) {
	bytes, err := db.Get(partnerKey(address))
	if err != nil {
		return nil, err
	}
	partner := &Partner{}
	return partner, unmarshal(bytes, partner)
}

func SetPartner(db database.KeyValueWriter, partner *Partner) error {
	bytes, err := marshal(partner)
	if err != nil {
		return err
	}
	return db.Put(partnerKey(partner.Address), bytes)
}

// Mint accounting state

// GetMintInfo returns the mints of [wallet] in [group]. A wallet that never
// minted from the group has an empty record.
func GetMintInfo(db database.KeyValueReader, wallet, collection, group string) (*MintInfo, error) {
	key, err := mintInfoKey(wallet, collection, group)
	if err != nil {
		return nil, err
	}
	bytes, err := db.Get(key)
	if err == database.ErrNotFound {
		return &MintInfo{}, nil
	}
	if err != nil {
		return nil, err
	}
	info := &MintInfo{}
	return info, unmarshal(bytes, info)
}

func SetMintInfo(db database.KeyValueWriter, wallet, collection, group string, info *MintInfo) error {
	key, err := mintInfoKey(wallet, collection, group)
	if err != nil {
		return err
	}
	bytes, err := marshal(info)
	if err != nil {
		return err
	}
	return db.Put(key, bytes)
}

func GetGlobalMintCount(db database.KeyValueReader, collection, group string) (uint64, error) {
	key, err := globalMintKey(collection, group)
	if err != nil {
		return 0, err
	}
	count, err := database.GetUInt64(db, key)
	if err == database.ErrNotFound {
		return 0, nil
	}
	return count, err
}

func SetGlobalMintCount(db database.KeyValueWriter, collection, group string, count uint64) error {
	key, err := globalMintKey(collection, group)
	if err != nil {
		return err
	}
	return database.PutUInt64(db, key, count)
}

// Mint log state

func GetTokenMinter(db database.KeyValueReader, collection string, tokenID uint64) (string, error) {
	key, err := tokenLogKey(collection, tokenID)
	if err != nil {
		return "", err
	}
	bytes, err := db.Get(key)
	return string(bytes), err
}

func SetTokenMinter(db database.KeyValueWriter, collection string, tokenID uint64, minter string) error {
	key, err := tokenLogKey(collection, tokenID)
	if err != nil {
		return err
	}
	return db.Put(key, []byte(minter))
}

func GetOrderMinter(db database.KeyValueReader, collection, group string, order uint64) (string, error) {
	key, err := orderLogKey(collection, group, order)
	if err != nil {
		return "", err
	}
	bytes, err := db.Get(key)
	return string(bytes), err
}

func SetOrderMinter(db database.KeyValueWriter, collection, group string, order uint64, minter string) error {
	key, err := orderLogKey(collection, group, order)
	if err != nil {
		return err
	}
	return db.Put(key, []byte(minter))
}

func getCollection(db database.KeyValueReader, key []byte) (*Collection, error) {
	bytes, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	collection := &Collection{}
	return collection, unmarshal(bytes, collection)
}

func setCollection(db database.KeyValueWriter, key []byte, collection *Collection) error {
	bytes, err := marshal(collection)
	if err != nil {
		return err
	}
	return db.Put(key, bytes)
}
