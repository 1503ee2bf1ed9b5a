// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"math"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/wrappers"
)

var (
	initializedKey   = []byte{0x00}
	configKey        = []byte{0x01}
	collectionPrefix = []byte{0x02}
	pendingPrefix    = []byte{0x03}
	partnerPrefix    = []byte{0x04}
	mintInfoPrefix   = []byte{0x05}
	globalMintPrefix = []byte{0x06}
	mintLogPrefix    = []byte{0x07}
)

// Flatten concatenates the provided slices into a newly allocated slice.
func Flatten[T any](slices ...[]T) []T {
	var size int
	for _, slice := range slices {
		size += len(slice)
	}

	result := make([]T, 0, size)
	for _, slice := range slices {
		result = append(result, slice...)
	}
	return result
}

// packStrings length prefixes every part so that composite keys built from
// user supplied strings can never collide.
func packStrings(parts ...string) ([]byte, error) {
	p := wrappers.Packer{MaxSize: math.MaxInt32}
	for _, part := range parts {
		p.PackStr(part)
	}
	return p.Bytes, p.Err
}

func collectionKey(address string) []byte {
	return Flatten(collectionPrefix, []byte(address))
}

func pendingKey(replyID uint64) []byte {
	return Flatten(pendingPrefix, database.PackUInt64(replyID))
}

func partnerKey(address string) []byte {
	return Flatten(partnerPrefix, []byte(address))
}

func mintInfoKey(wallet, collection, group string) ([]byte, error) {
	key, err := packStrings(wallet, collection, group)
	if err != nil {
		return nil, err
	}
	return Flatten(mintInfoPrefix, key), nil
}

func globalMintKey(collection, group string) ([]byte, error) {
	key, err := packStrings(collection, group)
	if err != nil {
		return nil, err
	}
	return Flatten(globalMintPrefix, key), nil
}

func tokenLogKey(collection string, tokenID uint64) ([]byte, error) {
	key, err := packStrings(collection)
	if err != nil {
		return nil, err
	}
	return Flatten(mintLogPrefix, key, database.PackUInt64(tokenID)), nil
}

func orderLogKey(collection, group string, order uint64) ([]byte, error) {
	key, err := packStrings(collection, group)
	if err != nil {
		return nil, err
	}
	return Flatten(mintLogPrefix, key, database.PackUInt64(order)), nil
}
