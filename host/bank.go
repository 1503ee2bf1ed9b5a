// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"errors"
	"fmt"
	"math"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	safemath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/lighthouse/message"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// bank is the native coin ledger.
//
// Balances are stored as:
// |-- address + denom -> amount
type bank struct {
	db database.KeyValueReaderWriter
}

func balanceKey(address, denom string) []byte {
	p := wrappers.Packer{
		MaxSize: math.MaxInt32,
		Bytes:   make([]byte, 0, 2*wrappers.ShortLen+len(address)+len(denom)),
	}
	p.PackStr(address)
	p.PackStr(denom)
	return p.Bytes
}

func (b *bank) balance(address, denom string) (uint64, error) {
	balance, err := database.GetUInt64(b.db, balanceKey(address, denom))
	if err == database.ErrNotFound {
		return 0, nil
	}
	return balance, err
}

func (b *bank) setBalance(address, denom string, balance uint64) error {
	return database.PutUInt64(b.db, balanceKey(address, denom), balance)
}

func (b *bank) mint(address string, coins []message.Coin) error {
	for _, coin := range coins {
		balance, err := b.balance(address, coin.Denom)
		if err != nil {
			return err
		}
		balance, err = safemath.Add64(balance, coin.Amount)
		if err != nil {
			return err
		}
		if err := b.setBalance(address, coin.Denom, balance); err != nil {
			return err
		}
	}
	return nil
}

func (b *bank) transfer(from, to string, coins []message.Coin) error {
	for _, coin := range coins {
		balance, err := b.balance(from, coin.Denom)
		if err != nil {
			return err
		}
		if balance < coin.Amount {
			return fmt.Errorf("%w: %s holds %d%s but needs %s",
				ErrInsufficientFunds, from, balance, coin.Denom, coin)
		}
		if err := b.setBalance(from, coin.Denom, balance-coin.Amount); err != nil {
			return err
		}
	}
	return b.mint(to, coins)
}
