// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package evm translates between native bech32 addresses and the EVM
// side-chain, and encodes the calls sent to EVM token contracts.
package evm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidAddress = errors.New("invalid address")

// ParseBech32 decodes [address] and verifies that it uses [hrp].
func ParseBech32(hrp, address string) ([]byte, error) {
	addrHRP, data, err := bech32.DecodeToBase256(address)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidAddress, address, err)
	}
	if addrHRP != hrp {
		return nil, fmt.Errorf("%w %q: expected hrp %q but got %q",
			ErrInvalidAddress, address, hrp, addrHRP)
	}
	return data, nil
}

// FormatBech32 encodes [data] as a bech32 address using [hrp].
func FormatBech32(hrp string, data []byte) (string, error) {
	return bech32.EncodeFromBase256(hrp, data)
}

// IsBech32 returns true if [address] is a bech32 address using [hrp].
func IsBech32(hrp, address string) bool {
	_, err := ParseBech32(hrp, address)
	return err == nil
}

// Bech32ToHex returns the EVM address formed by the trailing 20 bytes of the
// native [address].
func Bech32ToHex(address string) (common.Address, error) {
	_, data, err := bech32.DecodeToBase256(address)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w %q: %v", ErrInvalidAddress, address, err)
	}
	if len(data) < common.AddressLength {
		return common.Address{}, fmt.Errorf("%w %q: only %d bytes long", ErrInvalidAddress, address, len(data))
	}
	return common.BytesToAddress(data[len(data)-common.AddressLength:]), nil
}

// ParseHex parses a 0x prefixed EVM address.
func ParseHex(address string) (common.Address, error) {
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("%w %q", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address), nil
}

// Lower returns the lower-case 0x form of [address], which is the form
// committed to by allowlists.
func Lower(address common.Address) string {
	return strings.ToLower(address.Hex())
}
