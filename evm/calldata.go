// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// tokenABI is the subset of the launchpad ERC721 interface the launchpad
// calls into.
const tokenABI = `[
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"updateMinter","stateMutability":"nonpayable","inputs":[{"name":"minter","type":"address"}],"outputs":[]},
	{"type":"function","name":"unfreeze","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"reveal","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]}
]`

var (
	// DefaultAdminRole is the OpenZeppelin AccessControl admin role.
	DefaultAdminRole = common.Hash{}
	// MinterRole is the role required to mint from a token contract.
	MinterRole = crypto.Keccak256Hash([]byte("MINTER_ROLE"))

	TokenABI abi.ABI

	errUnexpectedOutput = errors.New("unexpected output")
)

func init() {
	var err error
	TokenABI, err = abi.JSON(strings.NewReader(tokenABI))
	if err != nil {
		panic(err)
	}
}

// MintCalldata encodes mint(to, tokenID).
func MintCalldata(to common.Address, tokenID uint64) ([]byte, error) {
	return TokenABI.Pack("mint", to, new(big.Int).SetUint64(tokenID))
}

// UpdateMinterCalldata encodes updateMinter(minter).
func UpdateMinterCalldata(minter common.Address) ([]byte, error) {
	return TokenABI.Pack("updateMinter", minter)
}

func UnfreezeCalldata() ([]byte, error) {
	return TokenABI.Pack("unfreeze")
}

func RevealCalldata() ([]byte, error) {
	return TokenABI.Pack("reveal")
}

// HasRoleCalldata encodes hasRole(role, account).
func HasRoleCalldata(role common.Hash, account common.Address) ([]byte, error) {
	return TokenABI.Pack("hasRole", [32]byte(role), account)
}

// UnpackHasRole decodes the return value of hasRole.
func UnpackHasRole(output []byte) (bool, error) {
	values, err := TokenABI.Unpack("hasRole", output)
	if err != nil {
		return false, err
	}
	if len(values) != 1 {
		return false, errUnexpectedOutput
	}
	hasRole, ok := values[0].(bool)
	if !ok {
		return false, errUnexpectedOutput
	}
	return hasRole, nil
}
