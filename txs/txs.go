// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ava-labs/lighthouse/state"
)

// ProofAddressHex selects the lower-case 0x EVM form of the minter as the
// allowlist leaf.
const ProofAddressHex = "hex"

var (
	_ Tx = (*Instantiate)(nil)
	_ Tx = (*UpdateConfig)(nil)
	_ Tx = (*RegisterCollection)(nil)
	_ Tx = (*UpdateCollection)(nil)
	_ Tx = (*Mint)(nil)
	_ Tx = (*UnfreezeCollection)(nil)
	_ Tx = (*RevealCollectionMetadata)(nil)
	_ Tx = (*UpdateAdmin)(nil)
	_ Tx = (*AddPartner)(nil)
	_ Tx = (*UpdateNFTContractAdmin)(nil)
	_ Tx = (*UpdateNFTContractOwnership)(nil)

	ErrUnknownTxType = errors.New("unknown tx type")

	txTypes = map[string]func() Tx{
		"instantiate":                func() Tx { return &Instantiate{} },
		"updateConfig":               func() Tx { return &UpdateConfig{} },
		"registerCollection":         func() Tx { return &RegisterCollection{} },
		"updateCollection":           func() Tx { return &UpdateCollection{} },
		"mint":                       func() Tx { return &Mint{} },
		"unfreezeCollection":         func() Tx { return &UnfreezeCollection{} },
		"revealCollectionMetadata":   func() Tx { return &RevealCollectionMetadata{} },
		"updateAdmin":                func() Tx { return &UpdateAdmin{} },
		"addPartner":                 func() Tx { return &AddPartner{} },
		"updateNFTContractAdmin":     func() Tx { return &UpdateNFTContractAdmin{} },
		"updateNFTContractOwnership": func() Tx { return &UpdateNFTContractOwnership{} },
	}
)

// Tx is a request made to the launchpad.
type Tx interface {
	Visit(Visitor) error
}

// Parse decodes the JSON encoded tx of type [txType].
func Parse(txType string, bytes []byte) (Tx, error) {
	newTx, ok := txTypes[txType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTxType, txType)
	}
	tx := newTx()
	return tx, json.Unmarshal(bytes, tx)
}

// Instantiate creates the launchpad configuration. The sender becomes the
// platform admin.
type Instantiate struct {
	Fee              uint64 `json:"fee"`
	Denom            string `json:"denom"`
	RegistrationOpen bool   `json:"registrationOpen"`
}

func (tx *Instantiate) Visit(v Visitor) error {
	return v.Instantiate(tx)
}

type UpdateConfig struct {
	Fee              uint64 `json:"fee"`
	RegistrationOpen bool   `json:"registrationOpen"`
}

func (tx *UpdateConfig) Visit(v Visitor) error {
	return v.UpdateConfig(tx)
}

type RegisterCollection struct {
	Chain    state.Chain    `json:"chain"`
	Standard state.Standard `json:"standard"`
	// CodeID is the code instantiated for native collections.
	CodeID uint64 `json:"codeID"`
	// ContractAddress is the already deployed token contract of EVM
	// collections.
	ContractAddress string `json:"contractAddress"`

	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Supply uint64 `json:"supply"`
	// StartOrder is the first token id. Fungible collections must not set
	// it.
	StartOrder     *uint64 `json:"startOrder"`
	IsImmutable    bool    `json:"isImmutable"`
	Frozen         bool    `json:"frozen"`
	UnfreezeTime   uint64  `json:"unfreezeTime"`
	HiddenMetadata bool    `json:"hiddenMetadata"`
	Partner        string  `json:"partner"`

	Metadata   state.Metadata      `json:"metadata"`
	Fungible   *state.FungibleInfo `json:"fungible"`
	MintGroups []state.MintGroup   `json:"mintGroups"`
}

func (tx *RegisterCollection) Visit(v Visitor) error {
	return v.RegisterCollection(tx)
}

type UpdateCollection struct {
	Collection string            `json:"collection"`
	Supply     uint64            `json:"supply"`
	StartOrder *uint64           `json:"startOrder"`
	Metadata   state.Metadata    `json:"metadata"`
	MintGroups []state.MintGroup `json:"mintGroups"`
}

func (tx *UpdateCollection) Visit(v Visitor) error {
	return v.UpdateCollection(tx)
}

type Mint struct {
	Collection string `json:"collection"`
	Group      string `json:"group"`
	Amount     uint64 `json:"amount"`
	// Proof is required when the group has a merkle root.
	Proof []hexutil.Bytes `json:"proof"`
	// ProofAddressType selects the address form committed to by the
	// allowlist. Either empty, for the native address, or "hex".
	ProofAddressType string `json:"proofAddressType"`
}

func (tx *Mint) Visit(v Visitor) error {
	return v.Mint(tx)
}

// Siblings returns the nodes of the proof. It is nil when no proof was
// given.
func (tx *Mint) Siblings() [][]byte {
	if tx.Proof == nil {
		return nil
	}
	siblings := make([][]byte, len(tx.Proof))
	for i, sibling := range tx.Proof {
		siblings[i] = sibling
	}
	return siblings
}

type UnfreezeCollection struct {
	Collection string `json:"collection"`
}

func (tx *UnfreezeCollection) Visit(v Visitor) error {
	return v.UnfreezeCollection(tx)
}

type RevealCollectionMetadata struct {
	Collection string `json:"collection"`
}

func (tx *RevealCollectionMetadata) Visit(v Visitor) error {
	return v.RevealCollectionMetadata(tx)
}

type UpdateAdmin struct {
	Collection string `json:"collection"`
	Admin      string `json:"admin"`
}

func (tx *UpdateAdmin) Visit(v Visitor) error {
	return v.UpdateAdmin(tx)
}

type AddPartner struct {
	Address    string `json:"address"`
	FeePercent uint64 `json:"feePercent"`
}

func (tx *AddPartner) Visit(v Visitor) error {
	return v.AddPartner(tx)
}

type UpdateNFTContractAdmin struct {
	Collection string `json:"collection"`
	// Admin is either a native address or, for EVM collections, a 0x
	// address.
	Admin string `json:"admin"`
}

func (tx *UpdateNFTContractAdmin) Visit(v Visitor) error {
	return v.UpdateNFTContractAdmin(tx)
}

type UpdateNFTContractOwnership struct {
	Collection string `json:"collection"`
	Owner      string `json:"owner"`
}

func (tx *UpdateNFTContractOwnership) Visit(v Visitor) error {
	return v.UpdateNFTContractOwnership(tx)
}
