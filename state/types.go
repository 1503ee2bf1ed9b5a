// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"golang.org/x/exp/slices"
)

// Chain identifies the execution environment a collection's token contract
// lives in.
type Chain string

const (
	// ChainNative collections are minted through contracts on this chain.
	ChainNative Chain = "v1"
	// ChainEVM collections are minted through calldata sent to the EVM
	// side-chain.
	ChainEVM Chain = "v2"
)

// Standard identifies the token standard of a collection.
type Standard string

const (
	// StandardUnique collections mint one token per unit.
	StandardUnique Standard = "721"
	// StandardFungible collections mint a fixed batch of fungible units per
	// unit.
	StandardFungible Standard = "404"
)

type Config struct {
	Admin            string `serialize:"true" json:"admin"`
	Fee              uint64 `serialize:"true" json:"fee"`
	Denom            string `serialize:"true" json:"denom"`
	RegistrationOpen bool   `serialize:"true" json:"registrationOpen"`
	NextReplyID      uint64 `serialize:"true" json:"nextReplyID"`
}

type PaymentKind uint8

const (
	PaymentNative PaymentKind = iota + 1
	PaymentToken
	PaymentTokenBurn
)

func (k PaymentKind) String() string {
	switch k {
	case PaymentNative:
		return "native"
	case PaymentToken:
		return "token"
	case PaymentTokenBurn:
		return "token_burn"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Payment is one leg of the per-unit cost of a mint.
//
// Args are kind specific:
//   - native: [recipient]
//   - token: [recipient, token contract]
//   - token_burn: [token contract]
type Payment struct {
	Kind   PaymentKind `serialize:"true" json:"kind"`
	Amount uint64      `serialize:"true" json:"amount"`
	Args   []string    `serialize:"true" json:"args"`
}

type MintGroup struct {
	Name string `serialize:"true" json:"name"`
	// MerkleRoot is empty for public groups.
	MerkleRoot hexutil.Bytes `serialize:"true" json:"merkleRoot"`
	// MaxTokens is the per-wallet quota. Zero means unlimited.
	MaxTokens uint64 `serialize:"true" json:"maxTokens"`
	// ReservedSupply caps the units issued by the group. Zero means
	// unlimited.
	ReservedSupply uint64    `serialize:"true" json:"reservedSupply"`
	StartTime      uint64    `serialize:"true" json:"startTime"`
	EndTime        uint64    `serialize:"true" json:"endTime"`
	BatchSize      uint64    `serialize:"true" json:"batchSize"`
	Payments       []Payment `serialize:"true" json:"payments"`
}

// Public returns true if minting from the group doesn't require a proof.
func (g *MintGroup) Public() bool {
	return len(g.MerkleRoot) == 0
}

// Open returns true if [now] is inside the group's [StartTime, EndTime)
// window. An EndTime of zero leaves the window unbounded.
func (g *MintGroup) Open(now uint64) bool {
	return g.StartTime <= now && (g.EndTime == 0 || now < g.EndTime)
}

// Metadata is the on-chain metadata pushed to the token contract.
type Metadata struct {
	TokenURI            string `serialize:"true" json:"tokenURI"`
	URISuffix           string `serialize:"true" json:"uriSuffix"`
	FixedURI            bool   `serialize:"true" json:"fixedURI"`
	PlaceholderTokenURI string `serialize:"true" json:"placeholderTokenURI"`
	RoyaltyPercent      uint64 `serialize:"true" json:"royaltyPercent"`
	RoyaltyWallet       string `serialize:"true" json:"royaltyWallet"`
	// MaxEdition is only used by fungible-batch collections.
	MaxEdition      uint64   `serialize:"true" json:"maxEdition"`
	FrozenWhitelist []string `serialize:"true" json:"frozenWhitelist"`
}

// Equal compares metadata ignoring the difference between nil and empty
// whitelists.
func (m *Metadata) Equal(o *Metadata) bool {
	if m.TokenURI != o.TokenURI ||
		m.URISuffix != o.URISuffix ||
		m.FixedURI != o.FixedURI ||
		m.PlaceholderTokenURI != o.PlaceholderTokenURI ||
		m.RoyaltyPercent != o.RoyaltyPercent ||
		m.RoyaltyWallet != o.RoyaltyWallet ||
		m.MaxEdition != o.MaxEdition {
		return false
	}
	return slices.Equal(m.FrozenWhitelist, o.FrozenWhitelist)
}

type Marketing struct {
	Project     string `serialize:"true" json:"project"`
	Description string `serialize:"true" json:"description"`
	Logo        string `serialize:"true" json:"logo"`
}

// FungibleInfo is only populated for fungible-batch collections.
type FungibleInfo struct {
	Decimals     uint8     `serialize:"true" json:"decimals"`
	TokensPerNFT uint64    `serialize:"true" json:"tokensPerNFT"`
	MaxSupply    uint64    `serialize:"true" json:"maxSupply"`
	Marketing    Marketing `serialize:"true" json:"marketing"`
}

type Collection struct {
	Admin    string   `serialize:"true" json:"admin"`
	Chain    Chain    `serialize:"true" json:"chain"`
	Standard Standard `serialize:"true" json:"standard"`
	// Address is empty while the token contract is being instantiated.
	Address   string `serialize:"true" json:"address"`
	Name      string `serialize:"true" json:"name"`
	Symbol    string `serialize:"true" json:"symbol"`
	Supply    uint64 `serialize:"true" json:"supply"`
	NextToken uint64 `serialize:"true" json:"nextToken"`
	// StartOrder offsets the first token id of unique collections.
	StartOrder     uint64       `serialize:"true" json:"startOrder"`
	MintGroups     []MintGroup  `serialize:"true" json:"mintGroups"`
	Frozen         bool         `serialize:"true" json:"frozen"`
	UnfreezeTime   uint64       `serialize:"true" json:"unfreezeTime"`
	HiddenMetadata bool         `serialize:"true" json:"hiddenMetadata"`
	Partner        string       `serialize:"true" json:"partner"`
	Metadata       Metadata     `serialize:"true" json:"metadata"`
	Fungible       FungibleInfo `serialize:"true" json:"fungible"`
}

// Group returns the mint group named [name].
func (c *Collection) Group(name string) (*MintGroup, bool) {
	for i := range c.MintGroups {
		if c.MintGroups[i].Name == name {
			return &c.MintGroups[i], true
		}
	}
	return nil, false
}

// Minted returns the number of units issued so far.
func (c *Collection) Minted() uint64 {
	return c.NextToken - c.StartOrder
}

type Partner struct {
	Address    string `serialize:"true" json:"address"`
	FeePercent uint64 `serialize:"true" json:"feePercent"`
}

// MintInfo records the unit indices, or batch sizes for fungible
// collections, that a wallet minted from a group.
type MintInfo struct {
	Mints []uint64 `serialize:"true" json:"mints"`
}
