// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package message

import (
	"encoding/json"

	cjson "github.com/ava-labs/avalanchego/utils/json"
)

// The types below are the JSON interfaces of the contracts the launchpad
// instantiates and calls on the native chain.

type Empty struct{}

// NFTInstantiate instantiates a unique-token collection contract.
type NFTInstantiate struct {
	Name                  string `json:"name"`
	Symbol                string `json:"symbol"`
	Minter                string `json:"minter"`
	IsImmutable           bool   `json:"is_immutable"`
	Frozen                bool   `json:"frozen"`
	UnfreezeTime          uint64 `json:"unfreeze_time,omitempty"`
	HiddenMetadata        bool   `json:"hidden_metadata"`
	PlaceholderTokenURI   string `json:"placeholder_token_uri,omitempty"`
	BaseURI               string `json:"base_uri"`
	FixedURI              bool   `json:"fixed_uri"`
	BaseURISuffix         string `json:"base_uri_suffix,omitempty"`
	RoyaltyPercentage     uint64 `json:"royalty_percentage,omitempty"`
	RoyaltyPaymentAddress string `json:"royalty_payment_address,omitempty"`
}

type NFTExecute struct {
	Mint            *NFTMint         `json:"mint,omitempty"`
	Extension       *NFTExtension    `json:"extension,omitempty"`
	UpdateOwnership *UpdateOwnership `json:"update_ownership,omitempty"`
}

type NFTMint struct {
	TokenID   string  `json:"token_id"`
	Owner     string  `json:"owner"`
	TokenURI  *string `json:"token_uri"`
	Extension Empty   `json:"extension"`
}

type NFTExtension struct {
	Msg NFTExtensionMsg `json:"msg"`
}

type NFTExtensionMsg struct {
	UpdateLighthouseData *UpdateLighthouseData `json:"update_lighthouse_data,omitempty"`
	Unfreeze             *Empty                `json:"unfreeze,omitempty"`
	Reveal               *Empty                `json:"reveal,omitempty"`
}

type UpdateLighthouseData struct {
	PlaceholderTokenURI          string `json:"placeholder_token_uri,omitempty"`
	BaseURI                      string `json:"base_uri"`
	FixedURI                     bool   `json:"fixed_uri"`
	BaseURISuffix                string `json:"base_uri_suffix,omitempty"`
	DefaultRoyaltyPercentage     uint64 `json:"default_royalty_percentage,omitempty"`
	DefaultRoyaltyPaymentAddress string `json:"default_royalty_payment_address,omitempty"`
}

type UpdateOwnership struct {
	TransferOwnership *TransferOwnership `json:"transfer_ownership,omitempty"`
}

type TransferOwnership struct {
	NewOwner string  `json:"new_owner"`
	Expiry   *uint64 `json:"expiry"`
}

// FungibleInstantiate instantiates a fungible-batch collection contract.
type FungibleInstantiate struct {
	Name                  string        `json:"name"`
	Symbol                string        `json:"symbol"`
	Decimals              uint8         `json:"decimals"`
	IsImmutable           bool          `json:"is_immutable"`
	BaseURI               string        `json:"base_uri"`
	BaseURISuffix         string        `json:"base_uri_suffix,omitempty"`
	MaxEdition            uint64        `json:"max_edition"`
	TokensPerNFT          cjson.Uint64  `json:"tokens_per_nft"`
	Mint                  Minter        `json:"mint"`
	FrozenData            FrozenData    `json:"frozen_data"`
	Admin                 string        `json:"admin"`
	RoyaltyPercentage     uint64        `json:"royalty_percentage,omitempty"`
	RoyaltyPaymentAddress string        `json:"royalty_payment_address,omitempty"`
	Marketing             *MarketingMsg `json:"marketing,omitempty"`
}

type Minter struct {
	Minter string       `json:"minter"`
	Cap    cjson.Uint64 `json:"cap"`
}

type FrozenData struct {
	Frozen       bool     `json:"frozen"`
	UnfreezeTime uint64   `json:"unfreeze_time,omitempty"`
	Whitelisted  []string `json:"whitelisted"`
}

type MarketingMsg struct {
	Project     string `json:"project,omitempty"`
	Description string `json:"description,omitempty"`
	Marketing   string `json:"marketing,omitempty"`
	Logo        *Logo  `json:"logo,omitempty"`
}

type Logo struct {
	URL string `json:"url"`
}

type FungibleExecute struct {
	Mint              *FungibleMint              `json:"mint,omitempty"`
	Update404Data     *Update404Data             `json:"update_404_data,omitempty"`
	Unfreeze          *Empty                     `json:"unfreeze,omitempty"`
	TransferOwnership *FungibleTransferOwnership `json:"transfer_ownership,omitempty"`
}

type FungibleMint struct {
	Recipient string       `json:"recipient"`
	Amount    cjson.Uint64 `json:"amount"`
}

type Update404Data struct {
	BaseURI               string   `json:"base_uri"`
	BaseURISuffix         string   `json:"base_uri_suffix,omitempty"`
	MaxEdition            uint64   `json:"max_edition"`
	RoyaltyPercentage     uint64   `json:"royalty_percentage,omitempty"`
	RoyaltyPaymentAddress string   `json:"royalty_payment_address,omitempty"`
	FrozenWhitelist       []string `json:"frozen_whitelist,omitempty"`
}

type FungibleTransferOwnership struct {
	NewAdmin string `json:"new_admin"`
}

// TokenExecute calls a fungible payment token contract.
type TokenExecute struct {
	TransferFrom *TransferFrom `json:"transfer_from,omitempty"`
	BurnFrom     *BurnFrom     `json:"burn_from,omitempty"`
}

type TransferFrom struct {
	Owner     string       `json:"owner"`
	Recipient string       `json:"recipient"`
	Amount    cjson.Uint64 `json:"amount"`
}

type BurnFrom struct {
	Owner  string       `json:"owner"`
	Amount cjson.Uint64 `json:"amount"`
}

// NewWasmExecute encodes [msg] as a call to [contract].
func NewWasmExecute(contract string, msg interface{}) (*WasmExecute, error) {
	bytes, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return &WasmExecute{
		Contract: contract,
		Msg:      bytes,
	}, nil
}

// NewWasmInstantiate encodes [msg] as the instantiation of [codeID].
func NewWasmInstantiate(codeID uint64, msg interface{}, admin, label string, replyID uint64) (*WasmInstantiate, error) {
	bytes, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return &WasmInstantiate{
		CodeID:  codeID,
		Msg:     bytes,
		Admin:   admin,
		Label:   label,
		ReplyID: replyID,
	}, nil
}
