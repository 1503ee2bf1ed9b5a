// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import "errors"

var (
	ErrNotInitialized        = errors.New("launchpad not initialized")
	ErrAlreadyInitialized    = errors.New("launchpad already initialized")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrRegistrationClosed    = errors.New("registration closed")
	ErrCollectionExists      = errors.New("collection already exists")
	ErrCollectionNotFound    = errors.New("collection not found")
	ErrInvalidChainConfig    = errors.New("invalid chain config")
	ErrSoldOut               = errors.New("sold out")
	ErrInvalidMintGroup      = errors.New("invalid mint group")
	ErrInvalidMintAmount     = errors.New("invalid mint amount")
	ErrGroupNotOpenToMint    = errors.New("group not open to mint")
	ErrMaxTokensMinted       = errors.New("max tokens minted")
	ErrReservedSupplyRanOut  = errors.New("reserved supply ran out")
	ErrInvalidMerkleProof    = errors.New("invalid merkle proof")
	ErrInvalidFunds          = errors.New("invalid funds")
	ErrSupplyLowerThanMinted = errors.New("supply lower than minted")
	ErrPartnerNotFound       = errors.New("partner not found")
	ErrNotAssociatedAddress  = errors.New("address not associated")
	ErrInvalidReplyID        = errors.New("invalid reply id")
	ErrNotImplemented        = errors.New("not implemented")
	ErrInvalidShares         = errors.New("invalid shares")
	ErrInvalidPayment        = errors.New("invalid payment")
	ErrNotMinter             = errors.New("launchpad is not a minter")
	ErrNotAvailableForEVM    = errors.New("not available for EVM collections")
)
