// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// Visitor allows the executor to run custom logic against the underlying tx
// types.
type Visitor interface {
	Instantiate(*Instantiate) error
	UpdateConfig(*UpdateConfig) error
	RegisterCollection(*RegisterCollection) error
	UpdateCollection(*UpdateCollection) error
	Mint(*Mint) error
	UnfreezeCollection(*UnfreezeCollection) error
	RevealCollectionMetadata(*RevealCollectionMetadata) error
	UpdateAdmin(*UpdateAdmin) error
	AddPartner(*AddPartner) error
	UpdateNFTContractAdmin(*UpdateNFTContractAdmin) error
	UpdateNFTContractOwnership(*UpdateNFTContractOwnership) error
}
