// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/lighthouse/txs"
)

var _ txs.Visitor = (*txMetrics)(nil)

type txMetrics struct {
	numInstantiateTxs,
	numUpdateConfigTxs,
	numRegisterCollectionTxs,
	numUpdateCollectionTxs,
	numMintTxs,
	numUnfreezeCollectionTxs,
	numRevealCollectionMetadataTxs,
	numUpdateAdminTxs,
	numAddPartnerTxs,
	numUpdateNFTContractAdminTxs,
	numUpdateNFTContractOwnershipTxs prometheus.Counter

	// numMintedUnits counts the units requested by accepted mints.
	numMintedUnits prometheus.Counter
}

func newTxMetrics(
	namespace string,
	registerer prometheus.Registerer,
) (*txMetrics, error) {
	errs := wrappers.Errs{}
	m := &txMetrics{
		numInstantiateTxs:                newTxMetric(namespace, "instantiate", registerer, &errs),
		numUpdateConfigTxs:               newTxMetric(namespace, "update_config", registerer, &errs),
		numRegisterCollectionTxs:         newTxMetric(namespace, "register_collection", registerer, &errs),
		numUpdateCollectionTxs:           newTxMetric(namespace, "update_collection", registerer, &errs),
		numMintTxs:                       newTxMetric(namespace, "mint", registerer, &errs),
		numUnfreezeCollectionTxs:         newTxMetric(namespace, "unfreeze_collection", registerer, &errs),
		numRevealCollectionMetadataTxs:   newTxMetric(namespace, "reveal_collection_metadata", registerer, &errs),
		numUpdateAdminTxs:                newTxMetric(namespace, "update_admin", registerer, &errs),
		numAddPartnerTxs:                 newTxMetric(namespace, "add_partner", registerer, &errs),
		numUpdateNFTContractAdminTxs:     newTxMetric(namespace, "update_nft_contract_admin", registerer, &errs),
		numUpdateNFTContractOwnershipTxs: newTxMetric(namespace, "update_nft_contract_ownership", registerer, &errs),
		numMintedUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "minted_units",
			Help:      "Number of units minted by accepted mint transactions",
		}),
	}
	errs.Add(registerer.Register(m.numMintedUnits))
	return m, errs.Err
}

func newTxMetric(
	namespace string,
	txName string,
	registerer prometheus.Registerer,
	errs *wrappers.Errs,
) prometheus.Counter {
	txMetric := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      fmt.Sprintf("%s_txs_accepted", txName),
		Help:      fmt.Sprintf("Number of %s transactions accepted", txName),
	})
	errs.Add(registerer.Register(txMetric))
	return txMetric
}

func (m *txMetrics) Instantiate(*txs.Instantiate) error {
	m.numInstantiateTxs.Inc()
	return nil
}

func (m *txMetrics) UpdateConfig(*txs.UpdateConfig) error {
	m.numUpdateConfigTxs.Inc()
	return nil
}

func (m *txMetrics) RegisterCollection(*txs.RegisterCollection) error {
	m.numRegisterCollectionTxs.Inc()
	return nil
}

func (m *txMetrics) UpdateCollection(*txs.UpdateCollection) error {
	m.numUpdateCollectionTxs.Inc()
	return nil
}

func (m *txMetrics) Mint(tx *txs.Mint) error {
	m.numMintTxs.Inc()
	m.numMintedUnits.Add(float64(tx.Amount))
	return nil
}

func (m *txMetrics) UnfreezeCollection(*txs.UnfreezeCollection) error {
	m.numUnfreezeCollectionTxs.Inc()
	return nil
}

func (m *txMetrics) RevealCollectionMetadata(*txs.RevealCollectionMetadata) error {
	m.numRevealCollectionMetadataTxs.Inc()
	return nil
}

func (m *txMetrics) UpdateAdmin(*txs.UpdateAdmin) error {
	m.numUpdateAdminTxs.Inc()
	return nil
}

func (m *txMetrics) AddPartner(*txs.AddPartner) error {
	m.numAddPartnerTxs.Inc()
	return nil
}

func (m *txMetrics) UpdateNFTContractAdmin(*txs.UpdateNFTContractAdmin) error {
	m.numUpdateNFTContractAdminTxs.Inc()
	return nil
}

func (m *txMetrics) UpdateNFTContractOwnership(*txs.UpdateNFTContractOwnership) error {
	m.numUpdateNFTContractOwnershipTxs.Inc()
	return nil
}
