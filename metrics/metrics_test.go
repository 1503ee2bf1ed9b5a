// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/lighthouse/txs"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	registerer := prometheus.NewRegistry()
	m, err := New("lighthouse", registerer)
	require.NoError(err)

	require.NoError(m.MarkAccepted(&txs.Mint{Amount: 3}))
	require.NoError(m.MarkAccepted(&txs.Mint{Amount: 2}))
	require.NoError(m.MarkAccepted(&txs.AddPartner{}))
	m.MarkFailed()
	m.MarkReplied()
	m.AddPaidOut(250)

	impl := m.(*metrics)
	require.Equal(float64(2), testutil.ToFloat64(impl.txMetrics.numMintTxs))
	require.Equal(float64(5), testutil.ToFloat64(impl.txMetrics.numMintedUnits))
	require.Equal(float64(1), testutil.ToFloat64(impl.txMetrics.numAddPartnerTxs))
	require.Zero(testutil.ToFloat64(impl.txMetrics.numRegisterCollectionTxs))
	require.Equal(float64(1), testutil.ToFloat64(impl.numFailed))
	require.Equal(float64(1), testutil.ToFloat64(impl.numReplies))
	require.Equal(float64(250), testutil.ToFloat64(impl.paidOut))

	// Every metric is registered under the namespace.
	families, err := registerer.Gather()
	require.NoError(err)
	require.Len(families, 15)
	for _, family := range families {
		require.Contains(family.GetName(), "lighthouse_")
	}
}

func TestMetricsRegisteredTwice(t *testing.T) {
	registerer := prometheus.NewRegistry()
	_, err := New("lighthouse", registerer)
	require.NoError(t, err)

	_, err = New("lighthouse", registerer)
	require.Error(t, err)
}
