// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/lighthouse/txs"
)

var _ Metrics = (*metrics)(nil)

type Metrics interface {
	// Mark that [tx] was committed.
	MarkAccepted(tx txs.Tx) error
	// Mark that a call was aborted.
	MarkFailed()
	// Mark that a pending instantiation was completed.
	MarkReplied()
	// Mark that [amount] of the settlement denomination was paid out.
	AddPaidOut(amount uint64)
}

func New(
	namespace string,
	registerer prometheus.Registerer,
) (Metrics, error) {
	txMetrics, err := newTxMetrics(namespace, registerer)
	errs := wrappers.Errs{Err: err}

	m := &metrics{
		txMetrics: txMetrics,

		numFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_failed",
			Help:      "Number of transactions aborted",
		}),
		numReplies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_accepted",
			Help:      "Number of collection instantiations completed",
		}),
		paidOut: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paid_out",
			Help:      "Amount of the settlement denomination transferred by the launchpad",
		}),
	}

	errs.Add(
		registerer.Register(m.numFailed),
		registerer.Register(m.numReplies),
		registerer.Register(m.paidOut),
	)
	return m, errs.Err
}

type metrics struct {
	txMetrics *txMetrics

	numFailed  prometheus.Counter
	numReplies prometheus.Counter
	paidOut    prometheus.Counter
}

func (m *metrics) MarkAccepted(tx txs.Tx) error {
	return tx.Visit(m.txMetrics)
}

func (m *metrics) MarkFailed() {
	m.numFailed.Inc()
}

func (m *metrics) MarkReplied() {
	m.numReplies.Inc()
}

func (m *metrics) AddPaidOut(amount uint64) {
	m.paidOut.Add(float64(amount))
}
