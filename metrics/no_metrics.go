// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import "github.com/ava-labs/lighthouse/txs"

var Noop Metrics = noopMetrics{}

type noopMetrics struct{}

func (noopMetrics) MarkAccepted(txs.Tx) error {
	return nil
}

func (noopMetrics) MarkFailed() {}

func (noopMetrics) MarkReplied() {}

func (noopMetrics) AddPaidOut(uint64) {}
