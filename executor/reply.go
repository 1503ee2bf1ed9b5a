// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/lighthouse/state"
)

// Reply completes the registration that emitted the instantiation tagged with
// [replyID]. [address] is the address of the instantiated token contract.
func (e *Executor) Reply(replyID uint64, address string) error {
	c, err := state.GetPendingCollection(e.State, replyID)
	if err == database.ErrNotFound {
		return fmt.Errorf("%w: %d", ErrInvalidReplyID, replyID)
	}
	if err != nil {
		return err
	}

	exists, err := state.HasCollection(e.State, address)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrCollectionExists, address)
	}

	c.Address = address
	if err := state.SetCollection(e.State, address, c); err != nil {
		return err
	}
	if err := state.DeletePendingCollection(e.State, replyID); err != nil {
		return err
	}

	e.Response.AddAttribute("action", "reply")
	e.Response.AddAttribute("reply_id", strconv.FormatUint(replyID, 10))
	e.Response.AddAttribute("collection", address)
	e.debug("completed instantiation",
		zap.Uint64("replyID", replyID),
		zap.String("collection", address),
	)
	return nil
}
