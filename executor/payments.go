// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"
	"strconv"

	"github.com/ava-labs/avalanchego/utils/math"

	cjson "github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/state"
)

// FeeSplit is the distribution of the platform fee of a mint.
type FeeSplit struct {
	Partner      string
	PartnerShare uint64
	AdminShare   uint64
}

// SplitFee carves the partner's share out of [fee]. The admin keeps the
// remainder, so PartnerShare + AdminShare always equals [fee].
func SplitFee(fee uint64, partner *state.Partner) (FeeSplit, error) {
	if partner == nil || partner.FeePercent == 0 {
		return FeeSplit{AdminShare: fee}, nil
	}
	if partner.FeePercent > MaxPartnerFeePercent {
		return FeeSplit{}, fmt.Errorf("%w: partner fee %d%% exceeds %d%%",
			ErrInvalidShares, partner.FeePercent, MaxPartnerFeePercent)
	}

	// fee * percent / 100 without overflowing the intermediate product.
	share := fee/100*partner.FeePercent + fee%100*partner.FeePercent/100
	return FeeSplit{
		Partner:      partner.Address,
		PartnerShare: share,
		AdminShare:   fee - share,
	}, nil
}

// distribute emits the payments of a mint of [amount] units from [group] and
// the platform fee split.
func (e *Executor) distribute(config *state.Config, c *state.Collection, group *state.MintGroup, amount uint64) error {
	for _, payment := range group.Payments {
		total, err := math.Mul64(payment.Amount, amount)
		if err != nil {
			return err
		}

		switch payment.Kind {
		case state.PaymentNative:
			e.bankSend(config, payment.Args[0], total)
			e.Response.AddAttribute("paid_native", strconv.FormatUint(total, 10))
		case state.PaymentToken:
			msg, err := message.NewWasmExecute(payment.Args[1], &message.TokenExecute{
				TransferFrom: &message.TransferFrom{
					Owner:     e.Env.Sender,
					Recipient: payment.Args[0],
					Amount:    cjson.Uint64(total),
				},
			})
			if err != nil {
				return err
			}
			e.emit(msg)
			e.Response.AddAttribute("paid_"+payment.Args[1], strconv.FormatUint(total, 10))
		case state.PaymentTokenBurn:
			msg, err := message.NewWasmExecute(payment.Args[0], &message.TokenExecute{
				BurnFrom: &message.BurnFrom{
					Owner:  e.Env.Sender,
					Amount: cjson.Uint64(total),
				},
			})
			if err != nil {
				return err
			}
			e.emit(msg)
			e.Response.AddAttribute("burned_"+payment.Args[0], strconv.FormatUint(total, 10))
		default:
			return fmt.Errorf("%w: payment kind %s", ErrNotImplemented, payment.Kind)
		}
	}

	if len(group.Payments) == 0 {
		return nil
	}

	fee, err := math.Mul64(config.Fee, amount)
	if err != nil {
		return err
	}

	var partner *state.Partner
	if c.Partner != "" {
		partner, err = state.GetPartner(e.State, c.Partner)
		if err != nil {
			return err
		}
	}
	// The partner's share is taken from the fee of a single unit.
	split, err := SplitFee(config.Fee, partner)
	if err != nil {
		return err
	}

	e.bankSend(config, split.Partner, split.PartnerShare)
	e.bankSend(config, config.Admin, fee-split.PartnerShare)
	return nil
}

// bankSend emits a transfer of [amount] of the settlement denomination held
// by the launchpad. Empty transfers are skipped.
func (e *Executor) bankSend(config *state.Config, to string, amount uint64) {
	if amount == 0 {
		return
	}
	e.emit(&message.BankSend{
		To: to,
		Amount: []message.Coin{{
			Denom:  config.Denom,
			Amount: amount,
		}},
	})
}
