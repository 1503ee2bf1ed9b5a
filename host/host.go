// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package host executes launchpad calls against a local database, standing in
// for the chain the launchpad is deployed on.
package host

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/executor"
	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/metrics"
	"github.com/ava-labs/lighthouse/query"
	"github.com/ava-labs/lighthouse/txs"
)

var (
	statePrefix     = []byte("state")
	bankPrefix      = []byte("bank")
	contractsPrefix = []byte("contracts")

	nextInstanceKey = []byte("nextInstance")

	ErrReplyFailed = errors.New("instantiation reply failed")
)

type Config struct {
	// HRP is the human readable part of native addresses.
	HRP string
	// Contract is the native address of the launchpad.
	Contract string
}

// Contract is a token contract instantiated on behalf of the launchpad.
type Contract struct {
	Address string `json:"address"`
	CodeID  uint64 `json:"codeID"`
	Label   string `json:"label"`
	Admin   string `json:"admin"`
	ReplyID uint64 `json:"replyID"`
}

// Result is the outcome of a committed call.
type Result struct {
	Response message.Response `json:"response"`
	// Instantiated are the contracts created by the call.
	Instantiated []*Contract `json:"instantiated"`
	// Relayed are the contract and cross-chain calls to be delivered to
	// their targets.
	Relayed []message.Message `json:"relayed"`
}

// Host serializes calls to the launchpad. Every call is applied atomically:
// the launchpad state and the bank ledger are either both updated or both
// left untouched.
type Host struct {
	config  Config
	log     logging.Logger
	clock   *mockable.Clock
	metrics metrics.Metrics
	backend *executor.Backend
	querier *query.Querier

	lock sync.Mutex
	db   database.Database
}

func New(
	config Config,
	db database.Database,
	log logging.Logger,
	clock *mockable.Clock,
	metrics metrics.Metrics,
	addressOracle evm.AddressOracle,
	roleOracle evm.RoleOracle,
) *Host {
	return &Host{
		config:  config,
		log:     log,
		clock:   clock,
		metrics: metrics,
		backend: &executor.Backend{
			Log:           log,
			HRP:           config.HRP,
			AddressOracle: addressOracle,
			RoleOracle:    roleOracle,
		},
		querier: &query.Querier{
			DB:            prefixdb.New(statePrefix, db),
			AddressOracle: addressOracle,
		},
		db: db,
	}
}

// Querier returns the read-only view of the launchpad state.
func (h *Host) Querier() *query.Querier {
	return h.querier
}

// Fund credits [coins] to [address] outside of any launchpad call.
func (h *Host) Fund(address string, coins []message.Coin) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	vdb := versiondb.New(h.db)
	defer vdb.Abort()

	b := &bank{db: prefixdb.New(bankPrefix, vdb)}
	if err := b.mint(address, coins); err != nil {
		return err
	}
	return vdb.Commit()
}

func (h *Host) Balance(address, denom string) (uint64, error) {
	b := &bank{db: prefixdb.New(bankPrefix, h.db)}
	return b.balance(address, denom)
}

// Issue executes [tx] sent by [sender] with [funds] attached. Contracts
// instantiated by [tx] are reported back to the launchpad once [tx] is
// committed.
func (h *Host) Issue(sender string, funds []message.Coin, tx txs.Tx) (*Result, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	result, err := h.execute(sender, funds, tx)
	if err != nil {
		h.metrics.MarkFailed()
		h.log.Debug("aborted call",
			zap.String("sender", sender),
			zap.String("txType", fmt.Sprintf("%T", tx)),
			zap.Error(err),
		)
		return nil, err
	}
	if err := h.metrics.MarkAccepted(tx); err != nil {
		return nil, err
	}
	h.log.Debug("committed call",
		zap.String("sender", sender),
		zap.String("txType", fmt.Sprintf("%T", tx)),
		zap.Int("numMessages", len(result.Response.Messages)),
	)

	for _, contract := range result.Instantiated {
		if err := h.reply(contract); err != nil {
			h.log.Warn("failed to complete instantiation",
				zap.String("contract", contract.Address),
				zap.Uint64("replyID", contract.ReplyID),
				zap.Error(err),
			)
			return result, fmt.Errorf("%w: %v", ErrReplyFailed, err)
		}
	}
	return result, nil
}

func (h *Host) execute(sender string, funds []message.Coin, tx txs.Tx) (*Result, error) {
	vdb := versiondb.New(h.db)
	defer vdb.Abort()

	b := &bank{db: prefixdb.New(bankPrefix, vdb)}
	if err := b.transfer(sender, h.config.Contract, funds); err != nil {
		return nil, err
	}

	e := &executor.Executor{
		Backend: h.backend,
		State:   prefixdb.New(statePrefix, vdb),
		Env: executor.Env{
			Sender:   sender,
			Contract: h.config.Contract,
			Time:     h.clock.Unix(),
			Funds:    funds,
		},
	}
	if err := tx.Visit(e); err != nil {
		return nil, err
	}

	result := &Result{
		Response: e.Response,
	}
	var paidOut uint64
	for _, msg := range e.Response.Messages {
		switch msg := msg.(type) {
		case *message.BankSend:
			if err := b.transfer(h.config.Contract, msg.To, msg.Amount); err != nil {
				return nil, err
			}
			for _, coin := range msg.Amount {
				paidOut += coin.Amount
			}
		case *message.WasmInstantiate:
			contract, err := h.instantiate(vdb, msg)
			if err != nil {
				return nil, err
			}
			result.Instantiated = append(result.Instantiated, contract)
		default:
			result.Relayed = append(result.Relayed, msg)
		}
	}

	if err := vdb.Commit(); err != nil {
		return nil, err
	}
	h.metrics.AddPaidOut(paidOut)
	return result, nil
}

// instantiate creates the contract requested by [msg] at an address derived
// from its code id and the number of contracts instantiated before it.
func (h *Host) instantiate(db database.Database, msg *message.WasmInstantiate) (*Contract, error) {
	contracts := prefixdb.New(contractsPrefix, db)
	instance, err := database.GetUInt64(contracts, nextInstanceKey)
	if err != nil && err != database.ErrNotFound {
		return nil, err
	}

	p := wrappers.Packer{
		MaxSize: math.MaxInt32,
		Bytes:   make([]byte, 0, 2*wrappers.LongLen),
	}
	p.PackLong(msg.CodeID)
	p.PackLong(instance)
	address, err := evm.FormatBech32(h.config.HRP, hashing.ComputeHash256(p.Bytes))
	if err != nil {
		return nil, err
	}

	if err := database.PutUInt64(contracts, nextInstanceKey, instance+1); err != nil {
		return nil, err
	}
	if err := database.PutUInt64(contracts, []byte(address), msg.CodeID); err != nil {
		return nil, err
	}
	return &Contract{
		Address: address,
		CodeID:  msg.CodeID,
		Label:   msg.Label,
		Admin:   msg.Admin,
		ReplyID: msg.ReplyID,
	}, nil
}

// reply reports [contract] back to the launchpad in its own atomic call.
func (h *Host) reply(contract *Contract) error {
	vdb := versiondb.New(h.db)
	defer vdb.Abort()

	e := &executor.Executor{
		Backend: h.backend,
		State:   prefixdb.New(statePrefix, vdb),
		Env: executor.Env{
			Sender:   h.config.Contract,
			Contract: h.config.Contract,
			Time:     h.clock.Unix(),
		},
	}
	if err := e.Reply(contract.ReplyID, contract.Address); err != nil {
		return err
	}
	if err := vdb.Commit(); err != nil {
		return err
	}

	h.metrics.MarkReplied()
	return nil
}

// CodeID returns the code id of the contract instantiated at [address].
func (h *Host) CodeID(address string) (uint64, error) {
	return database.GetUInt64(prefixdb.New(contractsPrefix, h.db), []byte(address))
}
