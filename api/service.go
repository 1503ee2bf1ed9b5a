// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/rpc/v2"

	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/utils/logging"

	cjson "github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/host"
	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

// Namespace is the name the service is registered under.
const Namespace = "lighthouse"

// Service is the JSON-RPC API of the launchpad.
type Service struct {
	log  logging.Logger
	host *host.Host
}

// NewHandler returns the JSON-RPC handler serving the launchpad API.
func NewHandler(log logging.Logger, h *host.Host) (http.Handler, error) {
	server := rpc.NewServer()
	codec := cjson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(&Service{
		log:  log,
		host: h,
	}, Namespace)
}

type IssueTxArgs struct {
	Sender string          `json:"sender"`
	Funds  []message.Coin  `json:"funds"`
	TxType string          `json:"txType"`
	Tx     json.RawMessage `json:"tx"`
}

// Message is an emitted message tagged with its type.
type Message struct {
	Type string          `json:"type"`
	Body json.RawMessage `json:"body"`
}

type IssueTxReply struct {
	Attributes   []message.Attribute `json:"attributes"`
	Instantiated []*host.Contract    `json:"instantiated"`
	Relayed      []Message           `json:"relayed"`
	// ReplyError is set when the call committed but reporting an
	// instantiated contract back to the launchpad failed.
	ReplyError string `json:"replyError,omitempty"`
}

// IssueTx executes a launchpad call.
func (s *Service) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "issueTx"),
		zap.String("txType", args.TxType),
	)

	tx, err := txs.Parse(args.TxType, args.Tx)
	if err != nil {
		return err
	}
	result, err := s.host.Issue(args.Sender, args.Funds, tx)
	switch {
	case errors.Is(err, host.ErrReplyFailed):
		reply.ReplyError = err.Error()
	case err != nil:
		return err
	}

	reply.Attributes = result.Response.Attributes
	reply.Instantiated = result.Instantiated
	reply.Relayed = make([]Message, len(result.Relayed))
	for i, msg := range result.Relayed {
		body, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		reply.Relayed[i] = Message{
			Type: messageType(msg),
			Body: body,
		}
	}
	return nil
}

func messageType(msg message.Message) string {
	switch msg.(type) {
	case *message.BankSend:
		return "bankSend"
	case *message.WasmExecute:
		return "wasmExecute"
	case *message.WasmInstantiate:
		return "wasmInstantiate"
	case *message.WasmUpdateAdmin:
		return "wasmUpdateAdmin"
	case *message.EVMCall:
		return "evmCall"
	default:
		return fmt.Sprintf("%T", msg)
	}
}

func (s *Service) GetConfig(_ *http.Request, _ *struct{}, reply *state.Config) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "getConfig"),
	)

	config, err := s.host.Querier().GetConfig()
	if err != nil {
		return err
	}
	*reply = *config
	return nil
}

type CollectionArgs struct {
	Collection string `json:"collection"`
}

func (s *Service) GetCollection(_ *http.Request, args *CollectionArgs, reply *state.Collection) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "getCollection"),
		zap.String("collection", args.Collection),
	)

	c, err := s.host.Querier().GetCollection(args.Collection)
	if err != nil {
		return err
	}
	*reply = *c
	return nil
}

type GetCollectionsArgs struct {
	StartAfter string `json:"startAfter"`
	Limit      int    `json:"limit"`
}

type GetCollectionsReply struct {
	Collections []*state.Collection `json:"collections"`
}

func (s *Service) GetCollections(_ *http.Request, args *GetCollectionsArgs, reply *GetCollectionsReply) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "getCollections"),
		zap.String("startAfter", args.StartAfter),
		zap.Int("limit", args.Limit),
	)

	collections, err := s.host.Querier().GetCollections(args.StartAfter, args.Limit)
	reply.Collections = collections
	return err
}

type MintsOfArgs struct {
	Address    string `json:"address"`
	Collection string `json:"collection"`
}

func (s *Service) MintsOf(_ *http.Request, args *MintsOfArgs, reply *state.MintInfo) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "mintsOf"),
		zap.String("address", args.Address),
		zap.String("collection", args.Collection),
	)

	mints, err := s.host.Querier().MintsOf(args.Address, args.Collection)
	if err != nil {
		return err
	}
	*reply = *mints
	return nil
}

type GetMinterOfArgs struct {
	Collection string `json:"collection"`
	// Group is only set for fungible-batch collections.
	Group   string       `json:"group"`
	TokenID cjson.Uint64 `json:"tokenID"`
}

type AddressReply struct {
	Address string `json:"address"`
}

func (s *Service) GetMinterOf(_ *http.Request, args *GetMinterOfArgs, reply *AddressReply) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "getMinterOf"),
		zap.String("collection", args.Collection),
	)

	minter, err := s.host.Querier().GetMinterOf(args.Collection, args.Group, uint64(args.TokenID))
	reply.Address = minter
	return err
}

type GetGlobalMintInfoArgs struct {
	Collection string `json:"collection"`
	Group      string `json:"group"`
}

type GetGlobalMintInfoReply struct {
	Minted cjson.Uint64 `json:"minted"`
}

func (s *Service) GetGlobalMintInfo(_ *http.Request, args *GetGlobalMintInfoArgs, reply *GetGlobalMintInfoReply) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "getGlobalMintInfo"),
		zap.String("collection", args.Collection),
		zap.String("group", args.Group),
	)

	minted, err := s.host.Querier().GetGlobalMintInfo(args.Collection, args.Group)
	reply.Minted = cjson.Uint64(minted)
	return err
}

type AddressArgs struct {
	Address string `json:"address"`
}

func (s *Service) GetEVMAddress(_ *http.Request, args *AddressArgs, reply *AddressReply) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "getEVMAddress"),
		zap.String("address", args.Address),
	)

	addr, err := s.host.Querier().GetEVMAddress(args.Address)
	if err != nil {
		return err
	}
	reply.Address = evm.Lower(addr)
	return nil
}

func (s *Service) GetNativeAddress(_ *http.Request, args *AddressArgs, reply *AddressReply) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "getNativeAddress"),
		zap.String("address", args.Address),
	)

	addr, err := evm.ParseHex(args.Address)
	if err != nil {
		return err
	}
	native, err := s.host.Querier().GetNativeAddress(addr)
	reply.Address = native
	return err
}

type GetBalanceArgs struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
}

type GetBalanceReply struct {
	Balance cjson.Uint64 `json:"balance"`
}

func (s *Service) GetBalance(_ *http.Request, args *GetBalanceArgs, reply *GetBalanceReply) error {
	s.log.Debug("API called",
		zap.String("service", Namespace),
		zap.String("method", "getBalance"),
		zap.String("address", args.Address),
		zap.String("denom", args.Denom),
	)

	balance, err := s.host.Balance(args.Address, args.Denom)
	reply.Balance = cjson.Uint64(balance)
	return err
}
