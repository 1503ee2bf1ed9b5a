// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"
	"encoding/json"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/avalanchego/utils/rpc"

	cjson "github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

// Endpoint is the path the service is served under.
const Endpoint = "/ext/lighthouse"

var _ Client = (*client)(nil)

// Client interface for the launchpad API
type Client interface {
	IssueTx(ctx context.Context, sender string, funds []message.Coin, txType string, tx txs.Tx, options ...rpc.Option) (*IssueTxReply, error)
	GetConfig(context.Context, ...rpc.Option) (*state.Config, error)
	GetCollection(ctx context.Context, collection string, options ...rpc.Option) (*state.Collection, error)
	GetCollections(ctx context.Context, startAfter string, limit int, options ...rpc.Option) ([]*state.Collection, error)
	MintsOf(ctx context.Context, address, collection string, options ...rpc.Option) ([]uint64, error)
	GetMinterOf(ctx context.Context, collection, group string, tokenID uint64, options ...rpc.Option) (string, error)
	GetGlobalMintInfo(ctx context.Context, collection, group string, options ...rpc.Option) (uint64, error)
	GetEVMAddress(ctx context.Context, address string, options ...rpc.Option) (ethcommon.Address, error)
	GetNativeAddress(ctx context.Context, address ethcommon.Address, options ...rpc.Option) (string, error)
	GetBalance(ctx context.Context, address, denom string, options ...rpc.Option) (uint64, error)
}

// Client implementation for the launchpad API
type client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a new launchpad API client
func NewClient(uri string) Client {
	return &client{requester: rpc.NewEndpointRequester(
		uri + Endpoint,
	)}
}

func (c *client) IssueTx(ctx context.Context, sender string, funds []message.Coin, txType string, tx txs.Tx, options ...rpc.Option) (*IssueTxReply, error) {
	txBytes, err := json.Marshal(tx)
	if err != nil {
		return nil, err
	}
	res := &IssueTxReply{}
	err = c.requester.SendRequest(ctx, "lighthouse.issueTx", &IssueTxArgs{
		Sender: sender,
		Funds:  funds,
		TxType: txType,
		Tx:     txBytes,
	}, res, options...)
	return res, err
}

func (c *client) GetConfig(ctx context.Context, options ...rpc.Option) (*state.Config, error) {
	res := &state.Config{}
	err := c.requester.SendRequest(ctx, "lighthouse.getConfig", struct{}{}, res, options...)
	return res, err
}

func (c *client) GetCollection(ctx context.Context, collection string, options ...rpc.Option) (*state.Collection, error) {
	res := &state.Collection{}
	err := c.requester.SendRequest(ctx, "lighthouse.getCollection", &CollectionArgs{
		Collection: collection,
	}, res, options...)
	return res, err
}

func (c *client) GetCollections(ctx context.Context, startAfter string, limit int, options ...rpc.Option) ([]*state.Collection, error) {
	res := &GetCollectionsReply{}
	err := c.requester.SendRequest(ctx, "lighthouse.getCollections", &GetCollectionsArgs{
		StartAfter: startAfter,
		Limit:      limit,
	}, res, options...)
	return res.Collections, err
}

func (c *client) MintsOf(ctx context.Context, address, collection string, options ...rpc.Option) ([]uint64, error) {
	res := &state.MintInfo{}
	err := c.requester.SendRequest(ctx, "lighthouse.mintsOf", &MintsOfArgs{
		Address:    address,
		Collection: collection,
	}, res, options...)
	return res.Mints, err
}

func (c *client) GetMinterOf(ctx context.Context, collection, group string, tokenID uint64, options ...rpc.Option) (string, error) {
	res := &AddressReply{}
	err := c.requester.SendRequest(ctx, "lighthouse.getMinterOf", &GetMinterOfArgs{
		Collection: collection,
		Group:      group,
		TokenID:    cjson.Uint64(tokenID),
	}, res, options...)
	return res.Address, err
}

func (c *client) GetGlobalMintInfo(ctx context.Context, collection, group string, options ...rpc.Option) (uint64, error) {
	res := &GetGlobalMintInfoReply{}
	err := c.requester.SendRequest(ctx, "lighthouse.getGlobalMintInfo", &GetGlobalMintInfoArgs{
		Collection: collection,
		Group:      group,
	}, res, options...)
	return uint64(res.Minted), err
}

func (c *client) GetEVMAddress(ctx context.Context, address string, options ...rpc.Option) (ethcommon.Address, error) {
	res := &AddressReply{}
	err := c.requester.SendRequest(ctx, "lighthouse.getEVMAddress", &AddressArgs{
		Address: address,
	}, res, options...)
	if err != nil {
		return ethcommon.Address{}, err
	}
	return evm.ParseHex(res.Address)
}

func (c *client) GetNativeAddress(ctx context.Context, address ethcommon.Address, options ...rpc.Option) (string, error) {
	res := &AddressReply{}
	err := c.requester.SendRequest(ctx, "lighthouse.getNativeAddress", &AddressArgs{
		Address: evm.Lower(address),
	}, res, options...)
	return res.Address, err
}

func (c *client) GetBalance(ctx context.Context, address, denom string, options ...rpc.Option) (uint64, error) {
	res := &GetBalanceReply{}
	err := c.requester.SendRequest(ctx, "lighthouse.getBalance", &GetBalanceArgs{
		Address: address,
		Denom:   denom,
	}, res, options...)
	return uint64(res.Balance), err
}
