// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/host"
	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/metrics"
	"github.com/ava-labs/lighthouse/query"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

const (
	testHRP   = "sei"
	testDenom = "usei"
)

var (
	admin     = testAddress(0x01, 20)
	creator   = testAddress(0x02, 20)
	alice     = testAddress(0x03, 20)
	launchpad = testAddress(0x10, 32)

	aliceEVM = ethcommon.HexToAddress("0x0000000000000000000000000000000000000a11")
)

func testAddress(b byte, length int) string {
	addr, err := evm.FormatBech32(testHRP, bytes.Repeat([]byte{b}, length))
	if err != nil {
		panic(err)
	}
	return addr
}

func marshal(t *testing.T, v interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

var errWriteFailed = errors.New("write failed")

// failingDB fails the [failAt]th batch written to it.
type failingDB struct {
	database.Database
	writes int
	failAt int
}

func (db *failingDB) NewBatch() database.Batch {
	return &failingBatch{
		Batch: db.Database.NewBatch(),
		db:    db,
	}
}

type failingBatch struct {
	database.Batch
	db *failingDB
}

func (b *failingBatch) Write() error {
	b.db.writes++
	if b.db.writes == b.db.failAt {
		return errWriteFailed
	}
	return b.Batch.Write()
}

func newService(t *testing.T) (*Service, *host.Associations) {
	return newServiceWithDB(t, memdb.New())
}

func newServiceWithDB(t *testing.T, db database.Database) (*Service, *host.Associations) {
	require := require.New(t)

	clock := &mockable.Clock{}
	clock.Set(time.Unix(100, 0))

	associations := host.NewAssociations()
	h := host.New(
		host.Config{
			HRP:      testHRP,
			Contract: launchpad,
		},
		db,
		logging.NoLog{},
		clock,
		metrics.Noop,
		associations,
		host.NewRoles(),
	)
	s := &Service{
		log:  logging.NoLog{},
		host: h,
	}

	require.NoError(s.IssueTx(nil, &IssueTxArgs{
		Sender: admin,
		TxType: "instantiate",
		Tx: marshal(t, &txs.Instantiate{
			Fee:              5,
			Denom:            testDenom,
			RegistrationOpen: true,
		}),
	}, &IssueTxReply{}))
	return s, associations
}

func TestServiceMint(t *testing.T) {
	require := require.New(t)
	s, _ := newService(t)

	config := &state.Config{}
	require.NoError(s.GetConfig(nil, &struct{}{}, config))
	require.Equal(admin, config.Admin)
	require.Equal(uint64(5), config.Fee)

	reply := &IssueTxReply{}
	require.NoError(s.IssueTx(nil, &IssueTxArgs{
		Sender: creator,
		TxType: "registerCollection",
		Tx: marshal(t, &txs.RegisterCollection{
			Chain:    state.ChainNative,
			Standard: state.StandardUnique,
			CodeID:   3,
			Name:     "Lighthouse",
			Symbol:   "LH",
			Supply:   5,
			MintGroups: []state.MintGroup{{
				Name: "public",
				Payments: []state.Payment{{
					Kind:   state.PaymentNative,
					Amount: 20,
					Args:   []string{creator},
				}},
			}},
		}),
	}, reply))
	require.Len(reply.Instantiated, 1)
	collection := reply.Instantiated[0].Address

	c := &state.Collection{}
	require.NoError(s.GetCollection(nil, &CollectionArgs{Collection: collection}, c))
	require.Equal(collection, c.Address)
	require.Equal(creator, c.Admin)

	collections := &GetCollectionsReply{}
	require.NoError(s.GetCollections(nil, &GetCollectionsArgs{}, collections))
	require.Len(collections.Collections, 1)

	err := s.GetCollections(nil, &GetCollectionsArgs{Limit: -1}, collections)
	require.ErrorIs(err, query.ErrInvalidPageSize)

	require.NoError(s.host.Fund(alice, []message.Coin{{Denom: testDenom, Amount: 100}}))

	reply = &IssueTxReply{}
	require.NoError(s.IssueTx(nil, &IssueTxArgs{
		Sender: alice,
		Funds:  []message.Coin{{Denom: testDenom, Amount: 25}},
		TxType: "mint",
		Tx: marshal(t, &txs.Mint{
			Collection: collection,
			Group:      "public",
			Amount:     1,
		}),
	}, reply))
	require.Len(reply.Relayed, 1)
	require.Equal("wasmExecute", reply.Relayed[0].Type)

	execute := &message.WasmExecute{}
	require.NoError(json.Unmarshal(reply.Relayed[0].Body, execute))
	require.Equal(collection, execute.Contract)

	balance := &GetBalanceReply{}
	require.NoError(s.GetBalance(nil, &GetBalanceArgs{Address: alice, Denom: testDenom}, balance))
	require.Equal(uint64(75), uint64(balance.Balance))

	require.NoError(s.GetBalance(nil, &GetBalanceArgs{Address: creator, Denom: testDenom}, balance))
	require.Equal(uint64(20), uint64(balance.Balance))

	mints := &state.MintInfo{}
	require.NoError(s.MintsOf(nil, &MintsOfArgs{Address: alice, Collection: collection}, mints))
	require.Equal([]uint64{0}, mints.Mints)

	minter := &AddressReply{}
	require.NoError(s.GetMinterOf(nil, &GetMinterOfArgs{Collection: collection}, minter))
	require.Equal(alice, minter.Address)

	minted := &GetGlobalMintInfoReply{}
	require.NoError(s.GetGlobalMintInfo(nil, &GetGlobalMintInfoArgs{Collection: collection, Group: "public"}, minted))
	require.Equal(uint64(1), uint64(minted.Minted))
}

func TestServiceIssueTxErrors(t *testing.T) {
	require := require.New(t)
	s, _ := newService(t)

	err := s.IssueTx(nil, &IssueTxArgs{
		Sender: creator,
		TxType: "burn",
		Tx:     json.RawMessage(`{}`),
	}, &IssueTxReply{})
	require.ErrorIs(err, txs.ErrUnknownTxType)

	err = s.GetCollection(nil, &CollectionArgs{Collection: alice}, &state.Collection{})
	require.ErrorIs(err, query.ErrCollectionNotFound)
}

func TestServiceIssueTxReplyFailed(t *testing.T) {
	require := require.New(t)
	db := &failingDB{Database: memdb.New()}
	s, _ := newServiceWithDB(t, db)

	// The registration commits and the write of its reply fails.
	db.failAt = db.writes + 2
	reply := &IssueTxReply{}
	require.NoError(s.IssueTx(nil, &IssueTxArgs{
		Sender: creator,
		TxType: "registerCollection",
		Tx: marshal(t, &txs.RegisterCollection{
			Chain:      state.ChainNative,
			Standard:   state.StandardUnique,
			CodeID:     3,
			Name:       "Lighthouse",
			Symbol:     "LH",
			Supply:     5,
			MintGroups: []state.MintGroup{{Name: "public"}},
		}),
	}, reply))
	require.Contains(reply.ReplyError, host.ErrReplyFailed.Error())
	require.Contains(reply.ReplyError, errWriteFailed.Error())
	require.Len(reply.Instantiated, 1)
	require.NotEmpty(reply.Attributes)

	// The contract was instantiated but the collection was never registered.
	err := s.GetCollection(nil, &CollectionArgs{Collection: reply.Instantiated[0].Address}, &state.Collection{})
	require.ErrorIs(err, query.ErrCollectionNotFound)
}

func TestServiceAddresses(t *testing.T) {
	require := require.New(t)
	s, associations := newService(t)

	reply := &AddressReply{}
	err := s.GetEVMAddress(nil, &AddressArgs{Address: alice}, reply)
	require.ErrorIs(err, query.ErrAddressNotAssociated)

	associations.Associate(alice, aliceEVM)
	require.NoError(s.GetEVMAddress(nil, &AddressArgs{Address: alice}, reply))
	require.Equal(evm.Lower(aliceEVM), reply.Address)

	require.NoError(s.GetNativeAddress(nil, &AddressArgs{Address: evm.Lower(aliceEVM)}, reply))
	require.Equal(alice, reply.Address)

	err = s.GetNativeAddress(nil, &AddressArgs{Address: "a11"}, reply)
	require.ErrorIs(err, evm.ErrInvalidAddress)
}

func TestHandlerServesJSONRPC(t *testing.T) {
	require := require.New(t)
	s, _ := newService(t)

	handler, err := NewHandler(logging.NoLog{}, s.host)
	require.NoError(err)

	body := `{"jsonrpc":"2.0","id":1,"method":"lighthouse.getConfig","params":{}}`
	req := httptest.NewRequest(http.MethodPost, Endpoint, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(http.StatusOK, rec.Code)

	res := struct {
		Result state.Config `json:"result"`
	}{}
	require.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(admin, res.Result.Admin)
	require.Equal(testDenom, res.Result.Denom)
}
