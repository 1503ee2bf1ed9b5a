// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/message"
	"github.com/ava-labs/lighthouse/state"
	"github.com/ava-labs/lighthouse/txs"
)

const (
	testHRP   = "sei"
	testDenom = "usei"
	testFee   = 10
)

var (
	admin    = testAddress(0x01, 20)
	creator  = testAddress(0x02, 20)
	alice    = testAddress(0x03, 20)
	bob      = testAddress(0x04, 20)
	partner  = testAddress(0x05, 20)
	treasury = testAddress(0x06, 20)

	launchpad   = testAddress(0x10, 32)
	nftContract = testAddress(0x20, 32)
	payToken    = testAddress(0x21, 32)
)

func testAddress(b byte, length int) string {
	addr, err := evm.FormatBech32(testHRP, bytes.Repeat([]byte{b}, length))
	if err != nil {
		panic(err)
	}
	return addr
}

type testEnv struct {
	t             *testing.T
	db            *memdb.Database
	backend       *Backend
	addressOracle *evm.MockAddressOracle
	roleOracle    *evm.MockRoleOracle
	time          uint64
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	addressOracle := evm.NewMockAddressOracle(ctrl)
	roleOracle := evm.NewMockRoleOracle(ctrl)
	return &testEnv{
		t:  t,
		db: memdb.New(),
		backend: &Backend{
			Log:           logging.NoLog{},
			HRP:           testHRP,
			AddressOracle: addressOracle,
			RoleOracle:    roleOracle,
		},
		addressOracle: addressOracle,
		roleOracle:    roleOracle,
	}
}

func (env *testEnv) newExecutor(db *versiondb.Database, sender string, funds []message.Coin) *Executor {
	return &Executor{
		Backend: env.backend,
		State:   db,
		Env: Env{
			Sender:   sender,
			Contract: launchpad,
			Time:     env.time,
			Funds:    funds,
		},
	}
}

// execute runs [tx] atomically, the way the host does.
func (env *testEnv) execute(sender string, funds []message.Coin, tx txs.Tx) (message.Response, error) {
	db := versiondb.New(env.db)
	e := env.newExecutor(db, sender, funds)
	if err := tx.Visit(e); err != nil {
		db.Abort()
		return message.Response{}, err
	}
	require.NoError(env.t, db.Commit())
	return e.Response, nil
}

func (env *testEnv) reply(replyID uint64, address string) (message.Response, error) {
	db := versiondb.New(env.db)
	e := env.newExecutor(db, "", nil)
	if err := e.Reply(replyID, address); err != nil {
		db.Abort()
		return message.Response{}, err
	}
	require.NoError(env.t, db.Commit())
	return e.Response, nil
}

func (env *testEnv) initialize(registrationOpen bool) {
	_, err := env.execute(admin, nil, &txs.Instantiate{
		Fee:              testFee,
		Denom:            testDenom,
		RegistrationOpen: registrationOpen,
	})
	require.NoError(env.t, err)
}

func (env *testEnv) putCollection(c *state.Collection) {
	require.NoError(env.t, state.SetCollection(env.db, c.Address, c))
}

func (env *testEnv) getCollection(address string) *state.Collection {
	c, err := state.GetCollection(env.db, address)
	require.NoError(env.t, err)
	return c
}

func (env *testEnv) config() *state.Config {
	config, err := state.GetConfig(env.db)
	require.NoError(env.t, err)
	return config
}

func coins(amount uint64) []message.Coin {
	return []message.Coin{{
		Denom:  testDenom,
		Amount: amount,
	}}
}

func decodeExecute(t *testing.T, msg message.Message, contract string, dst interface{}) {
	execute, ok := msg.(*message.WasmExecute)
	require.True(t, ok, "expected a wasm execute but got %T", msg)
	require.Equal(t, contract, execute.Contract)
	require.NoError(t, json.Unmarshal(execute.Msg, dst))
}

func requireBankSend(t *testing.T, msg message.Message, to string, amount uint64) {
	send, ok := msg.(*message.BankSend)
	require.True(t, ok, "expected a bank send but got %T", msg)
	require.Equal(t, to, send.To)
	require.Equal(t, coins(amount), send.Amount)
}

func TestInstantiate(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)

	_, err := env.execute(admin, nil, &txs.UpdateConfig{Fee: 1})
	require.ErrorIs(err, ErrNotInitialized)

	resp, err := env.execute(admin, nil, &txs.Instantiate{
		Fee:              testFee,
		Denom:            testDenom,
		RegistrationOpen: true,
	})
	require.NoError(err)
	value, ok := resp.Attribute("admin")
	require.True(ok)
	require.Equal(admin, value)

	require.Equal(&state.Config{
		Admin:            admin,
		Fee:              testFee,
		Denom:            testDenom,
		RegistrationOpen: true,
	}, env.config())

	_, err = env.execute(alice, nil, &txs.Instantiate{Fee: 1, Denom: testDenom})
	require.ErrorIs(err, ErrAlreadyInitialized)
	require.Equal(admin, env.config().Admin)
}

func TestInstantiateInvalidSender(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.execute("cosmos1notours", nil, &txs.Instantiate{Denom: testDenom})
	require.ErrorIs(t, err, evm.ErrInvalidAddress)
}

func TestUpdateConfig(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.initialize(true)

	_, err := env.execute(alice, nil, &txs.UpdateConfig{Fee: 1})
	require.ErrorIs(err, ErrUnauthorized)

	_, err = env.execute(admin, nil, &txs.UpdateConfig{
		Fee:              25,
		RegistrationOpen: false,
	})
	require.NoError(err)

	config := env.config()
	require.Equal(uint64(25), config.Fee)
	require.False(config.RegistrationOpen)
	require.Equal(testDenom, config.Denom)
}

func TestAddPartner(t *testing.T) {
	tests := []struct {
		name        string
		sender      string
		tx          *txs.AddPartner
		expectedErr error
	}{
		{
			name:   "valid",
			sender: admin,
			tx: &txs.AddPartner{
				Address:    partner,
				FeePercent: 30,
			},
		},
		{
			name:   "max share",
			sender: admin,
			tx: &txs.AddPartner{
				Address:    partner,
				FeePercent: MaxPartnerFeePercent,
			},
		},
		{
			name:   "not the platform admin",
			sender: alice,
			tx: &txs.AddPartner{
				Address:    partner,
				FeePercent: 30,
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name:   "share too large",
			sender: admin,
			tx: &txs.AddPartner{
				Address:    partner,
				FeePercent: 100,
			},
			expectedErr: ErrInvalidShares,
		},
		{
			name:   "invalid address",
			sender: admin,
			tx: &txs.AddPartner{
				Address:    "partner",
				FeePercent: 30,
			},
			expectedErr: evm.ErrInvalidAddress,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			env := newTestEnv(t)
			env.initialize(true)

			_, err := env.execute(test.sender, nil, test.tx)
			require.ErrorIs(err, test.expectedErr)

			exists, err := state.HasPartner(env.db, test.tx.Address)
			require.NoError(err)
			require.Equal(test.expectedErr == nil, exists)
			if test.expectedErr != nil {
				return
			}

			p, err := state.GetPartner(env.db, test.tx.Address)
			require.NoError(err)
			require.Equal(test.tx.FeePercent, p.FeePercent)
		})
	}
}
