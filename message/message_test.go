// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWasmExecute(t *testing.T) {
	tests := []struct {
		name     string
		msg      interface{}
		expected string
	}{
		{
			name: "transfer from",
			msg: &TokenExecute{
				TransferFrom: &TransferFrom{
					Owner:     "sei1owner",
					Recipient: "sei1recipient",
					Amount:    10,
				},
			},
			expected: `{"transfer_from":{"owner":"sei1owner","recipient":"sei1recipient","amount":"10"}}`,
		},
		{
			name: "burn from",
			msg: &TokenExecute{
				BurnFrom: &BurnFrom{
					Owner:  "sei1owner",
					Amount: 3,
				},
			},
			expected: `{"burn_from":{"owner":"sei1owner","amount":"3"}}`,
		},
		{
			name: "nft mint",
			msg: &NFTExecute{
				Mint: &NFTMint{
					TokenID: "7",
					Owner:   "sei1owner",
				},
			},
			expected: `{"mint":{"token_id":"7","owner":"sei1owner","token_uri":null,"extension":{}}}`,
		},
		{
			name: "nft unfreeze",
			msg: &NFTExecute{
				Extension: &NFTExtension{
					Msg: NFTExtensionMsg{
						Unfreeze: &Empty{},
					},
				},
			},
			expected: `{"extension":{"msg":{"unfreeze":{}}}}`,
		},
		{
			name: "fungible mint",
			msg: &FungibleExecute{
				Mint: &FungibleMint{
					Recipient: "sei1owner",
					Amount:    100,
				},
			},
			expected: `{"mint":{"recipient":"sei1owner","amount":"100"}}`,
		},
		{
			name: "transfer ownership",
			msg: &NFTExecute{
				UpdateOwnership: &UpdateOwnership{
					TransferOwnership: &TransferOwnership{
						NewOwner: "sei1new",
					},
				},
			},
			expected: `{"update_ownership":{"transfer_ownership":{"new_owner":"sei1new","expiry":null}}}`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			msg, err := NewWasmExecute("sei1contract", test.msg)
			require.NoError(err)
			require.Equal("sei1contract", msg.Contract)
			require.JSONEq(test.expected, string(msg.Msg))
			require.Empty(msg.Funds)
		})
	}
}

func TestResponse(t *testing.T) {
	require := require.New(t)

	var resp Response
	resp.AddMessage(&BankSend{
		To:     "sei1admin",
		Amount: []Coin{{Denom: "usei", Amount: 5}},
	})
	resp.AddAttribute("action", "mint")
	resp.AddAttribute("action", "ignored")

	require.Len(resp.Messages, 1)
	value, ok := resp.Attribute("action")
	require.True(ok)
	require.Equal("mint", value)

	_, ok = resp.Attribute("missing")
	require.False(ok)

	require.Equal("5usei", Coin{Denom: "usei", Amount: 5}.String())
}
