// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package message defines the messages emitted by the launchpad. The host
// executes them after the call that emitted them succeeded.
package message

import "strconv"

var (
	_ Message = (*BankSend)(nil)
	_ Message = (*WasmExecute)(nil)
	_ Message = (*WasmInstantiate)(nil)
	_ Message = (*WasmUpdateAdmin)(nil)
	_ Message = (*EVMCall)(nil)
)

type Coin struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

func (c Coin) String() string {
	return strconv.FormatUint(c.Amount, 10) + c.Denom
}

// Message is an outbound instruction. The set of messages is closed.
type Message interface {
	isMessage()
}

// BankSend transfers native coins held by the launchpad to [To].
type BankSend struct {
	To     string `json:"to"`
	Amount []Coin `json:"amount"`
}

// WasmExecute calls [Contract] with the JSON encoded [Msg].
type WasmExecute struct {
	Contract string `json:"contract"`
	Msg      []byte `json:"msg"`
	Funds    []Coin `json:"funds"`
}

// WasmInstantiate creates a new contract from [CodeID]. Once the contract
// exists, the host reports its address back with [ReplyID].
type WasmInstantiate struct {
	CodeID  uint64 `json:"codeID"`
	Msg     []byte `json:"msg"`
	Admin   string `json:"admin"`
	Label   string `json:"label"`
	ReplyID uint64 `json:"replyID"`
}

// WasmUpdateAdmin changes the migration admin of [Contract].
type WasmUpdateAdmin struct {
	Contract string `json:"contract"`
	Admin    string `json:"admin"`
}

// EVMCall sends [Data] to the EVM contract at [To].
type EVMCall struct {
	To    string `json:"to"`
	Value uint64 `json:"value"`
	Data  []byte `json:"data"`
}

func (*BankSend) isMessage()        {}
func (*WasmExecute) isMessage()     {}
func (*WasmInstantiate) isMessage() {}
func (*WasmUpdateAdmin) isMessage() {}
func (*EVMCall) isMessage()         {}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response collects everything a successful call emits.
type Response struct {
	Messages   []Message   `json:"messages"`
	Attributes []Attribute `json:"attributes"`
}

func (r *Response) AddMessage(msg Message) {
	r.Messages = append(r.Messages, msg)
}

func (r *Response) AddAttribute(key, value string) {
	r.Attributes = append(r.Attributes, Attribute{
		Key:   key,
		Value: value,
	})
}

// Attribute returns the first value recorded for [key].
func (r *Response) Attribute(key string) (string, bool) {
	for _, attr := range r.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}
