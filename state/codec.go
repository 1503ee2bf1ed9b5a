// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"math"

	"github.com/ava-labs/avalanchego/codec"
	"github.com/ava-labs/avalanchego/codec/linearcodec"
)

// CodecVersion is the current default codec version
const CodecVersion = 0

// Codec serializes every record kept in the launchpad database.
var Codec codec.Manager

func init() {
	// Mint histories of unlimited groups grow without bound.
	c := linearcodec.NewCustomMaxLength(math.MaxInt32)
	Codec = codec.NewManager(math.MaxInt32)

	if err := Codec.RegisterCodec(CodecVersion, c); err != nil {
		panic(err)
	}
}

func marshal(v interface{}) ([]byte, error) {
	return Codec.Marshal(CodecVersion, v)
}

func unmarshal(b []byte, v interface{}) error {
	_, err := Codec.Unmarshal(b, v)
	return err
}
