// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package merkle implements the keccak256 sorted-pair merkle trees used to
// gate allowlisted mint groups.
package merkle

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
)

// HashLen is the length of every node in a tree.
const HashLen = 32

var (
	ErrNoLeaves          = errors.New("tree must contain at least one leaf")
	ErrIndexOutOfBounds  = errors.New("leaf index out of bounds")
	errInvalidNodeLength = errors.New("invalid node length")
)

// Leaf returns the leaf committed to for [address].
func Leaf(address string) []byte {
	return crypto.Keccak256([]byte(address))
}

// Hash combines two nodes, ordering the lexicographically smaller node
// first.
func Hash(a, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256(a, b)
}

// Verify returns true if [proof] proves that [leaf] is committed to by
// [root].
func Verify(root, leaf []byte, proof [][]byte) bool {
	if len(root) != HashLen || len(leaf) != HashLen {
		return false
	}
	node := leaf
	for _, sibling := range proof {
		if len(sibling) != HashLen {
			return false
		}
		node = Hash(node, sibling)
	}
	return bytes.Equal(node, root)
}

// VerifyAddress returns true if [proof] proves that [address] is committed
// to by [root].
func VerifyAddress(root []byte, address string, proof [][]byte) bool {
	return Verify(root, Leaf(address), proof)
}

// ValidateRoot returns an error if [root] can't be the root of a tree.
func ValidateRoot(root []byte) error {
	if len(root) != HashLen {
		return errInvalidNodeLength
	}
	return nil
}
