// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/spf13/cobra"

	"github.com/ava-labs/lighthouse/merkle"
)

const (
	addressesFileKey = "addresses-file"
	addressKey       = "address"
)

var errAddressNotListed = errors.New("address not in allowlist")

type proofOutput struct {
	Root  hexutil.Bytes   `json:"root"`
	Proof []hexutil.Bytes `json:"proof"`
}

func proofCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "proof",
		Short: "Computes the allowlist root and the inclusion proof of an address",
		RunE:  proofFunc,
	}
	flags := c.Flags()
	flags.String(addressesFileKey, "", "File with one allowlisted address per line")
	flags.String(addressKey, "", "Address to prove. If empty, only the root is printed")
	return c
}

func proofFunc(c *cobra.Command, _ []string) error {
	flags := c.Flags()
	addressesFile, err := flags.GetString(addressesFileKey)
	if err != nil {
		return err
	}
	address, err := flags.GetString(addressKey)
	if err != nil {
		return err
	}

	f, err := os.Open(addressesFile)
	if err != nil {
		return err
	}
	defer f.Close()

	addresses, err := readAddresses(f)
	if err != nil {
		return err
	}
	output, err := buildProof(addresses, address)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func readAddresses(r io.Reader) ([]string, error) {
	var addresses []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addresses = append(addresses, line)
	}
	return addresses, scanner.Err()
}

func buildProof(addresses []string, address string) (*proofOutput, error) {
	tree, err := merkle.NewTree(addresses)
	if err != nil {
		return nil, err
	}
	output := &proofOutput{
		Root: tree.Root(),
	}
	if address == "" {
		return output, nil
	}

	for i, listed := range addresses {
		if listed != address {
			continue
		}
		proof, err := tree.Proof(i)
		if err != nil {
			return nil, err
		}
		output.Proof = make([]hexutil.Bytes, len(proof))
		for j, sibling := range proof {
			output.Proof[j] = sibling
		}
		return output, nil
	}
	return nil, fmt.Errorf("%w: %s", errAddressNotListed, address)
}
