// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"sync"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/lighthouse/evm"
)

var (
	_ evm.AddressOracle = (*Associations)(nil)
	_ evm.RoleOracle    = (*Roles)(nil)
)

// Associations is an in-memory registry of native <-> EVM address pairs.
type Associations struct {
	lock     sync.RWMutex
	toEVM    map[string]ethcommon.Address
	toNative map[ethcommon.Address]string
}

func NewAssociations() *Associations {
	return &Associations{
		toEVM:    make(map[string]ethcommon.Address),
		toNative: make(map[ethcommon.Address]string),
	}
}

// Associate links [native] and [addr], replacing any previous association of
// either address.
func (a *Associations) Associate(native string, addr ethcommon.Address) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if old, ok := a.toEVM[native]; ok {
		delete(a.toNative, old)
	}
	if old, ok := a.toNative[addr]; ok {
		delete(a.toEVM, old)
	}
	a.toEVM[native] = addr
	a.toNative[addr] = native
}

func (a *Associations) EVMAddress(native string) (ethcommon.Address, bool, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()

	addr, ok := a.toEVM[native]
	return addr, ok, nil
}

func (a *Associations) NativeAddress(addr ethcommon.Address) (string, bool, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()

	native, ok := a.toNative[addr]
	return native, ok, nil
}

// Roles is an in-memory view of the access control of EVM token contracts.
type Roles struct {
	lock  sync.RWMutex
	roles map[ethcommon.Address]map[ethcommon.Hash]set.Set[ethcommon.Address]
}

func NewRoles() *Roles {
	return &Roles{
		roles: make(map[ethcommon.Address]map[ethcommon.Hash]set.Set[ethcommon.Address]),
	}
}

func (r *Roles) Grant(contract ethcommon.Address, role ethcommon.Hash, account ethcommon.Address) {
	r.lock.Lock()
	defer r.lock.Unlock()

	contractRoles, ok := r.roles[contract]
	if !ok {
		contractRoles = make(map[ethcommon.Hash]set.Set[ethcommon.Address])
		r.roles[contract] = contractRoles
	}
	accounts := contractRoles[role]
	accounts.Add(account)
	contractRoles[role] = accounts
}

func (r *Roles) Revoke(contract ethcommon.Address, role ethcommon.Hash, account ethcommon.Address) {
	r.lock.Lock()
	defer r.lock.Unlock()

	accounts := r.roles[contract][role]
	accounts.Remove(account)
}

func (r *Roles) HasRole(contract, account ethcommon.Address, role ethcommon.Hash) (bool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	accounts := r.roles[contract][role]
	return accounts.Contains(account), nil
}
