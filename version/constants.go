// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

// Name is the name of the binary and the default metrics namespace.
const Name = "lighthouse"

var (
	Current = &Semantic{
		Major: 0,
		Minor: 4,
		Patch: 0,
	}

	// CurrentDatabase is the layout of the persisted launchpad state.
	CurrentDatabase = &Semantic{
		Major: 1,
		Minor: 0,
		Patch: 0,
	}
)
