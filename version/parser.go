// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
	"strconv"
	"strings"
)

func Parse(s string) (*Semantic, error) {
	if !strings.HasPrefix(s, "v") {
		return nil, fmt.Errorf("version string %q missing required prefix", s)
	}

	splitVersion := strings.SplitN(s[1:], ".", 3)
	if len(splitVersion) != 3 {
		return nil, fmt.Errorf("failed to parse %s as a version", s)
	}

	numbers := make([]int, len(splitVersion))
	for i, str := range splitVersion {
		n, err := strconv.Atoi(str)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s as a version: %w", s, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("failed to parse %s as a version: negative number", s)
		}
		numbers[i] = n
	}

	return &Semantic{
		Major: numbers[0],
		Minor: numbers[1],
		Patch: numbers[2],
	}, nil
}
