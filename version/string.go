// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// String returns the version line printed by the binary.
func String(commit string) string {
	format := "%s/%s [database=%s"
	args := []interface{}{
		Name,
		Current,
		CurrentDatabase,
	}

	if commit != "" {
		format += ", commit=%s"
		args = append(args, commit)
	}
	format += "]"
	return fmt.Sprintf(format, args...)
}
