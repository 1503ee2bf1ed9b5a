// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ava-labs/lighthouse/version"
)

const (
	LevelDBName = "leveldb"
	MemDBName   = "memdb"

	defaultLogLevel = "info"
)

var (
	homeDir        = os.ExpandEnv("$HOME")
	defaultDataDir = filepath.Join(homeDir, "."+version.Name)
	defaultDBDir   = filepath.Join(defaultDataDir, "db")
	defaultLogDir  = filepath.Join(defaultDataDir, "logs")
)

// AddFlags registers every configuration flag on [fs].
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a config file")

	// Logging
	fs.String(LogLevelKey, defaultLogLevel, "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level")
	fs.String(LogDirKey, defaultLogDir, "Logging directory")
	fs.Int(LogMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Int(LogMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Int(LogMaxAgeKey, 0, "The maximum number of days to retain old log files. 0 means retain all old log files")
	fs.Bool(LogCompressKey, false, "If true, compress rotated log files")

	// Database
	fs.String(DBTypeKey, LevelDBName, "Database type to use. Should be one of {leveldb, memdb}")
	fs.String(DBDirKey, defaultDBDir, "Path to database directory")

	// HTTP API
	fs.String(HTTPHostKey, "127.0.0.1", "Address of the HTTP server")
	fs.Uint(HTTPPortKey, 9750, "Port of the HTTP server")

	// Launchpad
	fs.String(HRPKey, "sei", "Human readable part of native addresses")
	fs.String(ContractKey, "", "Native address of the launchpad contract")
	fs.String(MetricsNamespaceKey, version.Name, "Namespace of the exported metrics")
	fs.String(EVMRPCKey, "", "URI of an EVM node to read token contract roles from. If empty, roles are kept in memory")
}
