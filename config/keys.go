// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey       = "config-file"
	LogLevelKey         = "log-level"
	LogDisplayLevelKey  = "log-display-level"
	LogDirKey           = "log-dir"
	LogMaxSizeKey       = "log-rotater-max-size"
	LogMaxFilesKey      = "log-rotater-max-files"
	LogMaxAgeKey        = "log-rotater-max-age"
	LogCompressKey      = "log-rotater-compress-enabled"
	DBTypeKey           = "db-type"
	DBDirKey            = "db-dir"
	HTTPHostKey         = "http-host"
	HTTPPortKey         = "http-port"
	HRPKey              = "hrp"
	ContractKey         = "contract"
	MetricsNamespaceKey = "metrics-namespace"
	EVMRPCKey           = "evm-rpc"
)
