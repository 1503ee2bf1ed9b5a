// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/lighthouse/evm"
)

const envPrefix = "LIGHTHOUSE"

var (
	errUnknownDBType   = errors.New("unknown db type")
	errMissingContract = errors.New("missing launchpad contract address")
)

type LoggingConfig struct {
	LogLevel     logging.Level
	DisplayLevel logging.Level
	Directory    string
	MaxSize      int
	MaxFiles     int
	MaxAge       int
	Compress     bool
}

type Config struct {
	Logging LoggingConfig

	DBType string
	DBDir  string

	HTTPHost string
	HTTPPort uint16

	HRP              string
	Contract         string
	MetricsNamespace string
	// EVMRPC is empty when roles are kept in memory.
	EVMRPC string
}

// BuildViper parses [args] with the flags registered on [fs] and returns a
// viper instance that reads flags, LIGHTHOUSE_ prefixed environment variables
// and the optional config file, in that order of precedence.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func getLoggingConfig(v *viper.Viper) (LoggingConfig, error) {
	config := LoggingConfig{
		Directory: v.GetString(LogDirKey),
		MaxSize:   v.GetInt(LogMaxSizeKey),
		MaxFiles:  v.GetInt(LogMaxFilesKey),
		MaxAge:    v.GetInt(LogMaxAgeKey),
		Compress:  v.GetBool(LogCompressKey),
	}

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return config, err
	}

	config.DisplayLevel = config.LogLevel
	if displayLevel := v.GetString(LogDisplayLevelKey); displayLevel != "" {
		config.DisplayLevel, err = logging.ToLevel(displayLevel)
		if err != nil {
			return config, err
		}
	}

	switch {
	case config.MaxSize < 0:
		return config, fmt.Errorf("%q must be non-negative", LogMaxSizeKey)
	case config.MaxFiles < 0:
		return config, fmt.Errorf("%q must be non-negative", LogMaxFilesKey)
	case config.MaxAge < 0:
		return config, fmt.Errorf("%q must be non-negative", LogMaxAgeKey)
	}
	return config, nil
}

// GetConfig reads the node configuration out of [v].
func GetConfig(v *viper.Viper) (Config, error) {
	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Logging:          loggingConfig,
		DBType:           v.GetString(DBTypeKey),
		DBDir:            v.GetString(DBDirKey),
		HTTPHost:         v.GetString(HTTPHostKey),
		HTTPPort:         uint16(v.GetUint(HTTPPortKey)),
		HRP:              v.GetString(HRPKey),
		Contract:         v.GetString(ContractKey),
		MetricsNamespace: v.GetString(MetricsNamespaceKey),
		EVMRPC:           v.GetString(EVMRPCKey),
	}

	switch config.DBType {
	case LevelDBName, MemDBName:
	default:
		return Config{}, fmt.Errorf("%w: %q", errUnknownDBType, config.DBType)
	}

	if config.Contract == "" {
		return Config{}, errMissingContract
	}
	if !evm.IsBech32(config.HRP, config.Contract) {
		return Config{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, config.Contract)
	}
	return config, nil
}
