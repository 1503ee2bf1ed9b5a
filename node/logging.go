// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/lighthouse/config"
	"github.com/ava-labs/lighthouse/version"
)

type nopCloser struct {
	*os.File
}

func (nopCloser) Close() error { return nil }

// NewLogger returns a logger that writes JSON lines to a rotating file in
// the configured directory and human readable lines to stdout.
func NewLogger(config config.LoggingConfig) logging.Logger {
	displayCore := logging.NewWrappedCore(
		config.DisplayLevel,
		nopCloser{File: os.Stdout},
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
	)
	fileCore := logging.NewWrappedCore(
		config.LogLevel,
		&lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, version.Name+".log"),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		},
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	)
	return logging.NewLogger("", displayCore, fileCore)
}
