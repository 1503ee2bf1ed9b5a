// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package node runs the launchpad host behind its HTTP APIs.
package node

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/gorilla/mux"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/api/health"
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/lighthouse/api"
	"github.com/ava-labs/lighthouse/config"
	"github.com/ava-labs/lighthouse/evm"
	"github.com/ava-labs/lighthouse/host"
	"github.com/ava-labs/lighthouse/metrics"
	"github.com/ava-labs/lighthouse/version"
)

const (
	MetricsEndpoint = "/ext/metrics"
	HealthEndpoint  = "/ext/health"

	healthCheckFreq = 30 * time.Second

	roleQueryTimeout  = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Node is a running launchpad host.
type Node struct {
	Log    logging.Logger
	Config config.Config

	DB           database.Database
	Registry     *prometheus.Registry
	Host         *host.Host
	Associations *host.Associations
	// Roles is nil when role queries are sent to an EVM node.
	Roles *host.Roles

	evmClient *ethclient.Client
	health    health.Health
	router    *mux.Router
	server    *http.Server
}

// New initializes every component of the node without serving requests.
func New(config config.Config, log logging.Logger) (*Node, error) {
	n := &Node{
		Log:      log,
		Config:   config,
		Registry: prometheus.NewRegistry(),
		router:   mux.NewRouter(),
	}

	if err := n.initDatabase(); err != nil {
		return nil, fmt.Errorf("problem initializing database: %w", err)
	}
	roleOracle, err := n.initRoleOracle()
	if err != nil {
		n.closeDatabase()
		return nil, fmt.Errorf("problem initializing role oracle: %w", err)
	}
	if err := n.initHost(roleOracle); err != nil {
		n.closeDatabase()
		return nil, fmt.Errorf("problem initializing host: %w", err)
	}
	if err := n.initHealth(); err != nil {
		n.closeDatabase()
		return nil, fmt.Errorf("problem initializing health checks: %w", err)
	}
	if err := n.initAPIServer(); err != nil {
		n.closeDatabase()
		return nil, fmt.Errorf("problem initializing API server: %w", err)
	}
	n.health.Start(context.Background(), healthCheckFreq)
	return n, nil
}

func (n *Node) initDatabase() error {
	switch n.Config.DBType {
	case config.LevelDBName:
		db, err := leveldb.New(n.Config.DBDir, nil, n.Log, "db", n.Registry)
		if err != nil {
			return err
		}
		n.DB = db
	case config.MemDBName:
		n.DB = memdb.New()
	default:
		return fmt.Errorf("unknown db type %q", n.Config.DBType)
	}

	n.Log.Info("initialized database",
		zap.String("type", n.Config.DBType),
		zap.String("path", n.Config.DBDir),
	)
	return nil
}

func (n *Node) initRoleOracle() (evm.RoleOracle, error) {
	if n.Config.EVMRPC == "" {
		n.Log.Info("keeping token contract roles in memory")
		n.Roles = host.NewRoles()
		return n.Roles, nil
	}

	client, err := ethclient.Dial(n.Config.EVMRPC)
	if err != nil {
		return nil, err
	}
	n.evmClient = client
	n.Log.Info("reading token contract roles from EVM node",
		zap.String("uri", n.Config.EVMRPC),
	)
	return &evm.CallerRoleOracle{
		Caller:  client,
		Timeout: roleQueryTimeout,
	}, nil
}

func (n *Node) initHost(roleOracle evm.RoleOracle) error {
	m, err := metrics.New(n.Config.MetricsNamespace, n.Registry)
	if err != nil {
		return err
	}

	n.Associations = host.NewAssociations()
	n.Host = host.New(
		host.Config{
			HRP:      n.Config.HRP,
			Contract: n.Config.Contract,
		},
		n.DB,
		n.Log,
		&mockable.Clock{},
		m,
		n.Associations,
		roleOracle,
	)
	return nil
}

func (n *Node) initHealth() error {
	h, err := health.New(n.Log, n.Registry)
	if err != nil {
		return err
	}
	n.health = h

	if err := h.RegisterHealthCheck("database", n.DB); err != nil {
		return err
	}
	if n.evmClient == nil {
		return nil
	}
	return h.RegisterHealthCheck("evm", health.CheckerFunc(func(ctx context.Context) (interface{}, error) {
		chainID, err := n.evmClient.ChainID(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]string{"chainID": chainID.String()}, nil
	}))
}

func (n *Node) initAPIServer() error {
	n.Log.Info("initializing API server")

	handler, err := api.NewHandler(n.Log, n.Host)
	if err != nil {
		return err
	}
	n.router.Handle(api.Endpoint, handler)
	n.router.Handle(MetricsEndpoint, promhttp.HandlerFor(n.Registry, promhttp.HandlerOpts{}))

	healthHandler, err := health.NewGetAndPostHandler(n.Log, n.health)
	if err != nil {
		return err
	}
	n.router.Handle(HealthEndpoint, healthHandler)

	n.server = &http.Server{
		Addr:              net.JoinHostPort(n.Config.HTTPHost, strconv.Itoa(int(n.Config.HTTPPort))),
		Handler:           n.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return nil
}

// Handler returns the router serving every API of the node.
func (n *Node) Handler() http.Handler {
	return n.router
}

// Dispatch serves HTTP requests. Returns when the node is shut down.
func (n *Node) Dispatch() error {
	n.Log.Info("starting API server",
		zap.String("version", version.Current.String()),
		zap.String("address", n.server.Addr),
	)
	err := n.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops serving requests and closes the database.
func (n *Node) Shutdown(ctx context.Context) error {
	n.Log.Info("shutting down the node")

	n.health.Stop()

	errs := wrappers.Errs{}
	errs.Add(n.server.Shutdown(ctx))
	if n.evmClient != nil {
		n.evmClient.Close()
	}
	errs.Add(n.DB.Close())
	return errs.Err
}

func (n *Node) closeDatabase() {
	if err := n.DB.Close(); err != nil {
		n.Log.Warn("failed to close database", zap.Error(err))
	}
}
