// Package config defines the configuration structure for the threadpool CLI.
//
// Configuration is organized into logical sections (Pool, Demo, Server) and uses
// code generation via optgen to create functional option helpers. Defaults come
// from the `default` struct tags and are applied with creasty/defaults.
//
// # Configuration Structure
//
//	Configuration
//	├── Pool           - Worker pool settings
//	├── Demo           - Producer/consumer demo settings
//	├── Server         - HTTP status server settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Pool Configuration
//
//	┌──────────────────┬───────────┬────────────────────────────────────────┐
//	│ Field            │ Default   │ Description                            │
//	├──────────────────┼───────────┼────────────────────────────────────────┤
//	│ PoolName         │ "default" │ Name used in logs and status           │
//	│ NumWorkers       │ 4         │ Number of workers (must be positive)   │
//	│ LockOSThread     │ false     │ Pin each worker to an OS thread        │
//	│ MetricsNamespace │ "maxtek"  │ Prometheus namespace                   │
//	└──────────────────┴───────────┴────────────────────────────────────────┘
//
// # Demo Configuration
//
//	┌──────────────────┬─────────┬──────────────────────────────────────────┐
//	│ Field            │ Default │ Description                              │
//	├──────────────────┼─────────┼──────────────────────────────────────────┤
//	│ Producers        │ 2       │ Producer tasks                           │
//	│ Consumers        │ 2       │ Consumer tasks                           │
//	│ Items            │ 100     │ Items pushed by each producer            │
//	│ BufferSize       │ 10      │ Capacity of the shared buffer            │
//	│ MaxRetryInterval │ 50ms    │ Backoff cap on a full or empty buffer    │
//	│ DemoTimeout      │ 30s     │ Upper bound for a demo run               │
//	└──────────────────┴─────────┴──────────────────────────────────────────┘
//
// The demo submits every producer and consumer as a long-running task, so
// NumWorkers must be at least Producers + Consumers.
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Code Generation
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Pool Demo Server
//
// Generated helpers include:
//
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithPool(Pool), WithDemo(Demo), WithServer(Server), WithLogLevel(string), ...
//   - NewPoolWithOptionsAndDefaults(...PoolOption), WithNumWorkers(int), ...
//   - DebugMap() - Returns map for debug logging
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithPool(*config.NewPoolWithOptionsAndDefaults(
//	        config.WithNumWorkers(8),
//	    )),
//	    config.WithLogLevel("debug"),
//	)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
