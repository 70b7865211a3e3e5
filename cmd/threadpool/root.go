package main

import (
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/maxtek/threadpool/internal/config"
	"github.com/maxtek/threadpool/internal/logging"
	"github.com/maxtek/threadpool/pkg/threadpool"
)

const envPrefix = "threadpool"

func NewRootCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	var (
		configFile string
		undoLogger func()
	)

	rootCmd := &cobra.Command{
		Use:           "threadpool",
		Short:         "Run the worker pool demo, self tests and status server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(envPrefix),
			func(cmd *cobra.Command, _ []string) error {
				return loadConfigFile(cmd, configFile)
			},
			func(_ *cobra.Command, _ []string) error {
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("failed to validate configuration: %w", err)
				}
				undo, err := logging.Setup(cfg.LogFormat, cfg.LogLevel)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				undoLogger = undo
				zap.S().Debugw("configuration loaded", "config", cfg.DebugMap())
				return nil
			},
		),
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if undoLogger != nil {
				undoLogger()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a config file (yaml, json or toml) whose keys are flag names")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: 'console' or 'json'")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	registerPoolFlags(flags, &cfg.Pool)

	rootCmd.AddCommand(
		NewDemoCommand(cfg),
		NewUnitCommand(),
		NewServeCommand(cfg),
	)

	return rootCmd
}

func registerPoolFlags(flags *pflag.FlagSet, pool *config.Pool) {
	flags.StringVar(&pool.PoolName, "pool-name", pool.PoolName, "Name of the pool in logs and status")
	flags.IntVar(&pool.NumWorkers, "workers", pool.NumWorkers, "Number of pool workers")
	flags.BoolVar(&pool.LockOSThread, "lock-os-thread", pool.LockOSThread, "Pin every worker to its own OS thread")
	flags.StringVar(&pool.MetricsNamespace, "metrics-namespace", pool.MetricsNamespace, "Prometheus metrics namespace")
}

// loadConfigFile fills every flag not already set on the command line or
// through the environment from the config file.
func loadConfigFile(cmd *cobra.Command, path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var setErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if setErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			setErr = fmt.Errorf("invalid value for %s in %s: %w", f.Name, path, err)
		}
	})
	return setErr
}

func newPool(cfg config.Pool, metrics *threadpool.Metrics) (*threadpool.ThreadPool, error) {
	opts := []threadpool.Option{
		threadpool.WithName(cfg.PoolName),
		threadpool.WithLogger(zap.L()),
		threadpool.WithMetrics(metrics),
	}
	if cfg.LockOSThread {
		opts = append(opts, threadpool.WithLockOSThread())
	}
	return threadpool.New(cfg.NumWorkers, opts...)
}
