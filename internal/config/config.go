package config

import (
	"errors"
	"fmt"
	"time"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Pool Demo Server

type Configuration struct {
	Pool      Pool   `debugmap:"visible"`
	Demo      Demo   `debugmap:"visible"`
	Server    Server `debugmap:"visible"`
	LogFormat string `debugmap:"visible" default:"console"`
	LogLevel  string `debugmap:"visible" default:"info"`
}

type Pool struct {
	PoolName         string `debugmap:"visible" default:"default"`
	NumWorkers       int    `debugmap:"visible" default:"4"`
	LockOSThread     bool   `debugmap:"visible" default:"false"`
	MetricsNamespace string `debugmap:"visible" default:"maxtek"`
}

type Demo struct {
	Producers        int           `debugmap:"visible" default:"2"`
	Consumers        int           `debugmap:"visible" default:"2"`
	Items            int           `debugmap:"visible" default:"100"`
	BufferSize       int           `debugmap:"visible" default:"10"`
	MaxRetryInterval time.Duration `debugmap:"visible" default:"50ms"`
	DemoTimeout      time.Duration `debugmap:"visible" default:"30s"`
}

type Server struct {
	ServerMode string `debugmap:"visible" default:"dev"`
	HTTPPort   int    `debugmap:"visible" default:"8000"`
}

func (c *Configuration) Validate() error {
	if c.Pool.NumWorkers <= 0 {
		return fmt.Errorf("invalid number of workers %d: must be positive", c.Pool.NumWorkers)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'console' or 'json'", c.LogFormat)
	}
	switch c.Server.ServerMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("invalid server mode %q: must be 'dev' or 'prod'", c.Server.ServerMode)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}
	return nil
}

func (d Demo) Validate() error {
	if d.Producers <= 0 || d.Consumers <= 0 {
		return errors.New("demo needs at least one producer and one consumer")
	}
	if d.Items < 0 {
		return fmt.Errorf("invalid number of items %d", d.Items)
	}
	if d.BufferSize <= 0 {
		return fmt.Errorf("invalid buffer size %d: must be positive", d.BufferSize)
	}
	return nil
}
