package handlers

import (
	"sync"

	v1 "github.com/maxtek/threadpool/api/v1"
	"github.com/maxtek/threadpool/internal/config"
	"github.com/maxtek/threadpool/pkg/threadpool"
)

type Handler struct {
	pool *threadpool.ThreadPool
	demo config.Demo
	// demoMu allows a single demo run at a time; concurrent runs would
	// compete for the same workers.
	demoMu sync.Mutex
}

func New(pool *threadpool.ThreadPool, demoCfg config.Demo) *Handler {
	return &Handler{
		pool: pool,
		demo: demoCfg,
	}
}

// Ensure Handler implements v1.ServerInterface.
var _ v1.ServerInterface = (*Handler)(nil)
