// Package server provides the HTTP status server for a threadpool.
//
// The server uses the Gin web framework. It exposes the pool API registered by
// the caller under /api/v1, a health check and, when provided, the prometheus
// metrics handler.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (ginzap.Ginzap, "http" logger)                  │  │
//	│  │  Recovery (ginzap.RecoveryWithZap, with stack)          │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /health     → {"status":"ok"}                                │
//	│  /metrics    → promhttp handler                               │
//	│  /api/v1     → handlers registered via callback               │
//	│  other       → 404 JSON error                                 │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (ServerMode = "dev"):
//   - Gin runs in debug mode
//
// Production Mode (ServerMode = "prod"):
//   - Gin runs in release mode
//
// # Server Lifecycle
//
//	srv := server.NewServer(cfg.Server, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handlers.New(pool, cfg.Demo))
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// Start returns nil after Stop; Stop waits for in-flight requests.
package server
