// Package handlers implements the HTTP API layer for the threadpool status server.
//
// Handlers expose the state of a single pool and its lifecycle over HTTP. They
// only call the pool's public operations (Stats, Shutdown, Submit through the
// demo) and focus on response formatting and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion (api/v1)                             │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                  threadpool.ThreadPool                          │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Handler Structure
//
// All handlers are methods on a single Handler struct holding the pool:
//
//	type Handler struct {
//	    pool   *threadpool.ThreadPool
//	    demo   config.Demo
//	    demoMu sync.Mutex
//	}
//
// The Handler implements v1.ServerInterface and is registered with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
//	┌────────┬────────────────┬───────────────────────────────────────────┐
//	│ Method │ Endpoint       │ Description                               │
//	├────────┼────────────────┼───────────────────────────────────────────┤
//	│ GET    │ /pool          │ Pool status (workers, busy, queued)       │
//	│ POST   │ /pool/shutdown │ Shut the pool down, wait for the workers  │
//	│ POST   │ /pool/demo     │ Run the producer/consumer demo, one at a  │
//	│        │                │ time, and return its report               │
//	└────────┴────────────────┴───────────────────────────────────────────┘
//
// # Error Mapping
//
//	┌──────────────────────┬─────────────┐
//	│ Error                │ HTTP Status │
//	├──────────────────────┼─────────────┤
//	│ AlreadyShutdownError │ 409         │
//	│ RejectedError        │ 409         │
//	│ demo already running │ 409         │
//	│ demo.ErrPoolTooSmall │ 422         │
//	│ other                │ 500         │
//	└──────────────────────┴─────────────┘
package handlers
