// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listen address synchronously, so port conflicts are reported
// as errors (wrapped with ErrStart) instead of surfacing later. It then
// serves until the context is cancelled, the process receives SIGINT or
// SIGTERM, or Shutdown is called; each path drains in-flight requests within
// the configured shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// HealthCheckHandler provides a liveness/readiness endpoint.
package httpserver
