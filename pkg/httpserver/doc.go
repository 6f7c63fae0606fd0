// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener first, so address errors surface immediately as
// ErrStart, then serves until the context is cancelled, a shutdown signal
// arrives or Shutdown is called. Shutdown hooks run after the server stops
// accepting requests and share the shutdown deadline.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithShutdownHook(func(context.Context) error { return rdb.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// LivenessHandler and ReadinessHandler serve health probes; readiness checks
// receive the request context.
package httpserver
