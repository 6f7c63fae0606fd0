// Package logger builds *slog.Logger values for iconkit binaries and packages.
//
// New is the single factory. Options pick the output format (JSON or text),
// the minimum level, static attributes and ContextExtractor callbacks that
// copy request scoped values from context.Context onto every record.
//
// Environment presets:
//
//	development  text, debug level
//	staging      json, info level
//	production   json, info level
//
// Attribute helpers in attr.go keep key names consistent across packages:
// Namespace, Variant, IconName, ResourceKey, Library, Component, Error, Errors.
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
//
// Library packages accept a logger through their own options and fall back to
// NewNop, which discards everything.
//
// Usage:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "iconkit"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.DebugContext(ctx, "icon index loaded",
//		logger.Namespace("heroicons"),
//		logger.Variant("outline"),
//	)
package logger
