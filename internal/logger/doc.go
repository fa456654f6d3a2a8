// Package logger wraps zap to give every baggage-desk binary:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and a per-logger level override option.
//
// Services take a context and extract the logger from it, so registry
// narration carries the scope of the caller (server, replay, desk).
package logger
